package server_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kbukum/problem"
	"github.com/kbukum/problem/server"
	"github.com/kbukum/problem/status"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, body io.Reader) problem.Problem {
	t.Helper()
	var p problem.Problem
	if err := json.NewDecoder(body).Decode(&p); err != nil {
		t.Fatalf("body is not a problem document: %v", err)
	}
	return p
}

// ---------------------------------------------------------------------------
// Respond / Abort / RespondError
// ---------------------------------------------------------------------------

func TestRespond(t *testing.T) {
	r := gin.New()
	r.GET("/orders/:id", func(c *gin.Context) {
		server.Respond(c, problem.FromStatusWithType(status.NotFound).
			SetDetail("order does not exist").
			SetInstance(c.Request.URL.Path))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/orders/42", http.NoBody))

	if rr.Code != 404 {
		t.Errorf("status = %d, want 404", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != problem.MediaTypeJSON {
		t.Errorf("Content-Type = %q, want %q", ct, problem.MediaTypeJSON)
	}
	p := decode(t, rr.Body)
	if p.Title != "Not Found" || p.Instance != "/orders/42" {
		t.Errorf("unexpected problem: %+v", p)
	}
}

func TestAbort_StopsChain(t *testing.T) {
	reached := false
	r := gin.New()
	r.Use(func(c *gin.Context) {
		server.Abort(c, problem.FromStatus(status.Unauthorized))
	})
	r.GET("/", func(*gin.Context) { reached = true })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != 401 {
		t.Errorf("status = %d, want 401", rr.Code)
	}
	if reached {
		t.Error("handler ran after Abort")
	}
}

func TestRespondError_Problem(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		err := error(problem.FromStatus(status.Conflict).SetDetail("version mismatch"))
		server.RespondError(c, err)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != 409 {
		t.Errorf("status = %d, want 409", rr.Code)
	}
	if p := decode(t, rr.Body); p.Detail != "version mismatch" {
		t.Errorf("detail = %q", p.Detail)
	}
}

func TestRespondError_Wrapped(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		err := fmt.Errorf("lookup failed: %w", problem.FromStatus(status.NotFound))
		server.RespondError(c, err)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != 404 {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestRespondError_Opaque(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		server.RespondError(c, errors.New("pq: connection refused"))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != 500 {
		t.Errorf("status = %d, want 500", rr.Code)
	}
	p := decode(t, rr.Body)
	if p.Title != "Internal Server Error" {
		t.Errorf("title = %q", p.Title)
	}
	if strings.Contains(p.Detail, "connection refused") {
		t.Error("internal error message leaked to the client")
	}
}

// ---------------------------------------------------------------------------
// Recovery
// ---------------------------------------------------------------------------

func TestRecovery_NoPanic(t *testing.T) {
	r := gin.New()
	r.Use(server.Recovery(zerolog.Nop()))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}

func TestRecovery_Panic(t *testing.T) {
	var logBuf strings.Builder
	log := zerolog.New(&logBuf)

	r := gin.New()
	r.Use(server.Recovery(log))
	r.GET("/boom", func(*gin.Context) { panic("test panic") })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/boom", http.NoBody))

	if rr.Code != 500 {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != problem.MediaTypeJSON {
		t.Errorf("Content-Type = %q", ct)
	}

	p := decode(t, rr.Body)
	if p.Title != "Internal Server Error" {
		t.Errorf("title = %q", p.Title)
	}
	if !strings.HasPrefix(p.Instance, "urn:uuid:") {
		t.Errorf("instance = %q, want urn:uuid prefix", p.Instance)
	}

	// The same occurrence instance must appear in the log entry.
	if !strings.Contains(logBuf.String(), p.Instance) {
		t.Error("log entry does not carry the occurrence instance")
	}
	if !strings.Contains(logBuf.String(), "test panic") {
		t.Error("log entry does not carry the panic value")
	}
}

// ---------------------------------------------------------------------------
// NoRoute / NoMethod
// ---------------------------------------------------------------------------

func TestNoRoute(t *testing.T) {
	r := gin.New()
	r.NoRoute(server.NoRoute())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/nope", http.NoBody))

	if rr.Code != 404 {
		t.Errorf("status = %d, want 404", rr.Code)
	}
	if p := decode(t, rr.Body); p.Instance != "/nope" {
		t.Errorf("instance = %q", p.Instance)
	}
}

func TestNoMethod(t *testing.T) {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(server.NoMethod())
	r.GET("/thing", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("DELETE", "/thing", http.NoBody))

	if rr.Code != 405 {
		t.Errorf("status = %d, want 405", rr.Code)
	}
	if p := decode(t, rr.Body); p.Title != "Method Not Allowed" {
		t.Errorf("title = %q", p.Title)
	}
}
