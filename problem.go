package problem

import (
	"strconv"
	"strings"

	"github.com/kbukum/problem/status"
)

const (
	// MediaTypeJSON is the recommended media type when serialized to JSON.
	MediaTypeJSON = "application/problem+json"
	// MediaTypeXML is the recommended media type when serialized to XML.
	MediaTypeXML = "application/problem+xml"

	// TypeURLBase is the well-known reference URI that typed constructors
	// append the numeric status code to.
	TypeURLBase = "https://httpstatuses.com/"

	// DefaultType is the value a consumer must assume when the type member
	// is absent (RFC 7807, section 3.1).
	DefaultType = "about:blank"
)

// Problem is a problem details document as defined by RFC 7807.
//
// Title is the only mandatory member. Zero values of the remaining fields
// mean "absent" and are dropped from the wire representation.
type Problem struct {
	// Type is a URI reference (RFC 3986) that identifies the problem type.
	// When absent its value is assumed to be "about:blank".
	Type string `json:"type,omitempty"`
	// Status is the HTTP status code generated by the origin server for
	// this occurrence of the problem.
	Status status.Code `json:"status,omitempty"`
	// Title is a short, human-readable summary of the problem type. It
	// should not change from occurrence to occurrence of the problem,
	// except for purposes of localization.
	Title string `json:"title"`
	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`
	// Instance is a URI reference that identifies the specific occurrence
	// of the problem.
	Instance string `json:"instance,omitempty"`
}

// New creates a Problem with the given title and nothing else set.
func New(title string) Problem {
	return Problem{Title: title}
}

// FromStatus creates a Problem with title and status derived from the code.
// The type member is left unset.
func FromStatus(code status.Code) Problem {
	return Problem{
		Status: code,
		Title:  code.Title(),
	}
}

// FromStatusWithType creates a Problem with title and status derived from
// the code and the type member pointing at the well-known documentation URI
// for that code, e.g. "https://httpstatuses.com/428".
func FromStatusWithType(code status.Code) Problem {
	return FromStatus(code).SetType(TypeURLBase + strconv.Itoa(code.Int()))
}

// SetType overwrites the type member and returns the updated value.
func (p Problem) SetType(url string) Problem {
	p.Type = url
	return p
}

// SetStatus overwrites the status member and returns the updated value.
func (p Problem) SetStatus(code status.Code) Problem {
	p.Status = code
	return p
}

// SetTitle overwrites the title member and returns the updated value.
func (p Problem) SetTitle(title string) Problem {
	p.Title = title
	return p
}

// SetDetail overwrites the detail member and returns the updated value.
func (p Problem) SetDetail(detail string) Problem {
	p.Detail = detail
	return p
}

// SetInstance overwrites the instance member and returns the updated value.
func (p Problem) SetInstance(instance string) Problem {
	p.Instance = instance
	return p
}

// StatusOrDefault returns the status member, or 500 Internal Server Error
// when no status is set. This is the status a transport should respond with.
func (p Problem) StatusOrDefault() status.Code {
	if p.Status == 0 {
		return status.InternalServerError
	}
	return p.Status
}

// String renders the problem for logs and error chains,
// e.g. "404 Not Found: order 1234 does not exist".
func (p Problem) String() string {
	var b strings.Builder
	if p.Status != 0 {
		b.WriteString(strconv.Itoa(p.Status.Int()))
		b.WriteByte(' ')
	}
	b.WriteString(p.Title)
	if p.Detail != "" {
		b.WriteString(": ")
		b.WriteString(p.Detail)
	}
	return b.String()
}

// Error makes a Problem usable as an ordinary Go error value.
func (p Problem) Error() string {
	return p.String()
}
