package problem

import (
	"encoding/json"
	"net/http"
)

// WriteTo writes the problem to a plain net/http response: the Content-Type
// header is set to application/problem+json, the status line comes from
// StatusOrDefault, and the body is the JSON document. The returned error is
// whatever the underlying writer reported.
func (p Problem) WriteTo(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", MediaTypeJSON)
	w.WriteHeader(p.StatusOrDefault().Int())
	return json.NewEncoder(w).Encode(p)
}
