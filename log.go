package problem

import "github.com/rs/zerolog"

// MarshalZerologObject logs the problem as a structured object, mirroring
// the wire shape: unset members are skipped.
func (p Problem) MarshalZerologObject(e *zerolog.Event) {
	if p.Type != "" {
		e.Str("type", p.Type)
	}
	if p.Status != 0 {
		e.Int("status", p.Status.Int())
	}
	e.Str("title", p.Title)
	if p.Detail != "" {
		e.Str("detail", p.Detail)
	}
	if p.Instance != "" {
		e.Str("instance", p.Instance)
	}
}
