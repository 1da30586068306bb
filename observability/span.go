package observability

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/problem"
	"github.com/kbukum/problem/status"
)

// Span attribute keys for problem members.
const (
	AttrType     = "problem.type"
	AttrStatus   = "problem.status"
	AttrTitle    = "problem.title"
	AttrDetail   = "problem.detail"
	AttrInstance = "problem.instance"
)

// RecordProblem attaches p to the span as a "problem" event carrying the
// document members as attributes. Server-class problems (5xx) additionally
// mark the span status as Error; client-class problems do not, matching the
// OpenTelemetry HTTP semantic conventions for server spans.
func RecordProblem(span trace.Span, p problem.Problem) {
	attrs := make([]attribute.KeyValue, 0, 5)
	if p.Type != "" {
		attrs = append(attrs, attribute.String(AttrType, p.Type))
	}
	if p.Status != 0 {
		attrs = append(attrs, attribute.Int(AttrStatus, p.Status.Int()))
	}
	attrs = append(attrs, attribute.String(AttrTitle, p.Title))
	if p.Detail != "" {
		attrs = append(attrs, attribute.String(AttrDetail, p.Detail))
	}
	if p.Instance != "" {
		attrs = append(attrs, attribute.String(AttrInstance, p.Instance))
	}

	span.AddEvent("problem", trace.WithAttributes(attrs...))
	if p.StatusOrDefault().Class() == status.ClassServerError {
		span.SetStatus(codes.Error, p.Title)
	}
}
