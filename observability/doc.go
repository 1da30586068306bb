// Package observability records problem documents on OpenTelemetry spans.
//
// It works against caller-provided spans and never configures a tracer
// provider; exporter and sampling setup belong to the host application.
package observability
