// Package problem implements the problem details payload for HTTP APIs
// defined by RFC 7807.
//
// Problem is a plain value: constructors and setters consume and return the
// value, so a chain like
//
//	p := problem.FromStatusWithType(status.PreconditionRequired).
//		SetDetail("detailed explanation").
//		SetInstance("/on/1234/do/something")
//
// builds the document without a separate builder type and without shared
// state. Every operation is total; unknown status codes degrade to the
// unregistered placeholder titles of the status package instead of failing.
//
// The JSON shape follows the RFC: title is always present, the other four
// members are omitted entirely when unset. Serialization is left to the
// caller (encoding/json, gin rendering, ...); WriteTo is a convenience for
// plain net/http handlers.
package problem
