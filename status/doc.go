// Package status provides a total, bidirectional registry of HTTP status
// codes and their canonical titles.
//
// Code is a plain numeric type, so any 16-bit value is representable; the
// registry only decides whether a value is one of the named, IANA-registered
// codes. FromInt never fails: unknown values simply report as unregistered
// and carry a placeholder title derived from their status class.
package status
