// Package schema exposes a JSON Schema for the problem document, for API
// documentation generators and structured-output contracts.
package schema
