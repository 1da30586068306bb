// Package server integrates problem documents with Gin.
//
// It renders problems with the application/problem+json media type, maps
// panics to 500 problems with a per-occurrence instance URI, and provides
// fallback handlers for unmatched routes and methods:
//
//	r := gin.New()
//	r.Use(server.Recovery(log))
//	r.NoRoute(server.NoRoute())
//	r.NoMethod(server.NoMethod())
//
// The package never performs content negotiation; it always emits JSON.
package server
