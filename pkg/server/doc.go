// Package server is the navshell HTTP server.
//
// Routes:
//
//	GET /healthz        liveness check
//	GET /metrics        Prometheus exposition
//	GET /static/*       stylesheet and client script
//	GET /_shell/live    live navigation WebSocket
//	GET /*              full HTML document for any path
//
// HEAD is answered wherever GET is. Every document path answers 200. Paths that select no page render the
// shell with an empty outlet. Only render failures answer 500.
package server
