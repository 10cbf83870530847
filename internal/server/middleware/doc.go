// Package middleware provides HTTP middleware for the MCP Kubernetes server.
// These middleware functions handle security headers, CORS, and other cross-cutting concerns.
package middleware
