// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request IDs, request-scoped logging, tracing, CORS, rate limiting,
// panic recovery and error rendering.
package middleware
