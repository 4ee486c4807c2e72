// Package middleware holds the Echo middleware shared by every route:
// request IDs, New Relic tracing, request-scoped logging, Clerk
// authentication, and the global error handler.
package middleware
