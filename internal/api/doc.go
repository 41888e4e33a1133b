// Package api translates HTTP requests into calls on the employee, task and
// user services. Handlers decode and validate JSON payloads, parse path
// parameters, and map service errors to status codes with safe messages.
// Routing and role enforcement live in cmd/server and internal/api/middleware.
package api
