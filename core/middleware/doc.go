// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Logs method, path, status and latency of every request
//     with its ray id. Register it after RayID.
//
// The endpoints are unauthenticated; there is no auth middleware.
package middleware
