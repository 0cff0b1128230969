// Package api contains the HTTP gateway to the fitness-coach backend.
//
// # Overview
//
// The package provides:
//  1. A shared request core (Client.do) every backend call funnels through:
//     it joins the configured base URL with the /api/v1 prefix, serializes
//     JSON, attaches the persisted bearer credential, tags the request with
//     an X-Request-ID, and normalizes failures.
//  2. Typed resource clients (Auth, Users, Strava, Activities, Coach,
//     Routines, Notifications) that fix path, method, and query encoding
//     for each backend operation and carry no further logic.
//  3. DailyMotivation, a standalone call that deliberately bypasses the
//     gateway and sends no credential; the backend contract for that
//     endpoint is undocumented and is preserved as-is.
//
// # Error Handling
//
// Backend-reported failures (non-2xx status) surface as *APIError carrying
// the status code and the human-readable detail from the response body.
// Transport failures (no response at all) wrap the sentinel ErrUnavailable,
// so callers can tell the two apart with errors.Is / errors.As.
//
// The gateway performs no retries, sets no timeout, and caches nothing:
// each call is exactly one round trip. Callers own context deadlines.
package api
