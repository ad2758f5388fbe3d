// Package api is the typed gateway to the report service REST API.
//
// Every call is a single best-effort round trip: no retries, no caching, no
// request deduplication. The current session token, when available, is sent
// as a bearer credential on every request. A response with HTTP status 401
// invokes the unauthorized hook exactly once for that request before the
// error is returned, which the application uses to tear the session down.
package api
