// Package services implements the client's use cases on top of the HTTP
// gateway and the local snapshot store: session lifecycle, report CRUD, the
// persisted entry-form draft, summaries and the Q&A conversation. Each
// service depends on the narrow slice of the gateway it actually calls, so
// tests can substitute fakes.
package services
