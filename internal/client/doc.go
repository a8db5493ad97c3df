// Package client provides an HTTP implementation of the domain.CourtClient
// interface used by the docket CLI when --server is set.
//
// It talks to docketd, which serves the court profile registry:
//   - Listing registered court IDs.
//   - Fetching one court profile.
//   - Validating document text against a court's rules.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// full URL, and status text to aid diagnostics.
package client
