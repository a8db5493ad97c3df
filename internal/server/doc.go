// Package server implements docketd, the HTTP service that publishes the
// court profile registry.
//
// HTTP API
//
//	GET /healthz
//	    Liveness probe. Always {"status":"ok"}.
//
//	GET /courts
//	    Sorted list of registered court IDs.
//
//	GET /courts/{id}
//	    The CourtProfile for {id}, or 404.
//
//	POST /courts/{id}/validate
//	    Validate the request body (document text) against {id}. Returns a
//	    ComplianceReport. Unknown courts yield a non-compliant report rather
//	    than an error. Rate limited per client IP.
//
//	GET /metrics
//	    Prometheus metrics.
//
// When a profiles directory is configured, the registry is reloaded shortly
// after any YAML file in it changes.
package server
