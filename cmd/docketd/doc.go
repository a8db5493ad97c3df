// Package main runs docketd, the HTTP service that publishes docket's court
// profiles and validates documents against them.
//
// It reads the same configuration as the docket CLI (config file and DOCKET_*
// environment) and serves the API documented in internal/server. Extra court
// profiles are loaded from the courts directory, which is watched for changes
// unless server.watch is false. SIGINT or SIGTERM triggers a graceful
// shutdown.
package main
