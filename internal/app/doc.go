// Package app wires application dependencies for the CLI and docketd.
//
// It loads Config (defaults, then the YAML config file, then DOCKET_*
// environment variables; flags are applied by the caller last) and builds the
// concrete stores, services and clients from it, exposing them via the Wire
// struct for commands to use.
package app
