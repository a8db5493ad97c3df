// Package evidence manages the registry of evidence a filing may cite.
//
// Every evidence source has a unique ID, an optional exhibit label and page
// range, and optionally a file on disk. When a file is given its BLAKE2b
// digest is recorded at registration so later verification can detect that
// the exhibit changed after it was cited.
package evidence
