// Package jurisdiction is the registry of court profiles and the compliance
// validator that checks document text against them.
//
// The registry starts from built-in profiles for the Hawaii Family Court
// (hi_family), the Northern District of California (cand) and the Ninth
// Circuit (ca9), then overlays any profiles found in the configured
// CourtProfileStore. Reload re-reads the store so a long-running docketd can
// pick up edited profiles without restarting.
//
// Validation works on LaTeX source text. It is a heuristic check of
// declared formatting and required sections, not a renderer.
package jurisdiction
