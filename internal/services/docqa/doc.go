// Package docqa runs documentation QA over the README files of a repository.
//
// A scan answers three questions about each README:
//
//   - Is it structurally valid Markdown? Every fenced code block must be
//     closed and the file must be valid UTF-8.
//   - Is it a garbled copy of another README? Text that went through a
//     UTF-8 -> Windows-1252 -> UTF-8 round trip (emoji turned into "ðŸš€") is
//     repaired before comparison, so two copies that differ only in that
//     encoding damage are reported as an encoding-only near-duplicate pair.
//   - Are its code fences illustrative? File names mentioned inside fenced
//     blocks (tree diagrams, script names) are resolved against the
//     repository tree and reported when they do not exist.
package docqa
