// Package commands defines the docket CLI and wires dependencies for subcommands.
//
// Commands
//
//   - readme check       Documentation QA over a repository's README files
//   - evidence add       Register an evidence source (hashing its file)
//   - evidence list      List registered evidence
//   - evidence verify    Check an evidence file still matches its digest
//   - draft para         Draft a cited paragraph into a session
//   - draft check        Report factual claims with no citation nearby (logged as a routed task)
//   - draft exhibits     Print the LaTeX exhibit list for a session
//   - draft reset        Discard a drafting session
//   - courts list|show   Inspect court profiles
//   - courts validate    Check a document against a court's rules
//   - route select       Pick a model for a legal task
//   - route stats        Summarise the routing performance log
//
// # Implementation
//
// The root command loads configuration (defaults, config file, DOCKET_*
// environment, then flags), configures logging and builds the dependency graph
// before any subcommand runs. With --server, court commands talk to a remote
// docketd instead of the local registry.
package commands
