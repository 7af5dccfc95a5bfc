// Package domain contains the core value objects and error taxonomy for
// tokpipe.
//
// This is the innermost layer: it has no dependencies on infrastructure
// concerns (file system, terminals, logging) and holds only the values that
// flow through the transformation pipeline.
//
// # Values
//
//   - [Message]: an immutable input string with origin metadata
//   - [Result]: the transformed output of one pipeline pass
//
// Messages are sourced once per run and never mutated; the token sequence
// produced from a message is created by the splitter, consumed by the joiner,
// and discarded.
package domain
