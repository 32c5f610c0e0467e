// Package ingest turns line-oriented text into the arc lists and name
// tables the network core consumes.
//
// Pipeline:
//
//   - NewParser compiles a regular expression whose named capture groups
//     "from" and "to" (mandatory) plus "cost" and "cap" (optional) locate
//     the arc fields within a line.
//   - ReadArcs applies the parser to a reader, skipping a configurable
//     header, optionally doubling every line into both directions for
//     undirected inputs.
//   - NameTable interns external node names first-seen-gets-next-id,
//     producing exactly the dense contiguous id space compactstar.Build
//     validates, and translating ids back to names for presentation.
//
// Missing cost/cap fields default to 0 here, at the ingestion boundary;
// inside the core an absent value is always an explicit miss.
package ingest
