// Package justifytext reformats streams of whitespace-separated words into
// lines of a fixed maximum width, choosing line breaks that minimize wasted
// space instead of filling lines greedily.
//
// 🚀 What is justify-text?
//
//	A small, pure-Go text justification toolkit:
//	  • Optimal line breaking: dynamic programming over word suffixes,
//	    minimizing the total squared leftover space per line
//	  • Greedy line breaking: classic first-fit, for comparison and speed
//	  • Two renderings: flush-left (single spaces) or fully justified
//	    (extra spaces distributed across the gaps)
//	  • A stdin/stdout CLI wrapper with TOML-configurable defaults
//
// ✨ Why choose justify-text?
//
//   - Deterministic – identical input always yields byte-identical output
//   - Total – any word sequence justifies; an oversized word gets its own line
//   - Pure – the core is a side-effect-free function, safe for concurrent use
//
// Under the hood, everything is organized under three packages:
//
//	justify/ — the line-breaking optimizer and renderers (the core)
//	textio/  — word scanning and line writing collaborators
//	cmd/     — the justify command-line tool
//
// Quick example:
//
//	lines, badness, err := justify.Justify(words, 72, nil)
//
// Dive into the justify package documentation for the recurrence, the
// tie-break rule and the last-line exemption.
package justifytext
