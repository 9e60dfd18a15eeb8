package justify

// Algorithm selects the line-breaking strategy.
//
//   - Optimal — suffix dynamic programming. Guarantees the globally minimal
//     total badness over every valid partition. Time: O(n²).
//
//   - Greedy — first-fit packing: each line takes as many words as still fit.
//     Faster (O(n)) but may leave an avoidably loose line in the middle of
//     the text.
type Algorithm int

const (
	// Optimal mode: DP over word suffixes, globally minimal total badness.
	Optimal Algorithm = iota

	// Greedy mode: first-fit packing, no optimality guarantee.
	Greedy
)

// Alignment selects how each chosen line is rendered.
type Alignment int

const (
	// FlushLeft joins the words of a line with single spaces.
	FlushLeft Alignment = iota

	// Justified pads every line to the full width by distributing the
	// leftover spaces across the gaps between words, leftmost gaps first.
	// A single-word line is padded with trailing spaces.
	Justified
)

// Options configures Justify.
//
// Fields:
//   - Algorithm — Optimal (default) or Greedy line breaking.
//   - Alignment — FlushLeft (default) or Justified rendering.
//
// Example:
//
//	opts := justify.DefaultOptions()
//	opts.Algorithm = justify.Greedy
//	lines, badness, err := justify.Justify(words, 40, &opts)
type Options struct {
	Algorithm Algorithm
	Alignment Alignment
}

// DefaultOptions returns the canonical defaults: optimal line breaking with
// flush-left rendering.
func DefaultOptions() Options {
	return Options{Algorithm: Optimal, Alignment: FlushLeft}
}
