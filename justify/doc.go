// Package justify partitions a sequence of words into lines of at most a
// given width, minimizing the total "badness" of the layout.
//
// 🚀 What is badness?
//
//	Each line that is shorter than the target width wastes slack = width
//	minus the single-spaced length of its words. The badness of a line is
//	slack², so one very loose line is penalized more than several slightly
//	loose ones. The last line of the output is exempt: a short final line
//	is normal typesetting, not waste.
//
// ✨ Key features:
//   - optimal mode: suffix dynamic programming, globally minimal total
//     badness in O(n²) time and O(n) memory
//   - greedy mode: first-fit packing in O(n) time, for comparison
//   - flush-left or fully justified rendering (extra spaces distributed
//     across the gaps between words)
//   - total over all inputs: a word longer than the width is emitted alone
//     on its own line instead of failing
//
// ⚙️ Usage:
//
//	import "github.com/tomaszmj/justify-text/justify"
//
//	opts := justify.DefaultOptions()
//	opts.Alignment = justify.Justified
//
//	lines, badness, err := justify.Justify(words, 72, &opts)
//	if err != nil {
//	  // handle ErrInvalidWidth
//	}
//
// Performance:
//
//   - Time:   O(n²) (Optimal) or O(n) (Greedy)
//   - Memory: O(n)
//
// See example_test.go for runnable scenarios, including the greedy vs
// optimal comparison.
package justify
