package justify

// Justify — optimal text justification
//
// Description:
//
//	Justify partitions words into lines whose single-spaced length is at
//	most width, and renders one string per line. In Optimal mode the break
//	points minimize the total badness of the layout, where the badness of
//	a line is slack² (slack = width − single-spaced length) and the last
//	line contributes 0 regardless of slack.
//
// Algorithm Outline (suffix DP):
//  1. Let n = len(words). Allocate cost[0..n] and next[0..n].
//  2. cost[n] = 0 — the empty suffix needs no lines.
//  3. For k = n-1 down to 0, consider every end j in (k, n] while the span
//     words[k:j] still fits in width:
//     badness = 0 if j == n, else slack²
//     cost[k] = min over j of badness + cost[j]
//     next[k] = the j achieving the minimum; ties prefer the larger j,
//     packing as many words as possible onto the earlier line.
//  4. A word longer than width forms a forced-overflow span of length one,
//     counted as badness 0 — every word ends up on exactly one line, never
//     an error.
//  5. Reconstruct the lines by following next from k = 0 until n.
//
// Complexity:
//
//	Time   = O(n²) worst case (candidates per suffix are bounded by the
//	         number of words that fit in width)
//	Memory = O(n)
//
// Errors:
//   - ErrInvalidWidth — if width < 1.

// Justify splits words into lines of at most width characters and returns
// the rendered lines together with the total badness of the chosen
// partition (last line exempt). A nil opts selects DefaultOptions. The
// input slice is never mutated, and repeated calls with identical input
// produce byte-identical output.
//
// Example:
//
//	lines, badness, err := justify.Justify(words, 72, nil)
func Justify(words []string, width int, opts *Options) (lines []string, badness int, err error) {
	if width < 1 {
		return nil, 0, ErrInvalidWidth
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	n := len(words)
	if n == 0 {
		return []string{}, 0, nil
	}

	var breaks []int
	if o.Algorithm == Greedy {
		breaks = greedyBreaks(words, width)
	} else {
		breaks = optimalBreaks(words, width)
	}

	lines = make([]string, 0, len(breaks))
	start := 0
	for _, end := range breaks {
		lines = append(lines, renderLine(words[start:end], width, o.Alignment))
		if end < n {
			badness += lineBadness(words[start:end], width)
		}
		start = end
	}

	return lines, badness, nil
}

// optimalBreaks fills the suffix cost table and returns the end index of
// every chosen span, in order. cost[k] is the minimum total badness of
// justifying words[k:]; next[k] records the span end achieving it.
func optimalBreaks(words []string, width int) []int {
	n := len(words)
	cost := make([]int, n+1)
	next := make([]int, n+1)

	for k := n - 1; k >= 0; k-- {
		raw := -1 // running single-spaced length of words[k:j]
		bestCost, bestEnd := -1, -1
		for j := k + 1; j <= n; j++ {
			raw += len(words[j-1]) + 1
			if raw > width && j > k+1 {
				break // longer spans cannot fit either
			}
			b := 0
			if j < n && raw <= width {
				slack := width - raw
				b = slack * slack
			}
			// j == n is the last line (exempt); raw > width here can only be
			// a single oversized word, the forced-overflow span.
			if total := b + cost[j]; bestEnd == -1 || total <= bestCost {
				bestCost, bestEnd = total, j // ties prefer the larger j
			}
		}
		cost[k], next[k] = bestCost, bestEnd
	}

	breaks := make([]int, 0, n)
	for k := 0; k < n; k = next[k] {
		breaks = append(breaks, next[k])
	}

	return breaks
}

// rawLength returns the single-spaced length of a span of words: the word
// lengths plus one separating space per gap.
func rawLength(span []string) int {
	length := len(span) - 1
	for _, w := range span {
		length += len(w)
	}

	return length
}

// lineBadness returns slack² for a feasible span and 0 for a forced
// overflow span (a single word longer than width).
func lineBadness(span []string, width int) int {
	slack := width - rawLength(span)
	if slack < 0 {
		return 0
	}

	return slack * slack
}
