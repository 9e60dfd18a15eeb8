package justify

// greedyBreaks packs lines first-fit: a word joins the current line while
// it still fits in width, otherwise it starts a new one. A word longer
// than width is emitted alone, matching the forced-overflow policy of the
// optimizer. Returns the end index of every chosen span, in order.
func greedyBreaks(words []string, width int) []int {
	n := len(words)
	breaks := make([]int, 0, n)
	start, raw := 0, 0
	for i, w := range words {
		if len(w) > width {
			if i > start {
				breaks = append(breaks, i)
			}
			breaks = append(breaks, i+1)
			start, raw = i+1, 0
			continue
		}
		grown := raw + len(w)
		if i > start {
			grown++ // separating space
		}
		if grown > width {
			breaks = append(breaks, i)
			start, raw = i, len(w)
		} else {
			raw = grown
		}
	}
	if start < n {
		breaks = append(breaks, n)
	}

	return breaks
}
