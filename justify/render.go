package justify

import "strings"

// renderLine renders one span of the partition. FlushLeft joins the words
// with single spaces. Justified distributes the leftover width across the
// gaps: every gap gets the same base number of extra spaces and the
// remainder goes to the leftmost gaps, one each. A single-word line is
// padded with trailing spaces; an oversized span is emitted as-is.
func renderLine(span []string, width int, align Alignment) string {
	extra := width - rawLength(span)
	if align == FlushLeft || extra <= 0 {
		return strings.Join(span, " ")
	}
	if len(span) == 1 {
		return span[0] + strings.Repeat(" ", extra)
	}

	gaps := len(span) - 1
	base, rem := extra/gaps, extra%gaps
	var sb strings.Builder
	sb.Grow(width)
	sb.WriteString(span[0])
	for i, w := range span[1:] {
		pad := base + 1 // the separating space itself
		if i < rem {
			pad++
		}
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(w)
	}

	return sb.String()
}

// DistributedBadness reports the badness of one justified line holding
// wordCount words whose single-spaced length is lineLength: the sum of
// squares of the extra spaces placed into each gap, or the squared
// trailing pad for a single-word line. Unlike the flush-left slack²
// measure, it reflects how Justified rendering actually spreads the
// leftover width.
func DistributedBadness(wordCount, width, lineLength int) int {
	if wordCount < 1 {
		return 0
	}
	extra := width - lineLength
	if extra <= 0 {
		return 0
	}
	if wordCount == 1 {
		return extra * extra
	}

	gaps := wordCount - 1
	base, rem := extra/gaps, extra%gaps

	return (base+1)*(base+1)*rem + base*base*(gaps-rem)
}
