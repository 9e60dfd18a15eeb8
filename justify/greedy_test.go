package justify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomaszmj/justify-text/justify"
)

// greedyOpts returns options selecting the first-fit line breaker.
func greedyOpts() justify.Options {
	opts := justify.DefaultOptions()
	opts.Algorithm = justify.Greedy
	return opts
}

// TestGreedy_BasicFill verifies first-fit packing on the canonical example.
func TestGreedy_BasicFill(t *testing.T) {
	words := []string{"Hello!", "Nice", "to", "meet", "you."}
	opts := greedyOpts()

	lines, badness, err := justify.Justify(words, 12, &opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello! Nice", "to meet you."}, lines)
	assert.Equal(t, 1, badness, "first line has slack 1, last line is free")
}

// TestGreedy_CanBeSuboptimal pins a case where first-fit leaves a loose
// middle line that the optimizer avoids.
func TestGreedy_CanBeSuboptimal(t *testing.T) {
	words := []string{"aaa", "bb", "cc", "ddddd"}
	const width = 6

	opts := greedyOpts()
	greedyLines, greedyBadness, err := justify.Justify(words, width, &opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa bb", "cc", "ddddd"}, greedyLines)
	assert.Equal(t, 16, greedyBadness)

	optimalLines, optimalBadness, err := justify.Justify(words, width, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "bb cc", "ddddd"}, optimalLines)
	assert.Equal(t, 10, optimalBadness)

	assert.Less(t, optimalBadness, greedyBadness)
}

// TestGreedy_OversizedWordOwnLine verifies the shared forced-overflow policy.
func TestGreedy_OversizedWordOwnLine(t *testing.T) {
	long := strings.Repeat("x", 20)
	opts := greedyOpts()

	lines, _, err := justify.Justify([]string{"aa", long, "bb"}, 5, &opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", long, "bb"}, lines)
}

// TestGreedy_Coverage checks word preservation across widths, mirroring the
// optimizer's structural property test.
func TestGreedy_Coverage(t *testing.T) {
	words := strings.Fields("one two three four five sixsixsix seven eight")
	opts := greedyOpts()
	for width := 1; width <= 15; width++ {
		lines, _, err := justify.Justify(words, width, &opts)
		require.NoError(t, err, "width=%d", width)

		var got []string
		for _, line := range lines {
			require.NotEmpty(t, line, "width=%d", width)
			got = append(got, strings.Fields(line)...)
		}
		assert.Equal(t, words, got, "width=%d", width)
	}
}

// TestGreedy_NeverBeatsOptimal cross-checks that the optimizer's total is a
// lower bound for the greedy total on every tested width.
func TestGreedy_NeverBeatsOptimal(t *testing.T) {
	words := strings.Fields("the quick brown fox jumps over the lazy dog again and again")
	opts := greedyOpts()
	for width := 3; width <= 30; width++ {
		_, greedyBadness, err := justify.Justify(words, width, &opts)
		require.NoError(t, err)
		_, optimalBadness, err := justify.Justify(words, width, nil)
		require.NoError(t, err)
		assert.LessOrEqual(t, optimalBadness, greedyBadness, "width=%d", width)
	}
}
