// Package textio provides the input and output collaborators of the
// justifier: whitespace tokenization of a reader into words, and writing
// of formatted lines.
package textio

import (
	"bufio"
	"context"
	"io"
)

// ReadWords reads r to EOF and returns its whitespace-separated words, in
// order. Any run of spaces, tabs or newlines separates words; empty tokens
// never occur.
//
// If ctx is canceled while reading, the words scanned so far are returned
// together with ctx.Err(), so an interrupted interactive session can still
// justify the text it managed to read.
func ReadWords(ctx context.Context, r io.Reader) ([]string, error) {
	wordc := make(chan string)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(r)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			select {
			case wordc <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()

	var words []string
	for {
		select {
		case w := <-wordc:
			words = append(words, w)
		case err := <-errc:
			return words, err
		case <-ctx.Done():
			return words, ctx.Err()
		}
	}
}

// WriteLines writes each line to w followed by a newline, in order, with no
// other modification.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
