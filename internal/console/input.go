// internal/console/input.go
//
// Human side of the table: blocking reads from a line-oriented stream.
//
//   - ReadLetter keeps the first character of the next non-blank line and
//     discards the rest of it.
//   - ReadWord keeps the first token of the next non-blank line, cut to
//     words.MaxWordLen characters.
//
// Both canonicalize what they read (accents folded, uppercase).
package console

import (
	"bufio"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/singe/internal/words"
)

// Reader reads human moves.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// nextLine blocks until a non-blank line arrives.
// At end of input it returns io.ErrUnexpectedEOF.
func (r *Reader) nextLine() (string, error) {
	for r.sc.Scan() {
		if line := strings.TrimSpace(r.sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

// ReadLetter returns the canonical first character of the next line.
// Lines whose first character has no single-letter canonical form are skipped.
func (r *Reader) ReadLetter() (byte, error) {
	for {
		line, err := r.nextLine()
		if err != nil {
			return 0, err
		}
		if c, ok := words.CanonicalLetter(line); ok {
			return c, nil
		}
		log.Debug().Str("line", line).Msg("input ignored: not a letter")
	}
}

// ReadWord returns the canonical first token of the next line.
func (r *Reader) ReadWord() (string, error) {
	line, err := r.nextLine()
	if err != nil {
		return "", err
	}
	word := words.Canonical(strings.Fields(line)[0])
	if runes := []rune(word); len(runes) > words.MaxWordLen {
		word = string(runes[:words.MaxWordLen])
	}
	return word, nil
}
