// internal/words/words.go
//
// Provides the dictionary used by the game engine and the robot players.
//
// Responsibilities:
//   - Load a whitespace-separated word file (see Load).
//   - Answer membership queries by binary search (Contains).
//   - Enumerate words sharing a literal prefix (CountWithPrefix, NthWithPrefix).
//
// Word list contract:
//   • The file must already be sorted ascending once canonicalized; the
//     dictionary never sorts. An unsorted file makes Contains unreliable.
//   • Words are stored canonical (uppercase, accents folded, see Canonical).
//   • Tokens longer than MaxWordLen are skipped.
//
// Failure mode:
//   An unreadable file yields an empty dictionary and a warning. The game still
//   starts; robots then fall back to their "no candidate" moves.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

const (
	// MaxLen is the fixed word slot of the ODS word files (27 chars + terminator).
	MaxLen = 28
	// MaxWordLen is the longest accepted word.
	MaxWordLen = MaxLen - 1
)

// Dictionary is an immutable, ascending list of canonical words.
type Dictionary struct {
	words []string
}

// New builds a dictionary from an already sorted list.
// Each word is canonicalized; the order is kept as given. Words longer than
// MaxWordLen are dropped, as Load drops them.
func New(list []string) *Dictionary {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if cw, ok := accept(w); ok {
			out = append(out, cw)
		}
	}
	return &Dictionary{words: out}
}

// accept canonicalizes a raw token and reports whether it fits a word slot.
func accept(token string) (string, bool) {
	w := Canonical(token)
	return w, w != "" && utf8.RuneCountInString(w) <= MaxWordLen
}

// Load reads path and returns its dictionary.
// A missing or unreadable file is reported as an error together with an
// empty, usable dictionary.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Dictionary{}, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	list, skipped, err := readWords(f)
	if err != nil {
		return &Dictionary{}, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	if skipped > 0 {
		log.Warn().Str("path", path).Int("skipped", skipped).Int("maxLen", MaxWordLen).
			Msg("dictionary tokens too long, skipped")
	}
	return &Dictionary{words: list}, nil
}

// LoadOrEmpty is Load with the error downgraded to a warning.
func LoadOrEmpty(path string) *Dictionary {
	d, err := Load(path)
	if err != nil {
		log.Warn().Err(err).Msg("dictionary unavailable, playing with an empty word list")
		return d
	}
	log.Info().Str("path", path).Int("words", d.Len()).Msg("dictionary loaded")
	return d
}

// readWords splits r on whitespace and canonicalizes each token.
// Returns the words, the number of oversize tokens dropped, and the scan error.
func readWords(r io.Reader) ([]string, int, error) {
	var (
		out     []string
		skipped int
	)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		w, ok := accept(sc.Text())
		if !ok {
			if w != "" {
				skipped++
			}
			continue
		}
		out = append(out, w)
	}
	return out, skipped, sc.Err()
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether word is in the dictionary. O(log n).
func (d *Dictionary) Contains(word string) bool {
	_, ok := slices.BinarySearch(d.words, Canonical(word))
	return ok
}

// CountWithPrefix counts the words starting with prefix.
func (d *Dictionary) CountWithPrefix(prefix string) int {
	prefix = Canonical(prefix)
	n := 0
	for _, w := range d.words {
		if strings.HasPrefix(w, prefix) {
			n++
		}
	}
	return n
}

// NthWithPrefix returns the n-th (0-based, dictionary order) word starting
// with prefix. ok is false when fewer than n+1 words match.
func (d *Dictionary) NthWithPrefix(prefix string, n int) (word string, ok bool) {
	if n < 0 {
		return "", false
	}
	prefix = Canonical(prefix)
	seen := 0
	for _, w := range d.words {
		if !strings.HasPrefix(w, prefix) {
			continue
		}
		if seen == n {
			return w, true
		}
		seen++
	}
	return "", false
}
