// internal/robot/heuristic.go
//
// Letter-selection heuristic of the robot players.
//
// NextMove (a normal turn):
//   - Empty buffer: a random letter A-Z.
//   - No dictionary word starts with the buffer: '?'.
//   - Otherwise draw a random candidate word and play its next letter. When
//     that letter would complete a word, bluff with '?' (three candidates or
//     fewer) or draw again. Every draw counts against a budget checked
//     before the letter is played:
//       more than 2000 candidates: past candidates/4 draws, play a vowel
//       after a consonant (a consonant after a vowel);
//       otherwise: past candidates/2 draws, play '?'. A lone candidate is
//       therefore challenged at once.
//   - On a one-letter buffer the drawn letter is always accepted.
//
// Reveal (answering a '?'):
//   - At most one letter before the '?': the placeholder word.
//   - No candidate word: '!'.
//   - Otherwise a random candidate.
package robot

import (
	"github.com/rs/zerolog/log"
)

const (
	// Placeholder is revealed when the buffer gives nothing to extrapolate from.
	Placeholder = "ABRUTI"

	challenge byte = '?'
	forfeit   byte = '!'

	// manyCandidates switches the retry budget from candidates/2 to candidates/4.
	manyCandidates = 2000
	// bluffCandidates is the pool size at or below which completing a word is
	// answered by a bluff '?'.
	bluffCandidates = 3

	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	vowels     = "AEIOUY"
	consonants = "BCDFGHJKLMNPQRSTVWXYZ"
)

// Dictionary is what the heuristic reads from the word list.
type Dictionary interface {
	Contains(word string) bool
	CountWithPrefix(prefix string) int
	NthWithPrefix(prefix string, n int) (string, bool)
}

// Rand is the random source; *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Heuristic picks robot moves from a dictionary and a random source.
type Heuristic struct {
	dict Dictionary
	rng  Rand
}

// New returns a Heuristic over dict drawing from rng.
func New(dict Dictionary, rng Rand) *Heuristic {
	return &Heuristic{dict: dict, rng: rng}
}

// NextMove returns the letter, or '?', the robot appends to buffer.
func (h *Heuristic) NextMove(buffer string) byte {
	if buffer == "" {
		c := alphabet[h.rng.Intn(len(alphabet))]
		log.Debug().Str("move", string(c)).Msg("robot opens the round")
		return c
	}

	prefix := buffer
	n := h.dict.CountWithPrefix(prefix)
	if n == 0 {
		log.Debug().Str("prefix", prefix).Msg("robot has no candidate, challenges")
		return challenge
	}

	for retries := 1; ; retries++ {
		word, _ := h.dict.NthWithPrefix(prefix, h.rng.Intn(n))
		var c byte
		completes := true
		if len(word) > len(prefix) {
			c = word[len(prefix)]
			completes = h.dict.Contains(prefix + string(c))
			if completes && n <= bluffCandidates {
				log.Debug().Str("prefix", prefix).Str("word", word).Msg("robot would complete a word, bluffs")
				return challenge
			}
			if len(prefix) == 1 {
				return c
			}
		}

		// Every draw counts against the budget, accepted or not.
		if n > manyCandidates {
			if retries > n/4 {
				c := h.phonetic(prefix[len(prefix)-1])
				log.Debug().Str("prefix", prefix).Str("move", string(c)).Msg("robot falls back to phonetics")
				return c
			}
		} else if retries > n/2 {
			log.Debug().Str("prefix", prefix).Int("retries", retries).Msg("robot gives up, challenges")
			return challenge
		}

		if !completes {
			log.Debug().Str("prefix", prefix).Str("word", word).Str("move", string(c)).
				Int("candidates", n).Int("retries", retries-1).Msg("robot extends")
			return c
		}
	}
}

// phonetic alternates vowels and consonants after last.
func (h *Heuristic) phonetic(last byte) byte {
	if isVowel(last) {
		return consonants[h.rng.Intn(len(consonants))]
	}
	return vowels[h.rng.Intn(len(vowels))]
}

func isVowel(c byte) bool {
	for i := 0; i < len(vowels); i++ {
		if vowels[i] == c {
			return true
		}
	}
	return false
}

// Reveal names the word the robot claims to have been building when
// challenged. buffer ends with the '?' that opened the challenge.
func (h *Heuristic) Reveal(buffer string) string {
	prefix := buffer
	if n := len(prefix); n > 0 && prefix[n-1] == challenge {
		prefix = prefix[:n-1]
	}
	if len(prefix) <= 1 {
		return Placeholder
	}

	n := h.dict.CountWithPrefix(prefix)
	if n == 0 {
		log.Debug().Str("prefix", prefix).Msg("robot cannot name a word, forfeits")
		return string(forfeit)
	}
	// Candidates come from the dictionary: the first draw is normally valid,
	// the loop only guards an index beyond the list.
	for tries := 0; tries < n; tries++ {
		word, ok := h.dict.NthWithPrefix(prefix, h.rng.Intn(n))
		if ok && h.dict.Contains(word) {
			log.Debug().Str("prefix", prefix).Str("word", word).Msg("robot reveals")
			return word
		}
	}
	return string(forfeit)
}
