// internal/game/verify.go
//
// Move verification: decides after every move whether the round ends and who
// takes the quarter.
//
// Rules, by the last character of the buffer:
//   - '?' with at most one letter before it: nothing could be challenged, the
//     challenger is charged.
//   - '?' otherwise: the previous player must reveal the word they had in mind
//     (see JudgeChallenge).
//   - '!': the current player forfeits the round.
//   - a letter: from three letters on, completing a dictionary word charges the
//     current player.

package game

import "strings"

// JudgeMove judges the buffer after the current player's move.
// reveal is true when the verdict depends on the previous player naming a
// word; the returned verdict is then meaningless and JudgeChallenge decides.
func JudgeMove(dict Dictionary, buf *WordBuffer, current int) (v Verdict, reveal bool) {
	switch buf.LastChar() {
	case Challenge:
		if buf.Len()-1 <= 1 {
			return Verdict{Outcome: OutcomeNoWord, Charged: current}, false
		}
		return Verdict{}, true

	case Forfeit:
		return Verdict{Outcome: OutcomeForfeit, Charged: current}, false
	}

	if buf.HasAtMostTwoLetters() {
		return Verdict{Outcome: OutcomeContinue, Charged: current}, false
	}
	word := buf.String()
	if dict.Contains(word) {
		return Verdict{Outcome: OutcomeWordCompleted, Charged: current, Word: word}, false
	}
	return Verdict{Outcome: OutcomeContinue, Charged: current}, false
}

// JudgeChallenge settles a '?' once the challenged player has revealed word.
// prefix is the buffer without its trailing '?'.
//
//   - word does not start with prefix: the challenged player is charged.
//   - word is in the dictionary and long enough to count: the challenger is charged.
//   - otherwise (unknown or too short): the challenged player is charged.
func JudgeChallenge(dict Dictionary, prefix, word string, challenger, challenged int) Verdict {
	if !strings.HasPrefix(word, prefix) {
		return Verdict{Outcome: OutcomeLettersDiffer, Charged: challenged, Word: word}
	}
	if dict.Contains(word) && len(word) >= MinWordLen {
		return Verdict{Outcome: OutcomeWordExists, Charged: challenger, Word: word}
	}
	return Verdict{Outcome: OutcomeWordMissing, Charged: challenged, Word: word}
}
