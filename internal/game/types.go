// internal/game/types.go
//
// Core type definitions for the Quart du Singe engine.
// Defines:
//   - Kind / Player: who sits at the table and how many quarters they carry.
//   - Outcome / Verdict: the result of verifying one move.
//   - State: the single game context owned by the Engine.
//   - The collaborator interfaces the Engine is wired with.

package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinPlayers is the smallest table accepted by ParsePlayers.
	MinPlayers = 2
	// MaxQuarters ends the game: four quarters make a full "singe".
	MaxQuarters = 4
	// MinWordLen is the shortest word that counts against a player.
	MinWordLen = 3

	// Challenge is played when a player believes the buffer starts a word
	// the previous player cannot name.
	Challenge byte = '?'
	// Forfeit abandons the round.
	Forfeit byte = '!'
)

var (
	ErrTooFewPlayers = errors.New("game: at least two players are required")
	ErrUnknownKind   = errors.New("game: players must be H (human) or R (robot)")
)

// Kind tells a human seat from a robot seat.
type Kind byte

const (
	Human Kind = 'H'
	Robot Kind = 'R'
)

func (k Kind) String() string { return string(rune(k)) }

// Player is one seat at the table.
type Player struct {
	Kind     Kind
	Quarters int // 0..MaxQuarters
}

// ParsePlayers turns a start token such as "HRr" into players, one per character.
func ParsePlayers(token string) ([]Player, error) {
	if len(token) < MinPlayers {
		return nil, ErrTooFewPlayers
	}
	players := make([]Player, 0, len(token))
	for _, r := range strings.ToUpper(token) {
		switch r {
		case rune(Human), rune(Robot):
			players = append(players, Player{Kind: Kind(r)})
		default:
			return nil, fmt.Errorf("%w: got %q", ErrUnknownKind, r)
		}
	}
	return players, nil
}

// Outcome names how a move was judged.
type Outcome string

const (
	OutcomeContinue      Outcome = "continue"       // no penalty, round goes on
	OutcomeWordCompleted Outcome = "word_completed" // buffer of 3+ letters is a word
	OutcomeNoWord        Outcome = "no_word"        // '?' with nothing to challenge
	OutcomeLettersDiffer Outcome = "letters_differ" // revealed word does not start with the buffer
	OutcomeWordExists    Outcome = "word_exists"    // revealed word is real: challenger loses
	OutcomeWordMissing   Outcome = "word_missing"   // revealed word is unknown or too short
	OutcomeForfeit       Outcome = "forfeit"        // '!'
)

// Verdict is the result of verifying one move.
// Charged is meaningful only when Penalty() is true.
type Verdict struct {
	Outcome Outcome
	Charged int    // index of the player who takes the quarter
	Word    string // word named in the transcript message, if any
}

// Penalty reports whether the verdict ends the round.
func (v Verdict) Penalty() bool { return v.Outcome != OutcomeContinue }

// State is the game context, exclusively owned and mutated by the Engine.
type State struct {
	Board     ScoreBoard
	Current   int        // index of the player to move
	Round     int        // 1-based round counter
	Buffer    WordBuffer // letters played in the current round
	Challenge WordBuffer // word revealed after a '?'
}

// NewState seats players and opens the first round with player 0.
func NewState(players []Player) *State {
	return &State{
		Board:     NewScoreBoard(players),
		Round:     1,
		Buffer:    NewWordBuffer(),
		Challenge: NewWordBuffer(),
	}
}

// Previous returns the index of the player who moved before the current one.
func (s *State) Previous() int {
	n := s.Board.Len()
	return (s.Current - 1 + n) % n
}

// Next returns the index of the player after the current one.
func (s *State) Next() int {
	return (s.Current + 1) % s.Board.Len()
}

// Label renders a seat the way the transcript names it: "2R".
func (s *State) Label(i int) string {
	return labelOf(i, s.Board.Player(i))
}

func labelOf(i int, p Player) string {
	return strconv.Itoa(i+1) + p.Kind.String()
}

// Dictionary is the membership query the verification needs.
type Dictionary interface {
	Contains(word string) bool
}

// Strategy picks robot moves.
type Strategy interface {
	// NextMove returns a letter A-Z, Challenge or Forfeit to append to buffer.
	NextMove(buffer string) byte
	// Reveal names the word a challenged robot had in mind; buffer ends with '?'.
	Reveal(buffer string) string
}

// Input is the blocking human collaborator.
type Input interface {
	ReadLetter() (byte, error)
	ReadWord() (string, error)
}
