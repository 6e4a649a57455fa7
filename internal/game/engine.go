// internal/game/engine.go
//
// Turn engine for one game of Quart du Singe.
// Responsibilities:
//   - Prompt the player to move ("1H, (CHA) > ") and collect one move,
//     from the console for humans or from the Strategy for robots.
//   - Verify the move (JudgeMove / JudgeChallenge) and apply the verdict.
//   - Charge quarters, print the scoreboard, reset the round.
//   - Stop once a player carries four quarters.
//
// Notes:
//   - Seats are addressed with one zero-based index; the previous player is
//     always (current-1+n) mod n.
//   - The player charged with a quarter opens the next round.
//   - Every penalty is recorded in the Journal, if one is wired.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/singe/internal/store"
)

// Journal receives the penalties of the running game.
type Journal interface {
	Record(ctx context.Context, p store.Penalty) error
	Penalties(ctx context.Context, gameID string) ([]store.Penalty, error)
}

// Deps wires an Engine to its collaborators.
// Input may be nil for robot-only tables, Journal may be nil.
type Deps struct {
	Dict    Dictionary
	Robot   Strategy
	Input   Input
	Out     io.Writer
	Journal Journal
}

// Engine runs the turn loop over a State it exclusively owns.
type Engine struct {
	id    string
	state *State
	deps  Deps
}

// New seats players and returns an engine ready to Run.
func New(players []Player, deps Deps) *Engine {
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	return &Engine{
		id:    uuid.NewString(),
		state: NewState(players),
		deps:  deps,
	}
}

// ID identifies the game in the journal.
func (e *Engine) ID() string { return e.id }

// State exposes the game context.
func (e *Engine) State() *State { return e.state }

// Run plays turns until a player reaches MaxQuarters or ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	log.Info().Str("game", e.id).Int("players", e.state.Board.Len()).Msg("game started")
	for !e.state.Board.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Step(ctx); err != nil {
			return err
		}
	}
	fmt.Fprintln(e.deps.Out, "La partie est finie")
	e.summarize(ctx)
	return nil
}

// Step plays exactly one turn: prompt, move, verification, and either the
// advance to the next player or the end of the round.
func (e *Engine) Step(ctx context.Context) error {
	s := e.state
	fmt.Fprintf(e.deps.Out, "%s, (%s) > ", s.Label(s.Current), s.Buffer.String())

	c, err := e.move(s.Current)
	if err != nil {
		return fmt.Errorf("turn of %s: %w", s.Label(s.Current), err)
	}
	s.Buffer.Append(c)

	v, err := e.verify()
	if err != nil {
		return err
	}
	log.Debug().Str("buffer", s.Buffer.String()).Str("outcome", string(v.Outcome)).
		Int("charged", v.Charged).Msg("move verified")

	if !v.Penalty() {
		s.Current = s.Next()
		return nil
	}
	e.penalize(ctx, v)
	return nil
}

// move collects the letter, '?' or '!' of player i.
func (e *Engine) move(i int) (byte, error) {
	s := e.state
	if s.Board.Player(i).Kind == Human {
		if e.deps.Input == nil {
			return 0, errors.New("no input for human player")
		}
		return e.deps.Input.ReadLetter()
	}
	c := e.deps.Robot.NextMove(s.Buffer.String())
	fmt.Fprintf(e.deps.Out, "%c\n", c)
	return c, nil
}

// verify judges the last move, running the challenge exchange when needed.
func (e *Engine) verify() (Verdict, error) {
	s := e.state
	v, reveal := JudgeMove(e.deps.Dict, &s.Buffer, s.Current)
	if !reveal {
		return v, nil
	}

	prev := s.Previous()
	fmt.Fprintf(e.deps.Out, "%s, saisir le mot > ", s.Label(prev))
	word, err := e.reveal(prev)
	if err != nil {
		return Verdict{}, fmt.Errorf("challenge of %s: %w", s.Label(prev), err)
	}
	s.Challenge.Reset()
	s.Challenge.AppendString(word)

	buf := s.Buffer.String()
	prefix := buf[:len(buf)-1]
	return JudgeChallenge(e.deps.Dict, prefix, s.Challenge.String(), s.Current, prev), nil
}

// reveal asks player i for the word they were building.
func (e *Engine) reveal(i int) (string, error) {
	s := e.state
	if s.Board.Player(i).Kind == Human {
		if e.deps.Input == nil {
			return "", errors.New("no input for human player")
		}
		return e.deps.Input.ReadWord()
	}
	word := e.deps.Robot.Reveal(s.Buffer.String())
	fmt.Fprintln(e.deps.Out, word)
	return word, nil
}

// penalize charges the quarter, prints the outcome and the board, and
// resets the round with the charged player to move.
func (e *Engine) penalize(ctx context.Context, v Verdict) {
	s := e.state
	fmt.Fprintln(e.deps.Out, e.message(v))
	quarters := s.Board.Award(v.Charged)
	fmt.Fprintln(e.deps.Out, s.Board.Render())

	if e.deps.Journal != nil {
		p := store.Penalty{
			GameID:   e.id,
			Round:    s.Round,
			Player:   v.Charged,
			Kind:     s.Board.Player(v.Charged).Kind.String(),
			Outcome:  string(v.Outcome),
			Buffer:   s.Buffer.String(),
			Word:     v.Word,
			Quarters: quarters,
			At:       time.Now().UTC(),
		}
		if err := e.deps.Journal.Record(ctx, p); err != nil {
			log.Warn().Err(err).Str("game", e.id).Int("round", s.Round).Msg("record penalty")
		}
	}

	s.Buffer.Reset()
	s.Challenge.Reset()
	s.Round++
	s.Current = v.Charged
}

// message renders the transcript line announcing a verdict.
func (e *Engine) message(v Verdict) string {
	who := e.state.Label(v.Charged)
	switch v.Outcome {
	case OutcomeNoWord:
		return fmt.Sprintf("Aucun mot n'a été saisi, %s prend un quart de singe", who)
	case OutcomeLettersDiffer:
		return fmt.Sprintf("le mot %s ne commence pas par les lettres attendues, le joueur %s prend un quart de singe", v.Word, who)
	case OutcomeWordCompleted, OutcomeWordExists:
		return fmt.Sprintf("le mot %s existe, le joueur %s prend un quart de singe", v.Word, who)
	case OutcomeWordMissing:
		return fmt.Sprintf("le mot %s n'existe pas, %s prend un quart de singe", v.Word, who)
	case OutcomeForfeit:
		return fmt.Sprintf("le joueur %s abandonne la manche et prend un quart de singe", who)
	}
	return ""
}

// summarize logs the end-of-game recap built from the journal.
func (e *Engine) summarize(ctx context.Context) {
	ev := log.Info().Str("game", e.id).Str("scores", e.state.Board.Render())
	if e.deps.Journal == nil {
		ev.Int("rounds", e.state.Round-1).Msg("game over")
		return
	}
	penalties, err := e.deps.Journal.Penalties(ctx, e.id)
	if err != nil {
		log.Warn().Err(err).Str("game", e.id).Msg("read journal")
		ev.Int("rounds", e.state.Round-1).Msg("game over")
		return
	}
	byOutcome := zerolog.Dict()
	counts := map[string]int{}
	for _, p := range penalties {
		counts[p.Outcome]++
	}
	for outcome, n := range counts {
		byOutcome.Int(outcome, n)
	}
	ev.Int("rounds", len(penalties)).Dict("outcomes", byOutcome).Msg("game over")
}
