package game

import "strings"

// quarterLabels renders 0..4 quarters the way the table announces them.
var quarterLabels = [MaxQuarters + 1]string{"0", "0.25", "0.5", "0.75", "1"}

// FormatQuarters renders q quarters as a fraction of a point.
// Values outside 0..MaxQuarters are clamped.
func FormatQuarters(q int) string {
	q = min(max(q, 0), MaxQuarters)
	return quarterLabels[q]
}

// ScoreBoard tracks every player's quarters.
type ScoreBoard struct {
	players []Player
}

// NewScoreBoard copies players onto a fresh board.
func NewScoreBoard(players []Player) ScoreBoard {
	return ScoreBoard{players: append([]Player(nil), players...)}
}

func (b *ScoreBoard) Len() int { return len(b.players) }

func (b *ScoreBoard) Player(i int) Player { return b.players[i] }

// Players returns a copy of the seats.
func (b *ScoreBoard) Players() []Player { return append([]Player(nil), b.players...) }

// Award charges player i one quarter and returns their new total.
// The total never exceeds MaxQuarters.
func (b *ScoreBoard) Award(i int) int {
	p := &b.players[i]
	if p.Quarters < MaxQuarters {
		p.Quarters++
	}
	return p.Quarters
}

// Over reports whether some player carries a full point.
func (b *ScoreBoard) Over() bool {
	for _, p := range b.players {
		if p.Quarters >= MaxQuarters {
			return true
		}
	}
	return false
}

// Render formats the board as "1H : 0.25; 2R : 0".
func (b *ScoreBoard) Render() string {
	var sb strings.Builder
	for i, p := range b.players {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(labelOf(i, p))
		sb.WriteString(" : ")
		sb.WriteString(FormatQuarters(p.Quarters))
	}
	return sb.String()
}
