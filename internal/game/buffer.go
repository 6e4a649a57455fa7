package game

// initialCapacity matches the two-letter slot a round starts with.
const initialCapacity = 2

// WordBuffer is the growable sequence of uppercase letters built during a round.
// len(letters) is the capacity; only letters[:n] is meaningful.
type WordBuffer struct {
	letters []byte
	n       int
}

// NewWordBuffer returns an empty buffer with the initial capacity.
func NewWordBuffer() WordBuffer {
	return WordBuffer{letters: make([]byte, initialCapacity)}
}

// Append upper-cases c and stores it, growing the capacity by one slot when full.
// It never fails.
func (b *WordBuffer) Append(c byte) {
	if b.n == len(b.letters) {
		b.letters = append(b.letters, 0)
	}
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	b.letters[b.n] = c
	b.n++
}

// AppendString appends every byte of s.
func (b *WordBuffer) AppendString(s string) {
	for i := 0; i < len(s); i++ {
		b.Append(s[i])
	}
}

// Reset empties the buffer and keeps its storage for the next round.
func (b *WordBuffer) Reset() { b.n = 0 }

func (b *WordBuffer) Len() int { return b.n }
func (b *WordBuffer) Cap() int { return len(b.letters) }
func (b *WordBuffer) String() string { return string(b.letters[:b.n]) }

func (b *WordBuffer) IsEmpty() bool { return b.n == 0 }

func (b *WordBuffer) HasExactlyOneLetter() bool { return b.n == 1 }

// HasAtMostTwoLetters is true while the round is too young to judge: up to two
// letters, or two letters followed by a '?'.
func (b *WordBuffer) HasAtMostTwoLetters() bool {
	return b.n <= 2 || b.letters[2] == Challenge
}

// LastChar returns the last stored byte, or 0 when empty.
func (b *WordBuffer) LastChar() byte {
	if b.n == 0 {
		return 0
	}
	return b.letters[b.n-1]
}
