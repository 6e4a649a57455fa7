package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var sample = []string{"ABRI", "CHAT", "CHATON", "CHIEN", "CHOU", "ZOO"}

func TestDictionary_Contains(t *testing.T) {
	d := New(sample)
	for _, w := range sample {
		if !d.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"", "CHA", "CHATS", "AAA", "ZZZ", "CHATONS"} {
		if d.Contains(w) {
			t.Errorf("Contains(%q) = true, want false", w)
		}
	}
	if !d.Contains("chat") {
		t.Error("lowercase query should be canonicalized")
	}
}

func TestDictionary_Prefix(t *testing.T) {
	d := New(sample)

	if n := d.CountWithPrefix("CH"); n != 4 {
		t.Errorf("CountWithPrefix(CH) %d, want 4", n)
	}
	if n := d.CountWithPrefix("CHAT"); n != 2 {
		t.Errorf("CountWithPrefix(CHAT) %d, want 2", n)
	}
	if n := d.CountWithPrefix("X"); n != 0 {
		t.Errorf("CountWithPrefix(X) %d, want 0", n)
	}
	if n := d.CountWithPrefix(""); n != len(sample) {
		t.Errorf("CountWithPrefix(\"\") %d, want %d", n, len(sample))
	}

	want := []string{"CHAT", "CHATON", "CHIEN", "CHOU"}
	for i, w := range want {
		got, ok := d.NthWithPrefix("ch", i)
		if !ok || got != w {
			t.Errorf("NthWithPrefix(ch, %d) = %q, %v; want %q", i, got, ok, w)
		}
	}
	if _, ok := d.NthWithPrefix("CH", 4); ok {
		t.Error("NthWithPrefix past the last match should fail")
	}
	if _, ok := d.NthWithPrefix("CH", -1); ok {
		t.Error("negative index should fail")
	}
}

func TestDictionary_Empty(t *testing.T) {
	d := New(nil)
	if d.Len() != 0 {
		t.Fatalf("Len %d, want 0", d.Len())
	}
	if d.Contains("CHAT") {
		t.Error("empty dictionary contains nothing")
	}
	if d.CountWithPrefix("C") != 0 {
		t.Error("empty dictionary has no prefix match")
	}
}

func TestNew_SkipsOversize(t *testing.T) {
	long := strings.Repeat("A", MaxWordLen+1)
	fits := strings.Repeat("A", MaxWordLen)
	d := New([]string{fits, long, "CHAT"})
	if d.Len() != 2 {
		t.Fatalf("Len %d, want 2", d.Len())
	}
	if !d.Contains(fits) || !d.Contains("CHAT") {
		t.Error("words within MaxWordLen should be kept")
	}
	if d.CountWithPrefix(long) != 0 {
		t.Error("oversize word should be dropped")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ods.txt")
	long := strings.Repeat("A", MaxWordLen+1)
	content := "abri chat\n  chaton\tchien\n" + long + "\nchou zoo\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() != len(sample) {
		t.Fatalf("Len %d, want %d", d.Len(), len(sample))
	}
	for _, w := range sample {
		if !d.Contains(w) {
			t.Errorf("loaded dictionary misses %q", w)
		}
	}
	if d.Contains(long) {
		t.Error("oversize token should be skipped")
	}
}

func TestLoad_Missing(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if d == nil || d.Len() != 0 {
		t.Fatal("missing file should still return an empty dictionary")
	}

	d = LoadOrEmpty(filepath.Join(t.TempDir(), "absent.txt"))
	if d.Len() != 0 {
		t.Errorf("LoadOrEmpty Len %d, want 0", d.Len())
	}
}

func TestCanonical(t *testing.T) {
	cases := map[string]string{
		"chat":    "CHAT",
		" Élève ": "ELEVE",
		"garçon":  "GARCON",
		"où?":     "OU?",
		"!":       "!",
		"":        "",
	}
	for in, want := range cases {
		if got := Canonical(in); got != want {
			t.Errorf("Canonical(%q) %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalLetter(t *testing.T) {
	if c, ok := CanonicalLetter("é suite ignorée"); !ok || c != 'E' {
		t.Errorf("CanonicalLetter(é...) = %q, %v; want 'E', true", c, ok)
	}
	if c, ok := CanonicalLetter("?"); !ok || c != '?' {
		t.Errorf("CanonicalLetter(?) = %q, %v", c, ok)
	}
	if _, ok := CanonicalLetter("   "); ok {
		t.Error("blank input has no letter")
	}
}
