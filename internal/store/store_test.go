package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := NewSQLiteStore(context.Background())
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStore_RecordAndList(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2023, 1, 2, 10, 0, 0, 0, time.UTC)

	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			second := Penalty{GameID: "g1", Round: 2, Player: 1, Kind: "R", Outcome: "forfeit", Buffer: "CH!", Quarters: 1, At: at}
			first := Penalty{GameID: "g1", Round: 1, Player: 0, Kind: "H", Outcome: "word_completed", Buffer: "CHAT", Word: "CHAT", Quarters: 1, At: at}
			other := Penalty{GameID: "g2", Round: 1, Player: 0, Kind: "H", Outcome: "no_word", Buffer: "?", Quarters: 1, At: at}

			for _, p := range []Penalty{second, first, other} {
				if err := s.Record(ctx, p); err != nil {
					t.Fatalf("Record: %v", err)
				}
			}

			got, err := s.Penalties(ctx, "g1")
			if err != nil {
				t.Fatalf("Penalties: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("len %d, want 2", len(got))
			}
			if got[0].Round != 1 || got[1].Round != 2 {
				t.Errorf("rounds %d,%d; want 1,2", got[0].Round, got[1].Round)
			}
			if got[0].Word != "CHAT" || got[0].Kind != "H" || got[0].Buffer != "CHAT" {
				t.Errorf("first penalty %+v", got[0])
			}
			if !got[1].At.Equal(at) {
				t.Errorf("At %v, want %v", got[1].At, at)
			}
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Penalties(context.Background(), "missing")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("err %v, want ErrNotFound", err)
			}
		})
	}
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewMemoryStore().Record(ctx, Penalty{GameID: "g"}); err == nil {
		t.Error("Record with canceled context should fail")
	}
}

func TestSQLite_MigrateIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := openDB(memoryDSN)
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	defer db.Close()

	if err := migrate(ctx, db); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := migrate(ctx, db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("applied migrations %d, want 2", n)
	}
}
