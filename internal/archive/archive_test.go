package archive

import (
	"context"
	"testing"

	"github.com/talgya/crisis-sim/internal/game"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testRecord(sessionID string) game.Record {
	return game.Record{
		SessionID:  sessionID,
		PlayerName: "Dana",
		Difficulty: 3,
		Choices:    []string{"A", "B", "C", "D", "E", "A", "B", "C", "D", "E"},
		Tier:       "Good",
		Percentage: 72,
		Outcome:    "Reputation stabilized after a rocky start.",
	}
}

func TestSaveAndRecent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := db.SaveRecord(ctx, testRecord("sess-1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := db.SaveRecord(ctx, testRecord("sess-2")); err != nil {
		t.Fatalf("save: %v", err)
	}

	records, err := db.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].SessionID != "sess-2" {
		t.Errorf("newest first: got %q", records[0].SessionID)
	}

	rec := records[1]
	if rec.PlayerName != "Dana" || rec.Difficulty != 3 || rec.Percentage != 72 {
		t.Errorf("round-trip mismatch: %+v", rec)
	}
	if len(rec.Choices) != 10 || rec.Choices[0] != "A" || rec.Choices[9] != "E" {
		t.Errorf("choices round-trip mismatch: %v", rec.Choices)
	}
}

func TestSaveSameSessionTwiceKeepsFirst(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	first := testRecord("sess-1")
	if err := db.SaveRecord(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := first
	second.Percentage = 95
	if err := db.SaveRecord(ctx, second); err != nil {
		t.Fatalf("duplicate save should be a no-op, got: %v", err)
	}

	records, err := db.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Percentage != 72 {
		t.Errorf("duplicate overwrote the original: %+v", records[0])
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := db.SaveRecord(ctx, testRecord(id)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	records, err := db.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}
