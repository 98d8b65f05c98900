package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/talgya/crisis-sim/internal/content"
)

var fiveOptions = []string{
	"A) Hold a press briefing",
	"B) Brief the executive team privately",
	"C) Open a customer hotline",
	"D) Commission an external audit",
	"E) Wait for more information",
}

// fakeProvider serves predictable content and records the last turn request.
type fakeProvider struct {
	label    string
	openErr  error
	turnErr  error
	finalErr error
	lastTurn content.TurnRequest
}

func (f *fakeProvider) Opening(_ context.Context, player content.Player) (content.Content, error) {
	if f.openErr != nil {
		return content.Content{}, f.openErr
	}
	return content.Content{
		Narrative: fmt.Sprintf("%s opening for %s", f.label, player.Name),
		Options:   fiveOptions,
	}, nil
}

func (f *fakeProvider) NextTurn(_ context.Context, req content.TurnRequest) (content.Content, error) {
	f.lastTurn = req
	if f.turnErr != nil {
		return content.Content{}, f.turnErr
	}
	return content.Content{
		Narrative: fmt.Sprintf("%s turn %d after %s", f.label, req.Turn, req.Choice),
		Options:   fiveOptions,
	}, nil
}

func (f *fakeProvider) FinalAssessment(_ context.Context, req content.FinalRequest) (content.Assessment, error) {
	if f.finalErr != nil {
		return content.Assessment{}, f.finalErr
	}
	return content.Assessment{
		Narrative: fmt.Sprintf("%s final for %s, %s", f.label, req.Player.Name, req.TierName),
		Outcome:   "Crisis contained.",
		Career:    "Promoted.",
		Theory:    "Image Restoration Theory applied.",
	}, nil
}

// fakeArchiver captures saved records.
type fakeArchiver struct {
	records []Record
	err     error
}

func (f *fakeArchiver) SaveRecord(_ context.Context, rec Record) error {
	f.records = append(f.records, rec)
	return f.err
}

var testProfile = PlayerProfile{Name: "Dana", Gender: "female", Age: 34, Difficulty: 3}

func newTestEngine(provider, fallback content.Provider, archive Archiver) *GameEngine {
	return NewGameEngine(NewSessionStore(), provider, fallback, archive, nil)
}

func TestFullPlaythrough(t *testing.T) {
	archive := &fakeArchiver{}
	e := newTestEngine(&fakeProvider{label: "main"}, nil, archive)
	ctx := context.Background()

	start, err := e.Start(ctx, testProfile)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if start.Turn != 1 || len(start.Options) != 5 {
		t.Fatalf("start = %+v, want turn 1 with 5 options", start)
	}

	for i := 0; i < MaxTurns-1; i++ {
		res, err := e.Turn(ctx, start.SessionID, "B")
		if err != nil {
			t.Fatalf("turn %d: %v", i+2, err)
		}
		if res.Finished {
			t.Fatalf("session finished early on turn %d", res.Turn)
		}
		if res.Turn != i+2 {
			t.Errorf("turn counter = %d, want %d", res.Turn, i+2)
		}
		if len(res.Options) != 5 {
			t.Errorf("turn %d served %d options", res.Turn, len(res.Options))
		}
	}

	final, err := e.Turn(ctx, start.SessionID, "B")
	if err != nil {
		t.Fatalf("final turn: %v", err)
	}
	if !final.Finished || final.Final == nil {
		t.Fatalf("tenth choice should finish the session: %+v", final)
	}
	if final.Turn != MaxTurns {
		t.Errorf("final turn counter = %d, want %d", final.Turn, MaxTurns)
	}
	if final.Options != nil {
		t.Errorf("finished session should offer no options: %v", final.Options)
	}
	if final.Final.Tier < 1 || final.Final.Tier > 4 {
		t.Errorf("tier out of range: %d", final.Final.Tier)
	}
	if final.Final.Percentage < 30 || final.Final.Percentage > 95 {
		t.Errorf("percentage out of range: %d", final.Final.Percentage)
	}
	if !strings.Contains(final.Narrative, "Dana") {
		t.Errorf("final narrative not personalized: %q", final.Narrative)
	}

	if _, err := e.Turn(ctx, start.SessionID, "A"); !errors.Is(err, ErrSessionFinished) {
		t.Errorf("turn after finish = %v, want ErrSessionFinished", err)
	}

	if len(archive.records) != 1 {
		t.Fatalf("expected one archived record, got %d", len(archive.records))
	}
	rec := archive.records[0]
	if rec.SessionID != start.SessionID || len(rec.Choices) != MaxTurns {
		t.Errorf("archived record = %+v", rec)
	}
	if rec.Difficulty != 3 || rec.PlayerName != "Dana" {
		t.Errorf("archived profile = %+v", rec)
	}
}

func TestStartRejectsBadProfile(t *testing.T) {
	e := newTestEngine(&fakeProvider{label: "main"}, nil, nil)

	bad := []PlayerProfile{
		{Name: "", Age: 30, Difficulty: 2},
		{Name: "   ", Age: 30, Difficulty: 2},
		{Name: "Kim", Age: 0, Difficulty: 2},
	}
	for _, p := range bad {
		if _, err := e.Start(context.Background(), p); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("Start(%+v) = %v, want ErrInvalidProfile", p, err)
		}
	}
}

func TestStartClampsDifficulty(t *testing.T) {
	e := newTestEngine(&fakeProvider{label: "main"}, nil, nil)

	p := testProfile
	p.Difficulty = 99
	start, err := e.Start(context.Background(), p)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := e.store.With(start.SessionID, func(s *Session) error {
		if s.Player.Difficulty != 5 {
			t.Errorf("stored difficulty = %d, want clamped to 5", s.Player.Difficulty)
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}
}

func TestTwoStartsAreIndependent(t *testing.T) {
	e := newTestEngine(&fakeProvider{label: "main"}, nil, nil)
	ctx := context.Background()

	a, err := e.Start(ctx, testProfile)
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Start(ctx, PlayerProfile{Name: "Ravi", Gender: "male", Age: 51, Difficulty: 5})
	if err != nil {
		t.Fatal(err)
	}
	if a.SessionID == b.SessionID {
		t.Fatal("two starts shared a session id")
	}
	if e.store.Len() != 2 {
		t.Errorf("store holds %d sessions, want 2", e.store.Len())
	}

	// Advancing one session leaves the other at turn 1.
	if _, err := e.Turn(ctx, a.SessionID, "C"); err != nil {
		t.Fatal(err)
	}
	if err := e.store.With(b.SessionID, func(s *Session) error {
		if s.Turn != 1 || len(s.Choices) != 0 {
			t.Errorf("untouched session mutated: turn=%d choices=%d", s.Turn, len(s.Choices))
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}
}

func TestTurnErrors(t *testing.T) {
	e := newTestEngine(&fakeProvider{label: "main"}, nil, nil)
	ctx := context.Background()

	if _, err := e.Turn(ctx, "no-such-session", "A"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("unknown session = %v, want ErrSessionNotFound", err)
	}

	start, err := e.Start(ctx, testProfile)
	if err != nil {
		t.Fatal(err)
	}
	for _, choice := range []string{"", "F", "AB", "1"} {
		if _, err := e.Turn(ctx, start.SessionID, choice); !errors.Is(err, ErrInvalidChoice) {
			t.Errorf("Turn(%q) = %v, want ErrInvalidChoice", choice, err)
		}
	}

	// Rejected choices must not advance the session.
	if err := e.store.With(start.SessionID, func(s *Session) error {
		if s.Turn != 1 || len(s.Choices) != 0 {
			t.Errorf("rejected choice mutated session: turn=%d choices=%d", s.Turn, len(s.Choices))
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}
}

func TestTurnAcceptsLowercaseChoice(t *testing.T) {
	main := &fakeProvider{label: "main"}
	e := newTestEngine(main, nil, nil)
	ctx := context.Background()

	start, err := e.Start(ctx, testProfile)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Turn(ctx, start.SessionID, "c"); err != nil {
		t.Fatalf("lowercase choice: %v", err)
	}
	if main.lastTurn.Choice != "C" {
		t.Errorf("provider saw choice %q, want uppercased C", main.lastTurn.Choice)
	}
	if main.lastTurn.ChoiceText != "C) Open a customer hotline" {
		t.Errorf("provider saw choice text %q", main.lastTurn.ChoiceText)
	}
}

func TestTurnFallsBackWhenGenerationFails(t *testing.T) {
	main := &fakeProvider{label: "main", turnErr: errors.New("upstream timeout")}
	canned := &fakeProvider{label: "canned"}
	e := newTestEngine(main, canned, nil)
	ctx := context.Background()

	start, err := e.Start(ctx, testProfile)
	if err != nil {
		t.Fatal(err)
	}
	res, err := e.Turn(ctx, start.SessionID, "A")
	if err != nil {
		t.Fatalf("fallback should absorb the failure: %v", err)
	}
	if !strings.HasPrefix(res.Narrative, "canned") {
		t.Errorf("narrative = %q, want canned fallback content", res.Narrative)
	}
	if res.Turn != 2 {
		t.Errorf("fallback turn still advances: got %d", res.Turn)
	}
}

func TestFinalAssessmentFallsBack(t *testing.T) {
	main := &fakeProvider{label: "main", finalErr: errors.New("upstream timeout")}
	canned := &fakeProvider{label: "canned"}
	e := newTestEngine(main, canned, nil)
	ctx := context.Background()

	start, err := e.Start(ctx, testProfile)
	if err != nil {
		t.Fatal(err)
	}
	var res TurnResult
	for i := 0; i < MaxTurns; i++ {
		if res, err = e.Turn(ctx, start.SessionID, "D"); err != nil {
			t.Fatalf("turn %d: %v", i+2, err)
		}
	}
	if !res.Finished || res.Final == nil {
		t.Fatal("session did not finish")
	}
	if !strings.HasPrefix(res.Narrative, "canned") {
		t.Errorf("final narrative = %q, want canned fallback", res.Narrative)
	}
}

// TestFailedTurnLeavesSessionUntouched drives an engine whose fallback is
// the primary provider itself, so a generation failure rejects the turn.
// Rejected turns must not accumulate choices or log entries.
func TestFailedTurnLeavesSessionUntouched(t *testing.T) {
	main := &fakeProvider{label: "main"}
	e := newTestEngine(main, nil, nil)
	ctx := context.Background()

	start, err := e.Start(ctx, testProfile)
	if err != nil {
		t.Fatal(err)
	}

	main.turnErr = errors.New("upstream timeout")
	for i := 0; i < 3; i++ {
		if _, err := e.Turn(ctx, start.SessionID, "B"); err == nil {
			t.Fatal("expected the turn to fail")
		}
	}
	if err := e.store.With(start.SessionID, func(s *Session) error {
		if s.Turn != 1 || len(s.Choices) != 0 {
			t.Errorf("failed turns mutated session: turn=%d choices=%d", s.Turn, len(s.Choices))
		}
		if len(s.Log) != 1 {
			t.Errorf("failed turns grew the log: %d entries", len(s.Log))
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	// Once the provider recovers, the retried choice counts exactly once.
	main.turnErr = nil
	res, err := e.Turn(ctx, start.SessionID, "B")
	if err != nil {
		t.Fatalf("retry after recovery: %v", err)
	}
	if res.Turn != 2 {
		t.Errorf("retried turn = %d, want 2", res.Turn)
	}
	if err := e.store.With(start.SessionID, func(s *Session) error {
		if len(s.Choices) != 1 {
			t.Errorf("choices = %d, want 1", len(s.Choices))
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}
}

// TestFailedFinalTurnIsRetryable covers the same rollback on the
// finalization path: a failed tenth turn keeps the session active with
// exactly nine recorded choices.
func TestFailedFinalTurnIsRetryable(t *testing.T) {
	main := &fakeProvider{label: "main"}
	e := newTestEngine(main, nil, nil)
	ctx := context.Background()

	start, err := e.Start(ctx, testProfile)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < MaxTurns-1; i++ {
		if _, err := e.Turn(ctx, start.SessionID, "C"); err != nil {
			t.Fatalf("turn %d: %v", i+2, err)
		}
	}

	main.finalErr = errors.New("upstream timeout")
	if _, err := e.Turn(ctx, start.SessionID, "C"); err == nil {
		t.Fatal("expected the final turn to fail")
	}
	if err := e.store.With(start.SessionID, func(s *Session) error {
		if s.Finished {
			t.Error("failed finalization marked the session finished")
		}
		if len(s.Choices) != MaxTurns-1 {
			t.Errorf("choices = %d, want %d", len(s.Choices), MaxTurns-1)
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	main.finalErr = nil
	res, err := e.Turn(ctx, start.SessionID, "C")
	if err != nil {
		t.Fatalf("retry after recovery: %v", err)
	}
	if !res.Finished || res.Final == nil {
		t.Fatalf("retried final turn did not finish: %+v", res)
	}
}

func TestStartFallsBackWhenOpeningFails(t *testing.T) {
	main := &fakeProvider{label: "main", openErr: errors.New("upstream timeout")}
	canned := &fakeProvider{label: "canned"}
	e := newTestEngine(main, canned, nil)

	start, err := e.Start(context.Background(), testProfile)
	if err != nil {
		t.Fatalf("fallback should absorb the failure: %v", err)
	}
	if !strings.HasPrefix(start.Narrative, "canned") {
		t.Errorf("narrative = %q, want canned fallback content", start.Narrative)
	}
}

func TestArchiveFailureDoesNotFailTurn(t *testing.T) {
	archive := &fakeArchiver{err: errors.New("disk full")}
	e := newTestEngine(&fakeProvider{label: "main"}, nil, archive)
	ctx := context.Background()

	start, err := e.Start(ctx, testProfile)
	if err != nil {
		t.Fatal(err)
	}
	var res TurnResult
	for i := 0; i < MaxTurns; i++ {
		if res, err = e.Turn(ctx, start.SessionID, "E"); err != nil {
			t.Fatalf("turn %d: %v", i+2, err)
		}
	}
	if !res.Finished {
		t.Fatal("session did not finish")
	}
}
