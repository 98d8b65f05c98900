package game

import (
	"context"
	"log/slog"

	"github.com/talgya/crisis-sim/internal/content"
	"github.com/talgya/crisis-sim/internal/scoring"
)

// Archiver records finished play-throughs. Implementations must be safe for
// concurrent use; the engine treats archiving as best-effort and never fails
// a turn over it.
type Archiver interface {
	SaveRecord(ctx context.Context, rec Record) error
}

// Record is the summary of a completed session handed to the archiver.
type Record struct {
	SessionID  string
	PlayerName string
	Difficulty int
	Choices    []string
	Tier       string
	Percentage int
	Outcome    string
}

// StartResult is the outcome of opening a new session.
type StartResult struct {
	SessionID string
	Turn      int
	Narrative string
	Options   []string
}

// TurnResult is the outcome of processing one submitted choice. Final is
// nil for ongoing turns and set exactly once, on the turn that finishes
// the session.
type TurnResult struct {
	SessionID string
	Turn      int
	Narrative string
	Options   []string
	Finished  bool
	Final     *FinalReport
}

// FinalReport carries the scoring outcome and the six-field assessment for
// a finished session.
type FinalReport struct {
	Tier         int
	TierName     string
	Percentage   int
	Outcome      string
	Career       string
	Strengths    string
	Improvements string
	Leadership   string
	Theory       string
	ImageURL     string
}

// GameEngine advances sessions turn by turn. It owns the fallback policy:
// when the primary provider fails mid-game the turn is served from canned
// content instead of surfacing the error, so a session never wedges on a
// flaky collaborator.
type GameEngine struct {
	store    *SessionStore
	provider content.Provider
	fallback content.Provider
	archive  Archiver
	logger   *slog.Logger
}

// NewGameEngine wires the engine. fallback may equal provider when the
// deterministic provider is primary; archive and logger may be nil.
func NewGameEngine(store *SessionStore, provider, fallback content.Provider, archive Archiver, logger *slog.Logger) *GameEngine {
	if logger == nil {
		logger = slog.Default()
	}
	if fallback == nil {
		fallback = provider
	}
	return &GameEngine{
		store:    store,
		provider: provider,
		fallback: fallback,
		archive:  archive,
		logger:   logger,
	}
}

// Start validates the profile, creates a session, and produces the opening
// scenario. The provider runs before the session is registered, so a failed
// start leaves no orphan behind.
func (e *GameEngine) Start(ctx context.Context, player PlayerProfile) (StartResult, error) {
	if err := player.Validate(); err != nil {
		return StartResult{}, err
	}

	c, err := e.provider.Opening(ctx, contentPlayer(player))
	if err != nil {
		e.logger.Warn("opening generation failed, serving canned scenario",
			"player", player.Name, "error", err)
		if c, err = e.fallback.Opening(ctx, contentPlayer(player)); err != nil {
			return StartResult{}, err
		}
	}

	id := e.store.Create(player)
	if err := e.store.With(id, func(s *Session) error {
		s.Options = c.Options
		s.Log = append(s.Log, LogEntry{Role: "assistant", Text: c.Narrative})
		return nil
	}); err != nil {
		return StartResult{}, err
	}

	return StartResult{
		SessionID: id,
		Turn:      1,
		Narrative: c.Narrative,
		Options:   c.Options,
	}, nil
}

// Turn records a choice against a session and produces the next turn, or
// the final assessment when the choice closes out turn ten. The session
// lock is held for the whole call, so at most one turn per session is ever
// in flight.
func (e *GameEngine) Turn(ctx context.Context, sessionID, choice string) (TurnResult, error) {
	letter, err := NormalizeChoice(choice)
	if err != nil {
		return TurnResult{}, err
	}

	var result TurnResult
	err = e.store.With(sessionID, func(s *Session) error {
		if s.Finished {
			return ErrSessionFinished
		}

		optionText := s.OptionFor(letter)
		prevChoices, prevLog := len(s.Choices), len(s.Log)
		s.Choices = append(s.Choices, Choice{Letter: letter, Option: optionText})
		s.Log = append(s.Log, LogEntry{Role: "user", Text: "Player chooses: " + letter})

		var turnErr error
		if s.Turn >= MaxTurns {
			result, turnErr = e.finishSession(ctx, s)
		} else {
			var c content.Content
			if c, turnErr = e.nextTurn(ctx, s, letter, optionText); turnErr == nil {
				s.Turn++
				s.Options = c.Options
				s.Log = append(s.Log, LogEntry{Role: "assistant", Text: c.Narrative})
				result = TurnResult{
					SessionID: s.ID,
					Turn:      s.Turn,
					Narrative: c.Narrative,
					Options:   c.Options,
				}
			}
		}
		if turnErr != nil {
			// A failed turn leaves the session exactly as it was, so a
			// retry starts clean.
			s.Choices = s.Choices[:prevChoices]
			s.Log = s.Log[:prevLog]
			return turnErr
		}
		return nil
	})
	if err != nil {
		return TurnResult{}, err
	}

	if result.Finished && e.archive != nil {
		e.saveRecord(ctx, result)
	}
	return result, nil
}

func (e *GameEngine) nextTurn(ctx context.Context, s *Session, letter, optionText string) (content.Content, error) {
	req := content.TurnRequest{
		Player:     contentPlayer(s.Player),
		Turn:       s.Turn + 1,
		Choice:     letter,
		ChoiceText: optionText,
		Log:        contentLog(s.Log),
	}

	c, err := e.provider.NextTurn(ctx, req)
	if err == nil {
		return c, nil
	}
	e.logger.Warn("turn generation failed, serving canned narrative",
		"session", s.ID, "turn", req.Turn, "error", err)
	return e.fallback.NextTurn(ctx, req)
}

// finishSession scores the full choice history and produces the terminal
// assessment. The turn counter stays at MaxTurns in the result.
func (e *GameEngine) finishSession(ctx context.Context, s *Session) (TurnResult, error) {
	score := scoring.Evaluate(scoringChoices(s.Choices), s.Player.Difficulty)

	req := content.FinalRequest{
		Player:     contentPlayer(s.Player),
		Choices:    s.Letters(),
		Tier:       int(score.Tier),
		TierName:   score.Tier.String(),
		Percentage: score.Percentage,
		Log:        contentLog(s.Log),
	}

	a, err := e.provider.FinalAssessment(ctx, req)
	if err != nil {
		e.logger.Warn("final assessment generation failed, serving canned assessment",
			"session", s.ID, "error", err)
		if a, err = e.fallback.FinalAssessment(ctx, req); err != nil {
			return TurnResult{}, err
		}
	}

	s.Finished = true
	s.Options = nil
	s.Log = append(s.Log, LogEntry{Role: "assistant", Text: a.Narrative})

	return TurnResult{
		SessionID: s.ID,
		Turn:      MaxTurns,
		Narrative: a.Narrative,
		Finished:  true,
		Final: &FinalReport{
			Tier:         int(score.Tier),
			TierName:     score.Tier.String(),
			Percentage:   score.Percentage,
			Outcome:      a.Outcome,
			Career:       a.Career,
			Strengths:    a.Strengths,
			Improvements: a.Improvements,
			Leadership:   a.Leadership,
			Theory:       a.Theory,
			ImageURL:     a.ImageURL,
		},
	}, nil
}

func (e *GameEngine) saveRecord(ctx context.Context, result TurnResult) {
	var rec Record
	rec.SessionID = result.SessionID
	rec.Tier = result.Final.TierName
	rec.Percentage = result.Final.Percentage
	rec.Outcome = result.Final.Outcome

	if err := e.store.With(result.SessionID, func(s *Session) error {
		rec.PlayerName = s.Player.Name
		rec.Difficulty = s.Player.Difficulty
		rec.Choices = s.Letters()
		return nil
	}); err != nil {
		e.logger.Warn("archive snapshot failed", "session", result.SessionID, "error", err)
		return
	}

	if err := e.archive.SaveRecord(ctx, rec); err != nil {
		e.logger.Warn("archive write failed", "session", result.SessionID, "error", err)
	}
}

func contentPlayer(p PlayerProfile) content.Player {
	return content.Player{
		Name:       p.Name,
		Gender:     p.Gender,
		Age:        p.Age,
		Difficulty: p.Difficulty,
	}
}

func contentLog(log []LogEntry) []content.LogEntry {
	out := make([]content.LogEntry, len(log))
	for i, entry := range log {
		out[i] = content.LogEntry{Role: entry.Role, Text: entry.Text}
	}
	return out
}

func scoringChoices(choices []Choice) []scoring.Choice {
	out := make([]scoring.Choice, len(choices))
	for i, c := range choices {
		out[i] = scoring.Choice{Letter: c.Letter, Text: c.Option}
	}
	return out
}
