// Package game holds the crisis-simulation session state machine: player
// profiles, per-session state, the in-memory session store, and the engine
// that advances a game turn by turn.
package game

import (
	"fmt"
	"strings"
)

// MaxTurns is the number of narrative rounds in one play-through. The turn
// that reaches this value triggers finalization.
const MaxTurns = 10

// PlayerProfile describes the player for one session. Immutable once supplied.
type PlayerProfile struct {
	Name       string
	Gender     string
	Age        int
	Difficulty int
}

// Validate checks the profile and clamps difficulty into the 1-5 range.
func (p *PlayerProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	}
	if p.Difficulty < 1 {
		p.Difficulty = 1
	}
	if p.Difficulty > 5 {
		p.Difficulty = 5
	}
	return nil
}

// Choice records one submitted turn decision: the letter the player picked
// and the full text of the option it labeled. The option text feeds the
// keyword heuristics in the percentage scoring pass.
type Choice struct {
	Letter string
	Option string
}

// LogEntry is one role-tagged line of the session's conversation log, used
// by the generator-backed provider for narrative continuity.
type LogEntry struct {
	Role string // "user" or "assistant"
	Text string
}

// Session is one player's end-to-end play-through.
//
// Invariants: Turn starts at 1 and only increments; len(Choices) == Turn-1
// while the session is active and never exceeds MaxTurns; once Finished is
// true no further turn is processed.
type Session struct {
	ID       string
	Player   PlayerProfile
	Turn     int
	Choices  []Choice
	Log      []LogEntry
	Options  []string // the five options offered on the current turn
	Finished bool
}

// Letters returns the bare choice letters in submission order.
func (s *Session) Letters() []string {
	letters := make([]string, len(s.Choices))
	for i, c := range s.Choices {
		letters[i] = c.Letter
	}
	return letters
}

// OptionFor returns the offered option text matching a choice letter, or an
// empty string if the letter is not among the current options.
func (s *Session) OptionFor(letter string) string {
	prefix := letter + ")"
	for _, opt := range s.Options {
		if strings.HasPrefix(opt, prefix) {
			return opt
		}
	}
	return ""
}

// NormalizeChoice uppercases and validates a submitted choice letter.
func NormalizeChoice(choice string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(choice))
	if len(c) != 1 || c[0] < 'A' || c[0] > 'E' {
		return "", fmt.Errorf("%w: got %q", ErrInvalidChoice, choice)
	}
	return c, nil
}
