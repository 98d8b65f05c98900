// Package content produces the narrative text and labeled options for each
// turn of a crisis simulation, either from canned templates or from an
// external text-generation collaborator. The two providers are selected
// once at startup and never mixed mid-session.
package content

import "context"

// Player is the profile a provider personalizes content with.
type Player struct {
	Name       string
	Gender     string
	Age        int
	Difficulty int
}

// LogEntry is a role-tagged line of conversation history. Only the
// generator-backed provider reads it.
type LogEntry struct {
	Role string // "user" or "assistant"
	Text string
}

// Content is one turn's narrative plus exactly five labeled options.
type Content struct {
	Narrative string
	Options   []string
}

// Assessment is the six-field final evaluation returned on turn 10.
type Assessment struct {
	Narrative    string
	Outcome      string
	Career       string
	Strengths    string
	Improvements string
	Leadership   string
	Theory       string
	ImageURL     string
}

// TurnRequest carries everything a provider may need to produce the next
// ongoing turn.
type TurnRequest struct {
	Player     Player
	Turn       int    // turn number the content is for (2..10)
	Choice     string // letter chosen on the previous turn
	ChoiceText string // full text of the chosen option, may be empty
	Log        []LogEntry
}

// FinalRequest carries the inputs for the terminal assessment.
type FinalRequest struct {
	Player     Player
	Choices    []string // all ten letters in order
	Tier       int      // 1..4 from the scoring engine
	TierName   string
	Percentage int
	Log        []LogEntry
}

// Provider produces turn content. Implementations: TemplateProvider
// (deterministic canned pools) and GeneratorProvider (external LLM).
type Provider interface {
	// Opening produces the turn-1 scenario for a new session.
	Opening(ctx context.Context, player Player) (Content, error)
	// NextTurn produces content for an ongoing turn after a choice.
	NextTurn(ctx context.Context, req TurnRequest) (Content, error)
	// FinalAssessment produces the terminal evaluation.
	FinalAssessment(ctx context.Context, req FinalRequest) (Assessment, error)
}

// RoleForDifficulty maps the difficulty tier to the player's job title.
func RoleForDifficulty(difficulty int) string {
	switch difficulty {
	case 1:
		return "Communications Coordinator"
	case 2:
		return "Crisis Communications Manager"
	case 3:
		return "Director of Public Affairs"
	case 4:
		return "VP of Corporate Communications"
	case 5:
		return "Chief Communications Officer"
	default:
		return "Communications Specialist"
	}
}

// DifficultyName maps the difficulty tier to its display name.
func DifficultyName(difficulty int) string {
	switch difficulty {
	case 1:
		return "Entry-level"
	case 2:
		return "Intermediate"
	case 3:
		return "Advanced"
	case 4:
		return "Expert"
	case 5:
		return "Master"
	default:
		return "Standard"
	}
}
