package content

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/talgya/crisis-sim/internal/entropy"
)

// Message is one chat turn sent to the text-generation collaborator.
type Message struct {
	Role string // "user" or "assistant"
	Text string
}

// ChatClient is the text-generation collaborator boundary: a system prompt
// plus ordered messages in, free text out. Calls may block up to the
// client's read timeout; they are the sole source of latency variance.
type ChatClient interface {
	Chat(ctx context.Context, system string, messages []Message) (string, error)
}

const (
	// maxHistoryEntries bounds the conversation window to the last three
	// exchanges (a choice and a narrative each).
	maxHistoryEntries = 6
	// historyTruncate caps each prior narrative included in the window.
	historyTruncate = 200
)

// GeneratorProvider delegates turn content to an external text-generation
// collaborator and parses the free text it returns. Errors are surfaced to
// the engine, which degrades to templated content.
type GeneratorProvider struct {
	chat   ChatClient
	rand   *entropy.Source
	images ImagePicker
}

// NewGeneratorProvider builds a generator-backed provider. images may be
// nil to skip final-turn image references.
func NewGeneratorProvider(chat ChatClient, rand *entropy.Source, images ImagePicker) *GeneratorProvider {
	return &GeneratorProvider{chat: chat, rand: rand, images: images}
}

func (p *GeneratorProvider) Opening(ctx context.Context, player Player) (Content, error) {
	text, err := p.chat.Chat(ctx, systemPrompt, []Message{
		{Role: "user", Text: openingPrompt(player)},
	})
	if err != nil {
		return Content{}, fmt.Errorf("generate opening: %w", err)
	}
	return Content{Narrative: text, Options: ExtractOptions(text)}, nil
}

func (p *GeneratorProvider) NextTurn(ctx context.Context, req TurnRequest) (Content, error) {
	messages := windowedHistory(req.Player, req.Log, continuationPrompt(req.Choice))
	text, err := p.chat.Chat(ctx, systemPrompt, messages)
	if err != nil {
		return Content{}, fmt.Errorf("generate turn %d: %w", req.Turn, err)
	}
	return Content{Narrative: text, Options: ExtractOptions(text)}, nil
}

// FinalAssessment requests the structured six-field evaluation and parses
// it by labeled line, substituting fixed defaults per missing field.
func (p *GeneratorProvider) FinalAssessment(ctx context.Context, req FinalRequest) (Assessment, error) {
	text, err := p.chat.Chat(ctx, assessorSystemPrompt, []Message{
		{Role: "user", Text: resultsPrompt(req)},
	})
	if err != nil {
		return Assessment{}, fmt.Errorf("generate final assessment: %w", err)
	}

	fields := parseAssessmentFields(text)
	difficulty := clampDifficulty(req.Player.Difficulty)

	narrative := fmt.Sprintf(
		"FINAL RESULTS: After 10 turns of intense %s-level crisis management, %s has navigated the complex %s scenario. Your strategic decisions shaped stakeholder responses, media coverage, and long-term organizational outcomes. The crisis tested your abilities as a %s, and the results reflect both your leadership growth and areas for future development.",
		DifficultyName(difficulty), req.Player.Name,
		scenarioTypes[p.rand.Intn(len(scenarioTypes))], RoleForDifficulty(difficulty),
	)

	imageURL := ""
	if p.images != nil {
		imageURL = p.images.PickImage(imageDescription(p.rand, req.Player, req.Tier))
	}

	return Assessment{
		Narrative:    narrative,
		Outcome:      fields["OUTCOME:"],
		Career:       fields["CAREER:"],
		Strengths:    fields["STRENGTHS:"],
		Improvements: fields["IMPROVEMENTS:"],
		Leadership:   fields["LEADERSHIP:"],
		Theory:       fields["CRISIS_THEORY:"],
		ImageURL:     imageURL,
	}, nil
}

// windowedHistory builds the message list for an ongoing turn: a condensed
// player-context preamble, the most recent exchanges with prior narratives
// truncated to bound context size, then the current request.
func windowedHistory(player Player, log []LogEntry, current string) []Message {
	messages := make([]Message, 0, maxHistoryEntries+2)
	messages = append(messages, Message{Role: "user", Text: playerContextPrompt(player)})

	start := 0
	if len(log) > maxHistoryEntries {
		start = len(log) - maxHistoryEntries
	}
	for _, entry := range log[start:] {
		text := entry.Text
		if entry.Role == "assistant" && len(text) > historyTruncate {
			// Back off to a rune boundary so the cut never produces
			// invalid UTF-8.
			cut := historyTruncate
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			text = text[:cut] + "..."
		}
		messages = append(messages, Message{Role: entry.Role, Text: text})
	}

	return append(messages, Message{Role: "user", Text: current})
}
