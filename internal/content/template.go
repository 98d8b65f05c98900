package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/talgya/crisis-sim/internal/entropy"
)

// ImagePicker selects an illustrative image reference from a descriptive
// prompt. Implemented by the curated picker in internal/llm.
type ImagePicker interface {
	PickImage(description string) string
}

// TemplateProvider serves canned, difficulty-tiered scenario content with
// pseudo-random selection inside each pool. It never fails, which also
// makes it the degradation target when the generator is unavailable.
type TemplateProvider struct {
	rand   *entropy.Source
	images ImagePicker
}

// NewTemplateProvider builds a provider drawing from the given random
// source. images may be nil, in which case final assessments carry no
// image reference.
func NewTemplateProvider(rand *entropy.Source, images ImagePicker) *TemplateProvider {
	return &TemplateProvider{rand: rand, images: images}
}

// Opening picks a scenario from the difficulty tier's pool and substitutes
// the player's name, age, gender and role into it.
func (p *TemplateProvider) Opening(_ context.Context, player Player) (Content, error) {
	tier := clampDifficulty(player.Difficulty)
	pool := openingScenarios[tier-1]
	scenario := pool[p.rand.Intn(len(pool))]

	role := RoleForDifficulty(tier)
	narrative := fmt.Sprintf(scenario.narrative, player.Name, player.Age, player.Gender, role)

	return Content{
		Narrative: narrative,
		Options:   append([]string(nil), scenario.options[:]...),
	}, nil
}

// NextTurn selects a phase-banded narrative variation and the phase's fixed
// option set. Turns 2-4 draw from the early pool, 5-7 mid, 8-10 late.
func (p *TemplateProvider) NextTurn(_ context.Context, req TurnRequest) (Content, error) {
	phase := (req.Turn - 2) / 3
	if phase < 0 {
		phase = 0
	}
	if phase > 2 {
		phase = 2
	}
	variation := (req.Turn - 2) % 3
	if variation < 0 {
		variation = 0
	}

	choice := optionBody(req.ChoiceText)
	if choice == "" {
		choice = req.Choice
	}
	narrative := fmt.Sprintf(turnNarratives[phase][variation], req.Turn, choice)

	return Content{
		Narrative: narrative,
		Options:   append([]string(nil), turnOptions[phase][:]...),
	}, nil
}

// FinalAssessment assembles a fully templated evaluation from the tier.
func (p *TemplateProvider) FinalAssessment(_ context.Context, req FinalRequest) (Assessment, error) {
	tier := req.Tier
	if tier < 1 {
		tier = 1
	}
	if tier > 4 {
		tier = 4
	}
	difficulty := clampDifficulty(req.Player.Difficulty)
	role := RoleForDifficulty(difficulty)

	career := fallbackCareers[tier-1]
	if strings.Contains(career, "%s") {
		career = fmt.Sprintf(career, role)
	}

	narrative := fmt.Sprintf(
		"FINAL RESULTS: After 10 turns of %s-level crisis management, %s navigated the %s scenario. Results reflect your crisis management approach and areas for development.",
		DifficultyName(difficulty), req.Player.Name, scenarioTypes[p.rand.Intn(len(scenarioTypes))],
	)

	imageURL := ""
	if p.images != nil {
		imageURL = p.images.PickImage(imageDescription(p.rand, req.Player, tier))
	}

	return Assessment{
		Narrative:    narrative,
		Outcome:      fallbackOutcomes[tier-1],
		Career:       career,
		Strengths:    "Demonstrated crisis management capabilities",
		Improvements: "Could enhance strategic planning",
		Leadership:   "Developing crisis leadership skills",
		Theory:       assessmentTheories[tier%len(assessmentTheories)],
		ImageURL:     imageURL,
	}, nil
}

func clampDifficulty(d int) int {
	if d < 1 {
		return 1
	}
	if d > 5 {
		return 5
	}
	return d
}

// optionBody strips the "X) " label prefix from an option, leaving the
// actionable text.
func optionBody(option string) string {
	option = strings.TrimSpace(option)
	if len(option) >= 2 && option[0] >= 'A' && option[0] <= 'E' && option[1] == ')' {
		return strings.TrimSpace(option[2:])
	}
	return option
}

// imageDescription builds the descriptive prompt handed to the image
// picker, varied per performance tier.
func imageDescription(rand *entropy.Source, player Player, tier int) string {
	gender := strings.ToLower(player.Gender)
	role := RoleForDifficulty(clampDifficulty(player.Difficulty))

	var pool []string
	switch {
	case tier >= 4:
		pool = []string{
			"Confident %s %s in executive boardroom presenting successful crisis resolution to stakeholders, professional business attire, leadership success, excellent performance",
			"Triumphant %s %s celebrating successful crisis management outcome with senior leadership team, corporate victory, strategic excellence",
			"Professional %s %s delivering keynote presentation on crisis leadership best practices, industry recognition, thought leadership",
			"Successful %s %s in high-tech crisis command center coordinating multi-stakeholder response, innovation leadership, strategic command",
			"Accomplished %s %s receiving recognition for outstanding crisis management performance, professional achievement, leadership excellence",
		}
	case tier == 3:
		pool = []string{
			"Professional %s %s in modern office leading crisis management team meeting, collaborative leadership, successful teamwork",
			"Competent %s %s facilitating cross-functional crisis response coordination, effective leadership, team collaboration",
			"Skilled %s %s presenting crisis resolution strategy to board of directors, professional competence, strategic thinking",
			"Effective %s %s conducting stakeholder briefing on crisis management progress, communication leadership, relationship management",
			"Capable %s %s overseeing crisis response operations from modern command center, operational excellence, team coordination",
		}
	case tier == 2:
		pool = []string{
			"Determined %s %s at desk reviewing crisis management reports, learning from experience, professional development",
			"Focused %s %s analyzing crisis response data and stakeholder feedback, continuous improvement, strategic analysis",
			"Thoughtful %s %s in conference room planning next steps for crisis management, strategic planning, professional growth",
			"Diligent %s %s working late reviewing crisis communication strategies, dedication to improvement, professional commitment",
			"Analytical %s %s studying crisis management best practices and lessons learned, knowledge building, skill development",
		}
	default:
		pool = []string{
			"Reflective %s %s in office after challenging crisis experience, stress management, learning from setbacks, professional growth",
			"Resilient %s %s taking time to process difficult crisis management lessons, emotional intelligence, recovery planning",
			"Contemplative %s %s reviewing what went wrong during crisis response, self-reflection, professional learning",
			"Determined %s %s seeking mentorship and guidance after challenging crisis experience, growth mindset, seeking support",
			"Introspective %s %s planning recovery strategy after difficult crisis management outcome, resilience building, future planning",
		}
	}

	return fmt.Sprintf(pool[rand.Intn(len(pool))], gender, role)
}
