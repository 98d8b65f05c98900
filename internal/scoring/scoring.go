// Package scoring computes the end-of-game performance assessment from the
// full choice history and difficulty. Two deliberately separate heuristics
// live here: a coarse 1-4 tier built from weighted components over choice
// letters, and a finer 30-95 percentage that also mines the text of the
// chosen options. They overlap but do not agree by construction.
package scoring

import "strings"

// Choice pairs a submitted letter with the full text of the option it
// labeled. The percentage pass needs the text; the tier pass only reads
// letters.
type Choice struct {
	Letter string
	Text   string
}

// Tier is the coarse performance classification.
type Tier int

const (
	NeedsImprovement Tier = iota + 1
	Adequate
	Good
	Excellent
)

func (t Tier) String() string {
	switch t {
	case NeedsImprovement:
		return "Needs Improvement"
	case Adequate:
		return "Adequate"
	case Good:
		return "Good"
	case Excellent:
		return "Excellent"
	}
	return "Unknown"
}

// Breakdown records the bounded components behind a tier. Transient; it is
// reported alongside the result but never stored.
type Breakdown struct {
	Base        int
	Consistency int
	Strategic   int
	Phase       int
	Stakeholder int
	Difficulty  int
	Total       int
}

// Result is the full scoring output for a finished game.
type Result struct {
	Tier       Tier
	Percentage int
	Breakdown  Breakdown
}

const componentCap = 20

// Evaluate scores a completed choice history at the given difficulty.
// Difficulty outside 1-5 is clamped.
func Evaluate(choices []Choice, difficulty int) Result {
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 5 {
		difficulty = 5
	}

	letters := make([]string, len(choices))
	for i, c := range choices {
		letters[i] = c.Letter
	}

	b := Breakdown{
		Base:        50,
		Consistency: consistencyScore(letters),
		Strategic:   strategicScore(letters, difficulty),
		Phase:       phaseScore(letters),
		Stakeholder: stakeholderScore(letters),
		Difficulty:  difficultyBonus(difficulty, len(letters)),
	}
	b.Total = b.Base + b.Consistency + b.Strategic + b.Phase + b.Stakeholder + b.Difficulty

	tier := tierFor(b.Total)
	return Result{
		Tier:       tier,
		Percentage: percentage(tier, choices, difficulty),
		Breakdown:  b,
	}
}

func tierFor(total int) Tier {
	switch {
	case total >= 85:
		return Excellent
	case total >= 70:
		return Good
	case total >= 55:
		return Adequate
	default:
		return NeedsImprovement
	}
}

// consistencyScore rewards a balanced letter spread: neither fixating on one
// option nor scattering across all five.
func consistencyScore(letters []string) int {
	if len(letters) < 3 {
		return 10 // not enough data, neutral
	}
	unique := distinct(letters)
	switch {
	case unique >= 3 && unique <= 4:
		return componentCap
	case unique == 2 || unique == 5:
		return 15
	default:
		return 10
	}
}

// strategicScore rewards escalation along the A<B<C<D<E sophistication axis,
// and bold (D/E) choices at expert difficulty.
func strategicScore(letters []string, difficulty int) int {
	score := 10
	for i := 1; i < len(letters); i++ {
		if letterRank(letters[i]) > letterRank(letters[i-1]) {
			score += 2
		}
	}
	if difficulty >= 4 {
		for _, l := range letters {
			if l == "D" || l == "E" {
				score += 2
			}
		}
	}
	return min(componentCap, score)
}

// phaseScore checks that the choice pattern fits the crisis arc: reactive
// early, analytical mid, strategic late. Only meaningful once most of the
// game has been played.
func phaseScore(letters []string) int {
	score := 10
	if len(letters) < 8 {
		return score
	}

	for i, l := range letters {
		switch {
		case i < 3 && (l == "A" || l == "B"):
			score += 2
		case i >= 3 && i < 7 && (l == "B" || l == "C"):
			score += 2
		case i >= 7 && (l == "C" || l == "D" || l == "E"):
			score += 3
		}
	}
	return min(componentCap, score)
}

// stakeholderScore treats each letter as a distinct stakeholder focus and
// rewards covering several of them.
func stakeholderScore(letters []string) int {
	switch unique := distinct(letters); {
	case unique >= 4:
		return componentCap
	case unique == 3:
		return 15
	case unique == 2:
		return 10
	default:
		return 5
	}
}

func difficultyBonus(difficulty, played int) int {
	bonus := (difficulty - 1) * 3
	if played >= 10 {
		bonus += 5
	}
	return min(componentCap, bonus)
}

// percentage derives the player-facing 30-95 score. It reuses the tier as a
// base but layers its own keyword heuristics over the chosen options' text.
func percentage(tier Tier, choices []Choice, difficulty int) int {
	base := (int(tier) - 1) * 20
	score := base + approachConsistency(choices) + (difficulty-1)*5 + choiceQuality(choices)

	if score < 30 {
		return 30
	}
	if score > 95 {
		return 95
	}
	return score
}

// approachConsistency finds the dominant strategic category across the
// chosen option texts and rewards sticking with it.
func approachConsistency(choices []Choice) int {
	if len(choices) < 3 {
		return 0
	}

	var proactive, reactive, stakeholder int
	for _, c := range choices {
		text := strings.ToLower(c.Text)
		if containsAny(text, "proactive", "prevent", "anticipate", "prepare") {
			proactive++
		}
		if containsAny(text, "respond", "react", "address", "immediate") {
			reactive++
		}
		if containsAny(text, "stakeholder", "community", "customer", "partner") {
			stakeholder++
		}
	}

	dominant := max(proactive, max(reactive, stakeholder))
	ratio := float64(dominant) / float64(len(choices))
	switch {
	case ratio >= 0.7:
		return 15
	case ratio >= 0.5:
		return 10
	case ratio >= 0.3:
		return 5
	default:
		return 0
	}
}

// choiceQuality scores the language of each chosen option: strategic,
// stakeholder-aware and long-term wording earns points, purely defensive
// wording loses one.
func choiceQuality(choices []Choice) int {
	score := 0
	for _, c := range choices {
		text := strings.ToLower(c.Text)
		if containsAny(text, "strategic", "comprehensive", "systematic") {
			score += 2
		}
		if containsAny(text, "stakeholder", "community", "transparent") {
			score += 2
		}
		if containsAny(text, "long-term", "sustainable", "future") {
			score += 2
		}
		if containsAny(text, "deny", "blame") ||
			(strings.Contains(text, "minimize") && !strings.Contains(text, "damage")) {
			score--
		}
	}

	if score < 0 {
		return 0
	}
	if score > 30 {
		return 30
	}
	return score
}

func distinct(letters []string) int {
	seen := make(map[string]struct{}, len(letters))
	for _, l := range letters {
		seen[l] = struct{}{}
	}
	return len(seen)
}

func letterRank(letter string) int {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'E' {
		return -1
	}
	return int(letter[0] - 'A')
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
