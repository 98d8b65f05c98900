package content

import (
	"fmt"
	"strings"
)

// systemPrompt is the fixed scenario-generation ruleset sent with every
// generator call during a game.
const systemPrompt = `You are an expert crisis simulation storyteller creating immersive, dynamic corporate crisis scenarios.

CORE PRINCIPLES:
- Generate COMPLETELY UNIQUE scenarios each time - never repeat crisis types or company details
- Create compelling narrative arcs that evolve organically based on player choices
- Incorporate current events, technology trends, and realistic business challenges
- Make every choice meaningful with clear consequences that ripple through the story

SCENARIO VARIETY (Pick one randomly each game):
- Tech startup facing data breach/privacy scandal
- Manufacturing company with safety incident/environmental crisis
- Healthcare organization dealing with medical malpractice/patient safety
- Financial services firm with fraud/regulatory investigation
- Retail chain facing supply chain disruption/labor disputes
- Entertainment company with celebrity scandal/content controversy
- Food & beverage company with contamination/health concerns
- Transportation company with safety/service failures
- Energy company with environmental disaster/regulatory issues
- Social media platform with misinformation/content moderation crisis

PLAYER ROLE & COMPLEXITY PROGRESSION:
Difficulty 1 (Entry): Communications Coordinator, Junior PR Specialist - Local/departmental issues, straightforward stakeholder management
Difficulty 2 (Intermediate): Communications Manager, Crisis Response Manager - Regional issues, multi-department coordination, regulatory involvement
Difficulty 3 (Advanced): Director of Communications, Director of Public Affairs - National issues, industry-wide impact, congressional oversight
Difficulty 4 (Expert): VP of Corporate Communications, Chief Communications Officer - Global issues, international implications, industry transformation
Difficulty 5 (Master): CEO, President, C-Suite Executive - Civilization-level crises, paradigm-shifting events, existential challenges

STORYTELLING REQUIREMENTS:
- Address player by name and reference their age/gender naturally in context
- Create 4-6 vivid sentences per turn showing immediate crisis developments
- Include realistic details: stakeholder reactions, media coverage, internal pressure
- Show consequences of previous choices rippling through the story
- Provide EXACTLY 5 options (A, B, C, D, E) with distinct strategic approaches
- Options should span: immediate response, stakeholder communication, damage control, strategic pivot, bold leadership
- Each choice should feel authentic to the player's role level and company context
- Every option should be different and lead to unique story paths

DYNAMIC ELEMENTS:
- Introduce unexpected developments based on player decisions
- Include realistic stakeholders: employees, customers, media, regulators, investors, board
- Show real-time crisis escalation or de-escalation based on choices
- Incorporate modern communication channels: social media, news outlets, internal comms

Keep each turn under 200 words but pack with immersive details and meaningful choices.`

// assessorSystemPrompt frames the final-turn evaluation request.
const assessorSystemPrompt = "You are an expert MBA crisis management instructor providing personalized feedback to students."

// openingPrompt is the first user message of a generated game.
func openingPrompt(player Player) string {
	return fmt.Sprintf(
		"Player Info — Name: %s, Age: %d, Gender: %s, Difficulty: %d. Begin Turn 1 now. Write 3-5 sentences, then EXACTLY five labeled options A–E.",
		player.Name, player.Age, player.Gender, clampDifficulty(player.Difficulty),
	)
}

// continuationPrompt asks for the next ongoing turn after a choice.
func continuationPrompt(choice string) string {
	return fmt.Sprintf(
		"Player chooses option %s. Continue to next turn. Write 3-5 sentences and then provide EXACTLY five labeled options A–E.",
		strings.ToUpper(choice),
	)
}

// playerContextPrompt is the condensed profile preamble prepended to the
// windowed conversation history.
func playerContextPrompt(player Player) string {
	return fmt.Sprintf(
		"Player: %s (%s, age %d, difficulty %d). Continue the crisis scenario.",
		player.Name, player.Gender, player.Age, clampDifficulty(player.Difficulty),
	)
}

// resultsPrompt requests the structured six-label final assessment.
func resultsPrompt(req FinalRequest) string {
	var b strings.Builder
	difficulty := clampDifficulty(req.Player.Difficulty)

	b.WriteString("CRISIS MANAGEMENT GAME FINAL RESULTS ANALYSIS\n\n")
	b.WriteString("PLAYER PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", req.Player.Name)
	fmt.Fprintf(&b, "- Role: %s\n", RoleForDifficulty(difficulty))
	fmt.Fprintf(&b, "- Difficulty: %s\n", DifficultyName(difficulty))
	fmt.Fprintf(&b, "- Performance Tier: %s\n\n", req.TierName)

	b.WriteString("CHOICE HISTORY (All 10 turns):\n")
	for i, choice := range req.Choices {
		fmt.Fprintf(&b, "Turn %d: %s\n", i+1, choice)
	}

	b.WriteString("\nINSTRUCTIONS:\n")
	b.WriteString("Based on the player's choices and performance, provide concise MBA-level crisis management analysis. ")
	b.WriteString("Keep responses brief and professional. Do NOT reference specific turn numbers or choice letters (A, B, C, etc.). ")
	b.WriteString("Your response must be in this EXACT format:\n\n")
	b.WriteString("OUTCOME: [One concise sentence describing the overall crisis resolution outcome]\n\n")
	b.WriteString("CAREER: [One sentence about career impact - be realistic based on performance]\n\n")
	b.WriteString("STRENGTHS: [One sentence highlighting key strengths demonstrated]\n\n")
	b.WriteString("IMPROVEMENTS: [One sentence about main areas for improvement]\n\n")
	b.WriteString("LEADERSHIP: [One sentence describing their leadership approach]\n\n")
	b.WriteString("CRISIS_THEORY: [Identify which specific MBA crisis communication theory they primarily applied from this comprehensive list: " +
		"Image Restoration Theory (Benoit), Situational Crisis Communication Theory/SCCT (Coombs), Excellence Theory (Grunig & Hunt), " +
		"Stakeholder Theory (Freeman), Contingency Theory (Cameron), Issues Management Theory (Chase & Jones), " +
		"Apologia Theory (Ware & Linkugel), Discourse of Renewal (Seeger), Crisis & Emergency Risk Communication/CERC (Reynolds), " +
		"Attribution Theory (Weiner), Social Learning Theory (Bandura), Systems Theory (Von Bertalanffy), " +
		"Chaos Theory (Seeger), Media Dependency Theory (Ball-Rokeach), Organizational Learning Theory (Argyris), " +
		"Prospect Theory (Kahneman & Tversky), Social Identity Theory (Tajfel), or Resilience Theory (Holling). " +
		"Choose the MOST appropriate theory based on their decision patterns. Provide ONLY the theory name and a brief 1-2 sentence explanation " +
		"of why it fits their overall approach. Do NOT reference specific turns or choice letters.]\n\n")
	b.WriteString("Keep all responses concise and professional. Focus on overall patterns, not specific choices.")

	return b.String()
}
