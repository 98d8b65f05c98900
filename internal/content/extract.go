package content

import (
	"regexp"
	"strings"
)

// optionLine matches a trimmed line that starts with a single A-E label,
// optionally wrapped in markdown emphasis, followed by a separator and body
// text. Groups: 1 = label, 2 = body.
var optionLine = regexp.MustCompile(`^(?:\*\*)?([A-Ea-e])(?:\*\*)?\s?[).:-]\s*(?:\*\*\s*)?(.+?)(?:\s*\*\*)?$`)

// OptionPlaceholder is the synthetic body used when a generated narrative
// yields fewer than five parseable options.
const OptionPlaceholder = "[Option placeholder]"

// ExtractOptions parses the five labeled choices out of free-form generated
// text. Matches are collected in order of appearance and re-rendered as
// "X) body". The result always has exactly five entries: shortfalls are
// padded with placeholders labeled by the next unused letters, overflow is
// truncated to the first five. This function never fails.
func ExtractOptions(text string) []string {
	options := make([]string, 0, 5)
	used := make(map[byte]bool, 5)

	for _, line := range strings.Split(text, "\n") {
		m := optionLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		label := strings.ToUpper(m[1])
		body := strings.TrimSpace(strings.Trim(strings.TrimSpace(m[2]), "*"))
		if body == "" {
			continue
		}
		options = append(options, label+") "+body)
		used[label[0]] = true
		if len(options) == 5 {
			return options
		}
	}

	for len(options) < 5 {
		for l := byte('A'); l <= 'E'; l++ {
			if !used[l] {
				used[l] = true
				options = append(options, string(l)+") "+OptionPlaceholder)
				break
			}
		}
	}
	return options
}
