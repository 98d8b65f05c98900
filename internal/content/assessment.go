package content

import "strings"

// assessmentFields maps each label token to the default used when the
// generated text is missing that line. Label matching is a case-sensitive
// line-prefix check, per the format demanded in the results prompt.
var assessmentDefaults = map[string]string{
	"OUTCOME:":       "Crisis management completed with mixed results",
	"CAREER:":        "Role maintained with additional training needs",
	"STRENGTHS:":     "Demonstrated resilience under pressure",
	"IMPROVEMENTS:":  "Could improve strategic planning and stakeholder communication",
	"LEADERSHIP:":    "Developing leadership style with room for growth",
	"CRISIS_THEORY:": "Mixed crisis communication approach without clear theoretical framework",
}

// parseAssessmentFields extracts the six labeled lines from a generated
// assessment. Missing or empty fields are substituted with their fixed
// defaults, so parsing never fails the request.
func parseAssessmentFields(text string) map[string]string {
	fields := make(map[string]string, len(assessmentDefaults))

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for label := range assessmentDefaults {
			if strings.HasPrefix(line, label) {
				if value := strings.TrimSpace(line[len(label):]); value != "" {
					fields[label] = value
				}
				break
			}
		}
	}

	for label, fallback := range assessmentDefaults {
		if fields[label] == "" {
			fields[label] = fallback
		}
	}
	return fields
}
