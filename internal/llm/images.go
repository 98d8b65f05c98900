package llm

import (
	"strings"

	"github.com/talgya/crisis-sim/internal/entropy"
)

// ImagePicker resolves a descriptive prompt to a curated stock-photo URL.
// There is no real image synthesis behind this boundary: pools are keyed by
// performance level and crisis type, and selection is driven by the
// injected random source.
type ImagePicker struct {
	rand *entropy.Source
}

// NewImagePicker builds a picker over the given random source.
func NewImagePicker(rand *entropy.Source) *ImagePicker {
	return &ImagePicker{rand: rand}
}

var excellentImages = []string{
	"https://images.unsplash.com/photo-1557804506-669a67965ba0?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1521791136064-7986c2920216?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1552664730-d307ca884978?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1556761175-4b46a572b786?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1554774853-719586f82d77?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1600880292203-757bb62b4baf?w=800&h=600&fit=crop&q=80",
}

var adequateImages = []string{
	"https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1556075798-4825dfaaf498?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=800&h=600&fit=crop&q=80",
}

var challengingImages = []string{
	"https://images.unsplash.com/photo-1551836022-deb4988cc6c0?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800&h=600&fit=crop&q=80",
	"https://images.unsplash.com/photo-1475721027785-f74eccf877e2?w=800&h=600&fit=crop&q=80",
}

var crisisTypeImages = map[string][]string{
	"technology": {
		"https://images.unsplash.com/photo-1551434678-e076c223a692?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1581092795360-fd1ca04f0952?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1517077304055-6e89abbf09b0?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1560472355-536de3962603?w=800&h=600&fit=crop&q=80",
	},
	"healthcare": {
		"https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1576091160550-2173dba999ef?w=800&h=600&fit=crop&q=80",
	},
	"financial": {
		"https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1553729459-efe14ef6055d?w=800&h=600&fit=crop&q=80",
	},
	"environmental": {
		"https://images.unsplash.com/photo-1611273426858-450d8e3c9fce?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1560707303-4e980ce876ad?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1597149198537-a5a2d8d8d4d5?w=800&h=600&fit=crop&q=80",
		"https://images.unsplash.com/photo-1569163139394-de44e1d3a715?w=800&h=600&fit=crop&q=80",
	},
}

// PickImage selects an image URL for the given descriptive prompt.
// Crisis-type pools win 60% of draws when the description names one;
// otherwise the performance-level pool applies.
func (p *ImagePicker) PickImage(description string) string {
	prompt := strings.ToLower(description)

	if pool, ok := crisisTypeImages[crisisType(prompt)]; ok && p.rand.Float() < 0.6 {
		return pool[p.rand.Intn(len(pool))]
	}

	pool := adequateImages
	switch performanceLevel(prompt) {
	case "excellent":
		pool = excellentImages
	case "poor":
		pool = challengingImages
	}
	return pool[p.rand.Intn(len(pool))]
}

func performanceLevel(prompt string) string {
	if containsAny(prompt, "excellent", "successful", "confident", "triumphant", "accomplished") {
		return "excellent"
	}
	if containsAny(prompt, "poor", "failed", "stressed", "reflective", "challenging", "resilient", "contemplative", "introspective") {
		return "poor"
	}
	return "adequate"
}

func crisisType(prompt string) string {
	switch {
	case containsAny(prompt, "tech", "cyber", "data", "quantum", "digital"):
		return "technology"
	case containsAny(prompt, "manufacturing", "factory", "safety", "explosion", "industrial"):
		return "manufacturing"
	case containsAny(prompt, "healthcare", "medical", "hospital", "pharma", "patient"):
		return "healthcare"
	case containsAny(prompt, "food", "contamination", "outbreak", "recall", "restaurant"):
		return "food"
	case containsAny(prompt, "social media", "platform", "content", "algorithm", "online"):
		return "social_media"
	case containsAny(prompt, "financial", "bank", "fraud", "regulatory", "investment"):
		return "financial"
	case containsAny(prompt, "environment", "pollution", "toxic", "cleanup", "climate"):
		return "environmental"
	case containsAny(prompt, "transport", "airline", "logistics", "supply", "shipping"):
		return "transportation"
	default:
		return "general"
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
