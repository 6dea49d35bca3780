package engine

import "strings"

// Categorization methods reported with a suggestion.
const (
	MethodKeyword  = "keyword"
	MethodAI       = "ai"
	MethodFallback = "fallback"
)

// Categorization is a suggested category for a free-text description.
type Categorization struct {
	Category   string
	Confidence float64
	Method     string
}

type keywordRule struct {
	keyword  string
	category string
}

// Checked in order; the first keyword found in the text wins.
var keywordRules = []keywordRule{
	{"swiggy", "Food & Dining"},
	{"zomato", "Food & Dining"},
	{"dominos", "Food & Dining"},
	{"kfc", "Food & Dining"},
	{"uber", "Transport"},
	{"ola", "Transport"},
	{"rapido", "Transport"},
	{"fuel", "Transport"},
	{"petrol", "Transport"},
	{"netflix", "Entertainment"},
	{"spotify", "Entertainment"},
	{"pvr", "Entertainment"},
	{"amazon", "Shopping"},
	{"flipkart", "Shopping"},
	{"myntra", "Shopping"},
	{"zudio", "Shopping"},
	{"jio", "Utilities"},
	{"bescom", "Utilities"},
	{"wifi", "Utilities"},
	{"airtel", "Utilities"},
	{"pharmacy", "Health"},
	{"apollo", "Health"},
	{"salary", "Income"},
	{"rent", "Housing"},
	{"sip", "Investments"},
}

// CategorizeByKeyword looks the text up in the keyword table.
func CategorizeByKeyword(text string) (Categorization, bool) {
	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		if strings.Contains(lower, rule.keyword) {
			return Categorization{Category: rule.category, Confidence: 0.95, Method: MethodKeyword}, true
		}
	}
	return Categorization{}, false
}

// Categorize returns the keyword match or the default category.
func Categorize(text string) Categorization {
	if c, ok := CategorizeByKeyword(text); ok {
		return c
	}
	return FallbackCategorization()
}

func FallbackCategorization() Categorization {
	return Categorization{Category: DefaultCategory, Confidence: 0.5, Method: MethodFallback}
}
