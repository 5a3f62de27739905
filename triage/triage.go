// Package triage maps reported symptoms to medicine suggestions with a
// fixed keyword rule table.
package triage

import "strings"

// maxSuggestions caps the number of medicines returned per check.
const maxSuggestions = 2

// fillerMedicine is appended once when the rules match fewer than two
// medicines, so every check returns at least one suggestion.
const fillerMedicine = "Multivitamins"

// rules are evaluated in order; detection order is preserved in the result.
var rules = []struct {
	keyword  string
	medicine string
}{
	{"fever", "Paracetamol"},
	{"cough", "Cough Syrup"},
	{"headache", "Ibuprofen"},
}

// Suggest returns at most two medicines for the given symptom text.
// Matching is case-insensitive substring search. The function is pure; it
// never consults patient data.
func Suggest(symptoms string) []string {
	text := strings.ToLower(symptoms)

	medicines := []string{}
	for _, rule := range rules {
		if strings.Contains(text, rule.keyword) {
			medicines = append(medicines, rule.medicine)
		}
	}
	if len(medicines) < maxSuggestions {
		medicines = append(medicines, fillerMedicine)
	}
	if len(medicines) > maxSuggestions {
		medicines = medicines[:maxSuggestions]
	}
	return medicines
}
