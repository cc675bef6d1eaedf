// tokenizer/contractions.go
package tokenizer

import "strings"

const negativeContraction = "n't"

var (
	contractionVerbs = []string{
		"are", "is", "was", "were", "have", "has", "had", "do", "does", "did",
		"can", "could", "shall", "should", "will", "would", "may", "might", "must", "need",
	}
	pronounContractions = []string{"'m", "'re", "'s", "'ve", "'ll", "'d"}
	contractionPronouns = []string{"i", "you", "he", "she", "it", "we", "they", "that", "there", "who", "what", "let"}
	irregularContractions = map[string]bool{
		"ain't": true, "y'all": true, "o'clock": true, "won't": true, "shan't": true, "let's": true,
	}

	knownContractions = buildContractions()
)

func buildContractions() map[string]bool {
	set := make(map[string]bool, len(irregularContractions)+len(contractionPronouns)*len(pronounContractions)+len(contractionVerbs))
	for c := range irregularContractions {
		set[c] = true
	}
	for _, pronoun := range contractionPronouns {
		for _, suffix := range pronounContractions {
			set[pronoun+suffix] = true
		}
	}
	for _, verb := range contractionVerbs {
		if strings.HasSuffix(verb, "n") {
			// can -> can't
			set[verb+"'t"] = true
			continue
		}
		set[verb+negativeContraction] = true
	}
	return set
}

// IsEnglishContraction reports whether w is a standard English contraction such as
// "isn't", "you're" or "o'clock". Typographic apostrophes are accepted.
func IsEnglishContraction(w string) bool {
	if !strings.ContainsAny(w, "'’") {
		return false
	}
	w = strings.ToLower(strings.ReplaceAll(w, "’", "'"))
	return knownContractions[w]
}
