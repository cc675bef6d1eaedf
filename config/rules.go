// config/rules.go
package config

// Rule is a toggle that either widens the ignore set or changes how misspellings are judged.
type Rule string

const (
	RuleIgnoreCapitalization    Rule = "ignore_capitalization"
	RuleSupportFlatCase         Rule = "support_flat_case"
	RuleSupportOneLineComment   Rule = "support_one_line_comment"
	RuleSupportMultiLineComment Rule = "support_multi_line_comment"
	RuleSupportBritishWords     Rule = "support_british_words"
	RuleIgnoreLanguageKeywords  Rule = "ignore_language_keywords"
	RuleIgnoreShortenedWords    Rule = "ignore_shortened_words"
	RuleIgnoreCommonlyUsedWords Rule = "ignore_commonly_used_words"
	RuleIgnoreLoremIpsum        Rule = "ignore_lorem_ipsum"
	RuleIgnoreHTMLTags          Rule = "ignore_html_tags"
	RuleIgnoreURLs              Rule = "ignore_urls"
)

var allRules = []Rule{
	RuleIgnoreCapitalization,
	RuleSupportFlatCase,
	RuleSupportOneLineComment,
	RuleSupportMultiLineComment,
	RuleSupportBritishWords,
	RuleIgnoreLanguageKeywords,
	RuleIgnoreShortenedWords,
	RuleIgnoreCommonlyUsedWords,
	RuleIgnoreLoremIpsum,
	RuleIgnoreHTMLTags,
	RuleIgnoreURLs,
}

// ruleAliases keeps older rule names working.
var ruleAliases = map[string]Rule{
	"ignore_swift_keywords": RuleIgnoreLanguageKeywords,
}

// AllRules returns every supported rule in declaration order.
func AllRules() []Rule {
	out := make([]Rule, len(allRules))
	copy(out, allRules)
	return out
}

// RuleNames returns the names accepted in the rules list of a config file.
func RuleNames() []string {
	names := make([]string, 0, len(allRules))
	for _, r := range allRules {
		names = append(names, string(r))
	}
	return names
}

// ParseRule resolves a rule name, including aliases.
func ParseRule(name string) (Rule, bool) {
	for _, r := range allRules {
		if string(r) == name {
			return r, true
		}
	}
	r, ok := ruleAliases[name]
	return r, ok
}
