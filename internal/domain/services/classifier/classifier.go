package classifier

import "strings"

// Category is the classification assigned to a prompt. Categories are
// mutually exclusive; classification always terminates in exactly one of
// them.
type Category string

const (
	CategoryRestricted Category = "restricted"
	CategoryCode       Category = "code"
	CategoryNSFW       Category = "nsfw"
	CategoryHacker     Category = "hacker"
	CategoryGeneral    Category = "general"
)

// Keyword tables are fixed at compile time and read-only; they are the
// only state shared between concurrent requests.
var (
	restrictedKeywords = []string{
		"terrorism", "child abuse", "suicide", "self-harm",
		"human trafficking", "assassination", "bomb making",
	}

	codeKeywords = []string{"code", "programming"}

	nsfwKeywords = []string{
		"nsfw", "porn", "sexual", "erotic", "adult content",
		"explicit", "xxx", "18+", "mature content",
	}

	hackerKeywords = []string{
		"hack", "exploit", "vulnerability", "crack", "bypass",
		"phishing", "ddos", "sql injection", "xss", "dark web",
	}
)

// Classify assigns exactly one category to the prompt by first-matching
// rule in a fixed priority order: restricted, code, nsfw, hacker, then
// general as the fallback. The restricted check is skipped in
// unrestricted mode; when it fires it short-circuits every other rule.
// All matching is case-insensitive substring matching.
func Classify(prompt string, unrestricted bool) Category {
	lower := strings.ToLower(prompt)

	if !unrestricted && containsAny(lower, restrictedKeywords) {
		return CategoryRestricted
	}
	if containsAny(lower, codeKeywords) {
		return CategoryCode
	}
	if containsAny(lower, nsfwKeywords) {
		return CategoryNSFW
	}
	if containsAny(lower, hackerKeywords) {
		return CategoryHacker
	}
	return CategoryGeneral
}

// DetectLanguage picks the code snippet language from the prompt.
// Returns "python", "javascript" or "unknown".
func DetectLanguage(prompt string) string {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "python"):
		return "python"
	case strings.Contains(lower, "javascript"):
		return "javascript"
	default:
		return "unknown"
	}
}

// SelectSecurityText picks one of three canned educational texts for a
// hacker-category prompt: the SQL injection text when "sql injection"
// appears literally, the bypass text when "bypass" appears, otherwise the
// generic cybersecurity-ethics text. The SQL injection check wins when
// both appear.
func SelectSecurityText(prompt, sqlInjectionText, bypassText, genericText string) string {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "sql injection"):
		return sqlInjectionText
	case strings.Contains(lower, "bypass"):
		return bypassText
	default:
		return genericText
	}
}

// containsAny reports whether the already-lowercased text contains any of
// the keywords as a substring.
func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
