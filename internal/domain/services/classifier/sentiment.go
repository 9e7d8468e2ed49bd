package classifier

import "strings"

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Fixed sentiment lexicons. Seven words each; matching is
// case-insensitive substring matching, counting one hit per lexicon word.
var (
	positiveWords = []string{
		"good", "great", "excellent", "amazing", "wonderful", "happy", "positive",
	}
	negativeWords = []string{
		"bad", "terrible", "awful", "horrible", "sad", "negative", "angry",
	}
)

// ScoreSentiment scores text against the lexicons. The score starts at
// 0.5 and shifts by 0.1 per unit of count difference in the winning
// direction, clamped to [0,1]. Equal counts yield neutral at exactly 0.5.
// The function is deterministic: identical text always produces the same
// label and score.
func ScoreSentiment(text string) (label string, score float64) {
	lower := strings.ToLower(text)

	positiveCount := countMatches(lower, positiveWords)
	negativeCount := countMatches(lower, negativeWords)

	switch {
	case positiveCount > negativeCount:
		label = SentimentPositive
		score = 0.5 + float64(positiveCount-negativeCount)*0.1
	case negativeCount > positiveCount:
		label = SentimentNegative
		score = 0.5 - float64(negativeCount-positiveCount)*0.1
	default:
		label = SentimentNeutral
		score = 0.5
	}

	return label, clamp(score)
}

// countMatches counts how many lexicon words occur in the lowercased text.
func countMatches(lower string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(lower, word) {
			count++
		}
	}
	return count
}

// clamp bounds a score to [0,1].
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
