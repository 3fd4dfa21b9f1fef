// Package sentiment classifies free-text feedback into a coarse tone using
// keyword counting, with the star rating as a tiebreaker.
//
// The word tables are compiled once at package init and never mutated, so all
// functions here are pure and safe for concurrent use.
package sentiment

import (
	"regexp"
	"strconv"
	"strings"
)

// Sentiment is a three-way tone label
type Sentiment string

// enum of supported sentiment labels
const (
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
	Negative Sentiment = "negative"
)

// rating bounds, anything outside is treated as no rating
const (
	MinRating = 1
	MaxRating = 5
)

// Valid reports whether s is one of the known labels
func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Neutral, Negative:
		return true
	}
	return false
}

// Result holds a classification with the counts it was derived from
type Result struct {
	Sentiment Sentiment `json:"sentiment"`
	Positive  int       `json:"positive"`
	Negative  int       `json:"negative"`
	Score     int       `json:"score"`
	ByRating  bool      `json:"by_rating"` // label came from the rating fallback
}

var (
	positivePatterns = compile(PositiveWords)
	negativePatterns = compile(NegativeWords)
)

// compile builds one whole-word matcher per vocabulary entry
func compile(words []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(w))+`\b`))
	}
	return res
}

// Classify returns the tone of text. Rating is 1..5, any other value means
// no rating. Word counts decide first; the rating only breaks an exact tie.
func Classify(text string, rating int) Sentiment {
	return Analyze(text, rating).Sentiment
}

// Analyze is Classify with the word counts exposed
func Analyze(text string, rating int) Result {
	res := Result{}
	if lower := strings.ToLower(strings.TrimSpace(text)); lower != "" {
		res.Positive = count(lower, positivePatterns)
		res.Negative = count(lower, negativePatterns)
	}
	res.Score = res.Positive - res.Negative

	switch {
	case res.Score > 0:
		res.Sentiment = Positive
	case res.Score < 0:
		res.Sentiment = Negative
	default:
		res.Sentiment = FromRating(rating)
		res.ByRating = res.Sentiment != Neutral
	}
	return res
}

// FromRating maps a star rating to a tone, 4+ positive, 2- negative.
// Out-of-range ratings are neutral.
func FromRating(rating int) Sentiment {
	if rating < MinRating || rating > MaxRating {
		return Neutral
	}
	switch {
	case rating >= 4:
		return Positive
	case rating <= 2:
		return Negative
	}
	return Neutral
}

// ParseRating coerces user input into a rating, returning 0 for anything
// non-numeric or out of range
func ParseRating(s string) int {
	r, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return NormalizeRating(r)
}

// NormalizeRating returns r if it is a valid rating, 0 otherwise
func NormalizeRating(r int) int {
	if r < MinRating || r > MaxRating {
		return 0
	}
	return r
}

func count(text string, patterns []*regexp.Regexp) int {
	total := 0
	for _, re := range patterns {
		total += len(re.FindAllStringIndex(text, -1))
	}
	return total
}
