package sentiment

// PositiveWords is the vocabulary counted toward a positive tone.
// Multi-word entries are matched as whole phrases and counted independently
// of their component words.
var PositiveWords = []string{
	"good", "great", "excellent", "amazing", "fantastic", "wonderful", "awesome",
	"love", "best", "perfect", "enjoy", "helpful", "impressive", "outstanding",
	"incredible", "happy", "satisfied", "thanks", "thank you", "appreciate",
	"easy", "smooth", "well", "nice", "liked", "impressed", "superb", "brilliant",
	"exceptional", "delighted", "pleased", "favorite", "convenient", "efficient",
	"fast", "quick", "intuitive", "reliable", "supportive", "user-friendly",
	"top-notch", "flawless", "clean", "clear", "understandable", "responsive",
	"time-saving", "flexible", "accessible", "affordable", "beautiful",
	"seamless", "love it", "great job", "well done", "very good", "very helpful",
}

// NegativeWords is the vocabulary counted toward a negative tone.
var NegativeWords = []string{
	"bad", "poor", "terrible", "awful", "horrible", "disappointing", "worst",
	"hate", "dislike", "difficult", "confusing", "frustrating", "annoying",
	"issue", "problem", "error", "fail", "failed", "broken", "not working",
	"slow", "complicated", "buggy", "useless", "waste", "negative", "hard",
	"expensive", "unhappy", "dissatisfied", "trouble", "crash", "lag", "glitch",
	"inaccurate", "misleading", "unresponsive", "delayed", "too slow",
	"very bad", "poor quality", "not helpful", "doesn’t work", "doesn't work",
	"worst experience", "very disappointed", "hate it", "can’t use", "can't use",
	"problematic", "lack", "missing", "confused", "terribly slow", "needs improvement",
}
