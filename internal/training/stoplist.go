package training

// trainingStoplist holds common filler and function words excluded from term
// extraction no matter how often they appear in the corpus.
var trainingStoplist = map[string]struct{}{
	"um": {}, "uh": {}, "like": {}, "you": {}, "know": {}, "mean": {},
	"just": {}, "very": {}, "really": {}, "quite": {}, "sort": {},
	"kind": {}, "basically": {}, "actually": {}, "literally": {},
	"right": {}, "okay": {}, "well": {}, "gonna": {}, "the": {},
	"and": {}, "for": {}, "are": {}, "this": {}, "that": {},
	"with": {}, "from": {}, "have": {}, "been": {},
}

// IsStopword reports whether a token is on the training stoplist.
func IsStopword(word string) bool {
	_, ok := trainingStoplist[word]
	return ok
}
