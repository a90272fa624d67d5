// README: Regex heuristic for pulling a location phrase out of free text.
package chat

import (
	"regexp"
	"strings"
)

// locationPattern matches a preposition followed by a capitalized phrase of up
// to three words. Each word must start uppercase so trailing prose is not
// swallowed; punctuation ends the phrase because it falls outside the word
// character class, and capitalized stop-words are trimmed afterwards.
var locationPattern = regexp.MustCompile(`(?:^|[\s,])(?i:in|near|around|at)\s+([A-Z][A-Za-z'-]*(?:\s+[A-Z][A-Za-z'-]*){0,2})`)

// stopWords terminate a captured phrase early ("sushi near Oakland with a view").
var stopWords = map[string]struct{}{
	"with": {},
	"for":  {},
	"on":   {},
	"to":   {},
	"and":  {},
}

// ExtractLocation pulls a candidate location phrase from one message.
// It is a heuristic, not a geocoder: the captured text is never validated as a
// real place, and lowercase place names are missed. Vague phrases like
// "near me" are the extractor's to produce and the dialogue policy's to reject.
func ExtractLocation(message string) string {
	m := locationPattern.FindStringSubmatch(message)
	if m == nil {
		return ""
	}

	words := strings.Fields(m[1])
	kept := words[:0]
	for _, w := range words {
		if _, stop := stopWords[strings.ToLower(w)]; stop {
			break
		}
		kept = append(kept, w)
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}
