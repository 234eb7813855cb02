package examples

import (
	"fmt"
	"strings"
)

var builtinExamples = map[string][]string{
	"hello": {
		"Hello, how are you today?",
		"She said hello to everyone in the room.",
		"I heard a faint hello from behind the door.",
	},
	"world": {
		"The world is a beautiful place.",
		"He traveled around the world in 80 days.",
		"This discovery will change the world.",
	},
	"computer": {
		"I need to buy a new computer.",
		"She works as a computer programmer.",
		"The computer crashed during the presentation.",
	},
	"book": {
		"I'm reading a good book right now.",
		"She wrote a book about her experiences.",
		"Please book a table for dinner tonight.",
	},
	"time": {
		"What time is it?",
		"We don't have much time left.",
		"Time flies when you're having fun.",
	},
}

// DefaultExamples returns the fallback sentences for word. A few common words
// have hand-written sentences; any other word gets three templated ones.
func DefaultExamples(word string) []string {
	if examples, ok := builtinExamples[strings.ToLower(word)]; ok {
		return append([]string(nil), examples...)
	}
	return []string{
		fmt.Sprintf("This is an example sentence using the word '%s'.", word),
		fmt.Sprintf("Let me show you how to use '%s' in a sentence.", word),
		fmt.Sprintf("The word '%s' can be used in various contexts.", word),
	}
}
