package examples

// apiEntry is one element of the FreeDictionary response array. The API
// returns one entry per etymology.
type apiEntry struct {
	Word     string       `json:"word"`
	Meanings []apiMeaning `json:"meanings"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// collectExamples flattens entries, meanings and definitions in order and
// keeps the non-empty examples, at most limit of them.
func collectExamples(entries []apiEntry, limit int) []string {
	examples := make([]string, 0, limit)
	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, definition := range meaning.Definitions {
				if definition.Example == "" {
					continue
				}
				examples = append(examples, definition.Example)
				if len(examples) == limit {
					return examples
				}
			}
		}
	}
	return examples
}
