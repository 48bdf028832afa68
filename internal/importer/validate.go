package importer

import "fmt"

// ValidationError aggregates every problem found in a suggestion
// document so the caller can report them all at once.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid suggestion document: %d problem(s), first: %s",
		len(e.Problems), e.Problems[0])
}

// ValidateSuggestions checks the structural requirements. Soft issues
// (odd durations, unknown kinds, junk times) are not errors; the
// conversion step default-substitutes those. Hard errors are documents
// the engine cannot meaningfully ingest.
func ValidateSuggestions(schema *SuggestionSchema) error {
	var problems []string

	if len(schema.Suggestions) == 0 {
		problems = append(problems, "no suggestions")
	}
	if schema.StartIndex != nil && *schema.StartIndex < 0 {
		problems = append(problems, fmt.Sprintf("start_index %d is negative", *schema.StartIndex))
	}
	for i, s := range schema.Suggestions {
		if s.Name == "" {
			problems = append(problems, fmt.Sprintf("suggestion %d: missing name", i))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
