package config

import "slices"

// Change records a single field's before/after values in a Diff result.
type Change struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// Diff compares candidate against base and reports the fields where they
// differ, walking the candidate's fields in canonical document order:
// sports, retry_enabled, generation_mode, llm. The diff is asymmetric: a
// field only the base has (an llm block absent from the candidate) is never
// reported. Used to show what a caller changed relative to the shipped
// default.
func Diff(base, candidate Document) ([]string, map[string]Change) {
	var changed []string
	changes := make(map[string]Change)

	record := func(key string, oldVal, newVal any) {
		changed = append(changed, key)
		changes[key] = Change{Old: oldVal, New: newVal}
	}

	if !slices.Equal(base.Sports, candidate.Sports) {
		record("sports", base.Sports, candidate.Sports)
	}
	if base.RetryEnabled != candidate.RetryEnabled {
		record("retry_enabled", base.RetryEnabled, candidate.RetryEnabled)
	}
	if base.GenerationMode != candidate.GenerationMode {
		record("generation_mode", base.GenerationMode, candidate.GenerationMode)
	}
	if candidate.LLM != nil {
		// An absent base block compares as nil, never as a zero struct.
		if base.LLM == nil {
			record("llm", nil, *candidate.LLM)
		} else if *base.LLM != *candidate.LLM {
			record("llm", *base.LLM, *candidate.LLM)
		}
	}

	return changed, changes
}
