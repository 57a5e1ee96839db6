package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	base := DefaultDocument()

	t.Run("identical documents", func(t *testing.T) {
		changed, changes := Diff(base, DefaultDocument())

		assert.Empty(t, changed)
		assert.Empty(t, changes)
	})

	t.Run("single changed field", func(t *testing.T) {
		candidate := DefaultDocument()
		candidate.RetryEnabled = false

		changed, changes := Diff(base, candidate)

		require.Equal(t, []string{"retry_enabled"}, changed)
		assert.Equal(t, Change{Old: true, New: false}, changes["retry_enabled"])
	})

	t.Run("sports change carries both lists", func(t *testing.T) {
		candidate := DefaultDocument()
		candidate.Sports = []string{"basketball", "soccer", "tennis"}

		changed, changes := Diff(base, candidate)

		require.Equal(t, []string{"sports"}, changed)
		assert.Equal(t, []string{}, changes["sports"].Old)
		assert.Equal(t, []string{"basketball", "soccer", "tennis"}, changes["sports"].New)
	})

	t.Run("canonical key order", func(t *testing.T) {
		doc, err := New().
			WithSports([]string{"hockey", "swimming", "volleyball"}).
			WithRetry(false).
			WithLLMProvider(ProviderTogether).
			Validate()
		require.NoError(t, err)

		changed, _ := Diff(base, doc)
		assert.Equal(t, []string{"sports", "retry_enabled", "generation_mode", "llm"}, changed)
	})

	t.Run("llm block absent from base reports nil old", func(t *testing.T) {
		doc, err := New().
			WithSports([]string{"hockey", "swimming", "volleyball"}).
			WithLLMModel("X").
			Validate()
		require.NoError(t, err)

		_, changes := Diff(base, doc)

		llm, ok := changes["llm"]
		require.True(t, ok)
		assert.Nil(t, llm.Old)
		assert.Equal(t, LLMConfig{Provider: ProviderTogether, Model: "X"}, llm.New)
	})

	t.Run("asymmetric: llm only in base is not reported", func(t *testing.T) {
		withLLM := DefaultDocument()
		withLLM.GenerationMode = ModeLLM
		withLLM.LLM = defaultLLM()

		changed, _ := Diff(withLLM, DefaultDocument())

		// generation_mode differs, but the missing llm block does not count.
		assert.Equal(t, []string{"generation_mode"}, changed)
	})
}
