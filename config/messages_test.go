package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMessages_AllTextsPresent(t *testing.T) {
	msgs := DefaultMessages()
	texts := []string{
		msgs.HarassmentBody,
		msgs.RemovalAINoRef, msgs.RemovalAIRef,
		msgs.RemovalComNoRef, msgs.RemovalComRef,
		msgs.ObjectionAINoRef, msgs.ObjectionAIRef,
		msgs.ObjectionComNoRef, msgs.ObjectionComRef,
	}
	for _, text := range texts {
		assert.NotEmpty(t, text)
	}

	// The AI framing must actually mention the bot, and the Ref variants the
	// community norms, or the arms stop being distinguishable.
	assert.Contains(t, msgs.RemovalAINoRef, "our bot")
	assert.Contains(t, msgs.RemovalAIRef, "our bot")
	assert.Contains(t, msgs.RemovalAIRef, "community")
	assert.Contains(t, msgs.RemovalComRef, "community")
	assert.NotEqual(t, msgs.ObjectionAINoRef, msgs.ObjectionAIRef)
	assert.NotEqual(t, msgs.ObjectionComNoRef, msgs.ObjectionComRef)
}
