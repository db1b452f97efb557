package components

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	t.Run("constructors mint uuid ids", func(t *testing.T) {
		in := NewChatInput()
		require.NoError(t, uuid.Validate(in.ID))
		assert.Equal(t, "ChatInput", in.Type)
		assert.Equal(t, "Chat Input", in.DisplayName)

		other := NewChatInput()
		assert.NotEqual(t, in.ID, other.ID)
	})

	t.Run("set and read inputs", func(t *testing.T) {
		prompt := NewPromptComponent()
		prompt.Set("template", "You are a helpful assistant.")

		v, ok := prompt.Input("template")
		require.True(t, ok)
		assert.Equal(t, "You are a helpful assistant.", v)

		_, ok = prompt.Input("missing")
		assert.False(t, ok)
	})

	t.Run("inputs returns a copy", func(t *testing.T) {
		prompt := NewPromptComponent()
		prompt.Set("template", "a")

		got := prompt.Inputs()
		got["template"] = "mutated"

		v, _ := prompt.Input("template")
		assert.Equal(t, "a", v)
	})

	t.Run("validate rejects incomplete descriptors", func(t *testing.T) {
		c := &Component{Type: "ChatInput", DisplayName: "Chat Input"}
		assert.Error(t, c.Validate())

		c = &Component{ID: "not-a-uuid", Type: "ChatInput", DisplayName: "Chat Input"}
		assert.Error(t, c.Validate())

		in := NewChatInput()
		assert.NoError(t, in.Validate())
	})

	t.Run("output handles name source and output", func(t *testing.T) {
		in := NewChatInput()
		h := in.MessageResponse()
		assert.Same(t, &in.Component, h.Source)
		assert.Equal(t, OutMessageResponse, h.Output)
	})
}

func TestBuiltinHandles(t *testing.T) {
	assert.Equal(t, OutRetrieveMessagesDF, NewMemoryComponent().RetrieveMessagesDataFrame().Output)
	assert.Equal(t, OutConvertToMessage, NewTypeConverterComponent().ConvertToMessage().Output)
	assert.Equal(t, OutBuildPrompt, NewPromptComponent().BuildPrompt().Output)
	assert.Equal(t, OutTextResponse, NewOpenAIModelComponent().TextResponse().Output)
}

func TestModelConstants(t *testing.T) {
	assert.Contains(t, OpenAIModels, "gpt-4o")
	assert.Contains(t, AnthropicModels, "claude-3-5-sonnet-latest")
	assert.NotEmpty(t, OllamaModels)
	assert.NotEmpty(t, GroqModels)
}
