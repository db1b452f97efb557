// Package chatbot provides the memory chatbot starter flow: chat history
// feeds a prompt template that an OpenAI model answers.
package chatbot

import (
	"context"
	"fmt"

	"github.com/gitworkflows/DEV-AiEXEC/internal/components"
	"github.com/gitworkflows/DEV-AiEXEC/internal/core/graph"
	"github.com/gitworkflows/DEV-AiEXEC/pkg/prebuilt"
)

// DefaultTemplate is the prompt used when no template is configured.
const DefaultTemplate = `{context}

    User: {user_message}
    AI: `

// MemoryChatbotConfig defines inputs to the memory chatbot builder.
type MemoryChatbotConfig struct {
	ID       string // Graph ID; minted if empty
	Name     string // Graph name
	Template string // Prompt template; DefaultTemplate if empty
}

// NewMemoryChatbot returns the memory chatbot prebuilt builder.
func NewMemoryChatbot() prebuilt.Builder {
	return prebuilt.NewBuildFunc("memory_chatbot", func(ctx context.Context, cfg any) (*graph.Graph, error) {
		c, ok := cfg.(MemoryChatbotConfig)
		if !ok {
			return nil, fmt.Errorf("invalid config type for memory_chatbot, expected MemoryChatbotConfig")
		}
		return Build(c)
	})
}

// Build wires the memory chatbot flow.
func Build(cfg MemoryChatbotConfig) (*graph.Graph, error) {
	template := cfg.Template
	if template == "" {
		template = DefaultTemplate
	}
	name := cfg.Name
	if name == "" {
		name = "Memory Chatbot"
	}

	memory := components.NewMemoryComponent()
	chatInput := components.NewChatInput()

	converter := components.NewTypeConverterComponent()
	converter.Set("input_data", memory.RetrieveMessagesDataFrame())

	prompt := components.NewPromptComponent()
	prompt.Set("template", template)
	prompt.Set("user_message", chatInput.MessageResponse())
	prompt.Set("context", converter.ConvertToMessage())

	model := components.NewOpenAIModelComponent()
	model.Set("input_value", prompt.BuildPrompt())

	chatOutput := components.NewChatOutput()
	chatOutput.Set("input_value", model.TextResponse())

	return components.Assemble(cfg.ID, name,
		&chatInput.Component, &chatOutput.Component,
		&memory.Component, &chatInput.Component, &converter.Component,
		&prompt.Component, &model.Component, &chatOutput.Component)
}

func init() {
	prebuilt.DefaultRegistry.MustRegister(NewMemoryChatbot())
}
