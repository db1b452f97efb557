// Package prompting provides the basic prompting starter flow: a chat
// message rendered through a prompt template and answered by an OpenAI
// model, with no memory attached.
package prompting

import (
	"context"
	"fmt"

	"github.com/gitworkflows/DEV-AiEXEC/internal/components"
	"github.com/gitworkflows/DEV-AiEXEC/internal/core/graph"
	"github.com/gitworkflows/DEV-AiEXEC/pkg/prebuilt"
)

// DefaultTemplate is the prompt used when no template is configured.
const DefaultTemplate = `Answer the user as if you were a pirate.

User: {user_message}

Answer: `

// BasicPromptingConfig defines inputs to the basic prompting builder.
type BasicPromptingConfig struct {
	ID       string // Graph ID; minted if empty
	Name     string // Graph name
	Template string // Prompt template; DefaultTemplate if empty
}

// NewBasicPrompting returns the basic prompting prebuilt builder.
func NewBasicPrompting() prebuilt.Builder {
	return prebuilt.NewBuildFunc("basic_prompting", func(ctx context.Context, cfg any) (*graph.Graph, error) {
		c, ok := cfg.(BasicPromptingConfig)
		if !ok {
			return nil, fmt.Errorf("invalid config type for basic_prompting, expected BasicPromptingConfig")
		}
		return Build(c)
	})
}

// Build wires the basic prompting flow.
func Build(cfg BasicPromptingConfig) (*graph.Graph, error) {
	template := cfg.Template
	if template == "" {
		template = DefaultTemplate
	}
	name := cfg.Name
	if name == "" {
		name = "Basic Prompting"
	}

	chatInput := components.NewChatInput()

	prompt := components.NewPromptComponent()
	prompt.Set("template", template)
	prompt.Set("user_message", chatInput.MessageResponse())

	model := components.NewOpenAIModelComponent()
	model.Set("input_value", prompt.BuildPrompt())

	chatOutput := components.NewChatOutput()
	chatOutput.Set("input_value", model.TextResponse())

	return components.Assemble(cfg.ID, name,
		&chatInput.Component, &chatOutput.Component,
		&chatInput.Component, &prompt.Component, &model.Component, &chatOutput.Component)
}

func init() {
	prebuilt.DefaultRegistry.MustRegister(NewBasicPrompting())
}
