// Package canonical builds the in-memory lfx namespace tree, the current
// home of the component library that legacy aiexec names forward to.
package canonical

import (
	"github.com/gitworkflows/DEV-AiEXEC/internal/adapters/loader/memory"
	"github.com/gitworkflows/DEV-AiEXEC/internal/components"
	"github.com/gitworkflows/DEV-AiEXEC/internal/core/namespace"
)

// Install registers the canonical lfx tree with the loader. Namespaces
// nest by attribute as well: lfx.components exposes helpers, input_output,
// openai, and processing as attributes so forwarded traversal works the
// same as absolute lookup.
func Install(loader *memory.Loader) {
	plain := []string{
		"lfx",
		"lfx.base",
		"lfx.base.agents",
		"lfx.base.chains",
		"lfx.base.data",
		"lfx.base.data.utils",
		"lfx.base.document_transformers",
		"lfx.base.embeddings",
		"lfx.base.flow_processing",
		"lfx.base.io",
		"lfx.base.io.chat",
		"lfx.base.io.text",
		"lfx.base.langchain_utilities",
		"lfx.base.memory",
		"lfx.base.models",
		"lfx.base.prompts",
		"lfx.base.prompts.api_utils",
		"lfx.base.prompts.utils",
		"lfx.base.textsplitters",
		"lfx.base.tools",
		"lfx.base.vectorstores",
		"lfx.inputs",
		"lfx.inputs.inputs",
		"lfx.schema",
		"lfx.schema.data",
		"lfx.schema.serialize",
		"lfx.template",
		"lfx.template.field",
		"lfx.template.field.base",
		"lfx.components",
		"lfx.components.helpers",
	}

	tree := make(map[string]*namespace.Namespace, len(plain))
	for _, name := range plain {
		tree[name] = namespace.New(name)
	}

	withAttrs := map[string]map[string]any{
		"lfx.components.helpers.memory": {
			"MemoryComponent": components.NewMemoryComponent,
		},
		"lfx.components.helpers.calculator_core": {},
		"lfx.components.helpers.create_list":     {},
		"lfx.components.helpers.current_date":    {},
		"lfx.components.helpers.id_generator":    {},
		"lfx.components.helpers.output_parser":   {},
		"lfx.components.helpers.store_message":   {},
		"lfx.components.input_output": {
			"ChatInput":  components.NewChatInput,
			"ChatOutput": components.NewChatOutput,
		},
		"lfx.components.openai": {},
		"lfx.components.openai.openai_chat_model": {
			"OpenAIModelComponent": components.NewOpenAIModelComponent,
		},
		"lfx.components.processing": {
			"PromptComponent": components.NewPromptComponent,
		},
		"lfx.components.processing.converter": {
			"TypeConverterComponent": components.NewTypeConverterComponent,
		},
		"lfx.base.models.openai_constants": {
			"OPENAI_MODEL_NAMES": components.OpenAIModels,
		},
		"lfx.base.models.anthropic_constants": {
			"ANTHROPIC_MODELS": components.AnthropicModels,
		},
		"lfx.base.models.google_generative_ai_constants": {
			"GOOGLE_GENERATIVE_AI_MODELS": components.GoogleGenerativeAIModels,
		},
		"lfx.base.models.groq_constants": {
			"GROQ_MODELS": components.GroqModels,
		},
		"lfx.base.models.ollama_constants": {
			"OLLAMA_MODELS": components.OllamaModels,
		},
		"lfx.base.models.aws_constants": {
			"AWS_MODELS": components.AWSModels,
		},
		"lfx.base.models.aiml_constants": {
			"AIML_MODELS": components.AIMLModels,
		},
		"lfx.base.models.novita_constants": {
			"NOVITA_MODELS": components.NovitaModels,
		},
		"lfx.base.models.sambanova_constants": {
			"SAMBANOVA_MODELS": components.SambaNovaModels,
		},
	}
	for name, attrs := range withAttrs {
		tree[name] = namespace.NewWithAttrs(name, attrs)
	}

	// Link children onto parents so traversal matches absolute lookup.
	for name, ns := range tree {
		if parent, ok := tree[namespace.Parent(name)]; ok {
			parent.SetAttr(namespace.Leaf(name), ns)
		}
	}

	for _, ns := range tree {
		loader.Register(ns)
	}
}
