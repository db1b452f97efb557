// Package compat wires the backwards-compatibility layer: legacy aiexec
// dotted names forward to the canonical lfx tree, and aiexec-only
// namespaces load from their own source files.
package compat

// Mapping pairs a legacy shadow name with its canonical target.
type Mapping struct {
	Shadow    string
	Canonical string
}

// Mappings is processed in declared order. A child listed before its
// parent would not get hierarchy-linked; keep parents first when editing.
var Mappings = []Mapping{
	// Core base module
	{"aiexec.base", "lfx.base"},
	// Inputs module - critical for class identity
	{"aiexec.inputs", "lfx.inputs"},
	{"aiexec.inputs.inputs", "lfx.inputs.inputs"},
	// Schema modules - also critical for class identity
	{"aiexec.schema", "lfx.schema"},
	{"aiexec.schema.data", "lfx.schema.data"},
	{"aiexec.schema.serialize", "lfx.schema.serialize"},
	// Template modules
	{"aiexec.template", "lfx.template"},
	{"aiexec.template.field", "lfx.template.field"},
	{"aiexec.template.field.base", "lfx.template.field.base"},
	// Components modules
	{"aiexec.components", "lfx.components"},
	{"aiexec.components.helpers", "lfx.components.helpers"},
	{"aiexec.components.helpers.calculator_core", "lfx.components.helpers.calculator_core"},
	{"aiexec.components.helpers.create_list", "lfx.components.helpers.create_list"},
	{"aiexec.components.helpers.current_date", "lfx.components.helpers.current_date"},
	{"aiexec.components.helpers.id_generator", "lfx.components.helpers.id_generator"},
	{"aiexec.components.helpers.memory", "lfx.components.helpers.memory"},
	{"aiexec.components.helpers.output_parser", "lfx.components.helpers.output_parser"},
	{"aiexec.components.helpers.store_message", "lfx.components.helpers.store_message"},
	{"aiexec.components.input_output", "lfx.components.input_output"},
	{"aiexec.components.openai", "lfx.components.openai"},
	{"aiexec.components.openai.openai_chat_model", "lfx.components.openai.openai_chat_model"},
	{"aiexec.components.processing", "lfx.components.processing"},
	{"aiexec.components.processing.converter", "lfx.components.processing.converter"},
	// Individual modules that exist in lfx
	{"aiexec.base.agents", "lfx.base.agents"},
	{"aiexec.base.chains", "lfx.base.chains"},
	{"aiexec.base.data", "lfx.base.data"},
	{"aiexec.base.data.utils", "lfx.base.data.utils"},
	{"aiexec.base.document_transformers", "lfx.base.document_transformers"},
	{"aiexec.base.embeddings", "lfx.base.embeddings"},
	{"aiexec.base.flow_processing", "lfx.base.flow_processing"},
	{"aiexec.base.io", "lfx.base.io"},
	{"aiexec.base.io.chat", "lfx.base.io.chat"},
	{"aiexec.base.io.text", "lfx.base.io.text"},
	{"aiexec.base.langchain_utilities", "lfx.base.langchain_utilities"},
	{"aiexec.base.memory", "lfx.base.memory"},
	{"aiexec.base.models", "lfx.base.models"},
	{"aiexec.base.models.google_generative_ai_constants", "lfx.base.models.google_generative_ai_constants"},
	{"aiexec.base.models.openai_constants", "lfx.base.models.openai_constants"},
	{"aiexec.base.models.anthropic_constants", "lfx.base.models.anthropic_constants"},
	{"aiexec.base.models.aiml_constants", "lfx.base.models.aiml_constants"},
	{"aiexec.base.models.aws_constants", "lfx.base.models.aws_constants"},
	{"aiexec.base.models.groq_constants", "lfx.base.models.groq_constants"},
	{"aiexec.base.models.novita_constants", "lfx.base.models.novita_constants"},
	{"aiexec.base.models.ollama_constants", "lfx.base.models.ollama_constants"},
	{"aiexec.base.models.sambanova_constants", "lfx.base.models.sambanova_constants"},
	{"aiexec.base.prompts", "lfx.base.prompts"},
	{"aiexec.base.prompts.api_utils", "lfx.base.prompts.api_utils"},
	{"aiexec.base.prompts.utils", "lfx.base.prompts.utils"},
	{"aiexec.base.textsplitters", "lfx.base.textsplitters"},
	{"aiexec.base.tools", "lfx.base.tools"},
	{"aiexec.base.vectorstores", "lfx.base.vectorstores"},
}

// Override names an aiexec-only namespace served from its own source
// file. Paths are relative to the overrides directory and best effort:
// a missing file is skipped because not every deployment ships it.
type Override struct {
	Shadow string
	Path   string
}

// Overrides is processed after Mappings, in declared order.
var Overrides = []Override{
	{"aiexec.base.data.kb_utils", "base/data/kb_utils.go"},
	{"aiexec.base.knowledge_bases", "base/knowledge_bases/knowledge_bases.go"},
	{"aiexec.components.knowledge_bases", "components/knowledge_bases/knowledge_bases.go"},
}
