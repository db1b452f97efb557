package components

// Provider model-name lists exposed through the canonical constants
// namespaces. The compatibility layer serves these under the legacy
// aiexec.base.models.*_constants names.
var (
	OpenAIModels = []string{
		"gpt-4o", "gpt-4o-mini", "gpt-4.1", "gpt-4.1-mini", "o3-mini",
	}
	AnthropicModels = []string{
		"claude-3-5-sonnet-latest", "claude-3-5-haiku-latest", "claude-3-opus-latest",
	}
	GoogleGenerativeAIModels = []string{
		"gemini-2.0-flash", "gemini-1.5-pro", "gemini-1.5-flash",
	}
	GroqModels = []string{
		"llama-3.3-70b-versatile", "llama-3.1-8b-instant", "mixtral-8x7b-32768",
	}
	OllamaModels = []string{
		"llama3.2", "mistral", "qwen2.5",
	}
	AWSModels = []string{
		"anthropic.claude-3-5-sonnet-20241022-v2:0", "amazon.nova-pro-v1:0",
	}
	AIMLModels = []string{
		"gpt-4o", "deepseek-chat",
	}
	NovitaModels = []string{
		"meta-llama/llama-3.1-70b-instruct",
	}
	SambaNovaModels = []string{
		"Meta-Llama-3.1-70B-Instruct",
	}
)
