package components

// Output handle names, matching the serialized flow format.
const (
	OutMessageResponse    = "message_response"
	OutRetrieveMessagesDF = "retrieve_messages_dataframe"
	OutConvertToMessage   = "convert_to_message"
	OutBuildPrompt        = "build_prompt"
	OutTextResponse       = "text_response"
)

// ChatInput receives the user message entering a flow.
type ChatInput struct {
	Component
}

// NewChatInput creates a chat input component.
func NewChatInput() *ChatInput {
	return &ChatInput{Component: newComponent("ChatInput", "Chat Input")}
}

// MessageResponse is the handle carrying the received message.
func (c *ChatInput) MessageResponse() Handle {
	return c.Output(OutMessageResponse)
}

// ChatOutput delivers the final message leaving a flow.
type ChatOutput struct {
	Component
}

// NewChatOutput creates a chat output component.
func NewChatOutput() *ChatOutput {
	return &ChatOutput{Component: newComponent("ChatOutput", "Chat Output")}
}

// MemoryComponent retrieves stored chat history.
type MemoryComponent struct {
	Component
}

// NewMemoryComponent creates a memory retrieval component.
func NewMemoryComponent() *MemoryComponent {
	return &MemoryComponent{Component: newComponent("Memory", "Message History")}
}

// RetrieveMessagesDataFrame is the handle carrying retrieved history.
func (c *MemoryComponent) RetrieveMessagesDataFrame() Handle {
	return c.Output(OutRetrieveMessagesDF)
}

// TypeConverterComponent converts between message representations.
type TypeConverterComponent struct {
	Component
}

// NewTypeConverterComponent creates a type converter component.
func NewTypeConverterComponent() *TypeConverterComponent {
	return &TypeConverterComponent{Component: newComponent("TypeConverter", "Type Convert")}
}

// ConvertToMessage is the handle carrying the converted value.
func (c *TypeConverterComponent) ConvertToMessage() Handle {
	return c.Output(OutConvertToMessage)
}

// PromptComponent renders a template with wired-in variables.
type PromptComponent struct {
	Component
}

// NewPromptComponent creates a prompt templating component.
func NewPromptComponent() *PromptComponent {
	return &PromptComponent{Component: newComponent("Prompt", "Prompt")}
}

// BuildPrompt is the handle carrying the rendered prompt.
func (c *PromptComponent) BuildPrompt() Handle {
	return c.Output(OutBuildPrompt)
}

// OpenAIModelComponent invokes an OpenAI chat model.
type OpenAIModelComponent struct {
	Component
}

// NewOpenAIModelComponent creates an OpenAI model component.
func NewOpenAIModelComponent() *OpenAIModelComponent {
	return &OpenAIModelComponent{Component: newComponent("OpenAIModel", "OpenAI")}
}

// TextResponse is the handle carrying the model's reply.
func (c *OpenAIModelComponent) TextResponse() Handle {
	return c.Output(OutTextResponse)
}
