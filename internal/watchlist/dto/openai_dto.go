package dto

// OpenAPIReq is the request payload for OpenAI-compatible chat completion
// APIs (OpenAI itself and OpenRouter).
type OpenAPIReq struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAPIRes is the response from OpenAI-compatible chat completion APIs.
type OpenAPIRes struct {
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is a candidate completion.
type Choice struct {
	Message Message `json:"message"`
}

// Usage reports token consumption for rate limiting.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
