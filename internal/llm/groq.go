package llm

import (
	"context"
	"errors"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1"

	transcribeModel  = "whisper-large-v3"
	transcribePrompt = "Specify context or spelling"
	targetLanguage   = "ar"

	chatModel      = "llama3-8b-8192"
	systemPrompt   = "only converse in arabic"
	maxReplyTokens = 250
)

// GroqClient serves transcription and chat completion through Groq's
// OpenAI-compatible API.
type GroqClient struct {
	api *openai.Client
}

func NewGroqClient(apiKey string) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &GroqClient{api: openai.NewClientWithConfig(cfg)}
}

func (g *GroqClient) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	resp, err := g.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:       transcribeModel,
		Reader:      audio,
		FilePath:    filename,
		Prompt:      transcribePrompt,
		Format:      openai.AudioResponseFormatJSON,
		Language:    targetLanguage,
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (g *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: maxReplyTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
