package llm

import (
	"context"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient serves streamed speech synthesis (tts-1, voice shimmer).
type OpenAIClient struct {
	api *openai.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{api: openai.NewClient(apiKey)}
}

func (o *OpenAIClient) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	resp, err := o.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Voice: openai.VoiceShimmer,
		Input: text,
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
