//nolint:revive //ignore
package mocks

import (
	"context"
	"encoding/json"

	"calendar.nationaldaily.com/apps/almanac/pkg/gemini"
)

type MockGeminiClient struct {
	// TextResponse is returned from GenerateText when TextErr is nil.
	TextResponse string
	TextErr      error
	// JSONResponse is unmarshalled into the destination of GenerateJSON.
	JSONResponse string
	JSONErr      error
	// Disabled makes Enabled report false.
	Disabled bool
	// OnJSON, when set, runs at the start of GenerateJSON. Tests use it to
	// hold a call open.
	OnJSON func()
	// LastTextPrompt records the prompt of the most recent GenerateText call.
	LastTextPrompt string
}

func NewMockGeminiClient() *MockGeminiClient {
	return &MockGeminiClient{
		TextResponse:   "generated text",
		TextErr:        nil,
		JSONResponse:   `{"subject":"mock subject","body":"mock body"}`,
		JSONErr:        nil,
		Disabled:       false,
		OnJSON:         nil,
		LastTextPrompt: "",
	}
}

func (client *MockGeminiClient) Enabled() bool {
	return !client.Disabled
}

func (client *MockGeminiClient) GenerateText(
	_ context.Context,
	_ string,
	prompt string,
) (string, error) {
	client.LastTextPrompt = prompt

	if client.TextErr != nil {
		return "", client.TextErr
	}

	return client.TextResponse, nil
}

func (client *MockGeminiClient) GenerateJSON(
	_ context.Context,
	_ string,
	_ string,
	_ *gemini.Schema,
	dst any,
) error {
	if client.OnJSON != nil {
		client.OnJSON()
	}

	if client.JSONErr != nil {
		return client.JSONErr
	}

	return json.Unmarshal([]byte(client.JSONResponse), dst)
}
