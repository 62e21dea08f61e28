package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const BaseURL = "https://generativelanguage.googleapis.com/v1beta"

var ErrEmptyResponse = errors.New("model returned no candidates")

type client struct {
	apiKey string
}

func New(apiKey string) Client {
	return client{
		apiKey: apiKey,
	}
}

func (client client) Enabled() bool {
	return client.apiKey != ""
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Schema is the subset of the API's OpenAPI-style response schema used to
// force structured JSON output.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

func (client client) generateContent(
	ctx context.Context,
	model string,
	prompt string,
	cfg *generationConfig,
) (string, error) {
	endpoint := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		BaseURL,
		model,
		client.apiKey,
	)

	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: cfg,
	}

	marshalled, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		bytes.NewBuffer(marshalled),
	)
	if err != nil {
		return "", err
	}

	req.Header.Add("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("non-200 from model API: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	var parsed generateResponse
	err = json.Unmarshal(body, &parsed)
	if err != nil {
		return "", err
	}

	if len(parsed.Candidates) == 0 ||
		len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func (client client) GenerateText(
	ctx context.Context,
	model string,
	prompt string,
) (string, error) {
	return client.generateContent(ctx, model, prompt, nil)
}

func (client client) GenerateJSON(
	ctx context.Context,
	model string,
	prompt string,
	schema *Schema,
	dst any,
) error {
	text, err := client.generateContent(ctx, model, prompt, &generationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(text), dst)
}
