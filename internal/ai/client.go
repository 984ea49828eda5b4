// Package ai wraps the OpenAI chat-completions API behind the two
// collaborator calls the services need: trend analysis and video content
// generation. Callers own the fallback policy; this package only reports errors.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/maituanhoang070/ytcreatorapp/internal/apperr"
	"github.com/maituanhoang070/ytcreatorapp/internal/model"
)

const chatModel = openai.GPT4o

const trendPrompt = `Analyze current YouTube content trends for the "%s" category.

Respond with JSON in this exact shape:
{
  "keywords": ["5-10 popular keywords for this category"],
  "topics": [
    {"title": "Trend title", "description": "Short description", "score": 1-100}
  ]
}

Suggest 5-10 realistic topics suitable for YouTube videos in the %s category.`

const contentPrompt = `Write YouTube video content for the topic "%s" in the "%s" category.

About the channel: "%s"

Respond with JSON in this exact shape:
{
  "title": "Catchy video title under 100 characters",
  "description": "SEO-friendly description (300-500 words)",
  "script": "Full video script (1000-1500 words) with greeting, main content, and outro",
  "tags": ["10-15 relevant tags"]
}`

// Client calls the OpenAI API. It implements service.TrendAnalyzer and
// service.ContentGenerator.
type Client struct {
	api *openai.Client
}

// NewClient creates an AI client. An empty API key still produces a usable
// client; calls will fail and callers fall back to deterministic content.
func NewClient(apiKey string) *Client {
	return &Client{api: openai.NewClient(apiKey)}
}

// AnalyzeTrends asks the model for keyword/topic suggestions for a category.
func (c *Client) AnalyzeTrends(ctx context.Context, category string) (*model.TrendAnalysis, error) {
	raw, err := c.completeJSON(ctx, fmt.Sprintf(trendPrompt, category, category))
	if err != nil {
		return nil, err
	}

	var analysis model.TrendAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, apperr.External("Trend analysis returned malformed JSON", err)
	}
	if len(analysis.Keywords) == 0 || len(analysis.Topics) == 0 {
		return nil, apperr.External("Trend analysis returned an empty result", nil)
	}
	return &analysis, nil
}

// GenerateVideoContent asks the model for title/description/script/tags for a topic.
func (c *Client) GenerateVideoContent(ctx context.Context, topic, category, channelDescription string) (*model.VideoContent, error) {
	raw, err := c.completeJSON(ctx, fmt.Sprintf(contentPrompt, topic, category, channelDescription))
	if err != nil {
		return nil, err
	}

	var content model.VideoContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return nil, apperr.External("Content generation returned malformed JSON", err)
	}
	if content.Title == "" {
		return nil, apperr.External("Content generation returned an empty result", nil)
	}
	return &content, nil
}

func (c *Client) completeJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", apperr.External("AI completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperr.External("AI completion returned no choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}
