// Package agent provides a small Gemini-backed assistant that explains a
// computed tax report in plain language.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Expert represents a chat with a business expert.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewAccountant returns the tax accountant expert. It answers questions
// about a report it is handed, and nothing else.
func NewAccountant() *Expert {
	return &Expert{
		Name:      "accountant",
		ModelName: "gemini-2.5-flash",
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: "You are a careful tax accountant. " +
					"You are given a computed capital-gains tax report in markdown, " +
					"followed by a question about it. Answer from the report's figures only; " +
					"if the report does not contain the answer, say so. Keep answers short."}},
			},
		},
	}
}

// Start creates the underlying chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends the parts to the expert and returns its textual answer.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (string, error) {
	if e.chat == nil {
		return "", fmt.Errorf("expert %s has not been started", e.Name)
	}
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from expert %s", e.Name)
	}
	var answer string
	for _, p := range resp.Candidates[0].Content.Parts {
		answer += p.Text
	}
	return answer, nil
}
