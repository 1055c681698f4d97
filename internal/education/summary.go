package education

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GenAISummarizer drafts patient-education summaries with Gemini. The draft
// is a starting point for the pharmacist, never published unreviewed.
type GenAISummarizer struct {
	Client *genai.Client
}

var _ SummarizerPort = (*GenAISummarizer)(nil)

func (g *GenAISummarizer) DraftSummary(ctx context.Context, title, gpi string) (string, error) {
	if g.Client == nil {
		return "", errors.New("summary drafting is not configured")
	}

	prompt := fmt.Sprintf(
		"Write a short patient education summary (3-4 plain-language sentences) for the medication %q.", title)
	if strings.TrimSpace(gpi) != "" {
		prompt += fmt.Sprintf(" The pharmacy drug code (GPI) is %s.", gpi)
	}
	prompt += " Cover what the medication is for and one or two common usage reminders." +
		" Do not give dosing instructions. Do not mention that you are an assistant."

	genResp, err := g.Client.Models.GenerateContent(ctx, "gemini-2.5-flash", []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("generation error: %w", err)
	}

	var response string
	for _, candidate := range genResp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				response = part.Text
				break
			}
		}
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return "", errors.New("no response from Gemini")
	}
	return response, nil
}
