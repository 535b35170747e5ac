package agent

import "google.golang.org/genai"

const advisorModel = "gemini-2.5-flash"

const advisorInstruction = `You are a careful personal investment-fund advisor.
You answer questions about the user's fund portfolio, reproduced below in
markdown. Ground every answer on those figures, say so when a question cannot
be answered from them, and never invent holdings or prices. You provide
context and explanations, not regulated financial advice.

`

// NewAdvisor creates the portfolio advisor expert. The report is the current
// portfolio rendered as markdown, handed to the model as system context.
func NewAdvisor(report string) *Expert {
	return &Expert{
		Name:        "advisor",
		Description: "Answers questions about the fund portfolio.",
		ModelName:   advisorModel,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: advisorInstruction + report}},
			},
		},
	}
}
