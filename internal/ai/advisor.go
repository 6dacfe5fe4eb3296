package ai

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	farmerPrompt = `As an agricultural assistant, provide information to help farmers with the following query:

%s

Structure your response with a summary, key information, recommendations, and next steps.`

	cropRotationPrompt = `As an agricultural advisor, provide detailed crop rotation advice based on the following context:

%s

Include recommendations on which crops to rotate, the benefits of proper rotation, and actionable next steps.`

	fertilizerPrompt = `As an agricultural advisor, provide detailed fertilizer recommendations based on the following context:

%s

Include advice on types of fertilizers, application rates, timing, and any safety or environmental considerations.`
)

// Advisor turns farmer questions into prompts. Its methods always return
// displayable text; generation failures are folded into the reply.
type Advisor struct {
	gen Generator
}

func NewAdvisor(gen Generator) *Advisor {
	return &Advisor{gen: gen}
}

func (a *Advisor) FarmerAdvice(ctx context.Context, query string) string {
	return a.ask(ctx, "farmer", fmt.Sprintf(farmerPrompt, query))
}

func (a *Advisor) CropRotationAdvice(ctx context.Context, query string) string {
	return a.ask(ctx, "crop_rotation", fmt.Sprintf(cropRotationPrompt, query))
}

func (a *Advisor) FertilizerRecommendation(ctx context.Context, query string) string {
	return a.ask(ctx, "fertilizer", fmt.Sprintf(fertilizerPrompt, query))
}

func (a *Advisor) ask(ctx context.Context, kind, prompt string) string {
	text, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		slog.Warn("Gemini request failed", "kind", kind, "error", err)
		return fmt.Sprintf("Error calling Gemini: %v", err)
	}
	return text
}
