package ai

import (
	"context"
	"fmt"
	"strings"
)

// MaxCorrectionInput bounds the text sent for writing correction.
const MaxCorrectionInput = 1200

const schreibenTextPrompt = "You are a precise German teacher (B1/B2). " +
	"Always reply in a clear 4-part Markdown format:\n" +
	"1) **Titel (DE)**\n" +
	"2) **Verbesserter Text (DE)**\n" +
	"3) **Hinweise (DE)** — up to 3 bullets\n" +
	"4) **ترجمهٔ فارسی**\n" +
	"Keep it concise and exam-oriented."

const schreibenImagePrompt = "You are a precise German teacher (B1/B2) with OCR ability. " +
	"Input may contain an image. Extract readable German text (OCR) and correct it. " +
	"Return Markdown with: Titel, short OCR-Text, Verbesserter Text, up to 3 Hinweise (DE), ترجمهٔ فارسی."

// Truncate clips s to limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + " …"
}

// CorrectText sends a German text for exam-style correction and returns
// the model's Markdown card.
func (c *Client) CorrectText(ctx context.Context, text, uiLang string) (string, error) {
	prompt := fmt.Sprintf(
		"Interface language: %s.\n"+
			"Correct and improve this German text in exam style (B1/B2), "+
			"then provide up to 3 Hinweise and a Persian translation:\n%s",
		uiLang, Truncate(text, MaxCorrectionInput))

	return c.Complete(ctx, []Message{
		{Role: RoleSystem, Content: schreibenTextPrompt},
		{Role: RoleUser, Content: prompt},
	}, 0.3)
}

// CorrectImage sends a photo of handwritten or printed German for OCR
// plus correction. The caption, when present, is passed as a hint.
func (c *Client) CorrectImage(ctx context.Context, imageURL, caption, uiLang string) (string, error) {
	hint := ""
	if caption != "" {
		hint = "\nUser caption: " + caption
	}
	prompt := fmt.Sprintf("Interface language: %s.%s\nExtract and correct.", uiLang, hint)

	return c.CompleteWithImage(ctx, []Message{
		{Role: RoleSystem, Content: schreibenImagePrompt},
		{Role: RoleUser, Content: prompt},
	}, imageURL, 0.2)
}
