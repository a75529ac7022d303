package ai

import (
	"context"
	"fmt"
)

const grammarSystemPrompt = "You are a patient, structured German grammar tutor. " +
	"Return output in this 4-part format, concise and exam-oriented:\n" +
	"1) عنوان (DE) + ترجمه کوتاه فارسی\n" +
	"2) نکات کلیدی (۳ Bullet) به آلمانی + ترجمه کوتاه فارسی\n" +
	"3) 3 مثال کوتاه آلمانی با ترجمه‌ی فارسی\n" +
	"4) تمرین خیلی کوتاه (۳ سؤال) با پاسخ‌های مدل در پایان پیام\n"

// GrammarTip asks the model for a structured lesson on the given topic.
func (c *Client) GrammarTip(ctx context.Context, topic, uiLang string) (string, error) {
	prompt := fmt.Sprintf(
		"Interface language: %s. Explain the grammar topic '%s' with DE+FA as specified in the system message.",
		uiLang, topic)

	return c.Complete(ctx, []Message{
		{Role: RoleSystem, Content: grammarSystemPrompt},
		{Role: RoleUser, Content: prompt},
	}, 0.3)
}
