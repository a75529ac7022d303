package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/deutschbuddy/pkg/models"
)

func TestChunkTextUnderLimit(t *testing.T) {
	parts := chunkText("hallo", 10)
	assert.Equal(t, []string{"hallo"}, parts)
}

func TestChunkTextSplitsLongMessages(t *testing.T) {
	long := strings.Repeat("ä", telegramMessageLimit+100)
	parts := chunkText(long, telegramMessageLimit)

	require.Len(t, parts, 2)
	assert.Len(t, []rune(parts[0]), telegramMessageLimit)
	assert.Len(t, []rune(parts[1]), 100)
	assert.Equal(t, long, strings.Join(parts, ""))
}

func TestPostLanguageWelcomeOffersPlacementWithoutLevel(t *testing.T) {
	p := models.DefaultProfile()
	p.Language = models.LangFa

	text, kb := postLanguageWelcome(p)
	assert.Contains(t, text, "تعیین‌سطح")
	require.NotNil(t, kb)
	assert.Equal(t, "level:start", *kb.InlineKeyboard[0][0].CallbackData)
}

func TestPostLanguageWelcomeOffersRerunWithLevel(t *testing.T) {
	p := models.DefaultProfile()
	p.Language = models.LangDe
	p.Level = models.LevelB1

	text, kb := postLanguageWelcome(p)
	assert.Contains(t, text, "B1")
	require.NotNil(t, kb)
	assert.Equal(t, "level:continue", *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "level:redo", *kb.InlineKeyboard[1][0].CallbackData)
}

func TestProfileCard(t *testing.T) {
	p := models.DefaultProfile()
	p.Level = models.LevelB2
	p.Goal = models.GoalReview
	p.DailyStreak = 7
	p.Progress["schreiben"] = 3
	p.Progress["wortschatz"] = 24

	card := profileCard(p)
	assert.Contains(t, card, "B2")
	assert.Contains(t, card, "7")
	assert.Contains(t, card, "Schreiben=3")
	assert.Contains(t, card, "24")
}

func TestMainMenuKeyboardCoversAllSections(t *testing.T) {
	for _, lang := range []string{models.LangFa, models.LangDe} {
		kb := mainMenuKeyboard(lang)
		var datas []string
		for _, row := range kb.InlineKeyboard {
			for _, btn := range row {
				datas = append(datas, *btn.CallbackData)
			}
		}
		for _, want := range []string{"menu:daily", "menu:schreiben", "menu:wortschatz", "menu:grammar", "menu:quiz", "menu:dict", "menu:profile"} {
			assert.Contains(t, datas, want, "lang %s", lang)
		}
	}
}
