package bot

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/deutschbuddy/internal/daily"
	"github.com/example/deutschbuddy/internal/grammar"
	"github.com/example/deutschbuddy/internal/leveltest"
	"github.com/example/deutschbuddy/internal/quiz"
	"github.com/example/deutschbuddy/pkg/models"
)

const aiRequestTimeout = 90 * time.Second

// wortschatzDailyCount is the size of the daily vocabulary list.
const wortschatzDailyCount = 8

// ---- Onboarding ----

func (b *Bot) handleGreet(chatID int64) {
	b.sessions.Touch(chatID, "")
	b.sendText(chatID, greetText(), languageChoiceKeyboard())
}

func (b *Bot) handleLanguageChoice(chatID int64, lang string) {
	if lang != models.LangFa && lang != models.LangDe {
		return
	}
	if err := b.store.Update(chatID, func(p *models.Profile) { p.Language = lang }); err != nil {
		log.Printf("Error saving language for chat %d: %v", chatID, err)
	}
	text, kb := postLanguageWelcome(b.store.Get(chatID))
	b.sendText(chatID, text, kb)
}

func (b *Bot) handleGoalChoice(chatID int64, goal string) {
	if goal != models.GoalLernen && goal != models.GoalReview {
		return
	}
	if err := b.store.Update(chatID, func(p *models.Profile) { p.Goal = goal }); err != nil {
		log.Printf("Error saving goal for chat %d: %v", chatID, err)
	}
	b.showMainMenu(chatID)
}

// ---- Menu and home ----

func (b *Bot) showMainMenu(chatID int64) {
	b.sessions.Touch(chatID, "menu")
	lang := b.lang(chatID)
	b.sendText(chatID, mainMenuTitle(lang), mainMenuKeyboard(lang))
}

func (b *Bot) handleMenuAction(chatID int64, action string) {
	b.sessions.Touch(chatID, action)
	lang := b.lang(chatID)

	switch action {
	case "daily":
		b.handleDaily(chatID)
	case "wortschatz":
		b.handleWortschatz(chatID)
	case "quiz":
		b.handleQuizStart(chatID, false)
	case "schreiben":
		b.sendText(chatID, schreibenPrompt(lang), backMenuKeyboard(lang))
	case "grammar":
		b.sendText(chatID, grammarHint(lang), backMenuKeyboard(lang))
	case "dict":
		b.sendText(chatID, dictHint(lang), backMenuKeyboard(lang))
	case "profile":
		b.sendText(chatID, profileCard(b.store.Get(chatID)), backMenuKeyboard(lang))
	case "back":
		b.sendText(chatID, mainMenuTitle(lang), mainMenuKeyboard(lang))
	default:
		b.sendText(chatID, mainMenuTitle(lang), mainMenuKeyboard(lang))
	}
}

func (b *Bot) handleHomeAction(chatID int64, action string) {
	if action == "continue" {
		action = b.sessions.LastContext(chatID)
	}
	switch action {
	case "daily", "wortschatz", "grammar", "schreiben":
		b.handleMenuAction(chatID, action)
	default:
		b.showMainMenu(chatID)
	}
}

// maybeWelcomeBack shows the home card when the chat has been quiet for a
// while, then records the activity.
func (b *Bot) maybeWelcomeBack(chatID int64) {
	show := b.sessions.ShouldWelcomeBack(chatID)
	b.sessions.Touch(chatID, "")
	if !show {
		return
	}

	p := b.store.Get(chatID)
	header := "🏠 صفحهٔ خانه"
	if p.Language == models.LangDe {
		header = "🏠 Startseite"
	}
	b.sendText(chatID, header+"\n\n"+b.homeSummary(chatID, p), homeKeyboard(p.Language))
}

func (b *Bot) homeSummary(chatID int64, p models.Profile) string {
	level := p.Level
	if level == "" {
		level = models.LevelA1
	}
	due := b.srs.DueCount(p.SRS, time.Now())
	pos := b.grammar.Current(chatID)

	if p.Language == models.LangDe {
		lines := []string{
			fmt.Sprintf("👋 Willkommen zurück! (Niveau: *%s*)", level),
			fmt.Sprintf("🔥 Tages-Streak: %d", p.DailyStreak),
			fmt.Sprintf("🗓️ Fällige Wörter: %d", due),
		}
		if pos.Cur != "" {
			lines = append(lines, "📘 Aktuelle Grammatik: "+pos.Cur)
		}
		return strings.Join(lines, "\n")
	}
	lines := []string{
		fmt.Sprintf("👋 خوش اومدی! (سطح: *%s*)", level),
		fmt.Sprintf("🔥 زنجیرهٔ روزانه: %d", p.DailyStreak),
		fmt.Sprintf("🗓️ لغات موعددار: %d", due),
	}
	if pos.Cur != "" {
		lines = append(lines, "📘 گرامر فعلی: "+pos.Cur)
	}
	return strings.Join(lines, "\n")
}

// ---- Level placement ----

func (b *Bot) handleLevelTestStart(chatID int64) {
	b.sessions.Touch(chatID, "level")
	q, index, total := b.placement.Start(chatID)
	b.sendLevelQuestion(chatID, q, index, total)
}

func (b *Bot) sendLevelQuestion(chatID int64, q leveltest.Question, index, total int) {
	lang := b.lang(chatID)
	pre := "سؤال"
	if lang == models.LangDe {
		pre = "Frage"
	}

	letters := []string{"A", "B", "C", "D"}
	var rows [][]MenuButton
	for i, opt := range q.Options {
		rows = append(rows, []MenuButton{{
			Text:         fmt.Sprintf("%s. %s", letters[i%len(letters)], opt),
			CallbackData: fmt.Sprintf("ans:%d:%d", index, i),
		}})
	}

	text := fmt.Sprintf("%s %d/%d:\n%s", pre, index+1, total, q.Text)
	b.sendText(chatID, text, keyboardPtr(createKeyboard(rows)))
}

func (b *Bot) handleLevelTestAnswer(chatID int64, messageID int, data string) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 {
		return
	}
	index, err1 := strconv.Atoi(parts[1])
	option, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return
	}

	outcome, ok := b.placement.Answer(chatID, index, option)
	if !ok {
		return
	}

	mark := "❌"
	if outcome.Correct {
		mark = "✅"
	}
	edit := tgbotapi.NewEditMessageText(chatID, messageID, mark)
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("Error editing message for chat %d: %v", chatID, err)
	}

	if !outcome.Finished {
		if outcome.Next != nil {
			b.sendLevelQuestion(chatID, *outcome.Next, outcome.NextIndex, outcome.Total)
		}
		return
	}

	lang := b.lang(chatID)
	post := "می‌خوای با همین سطح ادامه بدیم یا صرفاً مرور کنی؟"
	if lang == models.LangDe {
		post = "Möchtest du mit diesem Niveau weiterlernen oder nur wiederholen?"
	}
	b.sendText(chatID, levelMessage(outcome.Level, lang)+"\n\n"+post, goalKeyboard(lang))
}

// ---- Wortschatz daily list ----

func (b *Bot) handleWortschatz(chatID int64) {
	b.sessions.Touch(chatID, "wortschatz")
	lang := b.lang(chatID)

	bank, err := b.words.All()
	if err != nil {
		log.Printf("Error loading word bank: %v", err)
		b.sendText(chatID, errorText(lang), nil)
		return
	}
	if len(bank) == 0 {
		b.sendText(chatID, errorText(lang), nil)
		return
	}

	p := b.store.Get(chatID)
	var candidates []models.Word
	for _, w := range bank {
		if !p.HasSeen(w.ID) {
			candidates = append(candidates, w)
		}
	}
	// After a full cycle every word becomes eligible again.
	cycled := len(candidates) == 0
	if cycled {
		candidates = bank
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	count := wortschatzDailyCount
	if count > len(candidates) {
		count = len(candidates)
	}
	pick := candidates[:count]

	header := "📚 واژگان امروز:"
	if lang == models.LangDe {
		header = "📚 Heutiger Wortschatz:"
	}
	lines := []string{header}
	for _, w := range pick {
		lines = append(lines, fmt.Sprintf("- %s (%s) — %s", w.German, w.Level, w.Persian))
	}

	err = b.store.Update(chatID, func(p *models.Profile) {
		if cycled {
			p.SeenWords = p.SeenWords[:0]
		}
		for _, w := range pick {
			p.MarkSeen(w.ID)
		}
		p.Bump("wortschatz", len(pick))
	})
	if err != nil {
		log.Printf("Error saving wortschatz progress for chat %d: %v", chatID, err)
	}

	b.sendText(chatID, strings.Join(lines, "\n"), backMenuKeyboard(lang))
}

// ---- Vocabulary quiz ----

func (b *Bot) handleQuizStart(chatID int64, training bool) {
	b.sessions.Touch(chatID, "wortschatz")
	lang := b.lang(chatID)

	bank, err := b.words.All()
	if err != nil {
		log.Printf("Error loading word bank: %v", err)
		b.sendText(chatID, errorText(lang), nil)
		return
	}

	sess, ok := b.quiz.Start(chatID, bank, training)
	if !ok {
		b.sendText(chatID, errorText(lang), nil)
		return
	}
	q, _ := sess.Current()
	b.sendQuizQuestion(chatID, q, sess.Index, len(sess.Questions))
}

func (b *Bot) sendQuizQuestion(chatID int64, q quiz.Question, index, total int) {
	lang := b.lang(chatID)
	pre := "سؤال"
	if lang == models.LangDe {
		pre = "Frage"
	}

	var rows [][]MenuButton
	for i, opt := range q.Options {
		rows = append(rows, []MenuButton{{
			Text:         opt,
			CallbackData: fmt.Sprintf("quiz:%d:%d", index, i),
		}})
	}

	text := fmt.Sprintf("%s %d/%d:\n%s", pre, index+1, total, q.Prompt)
	b.sendText(chatID, text, keyboardPtr(createKeyboard(rows)))
}

func (b *Bot) handleQuizAnswer(chatID int64, data string) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 {
		return
	}
	index, err1 := strconv.Atoi(parts[1])
	option, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return
	}

	result, ok := b.quiz.Answer(chatID, index, option)
	if !ok {
		return
	}
	lang := b.lang(chatID)

	var feedback string
	if result.Correct {
		if lang == models.LangDe {
			feedback = "✅ Richtig!"
		} else {
			feedback = "✅ درسته!"
		}
	} else {
		if lang == models.LangDe {
			feedback = fmt.Sprintf("❌ Richtige Antwort: *%s*", result.CorrectOption)
		} else {
			feedback = fmt.Sprintf("❌ پاسخ درست: *%s*", result.CorrectOption)
		}
	}

	if !result.Completed {
		b.sendText(chatID, feedback, nil)
		if sess, ok := b.quiz.Session(chatID); ok {
			if q, ok := sess.Current(); ok {
				b.sendQuizQuestion(chatID, q, sess.Index, len(sess.Questions))
			}
		}
		return
	}

	var summary string
	if lang == models.LangDe {
		summary = fmt.Sprintf("%s\n\n🏁 Quiz beendet: *%d/%d* richtig.", feedback, result.Score, result.Total)
	} else {
		summary = fmt.Sprintf("%s\n\n🏁 آزمون تمام شد: *%d/%d* درست.", feedback, result.Score, result.Total)
	}
	b.sendText(chatID, summary, againOrBackKeyboard(lang, "menu:quiz", "🎯 آزمون دوباره", "🎯 Noch ein Quiz"))
}

// ---- Daily challenge ----

func (b *Bot) handleDaily(chatID int64) {
	b.sessions.Touch(chatID, "daily")
	lang := b.lang(chatID)

	task, state, err := b.daily.Request(chatID)
	if err != nil {
		log.Printf("Error issuing daily challenge for chat %d: %v", chatID, err)
		b.sendText(chatID, errorText(lang), nil)
		return
	}

	if state == daily.StateDone {
		var text string
		if lang == models.LangDe {
			text = "✅ Deine heutige Challenge ist erledigt. Morgen gibt es eine neue!"
		} else {
			text = "✅ تمرین امروز را انجام داده‌ای.\nفردا برمی‌گردم با تمرین جدید!"
		}
		b.sendText(chatID, text, againOrBackKeyboard(lang, "daily:extra", "💪 تمرین اضافه", "💪 Extra-Übung"))
		return
	}

	b.sendDailyTask(chatID, task, state == daily.StateNew)
}

func (b *Bot) handleDailyExtra(chatID int64) {
	b.sessions.Touch(chatID, "daily")
	task := b.daily.RequestExtra(chatID)
	b.sendDailyTask(chatID, task, false)
}

func (b *Bot) sendDailyTask(chatID int64, task *models.DailyTask, fresh bool) {
	lang := b.lang(chatID)

	header := "📅 چالش امروز"
	if lang == models.LangDe {
		header = "📅 Heutige Challenge"
	}
	if task.Training {
		if lang == models.LangDe {
			header = "💪 Extra-Übung"
		} else {
			header = "💪 تمرین اضافه"
		}
	}

	var body string
	switch task.Mode {
	case models.TaskModeGap:
		hint := "پاسخ را همین‌جا بنویس."
		if lang == models.LangDe {
			hint = "Antworte hier mit dem fehlenden Wort."
		}
		body = fmt.Sprintf("« %s »\n%s", task.Prompt, hint)
	default:
		ask := "معنی واژهٔ زیر چیست؟"
		if lang == models.LangDe {
			ask = "Was bedeutet dieses Wort?"
		}
		body = fmt.Sprintf("%s\n*%s* (%s)", ask, task.Prompt, task.Level)
	}

	text := header + "\n\n" + body
	if fresh {
		streak := b.store.Get(chatID).DailyStreak
		if lang == models.LangDe {
			text += fmt.Sprintf("\n\n🔥 Tages-Streak: %d", streak)
		} else {
			text += fmt.Sprintf("\n\n🔥 زنجیرهٔ روزانه: %d", streak)
		}
	}

	if task.Mode == models.TaskModeMCQ {
		var rows [][]MenuButton
		for i, opt := range task.Options {
			rows = append(rows, []MenuButton{{
				Text:         opt,
				CallbackData: fmt.Sprintf("daily:opt:%d", i),
			}})
		}
		rows = append(rows, []MenuButton{{Text: backLabel(lang), CallbackData: "menu:back"}})
		b.sendText(chatID, text, keyboardPtr(createKeyboard(rows)))
		return
	}
	b.sendText(chatID, text, backMenuKeyboard(lang))
}

func (b *Bot) handleDailyTextAnswer(chatID int64, text string) {
	result, ok := b.daily.AnswerText(chatID, text)
	if !ok {
		return
	}
	b.sendDailyFeedback(chatID, result.Correct, result.Expected)
}

func (b *Bot) handleDailyOptionAnswer(chatID int64, optionStr string) {
	option, err := strconv.Atoi(optionStr)
	if err != nil {
		return
	}
	result, ok := b.daily.AnswerOption(chatID, option)
	if !ok {
		return
	}
	expected := ""
	if result.Task.Mode == models.TaskModeMCQ && result.Task.Answer < len(result.Task.Options) {
		expected = result.Task.Options[result.Task.Answer]
	}
	b.sendDailyFeedback(chatID, result.Correct, expected)
}

func (b *Bot) sendDailyFeedback(chatID int64, correct bool, expected string) {
	lang := b.lang(chatID)
	var msg string
	if correct {
		if lang == models.LangDe {
			msg = "✅ Super! Richtig beantwortet."
		} else {
			msg = "✅ عالی! پاسخ درست بود."
		}
	} else {
		if lang == models.LangDe {
			msg = fmt.Sprintf("❌ Korrekte Antwort: *%s*", expected)
		} else {
			msg = fmt.Sprintf("❌ پاسخ دقیق‌تر: *%s*", expected)
		}
	}
	b.sendText(chatID, msg, backMenuKeyboard(lang))
}

// ---- Grammar ----

func (b *Bot) handleGrammar(chatID int64, override string) {
	b.sessions.Touch(chatID, "grammar")
	lang := b.lang(chatID)
	override = strings.TrimSpace(override)

	if override != "" {
		body, err := b.grammarTip(chatID, override)
		if err != nil {
			b.sendText(chatID, errorText(lang), nil)
			return
		}
		if err := b.grammar.Record(chatID, override); err != nil {
			log.Printf("Error recording grammar topic for chat %d: %v", chatID, err)
		}
		pos := grammar.Position{Level: b.grammar.Current(chatID).Level, Cur: override}
		b.sendText(chatID, grammarHeader(lang, pos)+"\n\n"+body, grammarNavKeyboard(lang, pos))
		return
	}

	pos, err := b.grammar.Visit(chatID)
	if err != nil {
		log.Printf("Error visiting grammar topic for chat %d: %v", chatID, err)
		b.sendText(chatID, errorText(lang), nil)
		return
	}
	body, err := b.grammarTip(chatID, pos.Cur)
	if err != nil {
		b.sendText(chatID, errorText(lang), nil)
		return
	}
	b.sendText(chatID, grammarHeader(lang, pos)+"\n\n"+body, grammarNavKeyboard(lang, pos))
}

func (b *Bot) handleGrammarNav(chatID int64, delta int) {
	b.sessions.Touch(chatID, "grammar")
	lang := b.lang(chatID)

	pos, err := b.grammar.Advance(chatID, delta)
	if err != nil {
		log.Printf("Error advancing grammar for chat %d: %v", chatID, err)
		b.sendText(chatID, errorText(lang), nil)
		return
	}
	body, err := b.grammarTip(chatID, pos.Cur)
	if err != nil {
		b.sendText(chatID, errorText(lang), nil)
		return
	}
	b.sendText(chatID, grammarHeader(lang, pos)+"\n\n"+body, grammarNavKeyboard(lang, pos))
}

func (b *Bot) grammarTip(chatID int64, topic string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), aiRequestTimeout)
	defer cancel()

	body, err := b.ai.GrammarTip(ctx, topic, b.lang(chatID))
	if err != nil {
		log.Printf("Error generating grammar tip for chat %d: %v", chatID, err)
	}
	return body, err
}

func grammarHeader(lang string, pos grammar.Position) string {
	if lang == models.LangDe {
		lines := []string{fmt.Sprintf("📘 *Grammatik-Pfad Stufe %s*", pos.Level)}
		if pos.Prev != "" {
			lines = append(lines, "- Vorher: _"+pos.Prev+"_")
		}
		lines = append(lines, "- Aktuell: *"+pos.Cur+"*")
		if pos.Next != "" {
			lines = append(lines, "- Nächste: _"+pos.Next+"_")
		}
		return strings.Join(lines, "\n")
	}
	lines := []string{"📘 *مسیر گرامر سطح* " + pos.Level}
	if pos.Prev != "" {
		lines = append(lines, "- قبلی: _"+pos.Prev+"_")
	}
	lines = append(lines, "- فعلی: *"+pos.Cur+"*")
	if pos.Next != "" {
		lines = append(lines, "- بعدی: _"+pos.Next+"_")
	}
	return strings.Join(lines, "\n")
}

func grammarNavKeyboard(lang string, pos grammar.Position) *tgbotapi.InlineKeyboardMarkup {
	var nav []MenuButton
	if pos.Prev != "" {
		label := "◀️ قبلی"
		if lang == models.LangDe {
			label = "◀️ Zurück"
		}
		nav = append(nav, MenuButton{Text: label, CallbackData: "grammar:prev"})
	}
	if pos.Next != "" {
		label := "بعدی ▶️"
		if lang == models.LangDe {
			label = "Weiter ▶️"
		}
		nav = append(nav, MenuButton{Text: label, CallbackData: "grammar:next"})
	}

	var rows [][]MenuButton
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, []MenuButton{{Text: backLabel(lang), CallbackData: "menu:back"}})
	return keyboardPtr(createKeyboard(rows))
}

// ---- Dictionary ----

func (b *Bot) handleDict(chatID int64, query string) {
	b.sessions.Touch(chatID, "dict")
	lang := b.lang(chatID)

	query = strings.TrimSpace(query)
	if query == "" {
		b.sendText(chatID, dictHint(lang), backMenuKeyboard(lang))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), aiRequestTimeout)
	defer cancel()

	out, err := b.ai.Lookup(ctx, query)
	if err != nil {
		log.Printf("Dictionary lookup failed for %q: %v", query, err)
		b.sendText(chatID, errorText(lang), nil)
		return
	}
	b.sendText(chatID, out, againOrBackKeyboard(lang, "dict:again", "🔎 جستجوی کلمهٔ دیگر", "🔎 Neues Wort suchen"))
}

// ---- Schreiben ----

func (b *Bot) handleSchreibenText(chatID int64, text string) {
	b.sessions.Touch(chatID, "schreiben")
	lang := b.lang(chatID)

	ctx, cancel := context.WithTimeout(context.Background(), aiRequestTimeout)
	defer cancel()

	answer, err := b.ai.CorrectText(ctx, text, lang)
	if err != nil {
		log.Printf("Schreiben correction failed for chat %d: %v", chatID, err)
		b.sendText(chatID, errorText(lang), nil)
		return
	}

	if err := b.store.Update(chatID, func(p *models.Profile) { p.Bump("schreiben", 1) }); err != nil {
		log.Printf("Error saving schreiben progress for chat %d: %v", chatID, err)
	}
	b.sendText(chatID, answer, againOrBackKeyboard(lang, "schreiben:again", "✍️ متن دیگر", "✍️ Neuer Text"))
}

func (b *Bot) handleSchreibenPhoto(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	b.sessions.Touch(chatID, "schreiben")
	lang := b.lang(chatID)

	// Largest photo size is last.
	photo := msg.Photo[len(msg.Photo)-1]
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: photo.FileID})
	if err != nil {
		log.Printf("Error resolving photo for chat %d: %v", chatID, err)
		b.sendText(chatID, errorText(lang), nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), aiRequestTimeout)
	defer cancel()

	answer, err := b.ai.CorrectImage(ctx, file.Link(b.token), msg.Caption, lang)
	if err != nil {
		log.Printf("Schreiben image correction failed for chat %d: %v", chatID, err)
		b.sendText(chatID, errorText(lang), nil)
		return
	}

	if err := b.store.Update(chatID, func(p *models.Profile) { p.Bump("schreiben", 1) }); err != nil {
		log.Printf("Error saving schreiben progress for chat %d: %v", chatID, err)
	}
	b.sendText(chatID, answer, againOrBackKeyboard(lang, "schreiben:again", "✍️ متن دیگر", "✍️ Neuer Text"))
}

// ---- Word list import ----

func (b *Bot) handleImportDocument(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	delete(b.awaitingImport, chatID)

	doc := msg.Document
	ext := strings.ToLower(filepath.Ext(doc.FileName))
	if ext != ".xlsx" && ext != ".csv" {
		b.sendText(chatID, "Unsupported file type, expected .xlsx or .csv.", nil)
		return
	}

	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: doc.FileID})
	if err != nil {
		log.Printf("Error resolving import file: %v", err)
		b.sendText(chatID, errorText(b.lang(chatID)), nil)
		return
	}

	local, err := downloadToTemp(file.Link(b.token), ext)
	if err != nil {
		log.Printf("Error downloading import file: %v", err)
		b.sendText(chatID, errorText(b.lang(chatID)), nil)
		return
	}
	defer os.Remove(local)

	result, err := b.words.ImportFile(local)
	if err != nil {
		log.Printf("Error importing word list: %v", err)
		b.sendText(chatID, errorText(b.lang(chatID)), nil)
		return
	}

	summary := fmt.Sprintf("Imported %d words, skipped %d rows.", result.Imported, result.Skipped)
	if len(result.Errors) > 0 {
		summary += fmt.Sprintf(" %d rows failed.", len(result.Errors))
	}
	b.sendText(chatID, summary, nil)
}

func downloadToTemp(url, ext string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s while downloading file", resp.Status)
	}

	tmp, err := os.CreateTemp("", "wordlist-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return tmp.Name(), nil
}
