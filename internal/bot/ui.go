package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/deutschbuddy/pkg/models"
)

// MenuButton represents a button in an inline menu.
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates an inline keyboard from menu buttons.
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

func keyboardPtr(kb tgbotapi.InlineKeyboardMarkup) *tgbotapi.InlineKeyboardMarkup {
	return &kb
}

func backLabel(lang string) string {
	if lang == models.LangDe {
		return "⬅️ Zurück zum Menü"
	}
	return "⬅️ بازگشت به منو"
}

func backMenuKeyboard(lang string) *tgbotapi.InlineKeyboardMarkup {
	return keyboardPtr(createKeyboard([][]MenuButton{
		{{Text: backLabel(lang), CallbackData: "menu:back"}},
	}))
}

// againOrBackKeyboard offers a "do it again" action above the menu return.
func againOrBackKeyboard(lang, againCB, againFa, againDe string) *tgbotapi.InlineKeyboardMarkup {
	again := againFa
	if lang == models.LangDe {
		again = againDe
	}
	return keyboardPtr(createKeyboard([][]MenuButton{
		{{Text: again, CallbackData: againCB}},
		{{Text: backLabel(lang), CallbackData: "menu:back"}},
	}))
}

func languageChoiceKeyboard() *tgbotapi.InlineKeyboardMarkup {
	return keyboardPtr(createKeyboard([][]MenuButton{
		{
			{Text: "Deutsch 🇩🇪", CallbackData: "lang:de"},
			{Text: "فارسی 🇮🇷", CallbackData: "lang:fa"},
		},
	}))
}

func greetText() string {
	return "Hallo! 👋\nWillkommen beim DeutschBuddy!\n\n" +
		"سلام! به دوست آلمانی‌یار خوش اومدی! 🇩🇪\n\n" +
		"Möchtest du, dass wir auf Deutsch oder Persisch sprechen?\n" +
		"می‌خوای به آلمانی صحبت کنیم یا فارسی؟"
}

func mainMenuTitle(lang string) string {
	if lang == models.LangDe {
		return "Hauptmenü"
	}
	return "منوی اصلی"
}

func mainMenuKeyboard(lang string) *tgbotapi.InlineKeyboardMarkup {
	if lang == models.LangDe {
		return keyboardPtr(createKeyboard([][]MenuButton{
			{
				{Text: "📅 Heutige Challenge", CallbackData: "menu:daily"},
				{Text: "📝 Schreiben üben", CallbackData: "menu:schreiben"},
			},
			{
				{Text: "📚 Wortschatz", CallbackData: "menu:wortschatz"},
				{Text: "📖 Grammatik", CallbackData: "menu:grammar"},
			},
			{
				{Text: "🎯 Vokabel-Quiz", CallbackData: "menu:quiz"},
				{Text: "🈳 Wörterbuch", CallbackData: "menu:dict"},
			},
			{{Text: "👤 Profil", CallbackData: "menu:profile"}},
		}))
	}
	return keyboardPtr(createKeyboard([][]MenuButton{
		{
			{Text: "📅 تمرین امروز", CallbackData: "menu:daily"},
			{Text: "📝 تمرین Schreiben", CallbackData: "menu:schreiben"},
		},
		{
			{Text: "📚 واژگان", CallbackData: "menu:wortschatz"},
			{Text: "📖 گرامر", CallbackData: "menu:grammar"},
		},
		{
			{Text: "🎯 آزمون واژگان", CallbackData: "menu:quiz"},
			{Text: "🈳 دیکشنری", CallbackData: "menu:dict"},
		},
		{{Text: "👤 پروفایل", CallbackData: "menu:profile"}},
	}))
}

func homeKeyboard(lang string) *tgbotapi.InlineKeyboardMarkup {
	cont := "▶️ ادامه"
	daily := "📅 تمرین امروز"
	vocab := "📚 واژگان"
	gram := "📘 گرامر"
	write := "✍️ نوشتن"
	menu := "⬅️ منو"
	if lang == models.LangDe {
		cont = "▶️ Weiter"
		daily = "📅 Heutige Challenge"
		vocab = "📚 Wortschatz"
		gram = "📘 Grammatik"
		write = "✍️ Schreiben"
		menu = "⬅️ Menü"
	}
	return keyboardPtr(createKeyboard([][]MenuButton{
		{{Text: cont, CallbackData: "home:continue"}},
		{
			{Text: daily, CallbackData: "home:daily"},
			{Text: vocab, CallbackData: "home:wortschatz"},
		},
		{
			{Text: gram, CallbackData: "home:grammar"},
			{Text: write, CallbackData: "home:schreiben"},
		},
		{{Text: menu, CallbackData: "menu:back"}},
	}))
}

func errorText(lang string) string {
	if lang == models.LangDe {
		return "⚠️ Ein vorübergehender Fehler ist aufgetreten. Bitte erneut versuchen."
	}
	return "⚠️ خطای موقت رخ داد؛ دوباره تلاش کن."
}

func schreibenPrompt(lang string) string {
	if lang == models.LangDe {
		return "Sende deinen deutschen Text (oder ein Foto) zur Korrektur. ✍️"
	}
	return "متن آلمانی‌ات را بفرست تا تصحیح کنم. (می‌تونی عکس هم بفرستی) ✍️"
}

func dictHint(lang string) string {
	if lang == models.LangDe {
		return "Für ein Wörterbuch-Lookup: `/dict Vereinbarung` oder `/dict توافق`.\n" +
			"Du bekommst Bedeutungen + einen deutschen Beispielsatz mit FA-Übersetzung."
	}
	return "برای جستجوی کلمه بنویس: `/dict Vereinbarung` یا `/dict توافق`\n" +
		"بهت معنی‌ها + یک مثال آلمانی با ترجمه می‌دم."
}

func grammarHint(lang string) string {
	if lang == models.LangDe {
		return "Für einen Grammatik-Tipp: `/grammar Thema` (z. B. `/grammar Konjunktiv II`).\n" +
			"Oder folge dem stufengerechten Pfad im Menü."
	}
	return "برای نکتهٔ گرامری بنویس: `/grammar Thema` (مثلاً `/grammar Konjunktiv II`)\n" +
		"یا از مسیر گرامری سطحت جلو برو."
}

func levelMessage(level, lang string) string {
	if lang == models.LangDe {
		return fmt.Sprintf("🎓 Dein Niveau: *%s*", level)
	}
	return fmt.Sprintf("🎓 سطح شما: *%s*", level)
}

// postLanguageWelcome is the message after the interface language is
// chosen: rerun/continue options when a level exists, the placement offer
// otherwise.
func postLanguageWelcome(p models.Profile) (string, *tgbotapi.InlineKeyboardMarkup) {
	lang := p.Language
	goal := p.Goal
	if goal == "" {
		goal = models.GoalLernen
	}

	if p.Level != "" {
		if lang == models.LangDe {
			text := fmt.Sprintf(
				"✅ *Einstufung vorhanden*\nDein letztes Niveau: *%s*.\n\n"+
					"Möchtest du mit diesem Niveau fortfahren oder den Test erneut machen?", p.Level)
			return text, keyboardPtr(createKeyboard([][]MenuButton{
				{{Text: "Mit diesem Niveau starten ✅", CallbackData: "level:continue"}},
				{{Text: "Einstufung erneut durchführen 🔁", CallbackData: "level:redo"}},
				{{Text: "Ziel ändern", CallbackData: "goal:set:" + goal}},
				{{Text: "Hauptmenü ⬅️", CallbackData: "menu:back"}},
			}))
		}
		text := fmt.Sprintf(
			"✅ *تعیین‌سطح قبلی یافت شد*\nسطح آخر شما: *%s*.\n\n"+
				"می‌خوای با همین سطح ادامه بدی یا دوباره تست بدی؟", p.Level)
		return text, keyboardPtr(createKeyboard([][]MenuButton{
			{{Text: "ادامه با همین سطح ✅", CallbackData: "level:continue"}},
			{{Text: "تعیین سطح دوباره 🔁", CallbackData: "level:redo"}},
			{{Text: "تغییر هدف", CallbackData: "goal:set:" + goal}},
			{{Text: "بازگشت به منو ⬅️", CallbackData: "menu:back"}},
		}))
	}

	if lang == models.LangDe {
		text := "Super! Wir sprechen jetzt auf Deutsch.\n\n" +
			"Möchtest du einen kurzen Einstufungstest machen? (nur ~2 Minuten)"
		return text, keyboardPtr(createKeyboard([][]MenuButton{
			{{Text: "Einstufung starten ✅", CallbackData: "level:start"}},
			{{Text: "Später machen ⏳", CallbackData: "level:skip"}},
		}))
	}
	text := "عالی! از این به بعد فارسی صحبت می‌کنیم.\n\n" +
		"می‌خوای یک تعیین‌سطح خیلی کوتاه انجام بدی؟ (حدود ۲ دقیقه)"
	return text, keyboardPtr(createKeyboard([][]MenuButton{
		{{Text: "شروع تعیین سطح ✅", CallbackData: "level:start"}},
		{{Text: "بعداً انجام می‌دم ⏳", CallbackData: "level:skip"}},
	}))
}

func goalKeyboard(lang string) *tgbotapi.InlineKeyboardMarkup {
	learn := "ارتقا و یادگیری 🚀"
	review := "مرور مباحث قبلی 🔁"
	if lang == models.LangDe {
		learn = "Lernen 🚀"
		review = "Wiederholen 🔁"
	}
	return keyboardPtr(createKeyboard([][]MenuButton{
		{
			{Text: learn, CallbackData: "goal:" + models.GoalLernen},
			{Text: review, CallbackData: "goal:" + models.GoalReview},
		},
	}))
}

func profileCard(p models.Profile) string {
	level := p.Level
	if level == "" {
		level = "—"
	}
	goal := p.Goal
	if goal == "" {
		goal = models.GoalLernen
	}

	if p.Language == models.LangDe {
		goalLabel := "Lernen 🚀"
		if goal == models.GoalReview {
			goalLabel = "Wiederholen 🔁"
		}
		return fmt.Sprintf(
			"👤 *Dein Profil*\n- Niveau: *%s*\n- Ziel: *%s*\n- Tages-Streak: *%d*\n- Fortschritt: Schreiben=%d, Wortschatz=%d",
			level, goalLabel, p.DailyStreak, p.Progress["schreiben"], p.Progress["wortschatz"])
	}
	goalLabel := "یادگیری 🚀"
	if goal == models.GoalReview {
		goalLabel = "مرور 🔁"
	}
	return fmt.Sprintf(
		"👤 *پروفایل شما*\n- سطح: *%s*\n- هدف: *%s*\n- زنجیرهٔ روزانه: *%d*\n- پیشرفت: Schreiben=%d، واژگان=%d",
		level, goalLabel, p.DailyStreak, p.Progress["schreiben"], p.Progress["wortschatz"])
}
