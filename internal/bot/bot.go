package bot

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/deutschbuddy/internal/ai"
	"github.com/example/deutschbuddy/internal/daily"
	"github.com/example/deutschbuddy/internal/grammar"
	"github.com/example/deutschbuddy/internal/leveltest"
	"github.com/example/deutschbuddy/internal/quiz"
	"github.com/example/deutschbuddy/internal/scheduler"
	"github.com/example/deutschbuddy/internal/session"
	"github.com/example/deutschbuddy/internal/spaced_repetition"
	"github.com/example/deutschbuddy/internal/store"
	"github.com/example/deutschbuddy/internal/words"
	"github.com/example/deutschbuddy/pkg/models"
)

// telegramMessageLimit is Telegram's hard cap per message.
const telegramMessageLimit = 4096

// Bot wires the Telegram transport to the learning modules.
type Bot struct {
	api   *tgbotapi.BotAPI
	token string

	store     *store.Store
	words     *words.Repository
	srs       *spaced_repetition.Leitner
	quiz      *quiz.Engine
	daily     *daily.Gate
	placement *leveltest.Test
	grammar   *grammar.Tracker
	sessions  *session.Tracker
	ai        *ai.Client

	scheduler        *scheduler.Scheduler
	schedulerEnabled bool

	adminUserIDs   map[int64]bool
	awaitingImport map[int64]bool

	done chan struct{}
}

// Config holds the collaborators the bot needs.
type Config struct {
	Store *store.Store
	Words *words.Repository
	AI    *ai.Client
}

// New creates a bot instance from the environment and the given
// collaborators.
func New(cfg Config) (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	srs := spaced_repetition.NewLeitner()

	b := &Bot{
		token:            token,
		store:            cfg.Store,
		words:            cfg.Words,
		srs:              srs,
		quiz:             quiz.NewEngine(cfg.Store, srs, quiz.DefaultSessionLength),
		daily:            daily.New(cfg.Store, daily.DefaultVocabPool, daily.DefaultGapPool),
		placement:        leveltest.New(cfg.Store, nil, nil),
		grammar:          grammar.NewTracker(cfg.Store),
		sessions:         session.NewTracker(cfg.Store),
		ai:               cfg.AI,
		schedulerEnabled: os.Getenv("ENABLE_SCHEDULER") != "false",
		adminUserIDs:     make(map[int64]bool),
		awaitingImport:   make(map[int64]bool),
		done:             make(chan struct{}),
	}

	if ids := os.Getenv("ADMIN_USER_IDS"); ids != "" {
		for _, idStr := range strings.Split(ids, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
			if err != nil {
				log.Printf("Warning: Invalid admin user ID: %s", idStr)
				continue
			}
			b.adminUserIDs[id] = true
		}
	}

	return b, nil
}

// Start connects to Telegram and processes updates until Stop is called.
func (b *Bot) Start() error {
	api, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %w", err)
	}
	b.api = api
	log.Printf("Authorized on account %s", api.Self.UserName)

	if b.schedulerEnabled {
		b.scheduler = scheduler.New(b.store, b.srs, b)
		b.scheduler.Start()
		log.Println("Reminder scheduler started")
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-b.done:
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(update)
		}
	}
}

// Stop shuts the bot down gracefully.
func (b *Bot) Stop() {
	if b.schedulerEnabled && b.scheduler != nil {
		b.scheduler.Stop()
	}
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
	close(b.done)
	log.Println("Bot stopped")
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.adminUserIDs[userID]
}

// handleUpdate routes one Telegram update. Panics in handlers are caught
// so a single bad update cannot take the bot down.
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	chatID := updateChatID(update)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Handler panic for chat %d: %v", chatID, r)
			if chatID != 0 {
				b.sendText(chatID, errorText(b.lang(chatID)), nil)
			}
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

func updateChatID(update tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	// Admin word-list upload takes priority over everything else.
	if b.awaitingImport[chatID] && msg.Document != nil {
		b.handleImportDocument(msg)
		return
	}

	b.maybeWelcomeBack(chatID)

	// A pending fill-in-the-blank challenge consumes the next text message.
	if task, ok := b.daily.Pending(chatID); ok && task.Mode == models.TaskModeGap && msg.Text != "" {
		b.handleDailyTextAnswer(chatID, msg.Text)
		return
	}

	// Photos and remaining free text go to writing correction.
	if len(msg.Photo) > 0 {
		b.handleSchreibenPhoto(msg)
		return
	}
	if msg.Text != "" {
		b.handleSchreibenText(chatID, msg.Text)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.handleGreet(chatID)
	case "menu":
		b.showMainMenu(chatID)
	case "level":
		b.handleLevelTestStart(chatID)
	case "wortschatz":
		b.handleWortschatz(chatID)
	case "quiz":
		b.handleQuizStart(chatID, false)
	case "daily":
		b.handleDaily(chatID)
	case "dict":
		b.handleDict(chatID, msg.CommandArguments())
	case "grammar":
		b.handleGrammar(chatID, msg.CommandArguments())
	case "schreiben":
		b.sessions.Touch(chatID, "schreiben")
		b.sendText(chatID, schreibenPrompt(b.lang(chatID)), backMenuKeyboard(b.lang(chatID)))
	case "import":
		if b.isAdmin(msg.From.ID) {
			b.awaitingImport[chatID] = true
			b.sendText(chatID, "Send a word list as .xlsx or .csv (columns: German, Persian, level).", nil)
		} else {
			b.sendText(chatID, errorText(b.lang(chatID)), nil)
		}
	default:
		b.showMainMenu(chatID)
	}
}

// handleCallback dispatches inline-keyboard presses by callback namespace.
func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	// Always acknowledge so the client stops the spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("Error acknowledging callback: %v", err)
	}

	data := query.Data
	switch {
	case strings.HasPrefix(data, "lang:"):
		b.handleLanguageChoice(chatID, strings.TrimPrefix(data, "lang:"))
	case strings.HasPrefix(data, "goal:set:"):
		b.handleGoalChoice(chatID, strings.TrimPrefix(data, "goal:set:"))
	case strings.HasPrefix(data, "goal:"):
		b.handleGoalChoice(chatID, strings.TrimPrefix(data, "goal:"))
	case strings.HasPrefix(data, "ans:"):
		b.handleLevelTestAnswer(chatID, query.Message.MessageID, data)
	case data == "level:start" || data == "level:redo":
		b.handleLevelTestStart(chatID)
	case data == "level:skip" || data == "level:continue":
		b.showMainMenu(chatID)
	case strings.HasPrefix(data, "quiz:"):
		b.handleQuizAnswer(chatID, data)
	case strings.HasPrefix(data, "daily:opt:"):
		b.handleDailyOptionAnswer(chatID, strings.TrimPrefix(data, "daily:opt:"))
	case data == "daily:extra":
		b.handleDailyExtra(chatID)
	case data == "grammar:next":
		b.handleGrammarNav(chatID, 1)
	case data == "grammar:prev":
		b.handleGrammarNav(chatID, -1)
	case data == "dict:again":
		b.sendText(chatID, dictHint(b.lang(chatID)), backMenuKeyboard(b.lang(chatID)))
	case data == "schreiben:again":
		b.sendText(chatID, schreibenPrompt(b.lang(chatID)), backMenuKeyboard(b.lang(chatID)))
	case strings.HasPrefix(data, "home:"):
		b.handleHomeAction(chatID, strings.TrimPrefix(data, "home:"))
	case strings.HasPrefix(data, "menu:"):
		b.handleMenuAction(chatID, strings.TrimPrefix(data, "menu:"))
	default:
		log.Printf("Unknown callback data from chat %d: %q", chatID, data)
	}
}

// SendReviewReminder implements scheduler.Notifier.
func (b *Bot) SendReviewReminder(chatID int64, dueCount int) error {
	lang := b.lang(chatID)
	var text string
	if lang == "de" {
		text = fmt.Sprintf("🗓️ Du hast %d fällige Wörter. Zeit für eine kurze Wiederholung! /quiz", dueCount)
	} else {
		text = fmt.Sprintf("🗓️ %d واژه موعدش رسیده. وقت یک مرور کوتاهه! /quiz", dueCount)
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending reminder to chat %d: %v", chatID, err)
		return err
	}
	return nil
}

func (b *Bot) lang(chatID int64) string {
	return b.store.Get(chatID).Language
}

// sendText delivers a Markdown message, splitting it into chunks under
// Telegram's length cap. The keyboard rides on the first chunk only.
func (b *Bot) sendText(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	for _, part := range chunkText(text, telegramMessageLimit) {
		msg := tgbotapi.NewMessage(chatID, part)
		msg.ParseMode = tgbotapi.ModeMarkdown
		msg.DisableWebPagePreview = true
		if keyboard != nil {
			msg.ReplyMarkup = *keyboard
			keyboard = nil
		}
		if _, err := b.api.Send(msg); err != nil {
			log.Printf("Error sending message to chat %d: %v", chatID, err)
			return
		}
	}
}

func chunkText(s string, limit int) []string {
	runes := []rune(s)
	if len(runes) <= limit {
		return []string{s}
	}
	var parts []string
	for len(runes) > 0 {
		n := limit
		if n > len(runes) {
			n = len(runes)
		}
		parts = append(parts, string(runes[:n]))
		runes = runes[n:]
	}
	return parts
}
