package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/deutschbuddy/internal/ai"
	"github.com/example/deutschbuddy/internal/bot"
	"github.com/example/deutschbuddy/internal/store"
	"github.com/example/deutschbuddy/internal/words"
)

const (
	restartBaseDelay = 5 * time.Second
	restartMaxDelay  = 5 * time.Minute
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	if os.Getenv("TELEGRAM_BOT_TOKEN") == "" || os.Getenv("OPENAI_API_KEY") == "" {
		log.Fatal("Set TELEGRAM_BOT_TOKEN and OPENAI_API_KEY in the environment or .env")
	}

	db, err := words.Open()
	if err != nil {
		log.Fatalf("Failed to open word bank: %v", err)
	}
	defer db.Close()

	repo := words.NewRepository(db)
	if err := repo.EnsureSeed(); err != nil {
		log.Fatalf("Failed to seed word bank: %v", err)
	}

	aiClient, err := ai.New()
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}

	statePath := os.Getenv("STATE_PATH")
	if statePath == "" {
		statePath = "data/users.json"
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// The bot restarts with growing backoff after transport failures and
	// keeps running until a termination signal arrives.
	delay := restartBaseDelay
	for {
		b, err := bot.New(bot.Config{
			Store: store.New(statePath),
			Words: repo,
			AI:    aiClient,
		})
		if err != nil {
			log.Fatalf("Failed to create bot: %v", err)
		}

		runErr := make(chan error, 1)
		go func() { runErr <- b.Start() }()

		select {
		case sig := <-sigChan:
			log.Printf("Received signal: %v", sig)
			b.Stop()
			log.Println("Bot stopped successfully")
			return
		case err := <-runErr:
			if err != nil {
				log.Printf("Bot error: %v", err)
			}
			b.Stop()
		}

		log.Printf("Restarting in %s", delay)
		select {
		case sig := <-sigChan:
			log.Printf("Received signal: %v", sig)
			return
		case <-time.After(delay):
		}
		delay *= 2
		if delay > restartMaxDelay {
			delay = restartMaxDelay
		}
	}
}
