package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"wikibot/internal/config"
	"wikibot/internal/session"
	"wikibot/internal/storage"
	"wikibot/internal/telegram"
	"wikibot/internal/wiki"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	if cfg.TGBotToken == "" {
		log.Printf("TG_BOT_TOKEN not set")
		return
	}

	pg := storage.NewPostgresRecorder(cfg.DSN())
	if err := pg.EnsureSchema(context.Background()); err != nil {
		// The bot keeps serving chat traffic without persistence.
		log.Printf("db init failed: %v", err)
	}

	recorder := storage.NewAsyncRecorder(pg)
	defer recorder.Close()

	bot, err := telegram.New(cfg.TGBotToken, session.NewManager(), wiki.NewClient(cfg.WikiUserAgent), recorder)
	if err != nil {
		log.Printf("failed to create bot: %v", err)
		return
	}

	bot.Start(context.Background())
}
