package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wikibot/internal/session"
	"wikibot/internal/storage"
)

// summarizer is the knowledge-source boundary. The bool is false both
// for missing pages and failed lookups; the two are indistinguishable
// here.
type summarizer interface {
	Summarize(ctx context.Context, query, lang string) (string, bool)
}

// interactionLogger is the fire-and-forget persistence boundary.
// Record returns nothing: handlers never learn whether the write
// succeeded.
type interactionLogger interface {
	Record(ev storage.Interaction)
}

type Bot struct {
	api      *tgbotapi.BotAPI
	s        sender
	sessions session.Store
	wiki     summarizer
	recorder interactionLogger
}

func New(botToken string, sessions session.Store, wiki summarizer, recorder interactionLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		s:        botAPISender{api: api},
		sessions: sessions,
		wiki:     wiki,
		recorder: recorder,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.dispatch(ctx, update)
		}
	}
}

// dispatch routes one update by shape and contains any handler failure:
// a panic is logged with the update id and the loop keeps serving. The
// user may get no reply for that update.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("handler error on update %d: %v", update.UpdateID, r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}
