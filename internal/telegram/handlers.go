package telegram

import (
	"context"
	"fmt"
	"html"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wikibot/internal/locale"
	"wikibot/internal/storage"
)

const setlangPrefix = "setlang:"

func commandKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/start"),
			tgbotapi.NewKeyboardButton("/help"),
			tgbotapi.NewKeyboardButton("/setlang"),
		),
	)
}

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Русский", setlangPrefix+"ru"),
			tgbotapi.NewInlineKeyboardButtonData("English", setlangPrefix+"en"),
		),
	)
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(msg)
	case "help":
		b.handleHelp(msg)
	case "setlang":
		b.handleSetLang(msg)
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	lang := b.sessions.Language(msg.From.ID)
	t := locale.Resolve(lang)

	out := tgbotapi.NewMessage(msg.Chat.ID, mentionHTML(msg.From)+" "+t.Start)
	out.ParseMode = tgbotapi.ModeHTML
	out.ReplyMarkup = commandKeyboard()
	b.send(out)

	b.logInteraction(msg.From, "/start", t.Start, lang)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	lang := b.sessions.Language(msg.From.ID)
	t := locale.Resolve(lang)

	out := tgbotapi.NewMessage(msg.Chat.ID, t.Help)
	out.ReplyMarkup = commandKeyboard()
	b.send(out)

	b.logInteraction(msg.From, "/help", t.Help, lang)
}

// handleSetLang applies an explicit `/setlang <code>` argument, or sends
// the language prompt with inline choices when the argument is missing
// or not a supported code. The explicit path is case-insensitive.
func (b *Bot) handleSetLang(msg *tgbotapi.Message) {
	if args := strings.Fields(msg.CommandArguments()); len(args) > 0 {
		chosen := strings.ToLower(args[0])
		if locale.Supported(chosen) {
			b.sessions.SetLanguage(msg.From.ID, chosen)
			txt := locale.Resolve(chosen).FormatLangSet(chosen)

			out := tgbotapi.NewMessage(msg.Chat.ID, txt)
			out.ReplyMarkup = commandKeyboard()
			b.send(out)

			b.logInteraction(msg.From, "/setlang "+chosen, txt, chosen)
			return
		}
	}

	cur := b.sessions.Language(msg.From.ID)
	out := tgbotapi.NewMessage(msg.Chat.ID, locale.Resolve(cur).LangPrompt)
	out.ReplyMarkup = languageKeyboard()
	b.send(out)
}

// handleCallback acknowledges every callback, then acts only on an exact
// (case-sensitive) "setlang:<code>" payload for a supported code.
// Anything else is ignored after the acknowledgement.
func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if _, err := b.s.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}

	code, ok := strings.CutPrefix(cb.Data, setlangPrefix)
	if !ok || !locale.Supported(code) {
		return
	}

	b.sessions.SetLanguage(cb.From.ID, code)

	if cb.Message == nil {
		return
	}

	// Removing the inline buttons from the prompt is best effort.
	edit := tgbotapi.NewEditMessageReplyMarkup(cb.Message.Chat.ID, cb.Message.MessageID,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}})
	if _, err := b.s.Send(edit); err != nil {
		log.Printf("failed to clear language keyboard: %v", err)
	}

	txt := locale.Resolve(code).FormatLangSet(code)
	out := tgbotapi.NewMessage(cb.Message.Chat.ID, txt)
	out.ReplyMarkup = commandKeyboard()
	b.send(out)

	b.logInteraction(cb.From, "setlang_cb:"+code, txt, code)
}

// handleMessage treats any non-empty free text as a search query in the
// user's current language. The lookup blocks this reply only; the log
// write does not.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	query := strings.TrimSpace(msg.Text)
	if query == "" {
		return
	}

	lang := b.sessions.Language(msg.From.ID)
	t := locale.Resolve(lang)

	if summary, ok := b.wiki.Summarize(ctx, query, lang); ok {
		b.send(tgbotapi.NewMessage(msg.Chat.ID, t.FormatFound(query, summary)))
		b.logInteraction(msg.From, query, summary, lang)
		return
	}

	txt := t.FormatNotFound(query)
	b.send(tgbotapi.NewMessage(msg.Chat.ID, txt))
	b.logInteraction(msg.From, query, txt, lang)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.s.Send(c); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) logInteraction(u *tgbotapi.User, query, response, lang string) {
	b.recorder.Record(storage.Interaction{
		UserID:   u.ID,
		Username: u.UserName,
		Query:    query,
		Response: response,
		Language: lang,
	})
}

func mentionHTML(u *tgbotapi.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.UserName
	}
	if name == "" {
		name = strconv.FormatInt(u.ID, 10)
	}
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, u.ID, html.EscapeString(name))
}
