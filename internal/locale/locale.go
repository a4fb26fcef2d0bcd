// Package locale holds the static per-language message templates.
// Translations are compiled into the binary; there are exactly two
// search languages and the table never changes at runtime.
package locale

import "fmt"

// Default is the language assumed for users who never picked one.
const Default = "ru"

// Templates is the full set of user-facing messages for one language.
type Templates struct {
	Start      string
	Help       string
	LangPrompt string
	LangSet    string
	NotFound   string
	Found      string
}

var tables = map[string]Templates{
	"ru": {
		Start:      "Я бот. Отправь запрос — я найду краткое описание в Википедии.",
		Help:       "/start, /help, /setlang — выбрать язык поиска (ru/en).",
		LangPrompt: "Выберите язык:",
		LangSet:    "Язык установлен: %s",
		NotFound:   `Не найдено: "%s"`,
		Found:      "Результат для \"%s\":\n\n%s",
	},
	"en": {
		Start:      "I'm a bot. Send a query — I'll fetch a summary from Wikipedia.",
		Help:       "/start, /help, /setlang — choose search language (ru/en).",
		LangPrompt: "Select language:",
		LangSet:    "Language set: %s",
		NotFound:   `Not found: "%s"`,
		Found:      "Result for \"%s\":\n\n%s",
	},
}

// Resolve returns the template set for code. Callers validate the code
// first; only the two supported languages exist in the table.
func Resolve(code string) Templates { return tables[code] }

// Supported reports whether code is one of the two search languages.
func Supported(code string) bool {
	_, ok := tables[code]
	return ok
}

func (t Templates) FormatLangSet(code string) string { return fmt.Sprintf(t.LangSet, code) }

func (t Templates) FormatNotFound(query string) string { return fmt.Sprintf(t.NotFound, query) }

func (t Templates) FormatFound(query, summary string) string {
	return fmt.Sprintf(t.Found, query, summary)
}
