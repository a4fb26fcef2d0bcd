package locale

import (
	"strings"
	"testing"
)

func TestResolveAllTemplatesPresent(t *testing.T) {
	for _, code := range []string{"ru", "en"} {
		tpl := Resolve(code)
		fields := map[string]string{
			"Start":      tpl.Start,
			"Help":       tpl.Help,
			"LangPrompt": tpl.LangPrompt,
			"LangSet":    tpl.LangSet,
			"NotFound":   tpl.NotFound,
			"Found":      tpl.Found,
		}
		for name, v := range fields {
			if v == "" {
				t.Fatalf("%s: empty template %s", code, name)
			}
		}
	}
}

func TestSupported(t *testing.T) {
	if !Supported("ru") || !Supported("en") {
		t.Fatalf("supported codes rejected")
	}
	for _, code := range []string{"fr", "RU", "EN", "", "ru "} {
		if Supported(code) {
			t.Fatalf("unsupported code accepted: %q", code)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	en := Resolve("en")

	if got := en.FormatLangSet("en"); got != "Language set: en" {
		t.Fatalf("unexpected lang set text: %q", got)
	}
	nf := en.FormatNotFound("Qzxnotreal")
	if !strings.Contains(nf, `"Qzxnotreal"`) {
		t.Fatalf("query missing from not-found text: %q", nf)
	}
	found := en.FormatFound("Python", "Python is a programming language.")
	if !strings.Contains(found, `"Python"`) || !strings.Contains(found, "Python is a programming language.") {
		t.Fatalf("found text incomplete: %q", found)
	}
}
