package i18n

import (
	"regexp"
	"unicode/utf8"
)

type phrase struct {
	re   *regexp.Regexp
	text string
}

func phrases(pairs ...string) []phrase {
	out := make([]phrase, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, phrase{re: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(pairs[i])), text: pairs[i+1]})
	}
	return out
}

// Stand-in for a machine translation backend: a few phrases per locale,
// replaced in this order wherever they occur.
var dynamicPhrases = map[string][]phrase{
	"hi": phrases("hello", "नमस्ते", "thank you", "धन्यवाद", "help", "मदद"),
	"ml": phrases("hello", "നമസ്കാരം", "thank you", "നന്ദി", "help", "സഹായം"),
}

var numericRe = regexp.MustCompile(`^[0-9\s\-+.,]+$`)

// TranslateDynamic rewrites free-form text for locale. Locales without a
// phrase table, English included, get text back unchanged.
func TranslateDynamic(text, locale string) string {
	out := text
	for _, p := range dynamicPhrases[locale] {
		out = p.re.ReplaceAllLiteralString(out, p.text)
	}
	if out == "" {
		return text
	}
	return out
}

// NeedsTranslation skips very short, very long and purely numeric text.
func NeedsTranslation(text string) bool {
	n := utf8.RuneCountInString(text)
	return n > 2 && n < 500 && !numericRe.MatchString(text)
}
