package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

const (
	// BaseLocale is the catalog every lookup falls back to.
	BaseLocale = "en"
	// DefaultLocale is used when neither a stored nor an ambient choice applies.
	DefaultLocale = "hi"

	DefaultFont = "'Plus Jakarta Sans', sans-serif"
	// DefaultTitle is shown when the catalog has no app_title.
	DefaultTitle = "Krishi Sahayata Pro"
)

var supported = []string{"en", "hi", "ml", "ta", "te", "bn", "mr", "gu", "kn", "pa", "or", "as"}

var rtl = []string{"ar", "he", "fa", "ur"}

var fonts = map[string]string{
	"hi": "'Noto Sans Devanagari', 'Plus Jakarta Sans', sans-serif",
	"ml": "'Noto Sans Malayalam', 'Plus Jakarta Sans', sans-serif",
	"ta": "'Noto Sans Tamil', 'Plus Jakarta Sans', sans-serif",
	"te": "'Noto Sans Telugu', 'Plus Jakarta Sans', sans-serif",
	"bn": "'Noto Sans Bengali', 'Plus Jakarta Sans', sans-serif",
}

var shortcuts = map[string]string{"1": "en", "2": "hi", "3": "ml"}

// Supported returns the selectable locale codes in display order.
func Supported() []string {
	return slices.Clone(supported)
}

func IsSupported(code string) bool {
	return slices.Contains(supported, code)
}

func IsRTL(code string) bool {
	return slices.Contains(rtl, code)
}

// Direction is "rtl" or "ltr".
func Direction(code string) string {
	if IsRTL(code) {
		return "rtl"
	}
	return "ltr"
}

func FontFamily(code string) string {
	if f, ok := fonts[code]; ok {
		return f
	}
	return DefaultFont
}

// Shortcut maps the quick-switch keys 1, 2 and 3 to en, hi and ml.
func Shortcut(key string) (string, bool) {
	code, ok := shortcuts[key]
	return code, ok
}

// AmbientLocale extracts the base language from a POSIX locale such as
// "ml_IN.UTF-8" or a BCP 47 tag such as "hi-IN". It returns "" when the
// value cannot be parsed.
func AmbientLocale(value string) string {
	value, _, _ = strings.Cut(value, ".")
	value, _, _ = strings.Cut(value, "@")
	value = strings.ReplaceAll(value, "_", "-")
	if value == "" || value == "C" || value == "POSIX" {
		return ""
	}

	tag, err := language.Parse(value)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}
