package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedAndDirection(t *testing.T) {
	assert.Len(t, Supported(), 12)
	assert.True(t, IsSupported("as"))
	assert.False(t, IsSupported("ar"))
	assert.False(t, IsSupported("EN"))

	assert.Equal(t, "ltr", Direction("ml"))
	assert.Equal(t, "rtl", Direction("ur"))
	assert.True(t, IsRTL("he"))

	s := Supported()
	s[0] = "zz"
	assert.Equal(t, "en", Supported()[0], "Supported returns a copy")
}

func TestFontFamily(t *testing.T) {
	assert.Equal(t, "'Noto Sans Malayalam', 'Plus Jakarta Sans', sans-serif", FontFamily("ml"))
	assert.Equal(t, "'Noto Sans Devanagari', 'Plus Jakarta Sans', sans-serif", FontFamily("hi"))
	assert.Equal(t, "'Noto Sans Bengali', 'Plus Jakarta Sans', sans-serif", FontFamily("bn"))
	assert.Equal(t, DefaultFont, FontFamily("en"))
	assert.Equal(t, DefaultFont, FontFamily("kn"))
}

func TestShortcut(t *testing.T) {
	for key, want := range map[string]string{"1": "en", "2": "hi", "3": "ml"} {
		got, ok := Shortcut(key)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := Shortcut("4")
	assert.False(t, ok)
}

func TestAmbientLocale(t *testing.T) {
	tests := map[string]string{
		"ml_IN.UTF-8":      "ml",
		"hi-IN":            "hi",
		"en_US.UTF-8@euro": "en",
		"ta":               "ta",
		"C":                "",
		"POSIX":            "",
		"":                 "",
		"not a tag!":       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, AmbientLocale(in), in)
	}
}
