package i18n

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/krishi/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/krishi/internal/client/storage"
	"github.com/dmitrijs2005/krishi/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

type memPrefs struct {
	lang    string
	getErr  error
	setErr  error
	setCall int
}

func (m *memPrefs) Language(context.Context) (string, error) { return m.lang, m.getErr }

func (m *memPrefs) SetLanguage(_ context.Context, code string) error {
	m.setCall++
	if m.setErr != nil {
		return m.setErr
	}
	m.lang = code
	return nil
}

func newResolver(t *testing.T, prefs preferences.Repository, opts Options) *Resolver {
	t.Helper()
	c, err := LoadCatalog()
	require.NoError(t, err)
	return NewResolver(c, prefs, logging.NewNop(), opts)
}

// ---- initial resolution ----

func TestResolveInitial_Order(t *testing.T) {
	tests := []struct {
		name    string
		saved   string
		ambient string
		want    string
	}{
		{"stored wins", "ml", "ta_IN.UTF-8", "ml"},
		{"unsupported stored ignored", "fr", "ta_IN.UTF-8", "ta"},
		{"ambient", "", "en_US.UTF-8", "en"},
		{"unsupported ambient", "", "fr_FR.UTF-8", "hi"},
		{"nothing", "", "", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := &memPrefs{lang: tt.saved}
			r := newResolver(t, prefs, Options{Ambient: tt.ambient})

			assert.Equal(t, tt.want, r.ResolveInitial(context.Background()))
			assert.Equal(t, tt.want, r.Current())
			assert.Equal(t, tt.want, r.View().Lang)
			assert.Zero(t, prefs.setCall, "initial resolution is not stored")
		})
	}
}

func TestResolveInitial_StoreErrorFallsThrough(t *testing.T) {
	r := newResolver(t, &memPrefs{getErr: errors.New("down")}, Options{Ambient: "ml_IN"})
	assert.Equal(t, "ml", r.ResolveInitial(context.Background()))
}

// ---- switching ----

func TestSwitch_Malayalam(t *testing.T) {
	ctx := context.Background()
	s, err := storage.Open(ctx, storage.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer s.Close()
	prefs := preferences.NewKVRepository(s.KV())

	r := newResolver(t, prefs, Options{Ambient: "en_US.UTF-8"})
	require.Equal(t, "en", r.ResolveInitial(ctx))
	r.Bind("login_tab")
	r.BindPlaceholder("question_placeholder")

	var notified []string
	r.OnChange(func(_ context.Context, code string) { notified = append(notified, code) })

	code, changed, err := r.Switch(ctx, "ml")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "ml", code)

	stored, err := prefs.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ml", stored)

	v := r.View()
	assert.Equal(t, "ltr", v.Dir)
	assert.Equal(t, "'Noto Sans Malayalam', 'Plus Jakarta Sans', sans-serif", v.Font)
	assert.Equal(t, "കൃഷി സഹായ പ്രോ", v.Title)
	assert.Equal(t, "AI-ശക്തമായ കൃഷി ബുദ്ധി പ്ലാറ്റ്ഫോം", v.Description)
	assert.Equal(t, "സുരക്ഷിത ലോഗിൻ", v.Text["login_tab"])
	assert.Equal(t, "Describe your farming issue (e.g., pest control, soil health, irrigation)",
		v.Placeholders["question_placeholder"], "missing in ml, English shown")
	assert.Equal(t, []string{"ml"}, notified)
}

func TestSwitch_NoOps(t *testing.T) {
	ctx := context.Background()
	prefs := &memPrefs{lang: "hi"}
	r := newResolver(t, prefs, Options{})
	r.ResolveInitial(ctx)

	notified := 0
	r.OnChange(func(context.Context, string) { notified++ })

	code, changed, err := r.Switch(ctx, "hi")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "hi", code)

	code, changed, err = r.Switch(ctx, "ar")
	require.NoError(t, err)
	assert.False(t, changed, "unsupported")
	assert.Equal(t, "hi", code)

	assert.Zero(t, prefs.setCall)
	assert.Zero(t, notified)
}

func TestSwitch_StoreErrorLeavesLocale(t *testing.T) {
	ctx := context.Background()
	prefs := &memPrefs{setErr: errors.New("down")}
	r := newResolver(t, prefs, Options{})
	r.ResolveInitial(ctx)

	code, changed, err := r.Switch(ctx, "ml")
	require.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, "hi", code)
	assert.Equal(t, "hi", r.Current())
}

func TestSwitch_DefaultFontAndDynamic(t *testing.T) {
	ctx := context.Background()
	r := newResolver(t, &memPrefs{lang: "ml"}, Options{Dynamic: true})
	r.ResolveInitial(ctx)
	r.BindDynamic("Thank you for the help")
	r.BindDynamic("42")

	v := r.View()
	assert.Equal(t, "നന്ദി for the സഹായം", v.Dynamic[0].Rendered)
	assert.Equal(t, "42", v.Dynamic[1].Rendered)

	_, changed, err := r.Switch(ctx, "kn")
	require.NoError(t, err)
	require.True(t, changed)

	v = r.View()
	assert.Equal(t, DefaultFont, v.Font)
	assert.Equal(t, "Krishi Sahayata Pro", v.Title, "no kn catalog, English title")
	assert.Equal(t, "Thank you for the help", v.Dynamic[0].Rendered, "kn has no phrase table")
}

func TestDynamicDisabled(t *testing.T) {
	r := newResolver(t, &memPrefs{lang: "hi"}, Options{})
	r.ResolveInitial(context.Background())
	r.BindDynamic("hello")

	assert.Equal(t, "hello", r.View().Dynamic[0].Rendered)
	assert.Equal(t, "नमस्ते", r.TranslateDynamic("hello"), "explicit calls still translate")
}

// ---- lookups ----

func TestTranslate(t *testing.T) {
	r := newResolver(t, &memPrefs{lang: "hi"}, Options{})
	r.ResolveInitial(context.Background())

	assert.Equal(t, "कृषि सहायता प्रो", r.T("app_title"))
	assert.Equal(t, "AI Farming Intelligence Dashboard", r.T("dashboard_title"))
	assert.Equal(t, "AI Farming Intelligence Dashboard", r.Translate("dashboard_title", "xx"))
	assert.Equal(t, "missing_key", r.Translate("missing_key", "xx"))
	assert.Equal(t, "वापसी पर स्वागत है, Ravi!", r.TranslateParams("welcome_back", map[string]string{"name": "Ravi"}))
	assert.Equal(t, "जैविक कीटनाशक", r.AgriculturalTerm("pesticide", TermContextOrganic))
}

func TestTranslateParams_NamedPlaceholders(t *testing.T) {
	r := newResolver(t, &memPrefs{lang: "en"}, Options{})
	r.ResolveInitial(context.Background())

	assert.Equal(t, `Unknown command "{command}". Type help.`, r.TranslateParams("unknown_command", nil))
	assert.Equal(t, `Unknown command "50%". Type help.`,
		r.TranslateParams("unknown_command", map[string]string{"command": "50%", "extra": "x"}))
	assert.Equal(t, "Account created for Asha. You can log in now.",
		r.TranslateParams("account_created", map[string]string{"name": "Asha"}))
}

func TestView_IsACopy(t *testing.T) {
	r := newResolver(t, &memPrefs{}, Options{})
	r.Bind("app_title")

	v := r.View()
	v.Text["app_title"] = "changed"
	assert.Equal(t, "Krishi Sahayata Pro", r.View().Text["app_title"])
}
