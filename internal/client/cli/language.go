package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/krishi/internal/client/color"
	"github.com/dmitrijs2005/krishi/internal/client/i18n"
)

// Lang switches the display language. It accepts a locale code or one of
// the quick keys 1, 2 and 3.
func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println(a.lang.TranslateParams("usage_lang", map[string]string{
			"languages": strings.Join(i18n.Supported(), " "),
		}))
		return nil
	}

	code := strings.ToLower(args[0])
	if c, ok := i18n.Shortcut(code); ok {
		code = c
	}
	if !i18n.IsSupported(code) {
		a.println(a.lang.TranslateParams("usage_lang", map[string]string{
			"languages": strings.Join(i18n.Supported(), " "),
		}))
		return nil
	}

	current, changed, err := a.lang.Switch(ctx, code)
	if err != nil {
		return err
	}
	if !changed {
		a.println(a.lang.TranslateParams("language_unchanged", map[string]string{"language": current}))
		return nil
	}

	v := a.lang.View()
	a.println(a.lang.TranslateParams("language_changed", map[string]string{"language": current}))
	a.println(v.Title, "-", v.Description)
	return nil
}

// Translate prints the active translation of a catalog key.
func (a *App) Translate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println(a.lang.T("usage_t"))
		return nil
	}
	a.println(a.lang.T(args[0]))
	return nil
}

func (a *App) Color(ctx context.Context, args []string) error {
	a.println(a.lang.TranslateParams("color_result", map[string]string{"color": color.Random(a.rand)}))
	return nil
}

// Log prints the security log, oldest first.
func (a *App) Log(ctx context.Context, args []string) error {
	events, err := a.auth.SecurityLog(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		a.println(a.lang.T("log_empty"))
		return nil
	}
	for _, e := range events {
		a.println(fmt.Sprintf("%s  %-15s %-40s %s",
			e.Timestamp.Local().Format(time.DateTime), e.Event, e.Subject, e.IP))
	}
	return nil
}
