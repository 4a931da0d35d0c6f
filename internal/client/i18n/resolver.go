package i18n

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/krishi/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/krishi/internal/logging"
)

// View is the rendered state of everything bound to the resolver, the
// counterpart of a page's tagged elements and metadata.
type View struct {
	Lang        string
	Dir         string
	Font        string
	Title       string
	Description string
	// Text and Placeholders map a catalog key to its rendered string.
	Text         map[string]string
	Placeholders map[string]string
	Dynamic      []DynamicText
}

// DynamicText is free-form content passed through TranslateDynamic.
type DynamicText struct {
	Original string
	Rendered string
}

// Listener is told about every applied locale change.
type Listener func(ctx context.Context, locale string)

// Options configure a Resolver.
type Options struct {
	// Ambient is the client's language setting, e.g. the value of $LANG.
	Ambient string
	// Dynamic enables TranslateDynamic on dynamic bindings.
	Dynamic bool
}

// Resolver owns the active locale.
type Resolver struct {
	catalog Catalog
	prefs   preferences.Repository
	logger  logging.Logger
	opts    Options

	mu        sync.Mutex
	current   string
	view      View
	listeners []Listener
}

func NewResolver(catalog Catalog, prefs preferences.Repository, logger logging.Logger, opts Options) *Resolver {
	r := &Resolver{
		catalog: catalog,
		prefs:   prefs,
		logger:  logger,
		opts:    opts,
		current: BaseLocale,
		view: View{
			Text:         map[string]string{},
			Placeholders: map[string]string{},
		},
	}
	r.render()
	return r
}

// ResolveInitial picks the starting locale: the stored choice if supported,
// then the ambient language if supported, then DefaultLocale. The result is
// applied but not stored.
func (r *Resolver) ResolveInitial(ctx context.Context) string {
	code := DefaultLocale

	saved, err := r.prefs.Language(ctx)
	if err != nil {
		r.logger.Warn(ctx, "Language: reading stored choice failed", "error", err)
	}
	ambient := AmbientLocale(r.opts.Ambient)

	switch {
	case saved != "" && IsSupported(saved):
		code = saved
	case IsSupported(ambient):
		code = ambient
	}

	r.mu.Lock()
	r.current = code
	r.render()
	r.mu.Unlock()

	r.logger.Debug(ctx, "Language: initial locale", "locale", code, "saved", saved, "ambient", ambient)
	return code
}

// Switch applies code. It reports false, with no side effects, when code is
// unsupported or already active. Otherwise the choice is stored, every
// binding is re-rendered and listeners are notified.
func (r *Resolver) Switch(ctx context.Context, code string) (string, bool, error) {
	r.mu.Lock()
	if !IsSupported(code) || code == r.current {
		cur := r.current
		r.mu.Unlock()
		return cur, false, nil
	}
	r.mu.Unlock()

	if err := r.prefs.SetLanguage(ctx, code); err != nil {
		return r.Current(), false, fmt.Errorf("store language: %w", err)
	}

	r.mu.Lock()
	r.current = code
	r.render()
	listeners := append([]Listener(nil), r.listeners...)
	r.mu.Unlock()

	r.logger.Info(ctx, "Language changed", "locale", code)
	for _, l := range listeners {
		l(ctx, code)
	}
	return code, true, nil
}

// render recomputes the view for r.current. Callers hold r.mu.
func (r *Resolver) render() {
	code := r.current
	v := &r.view

	for key := range v.Text {
		if s, ok := r.catalog.Lookup(code, key); ok {
			v.Text[key] = s
		}
	}
	for key := range v.Placeholders {
		if s, ok := r.catalog.Lookup(code, key); ok {
			v.Placeholders[key] = s
		}
	}

	v.Lang = code
	v.Title = r.catalog.Translate("app_title", code)
	if v.Title == "app_title" || v.Title == "" {
		v.Title = DefaultTitle
	}
	v.Description, _ = r.catalog.Lookup(code, "app_tagline")
	v.Dir = Direction(code)
	v.Font = FontFamily(code)

	if r.opts.Dynamic {
		for i := range v.Dynamic {
			if NeedsTranslation(v.Dynamic[i].Original) {
				v.Dynamic[i].Rendered = TranslateDynamic(v.Dynamic[i].Original, code)
			}
		}
	}
}

func (r *Resolver) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// OnChange registers l for later switches.
func (r *Resolver) OnChange(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

// Bind tags key as displayed text. Until a catalog has it, the key itself is shown.
func (r *Resolver) Bind(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.view.Text[key]; !ok {
		r.view.Text[key] = key
		r.render()
	}
}

// BindPlaceholder tags key as an input placeholder.
func (r *Resolver) BindPlaceholder(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.view.Placeholders[key]; !ok {
		r.view.Placeholders[key] = key
		r.render()
	}
}

// BindDynamic adds free-form text that is machine translated on switches.
func (r *Resolver) BindDynamic(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view.Dynamic = append(r.view.Dynamic, DynamicText{Original: text, Rendered: text})
	r.render()
}

// View returns a copy of the rendered state.
func (r *Resolver) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.view
	v.Text = make(map[string]string, len(r.view.Text))
	for k, s := range r.view.Text {
		v.Text[k] = s
	}
	v.Placeholders = make(map[string]string, len(r.view.Placeholders))
	for k, s := range r.view.Placeholders {
		v.Placeholders[k] = s
	}
	v.Dynamic = append([]DynamicText(nil), r.view.Dynamic...)
	return v
}

// T translates key in the active locale.
func (r *Resolver) T(key string) string {
	return r.catalog.Translate(key, r.Current())
}

// Translate looks key up in locale, then BaseLocale, then returns key.
func (r *Resolver) Translate(key, locale string) string {
	return r.catalog.Translate(key, locale)
}

// TranslateParams is T with "{name}" placeholders replaced from params.
func (r *Resolver) TranslateParams(key string, params map[string]string) string {
	s := r.T(key)
	for name, value := range params {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

// TranslateDynamic translates free-form text into the active locale.
func (r *Resolver) TranslateDynamic(text string) string {
	return TranslateDynamic(text, r.Current())
}

// AgriculturalTerm names term in the active locale.
func (r *Resolver) AgriculturalTerm(term, context string) string {
	return AgriculturalTerm(term, context, r.Current())
}
