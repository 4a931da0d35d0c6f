// Package i18n resolves the active display language and looks up UI text
// in static per-locale catalogs with fallback to English.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog maps locale -> key -> text. It is read only after loading.
type Catalog map[string]map[string]string

// LoadCatalog parses every embedded locales/<code>.yaml file.
func LoadCatalog() (Catalog, error) {
	return loadCatalog(localeFS, "locales")
}

func loadCatalog(fsys fs.FS, dir string) (Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	c := make(Catalog, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		b, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		texts := map[string]string{}
		if err := yaml.Unmarshal(b, &texts); err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		c[strings.TrimSuffix(e.Name(), ".yaml")] = texts
	}

	if _, ok := c[BaseLocale]; !ok {
		return nil, fmt.Errorf("base catalog %q missing", BaseLocale)
	}
	return c, nil
}

// Lookup tries locale first, then BaseLocale.
func (c Catalog) Lookup(locale, key string) (string, bool) {
	if s, ok := c[locale][key]; ok {
		return s, true
	}
	s, ok := c[BaseLocale][key]
	return s, ok
}

// Translate never fails: a key missing everywhere comes back unchanged.
func (c Catalog) Translate(key, locale string) string {
	if s, ok := c.Lookup(locale, key); ok {
		return s
	}
	return key
}
