// Package i18n resolves localized strings through an injected Translator.
//
// Keys have the form "namespace:key", for example "sendFlow7:sentTo".
// A key without a namespace is looked up in DefaultNamespace.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// DefaultNamespace is used for keys without a namespace prefix.
const DefaultNamespace = "global"

// Translator resolves a translation key to a display string.
type Translator interface {
	T(key string) string
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(key string) string

// T calls f(key).
func (f TranslatorFunc) T(key string) string {
	return f(key)
}

//go:embed locales/*.yaml
var localeFS embed.FS

// Supported lists the embedded locales. The first entry is the fallback.
//
//nolint:gochecknoglobals // Fixed table of embedded locales
var Supported = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("es-419"),
}

//nolint:gochecknoglobals // Matcher over the fixed Supported table
var matcher = language.NewMatcher(Supported)

// Catalog holds the strings of a single locale grouped by namespace.
type Catalog struct {
	tag     language.Tag
	strings map[string]map[string]string
}

// Compile-time interface check
var _ Translator = (*Catalog)(nil)

// NewCatalog loads the embedded catalog that best matches the requested language.
// An empty or unparseable language selects the fallback locale.
func NewCatalog(lang string) (*Catalog, error) {
	tag := Match(lang)

	data, err := localeFS.ReadFile("locales/" + tag.String() + ".yaml")
	if err != nil {
		return nil, cashinerr.Wrap(err, "reading embedded catalog %s", tag)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	c.tag = tag
	return c, nil
}

// Match returns the supported locale closest to lang.
func Match(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return Supported[0]
	}
	requested, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(requested) == 0 {
		return Supported[0]
	}
	_, idx, _ := matcher.Match(requested...)
	return Supported[idx]
}

// Parse decodes a YAML catalog of namespace -> key -> string.
func Parse(data []byte) (*Catalog, error) {
	raw := make(map[string]map[string]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, cashinerr.WithDetails(cashinerr.ErrCatalogInvalid, map[string]string{
			"reason": err.Error(),
		})
	}
	return &Catalog{tag: Supported[0], strings: raw}, nil
}

// LoadOverrides reads a YAML catalog file and layers its strings over c.
func (c *Catalog) LoadOverrides(path string) error {
	// #nosec G304 -- catalog path is from validated config
	data, err := os.ReadFile(path)
	if err != nil {
		return cashinerr.Wrap(err, "reading catalog %s", path)
	}

	overrides, err := Parse(data)
	if err != nil {
		return err
	}

	for ns, keys := range overrides.strings {
		if c.strings[ns] == nil {
			c.strings[ns] = make(map[string]string, len(keys))
		}
		for k, v := range keys {
			c.strings[ns][k] = v
		}
	}
	return nil
}

// Tag returns the locale of the catalog.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// T returns the string for key, or the key itself when it is not in the catalog.
func (c *Catalog) T(key string) string {
	ns, k := splitKey(key)
	if v, ok := c.strings[ns][k]; ok && v != "" {
		return v
	}
	return key
}

// Has reports whether key resolves to a catalog string.
func (c *Catalog) Has(key string) bool {
	ns, k := splitKey(key)
	_, ok := c.strings[ns][k]
	return ok
}

func splitKey(key string) (string, string) {
	if ns, k, found := strings.Cut(key, ":"); found {
		return ns, k
	}
	return DefaultNamespace, key
}

// Static returns a Translator backed by a flat key -> string map.
// Unknown keys resolve to themselves.
func Static(entries map[string]string) Translator {
	return TranslatorFunc(func(key string) string {
		if v, ok := entries[key]; ok {
			return v
		}
		return key
	})
}

// Identity is a Translator that returns every key unchanged.
//
//nolint:gochecknoglobals // Stateless translator value
var Identity Translator = TranslatorFunc(func(key string) string { return key })

// String implements fmt.Stringer.
func (c *Catalog) String() string {
	return fmt.Sprintf("catalog(%s)", c.tag)
}
