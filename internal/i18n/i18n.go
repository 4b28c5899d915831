// Package i18n loads the translated UI strings of the dashboard and the
// console.
//
// Catalogs live in locales/<locale>/<namespace>.yaml and are embedded into
// the binary. Every locale is registered in an x/text catalog; keys missing
// from a locale fall back to the base locale en-US.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale.
type Bundle struct {
	defaultTag language.Tag
	tags       []language.Tag
	matcher    language.Matcher
	builder    *catalog.Builder
	messages   map[string]map[string]string
}

// New loads the embedded catalogs. defaultLocale is used when a request
// carries no usable language; empty means BaseLocale.
func New(defaultLocale string) (*Bundle, error) {
	return LoadFromFS(embeddedFS, defaultLocale)
}

// LoadFromFS loads catalogs from fsys, which must contain
// locales/<locale>/<namespace>.yaml files.
func LoadFromFS(fsys fs.FS, defaultLocale string) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoCatalogs
	}
	sort.Strings(paths)

	messages := make(map[string]map[string]string)
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}

		var file catalogFile
		if err = yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err = addFile(messages, p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingBaseLocale, BaseLocale)
	}

	if strings.TrimSpace(defaultLocale) == "" {
		defaultLocale = BaseLocale
	}
	if _, ok := messages[defaultLocale]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLocale, defaultLocale)
	}

	return build(messages, defaultLocale)
}

func addFile(messages map[string]map[string]string, p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	if file.Locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, file.Locale, localeFromPath)
	}
	if file.Namespace != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match file name %q", p, file.Namespace, namespaceFromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: no messages", p)
	}

	locale, ok := messages[file.Locale]
	if !ok {
		locale = make(map[string]string, len(file.Messages))
		messages[file.Locale] = locale
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: blank message key", p)
		}
		if _, dup := locale[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %s", p, key, file.Locale)
		}
		locale[key] = value
	}
	return nil
}

func build(messages map[string]map[string]string, defaultLocale string) (*Bundle, error) {
	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}
	baseTag := language.MustParse(BaseLocale)
	builder := catalog.NewBuilder(catalog.Fallback(baseTag))
	base := messages[BaseLocale]

	// the matcher falls back to its first tag
	tags := []language.Tag{defaultTag}
	for _, locale := range sortedKeys(messages) {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		if tag != defaultTag {
			tags = append(tags, tag)
		}

		localeMessages := messages[locale]
		for key, fallback := range base {
			if _, ok := localeMessages[key]; !ok {
				localeMessages[key] = fallback
			}
		}
		for key, value := range localeMessages {
			if err = builder.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("register %s/%q: %w", locale, key, err)
			}
		}
	}

	return &Bundle{
		defaultTag: defaultTag,
		tags:       tags,
		matcher:    language.NewMatcher(tags),
		builder:    builder,
		messages:   messages,
	}, nil
}

// DefaultTag returns the language used when nothing else matches.
func (b *Bundle) DefaultTag() language.Tag {
	return b.defaultTag
}

// Tags returns the supported languages, default first.
func (b *Bundle) Tags() []language.Tag {
	out := make([]language.Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// Match returns the supported language closest to the preferred ones, or the
// default language when none is close.
func (b *Bundle) Match(preferred ...language.Tag) language.Tag {
	_, index, confidence := b.matcher.Match(preferred...)
	if confidence == language.No {
		return b.defaultTag
	}
	return b.tags[index]
}

// ParseTag parses value and matches it against the supported languages.
// ok is false when value is malformed or nothing supported is close.
func (b *Bundle) ParseTag(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return b.defaultTag, false
	}
	_, index, confidence := b.matcher.Match(tag)
	if confidence == language.No {
		return b.defaultTag, false
	}
	return b.tags[index], true
}

// Message looks key up in locale, falling back to the base locale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if msgs, ok := b.messages[locale]; ok {
		if value, ok := msgs[key]; ok {
			return value, true
		}
	}
	value, ok := b.messages[BaseLocale][key]
	return value, ok
}

// Localizer returns the translator for tag. Unsupported tags are matched to
// the closest supported one.
func (b *Bundle) Localizer(tag language.Tag) *Localizer {
	tag = b.Match(tag)
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.builder)),
	}
}

func sortedKeys(m map[string]map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Localizer translates message keys into one language. A nil *Localizer
// returns keys unchanged.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// T returns the translation of key, or key itself when no catalog has it.
func (l *Localizer) T(key string) string {
	if l == nil {
		return key
	}
	return l.printer.Sprintf(message.Key(key, key))
}

// Lang returns the BCP 47 tag of the localizer ("en-US").
func (l *Localizer) Lang() string {
	if l == nil {
		return BaseLocale
	}
	return l.tag.String()
}
