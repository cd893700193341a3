// Package i18n holds the label strings of the picker: month and weekday
// names, buttons and key help.
package i18n

import (
	"embed"
	"strconv"
	"strings"

	"github.com/hy4ri/datepick/internal/debuglog"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLanguage is used when no preference is configured.
const DefaultLanguage = "en"

// Labels translates label keys for one language.
type Labels struct {
	localizer *i18n.Localizer
	lang      string
}

var bundle = loadBundle()

func loadBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		debuglog.Printf("i18n: cannot read locales: %v", err)
		return b
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		if _, err := b.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			debuglog.Printf("i18n: cannot load %s: %v", name, err)
		}
	}
	return b
}

// Languages lists the bundled languages.
func Languages() []string {
	tags := bundle.LanguageTags()
	langs := make([]string, 0, len(tags))
	for _, t := range tags {
		langs = append(langs, t.String())
	}
	return langs
}

// New returns labels for lang, falling back to English for unknown
// languages and missing keys.
func New(lang string) *Labels {
	if lang == "" {
		lang = DefaultLanguage
	}
	return &Labels{
		localizer: i18n.NewLocalizer(bundle, lang, DefaultLanguage),
		lang:      lang,
	}
}

// Language returns the requested language.
func (l *Labels) Language() string { return l.lang }

// T translates key, returning the key itself when no translation exists.
func (l *Labels) T(key string) string {
	if l == nil || l.localizer == nil {
		return key
	}
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		debuglog.Printf("i18n: missing %q: %v", key, err)
		return key
	}
	return msg
}

// Month returns the name of the zero-based month.
func (l *Labels) Month(month int) string {
	return l.T("Month" + strconv.Itoa(month))
}

// ShortMonth returns the first three characters of the month name.
func (l *Labels) ShortMonth(month int) string {
	r := []rune(l.Month(month))
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

// Weekday returns the two-letter name of weekday, 0 = Sunday.
func (l *Labels) Weekday(weekday int) string {
	return l.T("Weekday" + strconv.Itoa(weekday))
}
