package i18n

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter that selects a language.
	LangParam = "lang"

	// LangCookieName stores the chosen language between requests.
	LangCookieName = "lang"
)

type localizerCtxKey struct{}

// ResolveTag picks the language of r: the lang query parameter, then the
// lang cookie, then Accept-Language, then the default. persist reports
// whether the query parameter chose it and should be saved in a cookie.
func (b *Bundle) ResolveTag(r *http.Request) (tag language.Tag, persist bool) {
	if r == nil {
		return b.defaultTag, false
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, ok := b.ParseTag(value); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := b.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return b.Match(tags...), false
		}
	}

	return b.defaultTag, false
}

// SetLanguageCookie saves tag on the response for a year.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// LanguageURL returns path with the lang parameter of rawQuery set to tag.
func LanguageURL(path, rawQuery, tag string) string {
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// WithLocalizer stores l in ctx.
func WithLocalizer(ctx context.Context, l *Localizer) context.Context {
	return context.WithValue(ctx, localizerCtxKey{}, l)
}

// FromContext returns the localizer stored by WithLocalizer, or nil.
func FromContext(ctx context.Context) *Localizer {
	l, _ := ctx.Value(localizerCtxKey{}).(*Localizer)
	return l
}
