// Package i18n renders message keys for the language a client asks for.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/language"
)

//go:embed messages/*.json
var files embed.FS

// Supported lists the catalogs in matcher order. The first entry is the fallback.
var Supported = []language.Tag{language.English, language.Russian}

var (
	catalogs = map[language.Tag]map[string]string{}
	matcher  language.Matcher
)

func init() {
	for _, tag := range Supported {
		raw, err := files.ReadFile(path.Join("messages", tag.String()+".json"))
		if err != nil {
			panic(fmt.Errorf("failed to read %s catalog: %w", tag, err))
		}

		catalog := map[string]string{}
		if err = json.Unmarshal(raw, &catalog); err != nil {
			panic(fmt.Errorf("failed to parse %s catalog: %w", tag, err))
		}

		catalogs[tag] = catalog
	}

	matcher = language.NewMatcher(Supported)
}

// Match picks the best supported language for an Accept-Language header value.
func Match(acceptLanguage string) language.Tag {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Supported[0]
	}

	preferred, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(preferred) == 0 {
		return Supported[0]
	}

	_, index, _ := matcher.Match(preferred...)

	return Supported[index]
}

// Translate looks key up in the catalog for tag, then in the fallback catalog.
// Unknown keys come back unchanged, so free-text messages pass through.
func Translate(tag language.Tag, key string) string {
	if text, ok := catalogs[tag][key]; ok {
		return text
	}

	if text, ok := catalogs[Supported[0]][key]; ok {
		return text
	}

	return key
}

// Has reports whether key exists in the fallback catalog.
func Has(key string) bool {
	_, ok := catalogs[Supported[0]][key]

	return ok
}
