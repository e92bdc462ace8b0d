package i18n_test

import (
	"shareit/shared/i18n"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   language.Tag
	}{
		{name: "empty header", header: "", want: language.English},
		{name: "russian", header: "ru", want: language.Russian},
		{name: "regional russian", header: "ru-RU,ru;q=0.9,en;q=0.8", want: language.Russian},
		{name: "english preferred", header: "en-US,ru;q=0.5", want: language.English},
		{name: "unsupported falls back", header: "de-DE", want: language.English},
		{name: "garbage falls back", header: ";;;q=abc", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.Match(tt.header))
		})
	}
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Booking not found", i18n.Translate(language.English, "errors.404.bookings"))
	assert.Equal(t, "Бронирование не найдено", i18n.Translate(language.Russian, "errors.404.bookings"))
	assert.Equal(t, "Name is required", i18n.Translate(language.Russian, "Name is required"))
}

func TestCatalogsShareKeys(t *testing.T) {
	for _, key := range []string{
		"errors.404.users", "errors.404.items", "errors.404.requests",
		"errors.400.bookings.unavailable", "errors.400.bookings.not_allowed",
		"errors.400.comments.not_allowed", "errors.403.items", "errors.409.users.email",
	} {
		assert.True(t, i18n.Has(key), key)
		assert.NotEqual(t, key, i18n.Translate(language.Russian, key), key)
	}
}
