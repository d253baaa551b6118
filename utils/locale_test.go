package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		requested string
		detected  string
		want      string
	}{
		{"requested available", []string{"en", "no"}, "no", "en", "no"},
		{"requested missing falls to detected", []string{"en", "no"}, "sv", "en", "en"},
		{"requested and detected missing falls to no", []string{"en", "no"}, "sv", "de", "no"},
		{"only en available", []string{"en"}, "sv", "de", "en"},
		{"nothing matches takes first available", []string{"de", "fr"}, "sv", "it", "de"},
		{"empty available echoes requested", nil, "sv", "", "sv"},
		{"empty available no requested", nil, "", "", "no"},
		{"region tag reduced", []string{"en", "no"}, "nb-NO", "en-US", "en"},
		{"uppercase normalized", []string{"en", "no"}, "EN", "", "en"},
		{"detected duplicate of requested ignored", []string{"no"}, "sv", "sv", "no"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLocale(tt.available, tt.requested, tt.detected))
		})
	}
}

func TestLocalizedString(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		locale string
		want   string
	}{
		{"exact locale", map[string]string{"no": "Hei", "en": "Hi"}, "no", "Hei"},
		{"falls back to no", map[string]string{"no": "Hei", "en": "Hi"}, "sv", "Hei"},
		{"falls back to en", map[string]string{"en": "Hi"}, "no", "Hi"},
		{"first non-empty when fallbacks missing", map[string]string{"de": "Hallo"}, "no", "Hallo"},
		{"empty value skipped", map[string]string{"no": "", "en": "Hi"}, "no", "Hi"},
		{"empty map", map[string]string{}, "no", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalizedString(tt.values, tt.locale))
		})
	}
}

func TestLocalizedList(t *testing.T) {
	values := map[string][]string{
		"no": {"a.jpg"},
		"en": {"b.jpg", "c.jpg"},
	}
	assert.Equal(t, []string{"b.jpg", "c.jpg"}, LocalizedList(values, "en"))
	assert.Equal(t, []string{"a.jpg"}, LocalizedList(values, "sv"))
	assert.Nil(t, LocalizedList(map[string][]string{"no": {}}, "no"))
}

func TestContentLocales(t *testing.T) {
	locales := ContentLocales(
		map[string]string{"no": "Tittel"},
		map[string]string{"no": "Beskrivelse", "en": "Description"},
	)
	assert.Len(t, locales, 2)
	assert.Contains(t, locales, "no")
	assert.Contains(t, locales, "en")
	assert.Equal(t, "no", locales[0])
}
