package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMediaTypedWins(t *testing.T) {
	typed := map[string][]MediaItem{
		"no": {{ID: "a", URL: "https://cdn/a.mp4", Type: MediaTypeVideo}},
	}
	legacyImages := map[string][]string{"no": {"https://cdn/legacy.jpg"}}

	canonical := NormalizeMedia(typed, legacyImages, nil)

	require.Len(t, canonical, 1)
	require.Len(t, canonical["no"], 1)
	assert.Equal(t, "https://cdn/a.mp4", canonical["no"][0].URL)
	assert.Equal(t, MediaTypeVideo, canonical["no"][0].Type)
}

func TestNormalizeMediaTypedFiltering(t *testing.T) {
	typed := map[string][]MediaItem{
		"no": {
			{URL: ""},
			{URL: "https://cdn/a.jpg", Type: "banner"},
		},
		"en": {{URL: ""}},
	}

	canonical := NormalizeMedia(typed, nil, nil)

	require.Len(t, canonical, 1)
	require.Len(t, canonical["no"], 1)
	assert.NotEmpty(t, canonical["no"][0].ID)
	assert.Equal(t, MediaTypeImage, canonical["no"][0].Type)
	assert.NotContains(t, canonical, "en")
}

func TestNormalizeMediaLegacyMerge(t *testing.T) {
	legacyImages := map[string][]string{"no": {"https://cdn/1.jpg", "https://cdn/2.jpg"}}
	legacyVideos := map[string][]string{"no": {"https://cdn/1.mp4"}, "en": {"https://cdn/2.mp4"}}

	canonical := NormalizeMedia(nil, legacyImages, legacyVideos)

	require.Len(t, canonical, 2)
	require.Len(t, canonical["no"], 3)

	// Images come before videos, each with a generated id.
	assert.Equal(t, MediaTypeImage, canonical["no"][0].Type)
	assert.Equal(t, MediaTypeImage, canonical["no"][1].Type)
	assert.Equal(t, MediaTypeVideo, canonical["no"][2].Type)
	for _, item := range canonical["no"] {
		assert.NotEmpty(t, item.ID)
	}

	require.Len(t, canonical["en"], 1)
	assert.Equal(t, MediaTypeVideo, canonical["en"][0].Type)
}

func TestNormalizeMediaEmptyTypedFallsToLegacy(t *testing.T) {
	// Typed map exists but normalizes to nothing, so legacy still applies.
	typed := map[string][]MediaItem{"no": {{URL: ""}}}
	legacyImages := map[string][]string{"no": {"https://cdn/a.jpg"}}

	canonical := NormalizeMedia(typed, legacyImages, nil)

	require.Len(t, canonical["no"], 1)
	assert.Equal(t, "https://cdn/a.jpg", canonical["no"][0].URL)
}

func TestMediaForLocale(t *testing.T) {
	canonical := map[string][]MediaItem{
		"no": {{ID: "n", URL: "https://cdn/no.jpg", Type: MediaTypeImage}},
		"en": {{ID: "e", URL: "https://cdn/en.jpg", Type: MediaTypeImage}},
	}

	assert.Equal(t, "https://cdn/en.jpg", MediaForLocale(canonical, "en")[0].URL)
	assert.Equal(t, "https://cdn/no.jpg", MediaForLocale(canonical, "sv")[0].URL)

	onlyDe := map[string][]MediaItem{"de": {{ID: "d", URL: "https://cdn/de.jpg", Type: MediaTypeImage}}}
	assert.Equal(t, "https://cdn/de.jpg", MediaForLocale(onlyDe, "no")[0].URL)

	assert.Nil(t, MediaForLocale(map[string][]MediaItem{}, "no"))
}
