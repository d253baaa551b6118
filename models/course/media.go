package course

import "github.com/google/uuid"

// Media item types
const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeDocument = "document"
)

// MediaItem is one entry of a module's localized media list.
type MediaItem struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// normalizeItems filters out empty URLs, fills in missing ids and coerces
// unrecognized types to image.
func normalizeItems(items []MediaItem) []MediaItem {
	out := make([]MediaItem, 0, len(items))
	for _, item := range items {
		if item.URL == "" {
			continue
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		switch item.Type {
		case MediaTypeImage, MediaTypeVideo, MediaTypeDocument:
		default:
			item.Type = MediaTypeImage
		}
		out = append(out, item)
	}
	return out
}

// NormalizeMedia produces the canonical locale → ordered media list structure.
// A typed media map that yields at least one locale with a non-empty normalized
// list wins outright and the legacy maps are ignored. Otherwise the legacy
// image and video URL maps are merged per locale, images first, each URL
// getting a fresh id. Locales without any URLs are omitted.
func NormalizeMedia(typed map[string][]MediaItem, legacyImages, legacyVideos map[string][]string) map[string][]MediaItem {
	if len(typed) > 0 {
		canonical := make(map[string][]MediaItem)
		for locale, items := range typed {
			if normalized := normalizeItems(items); len(normalized) > 0 {
				canonical[locale] = normalized
			}
		}
		if len(canonical) > 0 {
			return canonical
		}
	}

	canonical := make(map[string][]MediaItem)
	locales := make(map[string]bool)
	for locale := range legacyImages {
		locales[locale] = true
	}
	for locale := range legacyVideos {
		locales[locale] = true
	}

	for locale := range locales {
		items := make([]MediaItem, 0, len(legacyImages[locale])+len(legacyVideos[locale]))
		for _, url := range legacyImages[locale] {
			if url == "" {
				continue
			}
			items = append(items, MediaItem{ID: uuid.NewString(), URL: url, Type: MediaTypeImage})
		}
		for _, url := range legacyVideos[locale] {
			if url == "" {
				continue
			}
			items = append(items, MediaItem{ID: uuid.NewString(), URL: url, Type: MediaTypeVideo})
		}
		if len(items) > 0 {
			canonical[locale] = items
		}
	}
	return canonical
}

// MediaForLocale returns the canonical list for the resolved locale, falling
// back to "no", then the first locale with a non-empty list, then nothing.
func MediaForLocale(canonical map[string][]MediaItem, locale string) []MediaItem {
	if items := canonical[locale]; len(items) > 0 {
		return items
	}
	if items := canonical["no"]; len(items) > 0 {
		return items
	}
	for _, items := range canonical {
		if len(items) > 0 {
			return items
		}
	}
	return nil
}
