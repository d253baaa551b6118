package utils

import "strings"

// Fixed locale fallback chain: Norwegian first, then English.
const (
	FallbackLocalePrimary   = "no"
	FallbackLocaleSecondary = "en"
)

// normalizeLocale reduces a locale tag to its lowercased 2-letter language code.
func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if len(locale) > 2 {
		locale = locale[:2]
	}
	return locale
}

// ResolveLocale picks exactly one locale to render from the set actually
// present in a content bundle. Candidates are tried in priority order:
// requested, detected client locale, "no", "en" (deduplicated, empty entries
// dropped). If none is available the first available locale wins; with no
// available locales at all, the requested locale or "no" is returned.
func ResolveLocale(available []string, requested, detected string) string {
	candidates := make([]string, 0, 4)
	seen := make(map[string]bool)
	for _, candidate := range []string{normalizeLocale(requested), normalizeLocale(detected), FallbackLocalePrimary, FallbackLocaleSecondary} {
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		candidates = append(candidates, candidate)
	}

	availableSet := make(map[string]bool, len(available))
	for _, locale := range available {
		availableSet[locale] = true
	}

	for _, candidate := range candidates {
		if availableSet[candidate] {
			return candidate
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	if requested != "" {
		return normalizeLocale(requested)
	}
	return FallbackLocalePrimary
}

// LocalizedString returns the value of a locale-keyed map at the resolved
// locale, falling back to "no", then "en", then the first non-empty value in
// key-iteration order, then "".
func LocalizedString(values map[string]string, locale string) string {
	if v := values[locale]; v != "" {
		return v
	}
	if v := values[FallbackLocalePrimary]; v != "" {
		return v
	}
	if v := values[FallbackLocaleSecondary]; v != "" {
		return v
	}
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// LocalizedList is LocalizedString for locale-keyed string arrays, substituting
// "non-empty array" for "non-empty string".
func LocalizedList(values map[string][]string, locale string) []string {
	if v := values[locale]; len(v) > 0 {
		return v
	}
	if v := values[FallbackLocalePrimary]; len(v) > 0 {
		return v
	}
	if v := values[FallbackLocaleSecondary]; len(v) > 0 {
		return v
	}
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}

// ContentLocales collects the set of locales present across a course's title
// and description plus all its modules' localized fields, preserving first
// occurrence order.
func ContentLocales(maps ...map[string]string) []string {
	var locales []string
	seen := make(map[string]bool)
	for _, m := range maps {
		for locale := range m {
			if !seen[locale] {
				seen[locale] = true
				locales = append(locales, locale)
			}
		}
	}
	return locales
}
