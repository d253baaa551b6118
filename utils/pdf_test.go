package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitutePlaceholders(t *testing.T) {
	d := DiplomaData{
		ParticipantName: "Kari Nordmann",
		CourseName:      "Fallsikring",
		CustomerName:    "Bygg AS",
		IssuerName:      "Kursportalen",
		CompletedDate:   "2026-08-30",
	}

	text := "{{participantName}} completed {{courseName}} for {{customerName}} on {{completedDate}}. Issued by {{issuerName}}."
	want := "Kari Nordmann completed Fallsikring for Bygg AS on 2026-08-30. Issued by Kursportalen."
	assert.Equal(t, want, SubstitutePlaceholders(text, d))

	// Unknown tokens pass through untouched.
	assert.Equal(t, "{{unknown}}", SubstitutePlaceholders("{{unknown}}", d))
}

func TestWrapText(t *testing.T) {
	// One unit of width per character.
	measure := func(s string) float64 { return float64(len(s)) }

	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"fits on one line", "a b c", 10, []string{"a b c"}},
		{"breaks greedily", "aa bb cc dd", 5, []string{"aa bb", "cc dd"}},
		{"single long word kept whole", "abcdefghij", 5, []string{"abcdefghij"}},
		{"long word forces break", "aa abcdefghij bb", 5, []string{"aa", "abcdefghij", "bb"}},
		{"empty text", "   ", 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapText(measure, tt.text, tt.maxWidth))
		})
	}
}

func TestDiplomaFilename(t *testing.T) {
	assert.Equal(t, "fallsikring-grunnkurs.pdf", DiplomaFilename("Fallsikring Grunnkurs"))
	assert.Equal(t, "hms.pdf", DiplomaFilename("  HMS  "))
	assert.Equal(t, "diploma.pdf", DiplomaFilename(""))
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#FF8000")
	assert.Equal(t, []int{255, 128, 0}, []int{r, g, b})

	// Bad input falls back to the default dark blue.
	r, g, b = parseHexColor("red")
	assert.Equal(t, []int{26, 60, 139}, []int{r, g, b})

	r, g, b = parseHexColor("#GGGGGG")
	assert.Equal(t, []int{26, 60, 139}, []int{r, g, b})
}

func TestRenderDiploma(t *testing.T) {
	pdfBytes, err := RenderDiploma(DiplomaData{
		TitleText:       "Diploma",
		BodyText:        "This is to certify that {{participantName}} has completed {{courseName}}.",
		FooterText:      "Issued by {{issuerName}}.",
		ParticipantName: "Kari Nordmann",
		CourseName:      "Fallsikring",
		CustomerName:    "Bygg AS",
		IssuerName:      "Kursportalen",
		CompletedDate:   "2026-08-30",
		AccentColor:     "#1A3C8B",
	})

	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
