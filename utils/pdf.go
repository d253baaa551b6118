package utils

import (
	"bytes"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/jung-kurt/gofpdf"

	courseModels "lms/models/course"
)

// DiplomaData carries everything the renderer needs for one certificate.
type DiplomaData struct {
	TitleText  string
	BodyText   string
	FooterText string

	ParticipantName string
	CourseName      string
	CustomerName    string
	IssuerName      string
	CompletedDate   string

	AccentColor       string
	LogoURL           string
	SignatureImageURL string
	SignatureName     string
	SignatureTitle    string
}

// SubstitutePlaceholders fills the template tokens with the diploma's values.
func SubstitutePlaceholders(text string, d DiplomaData) string {
	replacer := strings.NewReplacer(
		courseModels.PlaceholderParticipant, d.ParticipantName,
		courseModels.PlaceholderCourseName, d.CourseName,
		courseModels.PlaceholderCustomerName, d.CustomerName,
		courseModels.PlaceholderCompletedDate, d.CompletedDate,
		courseModels.PlaceholderIssuerName, d.IssuerName,
	)
	return replacer.Replace(text)
}

// WrapText breaks text into lines no wider than maxWidth using greedy
// line-breaking: append the word if it fits, else start a new line.
func WrapText(measure func(string) float64, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if measure(current+" "+word) <= maxWidth {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}

// DiplomaFilename derives the attachment filename from the course name:
// lowercased, spaces to hyphens.
func DiplomaFilename(courseName string) string {
	name := strings.ToLower(strings.TrimSpace(courseName))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		name = "diploma"
	}
	return name + ".pdf"
}

// parseHexColor parses "#RRGGBB" into RGB components, dark blue on bad input.
func parseHexColor(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 26, 60, 139
	}
	rv, err1 := strconv.ParseInt(hex[0:2], 16, 0)
	gv, err2 := strconv.ParseInt(hex[2:4], 16, 0)
	bv, err3 := strconv.ParseInt(hex[4:6], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return 26, 60, 139
	}
	return int(rv), int(gv), int(bv)
}

// fetchImage downloads an image for embedding. Returns the bytes and the
// gofpdf image type, or an error the caller is expected to swallow.
func fetchImage(url string) ([]byte, string, error) {
	client := resty.New()
	resp, err := client.R().Get(url)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode() != 200 {
		return nil, "", fmt.Errorf("image fetch returned status %d", resp.StatusCode())
	}

	body := resp.Body()
	contentType := resp.Header().Get("Content-Type")
	switch {
	case strings.Contains(contentType, "png") || bytes.HasPrefix(body, []byte("\x89PNG")):
		return body, "PNG", nil
	case strings.Contains(contentType, "jpeg") || strings.Contains(contentType, "jpg") || bytes.HasPrefix(body, []byte{0xFF, 0xD8}):
		return body, "JPG", nil
	}
	return nil, "", fmt.Errorf("unsupported image content type %q", contentType)
}

// embedRemoteImage registers a fetched image under name and draws it centered
// horizontally at y, scaled to fit the bounding box preserving aspect ratio.
// Fetch or decode failures are logged and skipped so the diploma still renders.
func embedRemoteImage(pdf *gofpdf.Fpdf, url, name string, centerX, y, maxW, maxH float64) float64 {
	body, imgType, err := fetchImage(url)
	if err != nil {
		log.Printf("Skipping diploma image %s: %v", url, err)
		return 0
	}

	info := pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: imgType}, bytes.NewReader(body))
	if pdf.Err() {
		log.Printf("Skipping diploma image %s: %v", url, pdf.Error())
		pdf.ClearError()
		return 0
	}
	if info.Width() <= 0 || info.Height() <= 0 {
		return 0
	}

	w := maxW
	h := w * info.Height() / info.Width()
	if h > maxH {
		h = maxH
		w = h * info.Width() / info.Height()
	}
	pdf.ImageOptions(name, centerX-w/2, y, w, h, false, gofpdf.ImageOptions{ImageType: imgType}, 0, "")
	return h
}

// RenderDiploma draws a one-page A4 landscape certificate and returns the
// finished PDF bytes.
func RenderDiploma(d DiplomaData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	margin := 12.0
	innerW := pageW - 2*(margin+8)
	centerX := pageW / 2

	r, g, b := parseHexColor(d.AccentColor)

	// Border frame
	pdf.SetDrawColor(r, g, b)
	pdf.SetLineWidth(1.2)
	pdf.Rect(margin, margin, pageW-2*margin, pageH-2*margin, "D")
	pdf.SetLineWidth(0.3)
	pdf.Rect(margin+3, margin+3, pageW-2*margin-6, pageH-2*margin-6, "D")

	y := margin + 12

	// Optional centered logo, aspect-preserving within a bounded box
	if d.LogoURL != "" {
		if h := embedRemoteImage(pdf, d.LogoURL, "diploma-logo", centerX, y, 60, 25); h > 0 {
			y += h + 6
		}
	}

	// Centered title, participant and course name
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 30)
	pdf.Text(centerX-pdf.GetStringWidth(d.TitleText)/2, y+10, d.TitleText)
	y += 22

	pdf.SetTextColor(40, 40, 40)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(centerX-pdf.GetStringWidth(d.ParticipantName)/2, y+8, d.ParticipantName)
	y += 14

	pdf.SetFont("Helvetica", "I", 16)
	pdf.Text(centerX-pdf.GetStringWidth(d.CourseName)/2, y+6, d.CourseName)
	y += 16

	// Body text with placeholder substitution, greedy word wrap
	pdf.SetFont("Helvetica", "", 12)
	body := SubstitutePlaceholders(d.BodyText, d)
	for _, line := range WrapText(pdf.GetStringWidth, body, innerW) {
		pdf.Text(centerX-pdf.GetStringWidth(line)/2, y+5, line)
		y += 7
	}

	// Optional signature block above the footer
	if d.SignatureImageURL != "" || d.SignatureName != "" || d.SignatureTitle != "" {
		sigY := pageH - margin - 42
		if d.SignatureImageURL != "" {
			embedRemoteImage(pdf, d.SignatureImageURL, "diploma-signature", centerX, sigY, 45, 18)
		}
		pdf.SetFont("Helvetica", "", 11)
		if d.SignatureName != "" {
			pdf.Text(centerX-pdf.GetStringWidth(d.SignatureName)/2, sigY+23, d.SignatureName)
		}
		if d.SignatureTitle != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.Text(centerX-pdf.GetStringWidth(d.SignatureTitle)/2, sigY+28, d.SignatureTitle)
		}
	}

	// Footer near the bottom, wrapped the same way
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	footer := SubstitutePlaceholders(d.FooterText, d)
	footerY := pageH - margin - 10
	for _, line := range WrapText(pdf.GetStringWidth, footer, innerW) {
		pdf.Text(centerX-pdf.GetStringWidth(line)/2, footerY, line)
		footerY += 5
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
