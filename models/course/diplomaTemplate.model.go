package course

import "gorm.io/gorm"

// Diploma placeholder tokens substituted at render time.
const (
	PlaceholderParticipant   = "{{participantName}}"
	PlaceholderCourseName    = "{{courseName}}"
	PlaceholderCustomerName  = "{{customerName}}"
	PlaceholderCompletedDate = "{{completedDate}}"
	PlaceholderIssuerName    = "{{issuerName}}"
)

// DiplomaTemplate holds a company's certificate layout parameters. Defaults
// are supplied at render time when a company has no template row.
type DiplomaTemplate struct {
	gorm.Model
	CompanyID         uint   `json:"company_id" gorm:"uniqueIndex;not null"`
	TitleText         string `json:"title_text"`
	BodyText          string `json:"body_text"`
	FooterText        string `json:"footer_text"`
	AccentColor       string `json:"accent_color"` // hex, e.g. #1A3C8B
	LogoURL           string `json:"logo_url"`
	SignatureImageURL string `json:"signature_image_url"`
	SignatureName     string `json:"signature_name"`
	SignatureTitle    string `json:"signature_title"`
	IsDeleted         bool   `gorm:"default:false"`
}

// DefaultDiplomaTemplate returns the fallback layout used when a company has
// not configured its own template.
func DefaultDiplomaTemplate(companyID uint) DiplomaTemplate {
	return DiplomaTemplate{
		CompanyID:   companyID,
		TitleText:   "Diploma",
		BodyText:    "This is to certify that {{participantName}} has completed the course {{courseName}} on behalf of {{customerName}} on {{completedDate}}.",
		FooterText:  "Issued by {{issuerName}}.",
		AccentColor: "#1A3C8B",
	}
}
