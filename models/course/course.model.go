package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Expiration policy types
const (
	ExpirationNone   = "NONE"
	ExpirationDays   = "DAYS"
	ExpirationMonths = "MONTHS"
	ExpirationDate   = "DATE"
)

// Course represents a learning course owned by a company. Title and
// description are locale-keyed maps; the client requests a language and the
// server resolves the best available variant.
type Course struct {
	gorm.Model
	CompanyID       uint                                  `json:"company_id" gorm:"index;not null"`
	CreatedBy       uint                                  `json:"created_by" gorm:"index"`
	Title           datatypes.JSONType[map[string]string] `json:"title"`
	Description     datatypes.JSONType[map[string]string] `json:"description"`
	CoverImageURL   string                                `json:"cover_image_url"`
	Status          string                                `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, INACTIVE
	ExpirationType  string                                `json:"expiration_type" gorm:"default:'NONE'"`
	ExpirationValue int                                   `json:"expiration_value" gorm:"default:0"`
	ExpirationDate  *time.Time                            `json:"expiration_date"`
	IsDeleted       bool                                  `gorm:"default:false"`
}
