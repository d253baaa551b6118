package models

import "gorm.io/gorm"

// Company is the system owner: it creates customer tenants and owns courses.
type Company struct {
	gorm.Model
	Name       string `json:"name" gorm:"not null"`
	IssuerName string `json:"issuer_name"` // printed on diplomas; config default when empty
	IsDeleted  bool   `gorm:"default:false"`
}
