package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Customer is a tenant organization that has been granted access to a subset
// of a company's courses. Customers with AllowSubunits may have child customers
// that carry their own course assignments.
type Customer struct {
	gorm.Model
	Name          string                    `json:"name" gorm:"not null"`
	ContactName   string                    `json:"contact_name"`
	ContactEmail  string                    `json:"contact_email"`
	ContactPhone  string                    `json:"contact_phone"`
	Address       string                    `json:"address"`
	City          string                    `json:"city"`
	PostalCode    string                    `json:"postal_code"`
	Status        string                    `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, INACTIVE
	ParentID      *uint                     `json:"parent_id" gorm:"index"`
	AllowSubunits bool                      `json:"allow_subunits" gorm:"default:false"`
	CourseIDs     datatypes.JSONSlice[uint] `json:"course_ids"`
	CompanyID     uint                      `json:"company_id" gorm:"index;not null"`
	IsDeleted     bool                      `gorm:"default:false"`
}

// HasCourse reports whether the course is assigned to this customer.
func (c *Customer) HasCourse(courseID uint) bool {
	for _, id := range c.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}
