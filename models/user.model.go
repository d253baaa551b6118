package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Membership role constants
const (
	CompanyRoleAdmin  = "ADMIN"
	CompanyRoleEditor = "EDITOR"
	CompanyRoleViewer = "VIEWER"

	CustomerRoleAdmin = "ADMIN"
	CustomerRoleUser  = "USER"
)

type User struct {
	gorm.Model
	ProfileImage      string `gorm:"default:''"`
	FirstName         string `json:"first_name" gorm:"default:''"`
	LastName          string `json:"last_name" gorm:"default:''"`
	Email             string `json:"email" gorm:"unique;not null"`
	Mobile            string `json:"mobile" gorm:"default:''"`
	Password          string `json:"-" gorm:"not null"`
	Status            string `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, INACTIVE
	Locale            string `json:"locale" gorm:"default:''"`       // preferred content language
	IsProfileComplete bool   `json:"is_profile_complete" gorm:"default:false"`
	LastLogin         time.Time
	IsDeleted         bool `gorm:"default:false"`
}

// FullName joins first and last name for display and diplomas.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// CompanyMembership grants a user a role set within an owning company
type CompanyMembership struct {
	gorm.Model
	UserID    uint                        `json:"user_id" gorm:"index;not null"`
	CompanyID uint                        `json:"company_id" gorm:"index;not null"`
	Roles     datatypes.JSONSlice[string] `json:"roles"` // ADMIN, EDITOR, VIEWER
	IsDeleted bool                        `gorm:"default:false"`
}

// HasRole reports whether the membership carries the given role.
func (m *CompanyMembership) HasRole(role string) bool {
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CustomerMembership links a user to a customer tenant. A user may be assigned
// only a subset of the customer's courses; only assigned courses are visible.
type CustomerMembership struct {
	gorm.Model
	UserID            uint                        `json:"user_id" gorm:"index;not null"`
	CustomerID        uint                        `json:"customer_id" gorm:"index;not null"`
	Roles             datatypes.JSONSlice[string] `json:"roles"` // ADMIN, USER
	AssignedCourseIDs datatypes.JSONSlice[uint]   `json:"assigned_course_ids"`
	IsDeleted         bool                        `gorm:"default:false"`
}

// HasCourse reports whether the given course is in the membership's assigned set.
func (m *CustomerMembership) HasCourse(courseID uint) bool {
	for _, id := range m.AssignedCourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}
