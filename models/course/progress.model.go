package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseProgress is the per-user, per-course set of completed module ids.
// Created lazily on first completion write; never deleted.
type CourseProgress struct {
	gorm.Model
	UserID             uint                      `json:"user_id" gorm:"index;not null"`
	CourseID           uint                      `json:"course_id" gorm:"index;not null"`
	CompletedModuleIDs datatypes.JSONSlice[uint] `json:"completed_module_ids"`
}

// ApplyCompletion computes the module-id set after toggling one module.
// changed is false when the set content is already what the toggle asks for,
// in which case no write should be performed.
func ApplyCompletion(completed []uint, moduleID uint, complete bool) (next []uint, changed bool) {
	present := false
	for _, id := range completed {
		if id == moduleID {
			present = true
			break
		}
	}

	if complete {
		if present {
			return completed, false
		}
		next = make([]uint, 0, len(completed)+1)
		next = append(next, completed...)
		next = append(next, moduleID)
		return next, true
	}

	if !present {
		return completed, false
	}
	next = make([]uint, 0, len(completed)-1)
	for _, id := range completed {
		if id != moduleID {
			next = append(next, id)
		}
	}
	return next, true
}

// CompletedCount reports how many of the live module ids are in the completed
// set. Stale ids of removed modules do not count.
func CompletedCount(moduleIDs, completed []uint) int {
	set := make(map[uint]bool, len(completed))
	for _, id := range completed {
		set[id] = true
	}
	n := 0
	for _, id := range moduleIDs {
		if set[id] {
			n++
		}
	}
	return n
}

// IsCourseComplete reports whether every module id is in the completed set.
// A course with zero modules is never complete.
func IsCourseComplete(moduleIDs, completed []uint) bool {
	if len(moduleIDs) == 0 {
		return false
	}
	set := make(map[uint]bool, len(completed))
	for _, id := range completed {
		set[id] = true
	}
	for _, id := range moduleIDs {
		if !set[id] {
			return false
		}
	}
	return true
}
