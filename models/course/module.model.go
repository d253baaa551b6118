package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Module types
const (
	ModuleTypeNormal = "NORMAL"
	ModuleTypeExam   = "EXAM"
)

// CourseModule represents one sequential unit of a course. All text fields are
// locale-keyed. Media exists in two historical shapes: the typed Media map and
// the legacy parallel ImageURLs/VideoURLs maps; readers go through
// NormalizedMedia so both shapes are served transparently.
type CourseModule struct {
	gorm.Model
	CourseID    uint                                       `json:"course_id" gorm:"index;not null"`
	Title       datatypes.JSONType[map[string]string]      `json:"title"`
	Summary     datatypes.JSONType[map[string]string]      `json:"summary"`
	Body        datatypes.JSONType[map[string]string]      `json:"body"`
	Media       datatypes.JSONType[map[string][]MediaItem] `json:"media"`
	ImageURLs   datatypes.JSONType[map[string][]string]    `json:"image_urls"` // legacy shape
	VideoURLs   datatypes.JSONType[map[string][]string]    `json:"video_urls"` // legacy shape
	Questions   datatypes.JSONSlice[Question]              `json:"questions"`
	OrderIndex  int                                        `json:"order_index" gorm:"default:0"` // presentation sequence, ascending
	ModuleType  string                                     `json:"module_type" gorm:"default:'NORMAL'"`
	PassPercent int                                        `json:"pass_percent" gorm:"default:0"` // stored for EXAM modules, not enforced
	IsDeleted   bool                                       `gorm:"default:false"`
}

// NormalizedMedia reconciles the typed and legacy media shapes into the
// canonical locale → ordered item list form.
func (m *CourseModule) NormalizedMedia() map[string][]MediaItem {
	return NormalizeMedia(m.Media.Data(), m.ImageURLs.Data(), m.VideoURLs.Data())
}
