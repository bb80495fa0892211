package course

import "gorm.io/gorm"

// Course represents a course in the catalog
type Course struct {
	gorm.Model
	CourseName    string  `json:"course_name" gorm:"not null"`
	CourseInitial string  `json:"course_initial" gorm:"not null"` // short code, e.g. CSE-101
	Credit        float64 `json:"credit" gorm:"default:0"`
	Department    string  `json:"department"`
	InstructorID  uint    `json:"instructor_id" gorm:"index;not null"` // teacher who owns the course
	Prerequisites string  `json:"prerequisites" gorm:"default:''"`
	Description   string  `json:"description" gorm:"type:text;default:''"`
	Schedule      string  `json:"schedule" gorm:"default:''"`
	Price         float64 `json:"price" gorm:"default:0"`
	Advanced      bool    `json:"advanced" gorm:"default:false"`
	IsDeleted     bool    `gorm:"default:false"`
}
