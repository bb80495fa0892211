package course

import "gorm.io/gorm"

// Enrollment ties a student to a course. One row per (student, course).
type Enrollment struct {
	gorm.Model
	StudentID uint   `json:"student_id" gorm:"index;not null;uniqueIndex:idx_student_course"`
	CourseID  uint   `json:"course_id" gorm:"index;not null;uniqueIndex:idx_student_course"`
	Status    string `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, COMPLETED
	IsDeleted bool   `gorm:"default:false"`
}

// Payment records the charge collected at enrollment time
type Payment struct {
	gorm.Model
	StudentID uint    `json:"student_id" gorm:"index;not null"`
	CourseID  uint    `json:"course_id" gorm:"index;not null"`
	Method    string  `json:"method" gorm:"not null"` // bkash, nagad, card
	Amount    float64 `json:"amount" gorm:"not null"`
	Status    string  `json:"status" gorm:"default:'success'"`
	Reference string  `json:"reference" gorm:"unique"` // gateway transaction reference
	IsDeleted bool    `gorm:"default:false"`
}
