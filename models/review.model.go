package models

import "gorm.io/gorm"

// Review is a student's comment on a course
type Review struct {
	gorm.Model
	StudentID uint   `json:"student_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Comment   string `json:"comment" gorm:"type:text;not null"`
	IsDeleted bool   `gorm:"default:false"`
}
