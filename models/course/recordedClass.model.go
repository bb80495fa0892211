package course

import "gorm.io/gorm"

// RecordedClass is a recorded lecture attached to a course
type RecordedClass struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	TeacherID   uint   `json:"teacher_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;default:''"`
	VideoURL    string `json:"video_url" gorm:"not null"`
	Duration    int    `json:"duration" gorm:"not null"` // minutes
	IsPublished bool   `json:"is_published" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
