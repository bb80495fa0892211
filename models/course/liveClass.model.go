package course

import (
	"time"

	"gorm.io/gorm"
)

// Live class lifecycle states
const (
	LiveClassScheduled = "scheduled"
	LiveClassLive      = "live"
	LiveClassEnded     = "ended"
	LiveClassCancelled = "cancelled"
)

// LiveClass is a scheduled online session for a course
type LiveClass struct {
	gorm.Model
	CourseID        uint      `json:"course_id" gorm:"index;not null"`
	TeacherID       uint      `json:"teacher_id" gorm:"index;not null"`
	Title           string    `json:"title" gorm:"not null"`
	Description     string    `json:"description" gorm:"type:text;default:''"`
	StartTime       time.Time `json:"start_time" gorm:"not null"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null"`
	Platform        string    `json:"platform" gorm:"not null"` // zoom, google-meet, teams, custom
	MeetingLink     string    `json:"meeting_link" gorm:"not null"`
	MeetingPassword string    `json:"meeting_password" gorm:"default:''"`
	Status          string    `json:"status" gorm:"default:'scheduled'"`
	IsDeleted       bool      `gorm:"default:false"`
}

// ValidPlatform reports whether p is a supported meeting platform
func ValidPlatform(p string) bool {
	switch p {
	case "zoom", "google-meet", "teams", "custom":
		return true
	}
	return false
}
