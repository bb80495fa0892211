package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssignmentQuestion is an assignment handed out by a teacher with a hard
// submission deadline.
type AssignmentQuestion struct {
	gorm.Model
	TeacherID          uint      `json:"teacher_id" gorm:"index;not null"`
	CourseID           uint      `json:"course_id" gorm:"index;not null"`
	AssignmentName     string    `json:"assignment_name" gorm:"not null"`
	AssignmentQuestion string    `json:"assignment_question" gorm:"type:text;not null"`
	Deadline           time.Time `json:"deadline" gorm:"not null"`
	IsDeleted          bool      `gorm:"default:false"`
}

// SubmittedFile is one uploaded file inside an assignment answer
type SubmittedFile struct {
	FilePath   string    `json:"file_path"`
	FileName   string    `json:"file_name"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// AssignmentAnswer is a student's submission. One per student per question,
// enforced by the composite unique index.
type AssignmentAnswer struct {
	gorm.Model
	AssignmentQuestionID uint           `json:"assignment_question_id" gorm:"not null;uniqueIndex:idx_assignment_student"`
	StudentID            uint           `json:"student_id" gorm:"not null;uniqueIndex:idx_assignment_student"`
	Answers              datatypes.JSON `json:"answers" gorm:"type:jsonb;not null"` // array of SubmittedFile
	SubmittedAt          time.Time      `json:"submitted_at"`
	IsDeleted            bool           `gorm:"default:false"`
}

// AssignmentFeedback is a teacher's remark on a submitted answer
type AssignmentFeedback struct {
	gorm.Model
	AssignmentAnswerID uint      `json:"assignment_answer_id" gorm:"index;not null"`
	TeacherID          uint      `json:"teacher_id" gorm:"index;not null"`
	Feedback           string    `json:"feedback" gorm:"type:text;not null"`
	GivenAt            time.Time `json:"given_at"`
	IsDeleted          bool      `gorm:"default:false"`
}
