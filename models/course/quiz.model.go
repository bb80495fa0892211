package course

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OptionsPerQuestion is fixed: every question carries exactly four options.
const OptionsPerQuestion = 4

// Question is one multiple-choice question inside a quiz definition.
// Questions are embedded in the definition row and addressed by position.
type Question struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// PublicQuestion is the student-facing projection of a Question. It never
// carries the correct index.
type PublicQuestion struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// QuizDefinition is the question bank and metadata for one quiz, scoped to a
// course. Definitions are write-once: no update or delete path exists.
type QuizDefinition struct {
	gorm.Model
	CourseID  uint           `json:"course_id" gorm:"index;not null"`
	QuizName  string         `json:"quiz_name" gorm:"not null"`
	Questions datatypes.JSON `json:"questions" gorm:"type:jsonb;not null"`
	IsDeleted bool           `gorm:"default:false"`
}

// QuizAttempt is one student's scored submission against a definition.
// The composite unique index is the attempt gate: the database rejects a
// second attempt for the same (quiz, student) pair, so two concurrent
// submissions serialize at the constraint and exactly one wins.
type QuizAttempt struct {
	gorm.Model
	QuizID        uint           `json:"quiz_id" gorm:"not null;uniqueIndex:idx_quiz_student"`
	StudentID     uint           `json:"student_id" gorm:"not null;uniqueIndex:idx_quiz_student"`
	Answers       datatypes.JSON `json:"answers" gorm:"type:jsonb;not null"`
	ObtainedMarks int            `json:"obtained_marks" gorm:"not null"`
	TotalMarks    int            `json:"total_marks" gorm:"not null"`
	AttemptedAt   time.Time      `json:"attempted_at"`
	IsDeleted     bool           `gorm:"default:false"`
}

// ValidateQuestions checks every question before anything is persisted.
// The first offending question fails the whole batch; the error names its
// 1-based position, matching what quiz-builder forms display.
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return errors.New("at least one question is required")
	}
	for i, q := range questions {
		n := i + 1
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("invalid data in question %d", n)
		}
		if len(q.Options) != OptionsPerQuestion {
			return fmt.Errorf("invalid data in question %d", n)
		}
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("invalid data in question %d", n)
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= OptionsPerQuestion {
			return fmt.Errorf("invalid data in question %d", n)
		}
	}
	return nil
}

// SetQuestions validates and stores the question list as JSON.
func (d *QuizDefinition) SetQuestions(questions []Question) error {
	if err := ValidateQuestions(questions); err != nil {
		return err
	}
	b, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	d.Questions = datatypes.JSON(b)
	return nil
}

// QuestionList decodes the stored question JSON.
func (d *QuizDefinition) QuestionList() ([]Question, error) {
	var questions []Question
	if err := json.Unmarshal(d.Questions, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// PublicQuestions returns the answer-key-free projection served to students.
func (d *QuizDefinition) PublicQuestions() ([]PublicQuestion, error) {
	questions, err := d.QuestionList()
	if err != nil {
		return nil, err
	}
	public := make([]PublicQuestion, len(questions))
	for i, q := range questions {
		public[i] = PublicQuestion{Text: q.Text, Options: q.Options}
	}
	return public, nil
}

// ScoreQuiz compares submitted answers to the correct indices by position.
// It is deterministic and has no side effects. Submissions whose answer
// count differs from the question count are rejected outright, as are
// answers outside the option range.
func ScoreQuiz(questions []Question, answers []int) (obtained int, total int, err error) {
	total = len(questions)
	if len(answers) != total {
		return 0, 0, fmt.Errorf("expected %d answers, got %d", total, len(answers))
	}
	for i, a := range answers {
		if a < 0 || a >= OptionsPerQuestion {
			return 0, 0, fmt.Errorf("answer %d is out of range", i+1)
		}
		if a == questions[i].CorrectIndex {
			obtained++
		}
	}
	return obtained, total, nil
}

// SetAnswers stores the submitted answer list as JSON.
func (a *QuizAttempt) SetAnswers(answers []int) error {
	b, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	a.Answers = datatypes.JSON(b)
	return nil
}

// AnswerList decodes the stored answers.
func (a *QuizAttempt) AnswerList() ([]int, error) {
	var answers []int
	if err := json.Unmarshal(a.Answers, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
