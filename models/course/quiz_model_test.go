package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []Question {
	return []Question{
		{Text: "What is 2+2?", Options: []string{"3", "4", "5", "6"}, CorrectIndex: 1},
		{Text: "Capital of Bangladesh?", Options: []string{"Dhaka", "Delhi", "Kathmandu", "Colombo"}, CorrectIndex: 0},
		{Text: "Largest ocean?", Options: []string{"Atlantic", "Indian", "Pacific", "Arctic"}, CorrectIndex: 2},
	}
}

func TestValidateQuestions(t *testing.T) {
	assert.NoError(t, ValidateQuestions(sampleQuestions()))

	assert.Error(t, ValidateQuestions(nil))

	// Position in the error is 1-based, matching quiz-builder forms
	bad := sampleQuestions()
	bad[1].Options = []string{"only", "three", "options"}
	err := ValidateQuestions(bad)
	require.Error(t, err)
	assert.Equal(t, "invalid data in question 2", err.Error())

	bad = sampleQuestions()
	bad[0].Text = "   "
	err = ValidateQuestions(bad)
	require.Error(t, err)
	assert.Equal(t, "invalid data in question 1", err.Error())

	bad = sampleQuestions()
	bad[2].CorrectIndex = 4
	err = ValidateQuestions(bad)
	require.Error(t, err)
	assert.Equal(t, "invalid data in question 3", err.Error())

	bad = sampleQuestions()
	bad[2].CorrectIndex = -1
	assert.Error(t, ValidateQuestions(bad))

	bad = sampleQuestions()
	bad[1].Options[3] = ""
	err = ValidateQuestions(bad)
	require.Error(t, err)
	assert.Equal(t, "invalid data in question 2", err.Error())
}

func TestScoreQuiz(t *testing.T) {
	questions := sampleQuestions()

	obtained, total, err := ScoreQuiz(questions, []int{1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, obtained)
	assert.Equal(t, 3, total)

	obtained, total, err = ScoreQuiz(questions, []int{1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, obtained)
	assert.Equal(t, 3, total)

	obtained, total, err = ScoreQuiz(questions, []int{0, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, 0, obtained)
	assert.Equal(t, 3, total)
}

func TestScoreQuizIsDeterministic(t *testing.T) {
	questions := sampleQuestions()
	answers := []int{1, 3, 2}

	first, total, err := ScoreQuiz(questions, answers)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, againTotal, err := ScoreQuiz(questions, answers)
		require.NoError(t, err)
		assert.Equal(t, first, again)
		assert.Equal(t, total, againTotal)
	}
}

func TestScoreQuizRejectsAnswerCountMismatch(t *testing.T) {
	questions := sampleQuestions()

	_, _, err := ScoreQuiz(questions, []int{1, 0})
	require.Error(t, err)
	assert.Equal(t, "expected 3 answers, got 2", err.Error())

	_, _, err = ScoreQuiz(questions, []int{1, 0, 2, 3})
	assert.Error(t, err)
}

func TestScoreQuizRejectsOutOfRangeAnswer(t *testing.T) {
	questions := sampleQuestions()

	_, _, err := ScoreQuiz(questions, []int{1, 4, 2})
	require.Error(t, err)
	assert.Equal(t, "answer 2 is out of range", err.Error())

	_, _, err = ScoreQuiz(questions, []int{-1, 0, 2})
	assert.Error(t, err)
}

func TestSetQuestionsRejectsBadData(t *testing.T) {
	var def QuizDefinition

	bad := sampleQuestions()
	bad[0].Options = bad[0].Options[:2]
	assert.Error(t, def.SetQuestions(bad))
	assert.Empty(t, def.Questions)
}

func TestQuestionListRoundTrip(t *testing.T) {
	var def QuizDefinition
	require.NoError(t, def.SetQuestions(sampleQuestions()))

	got, err := def.QuestionList()
	require.NoError(t, err)
	assert.Equal(t, sampleQuestions(), got)
}

func TestPublicQuestionsHideCorrectIndex(t *testing.T) {
	var def QuizDefinition
	require.NoError(t, def.SetQuestions(sampleQuestions()))

	public, err := def.PublicQuestions()
	require.NoError(t, err)
	require.Len(t, public, 3)
	for i, q := range public {
		assert.Equal(t, sampleQuestions()[i].Text, q.Text)
		assert.Equal(t, sampleQuestions()[i].Options, q.Options)
	}
}

func TestAttemptAnswersRoundTrip(t *testing.T) {
	var attempt QuizAttempt
	require.NoError(t, attempt.SetAnswers([]int{1, 0, 2}))

	got, err := attempt.AnswerList()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, got)
}
