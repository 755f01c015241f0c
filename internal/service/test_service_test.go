package service

import (
	"errors"
	"strconv"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"
)

func singleChoiceQuestion(id uint, points int, correctID uint, optionIDs ...uint) model.Question {
	q := model.Question{QuestionType: model.SingleChoice, Points: points}
	q.ID = id
	for _, oid := range optionIDs {
		o := model.AnswerOption{IsCorrect: oid == correctID}
		o.ID = oid
		q.AnswerOptions = append(q.AnswerOptions, o)
	}
	return q
}

func multipleChoiceQuestion(id uint, points int, correctIDs map[uint]bool, optionIDs ...uint) model.Question {
	q := model.Question{QuestionType: model.MultipleChoice, Points: points}
	q.ID = id
	for _, oid := range optionIDs {
		o := model.AnswerOption{IsCorrect: correctIDs[oid]}
		o.ID = oid
		q.AnswerOptions = append(q.AnswerOptions, o)
	}
	return q
}

func TestGradeAnswers_SingleChoice(t *testing.T) {
	questions := []model.Question{singleChoiceQuestion(1, 1, 10, 10, 11, 12)}

	cases := []struct {
		name   string
		answer interface{}
		want   float64
	}{
		{"correct id", float64(10), 100},
		{"wrong id", float64(11), 0},
		{"list takes first element", []interface{}{float64(10), float64(11)}, 100},
		{"list with wrong first element", []interface{}{float64(11), float64(10)}, 0},
		{"numeric string", "10", 100},
		{"unparseable string", "abc", 0},
		{"empty list", []interface{}{}, 0},
		{"nil answer", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gradeAnswers(questions, map[string]interface{}{"1": tc.answer})
			if got != tc.want {
				t.Fatalf("expected score %v got %v", tc.want, got)
			}
		})
	}
}

func TestGradeAnswers_MultipleChoiceExactSet(t *testing.T) {
	correct := map[uint]bool{20: true, 21: true}
	questions := []model.Question{multipleChoiceQuestion(2, 2, correct, 20, 21, 22)}

	cases := []struct {
		name   string
		answer interface{}
		want   float64
	}{
		{"exact set", []interface{}{float64(20), float64(21)}, 100},
		{"exact set reordered", []interface{}{float64(21), float64(20)}, 100},
		{"subset gets no partial credit", []interface{}{float64(20)}, 0},
		{"superset gets nothing", []interface{}{float64(20), float64(21), float64(22)}, 0},
		{"scalar answer treated as singleton", float64(20), 0},
		{"unparseable member", []interface{}{float64(20), "x"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gradeAnswers(questions, map[string]interface{}{"2": tc.answer})
			if got != tc.want {
				t.Fatalf("expected score %v got %v", tc.want, got)
			}
		})
	}
}

func TestGradeAnswers_TextQuestionsExcluded(t *testing.T) {
	text := model.Question{QuestionType: model.Text, Points: 5}
	text.ID = 3
	questions := []model.Question{
		singleChoiceQuestion(1, 1, 10, 10, 11),
		text,
	}

	// 主观题答没答都不影响得分
	got := gradeAnswers(questions, map[string]interface{}{
		"1": float64(10),
		"3": "free form essay",
	})
	if got != 100 {
		t.Fatalf("expected 100 got %v", got)
	}
}

func TestGradeAnswers_NoGradableQuestions(t *testing.T) {
	text := model.Question{QuestionType: model.Text, Points: 5}
	text.ID = 1
	if got := gradeAnswers([]model.Question{text}, map[string]interface{}{"1": "answer"}); got != 0 {
		t.Fatalf("expected 0 got %v", got)
	}
	if got := gradeAnswers(nil, map[string]interface{}{}); got != 0 {
		t.Fatalf("expected 0 for empty test got %v", got)
	}
}

func TestGradeAnswers_WeightedByPoints(t *testing.T) {
	questions := []model.Question{
		singleChoiceQuestion(1, 3, 10, 10, 11),
		singleChoiceQuestion(2, 1, 20, 20, 21),
	}

	// 只答对 3 分题：3/4 = 75
	got := gradeAnswers(questions, map[string]interface{}{"1": float64(10), "2": float64(21)})
	if got != 75 {
		t.Fatalf("expected 75 got %v", got)
	}
}

func TestTestService_CreateOwnershipIsTransitive(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com", model.Instructor)
	other := env.createUser(t, "other@example.com", model.Instructor)
	course := env.createCourse(t, owner.ID, true)
	lesson := env.createLesson(t, course.ID, 1)

	req := TestReq{LessonID: lesson.ID, Title: "Quiz", PassingScore: 60}

	if _, err := env.test.Create(other.ID, req); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied got %v", err)
	}

	created, err := env.test.Create(owner.ID, req)
	if err != nil {
		t.Fatalf("create test: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected persisted test to have an id")
	}

	if _, err := env.test.Create(owner.ID, TestReq{LessonID: 9999, Title: "Quiz"}); !errors.Is(err, util.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound got %v", err)
	}
}

func TestTestService_CreateNestedQuestions(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com", model.Instructor)
	course := env.createCourse(t, owner.ID, true)
	lesson := env.createLesson(t, course.ID, 1)

	req := TestReq{
		LessonID:     lesson.ID,
		Title:        "Quiz",
		PassingScore: 60,
		Questions: []QuestionReq{
			{
				QuestionText: "2+2?",
				QuestionType: model.SingleChoice,
				OrderIndex:   2,
				AnswerOptions: []AnswerOptionReq{
					{OptionText: "3"},
					{OptionText: "4", IsCorrect: true},
				},
			},
			{
				QuestionText: "Pick even numbers",
				QuestionType: model.MultipleChoice,
				OrderIndex:   1,
				AnswerOptions: []AnswerOptionReq{
					{OptionText: "2", IsCorrect: true},
					{OptionText: "3"},
					{OptionText: "4", IsCorrect: true},
				},
			},
		},
	}

	created, err := env.test.Create(owner.ID, req)
	if err != nil {
		t.Fatalf("create test: %v", err)
	}

	loaded, err := env.test.Get(created.ID)
	if err != nil {
		t.Fatalf("get test: %v", err)
	}
	if len(loaded.Questions) != 2 {
		t.Fatalf("expected 2 questions got %d", len(loaded.Questions))
	}
	// 题目按 order_index 排序
	if loaded.Questions[0].QuestionText != "Pick even numbers" {
		t.Fatalf("expected questions ordered by order_index, got %q first", loaded.Questions[0].QuestionText)
	}
	if len(loaded.Questions[0].AnswerOptions) != 3 || len(loaded.Questions[1].AnswerOptions) != 2 {
		t.Fatalf("options not assembled: %d / %d", len(loaded.Questions[0].AnswerOptions), len(loaded.Questions[1].AnswerOptions))
	}

	// 默认分值为 1
	if loaded.Questions[0].Points != 1 {
		t.Fatalf("expected default points 1 got %d", loaded.Questions[0].Points)
	}
}

func TestTestService_SubmitAttemptPassCreatesCompletion(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createUser(t, "teach@example.com", model.Instructor)
	student := env.createUser(t, "stud@example.com", model.Student)
	course := env.createCourse(t, instructor.ID, true)
	lesson := env.createLesson(t, course.ID, 1)

	created, err := env.test.Create(instructor.ID, TestReq{
		LessonID:     lesson.ID,
		Title:        "Quiz",
		PassingScore: 60,
		Questions: []QuestionReq{
			{
				QuestionText: "2+2?",
				QuestionType: model.SingleChoice,
				AnswerOptions: []AnswerOptionReq{
					{OptionText: "3"},
					{OptionText: "4", IsCorrect: true},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("create test: %v", err)
	}

	if _, err := env.enrollment.Enroll(student.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	loaded, err := env.test.Get(created.ID)
	if err != nil {
		t.Fatalf("get test: %v", err)
	}
	correctID := loaded.Questions[0].AnswerOptions[1].ID

	attempt, err := env.test.SubmitAttempt(student.ID, created.ID, TestAttemptReq{
		AnswersData: map[string]interface{}{
			strconv.FormatUint(uint64(loaded.Questions[0].ID), 10): float64(correctID),
		},
	})
	if err != nil {
		t.Fatalf("submit attempt: %v", err)
	}
	if attempt.Score != 100 || !attempt.Passed {
		t.Fatalf("expected passing attempt got score=%v passed=%v", attempt.Score, attempt.Passed)
	}
	if attempt.CompletedAt == nil {
		t.Fatalf("expected completed_at to be stamped")
	}

	// 通过后补记完成并重算进度
	var count int64
	if err := env.db.Model(&model.LessonCompletion{}).Where("user_id = ? AND lesson_id = ?", student.ID, lesson.ID).Count(&count).Error; err != nil {
		t.Fatalf("count completions: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 completion got %d", count)
	}

	en := env.loadEnrollment(t, student.ID, course.ID)
	if en.ProgressPercentage != 100 {
		t.Fatalf("expected progress 100 got %v", en.ProgressPercentage)
	}

	// 再次通过不重复记完成
	if _, err := env.test.SubmitAttempt(student.ID, created.ID, TestAttemptReq{
		AnswersData: map[string]interface{}{
			strconv.FormatUint(uint64(loaded.Questions[0].ID), 10): float64(correctID),
		},
	}); err != nil {
		t.Fatalf("second attempt: %v", err)
	}
	if err := env.db.Model(&model.LessonCompletion{}).Where("user_id = ? AND lesson_id = ?", student.ID, lesson.ID).Count(&count).Error; err != nil {
		t.Fatalf("count completions: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected completion to stay unique, got %d", count)
	}
}

func TestTestService_SubmitAttemptFailHasNoSideEffects(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createUser(t, "teach@example.com", model.Instructor)
	student := env.createUser(t, "stud@example.com", model.Student)
	course := env.createCourse(t, instructor.ID, true)
	lesson := env.createLesson(t, course.ID, 1)

	created, err := env.test.Create(instructor.ID, TestReq{
		LessonID:     lesson.ID,
		Title:        "Quiz",
		PassingScore: 60,
		Questions: []QuestionReq{
			{
				QuestionText: "2+2?",
				QuestionType: model.SingleChoice,
				AnswerOptions: []AnswerOptionReq{
					{OptionText: "3", IsCorrect: true},
					{OptionText: "4"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("create test: %v", err)
	}

	attempt, err := env.test.SubmitAttempt(student.ID, created.ID, TestAttemptReq{
		AnswersData: map[string]interface{}{},
	})
	if err != nil {
		t.Fatalf("submit attempt: %v", err)
	}
	if attempt.Score != 0 || attempt.Passed {
		t.Fatalf("expected failing attempt got score=%v passed=%v", attempt.Score, attempt.Passed)
	}

	var count int64
	if err := env.db.Model(&model.LessonCompletion{}).Count(&count).Error; err != nil {
		t.Fatalf("count completions: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no completions got %d", count)
	}

	// 答题记录本身仍然保留
	attempts, err := env.test.Attempts(student.ID, created.ID)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("expected 1 attempt got %d", len(attempts))
	}
}

func TestTestService_SubmitAttemptUnknownTest(t *testing.T) {
	env := newTestEnv(t)
	student := env.createUser(t, "stud@example.com", model.Student)

	_, err := env.test.SubmitAttempt(student.ID, 42, TestAttemptReq{AnswersData: map[string]interface{}{}})
	if !errors.Is(err, util.ErrTestNotFound) {
		t.Fatalf("expected ErrTestNotFound got %v", err)
	}
}
