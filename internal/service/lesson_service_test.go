package service

import (
	"errors"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"
)

func TestLessonService_MarkCompleteWithoutEnrollment(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createUser(t, "teach@example.com", model.Instructor)
	student := env.createUser(t, "stud@example.com", model.Student)
	course := env.createCourse(t, instructor.ID, true)
	lesson := env.createLesson(t, course.ID, 1)

	// 未选课也允许标记完成，只是没有进度可以重算
	completion, err := env.lesson.MarkComplete(student.ID, lesson.ID)
	if err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	if completion.ID == 0 {
		t.Fatalf("expected persisted completion")
	}

	if _, err := env.lesson.MarkComplete(student.ID, lesson.ID); !errors.Is(err, util.ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted got %v", err)
	}
	if _, err := env.lesson.MarkComplete(student.ID, 9999); !errors.Is(err, util.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound got %v", err)
	}
}

func TestLessonService_MarkCompleteUpdatesEnrolledProgress(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createUser(t, "teach@example.com", model.Instructor)
	student := env.createUser(t, "stud@example.com", model.Student)
	course := env.createCourse(t, instructor.ID, true)
	lesson := env.createLesson(t, course.ID, 1)

	if _, err := env.enrollment.Enroll(student.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := env.lesson.MarkComplete(student.ID, lesson.ID); err != nil {
		t.Fatalf("mark complete: %v", err)
	}

	en := env.loadEnrollment(t, student.ID, course.ID)
	if en.ProgressPercentage != 100 {
		t.Fatalf("expected 100%% got %v", en.ProgressPercentage)
	}
}

func TestLessonService_UnmarkRequiresRecord(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createUser(t, "teach@example.com", model.Instructor)
	student := env.createUser(t, "stud@example.com", model.Student)
	course := env.createCourse(t, instructor.ID, true)
	lesson := env.createLesson(t, course.ID, 1)

	if err := env.lesson.Unmark(student.ID, lesson.ID); !errors.Is(err, util.ErrCompletionNotFound) {
		t.Fatalf("expected ErrCompletionNotFound got %v", err)
	}

	if _, err := env.lesson.MarkComplete(student.ID, lesson.ID); err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	if err := env.lesson.Unmark(student.ID, lesson.ID); err != nil {
		t.Fatalf("unmark: %v", err)
	}

	// 撤销后可以重新标记
	if _, err := env.lesson.MarkComplete(student.ID, lesson.ID); err != nil {
		t.Fatalf("re-mark after unmark: %v", err)
	}
}

func TestLessonService_ListByCourseCompletionFlags(t *testing.T) {
	env := newTestEnv(t)
	instructor := env.createUser(t, "teach@example.com", model.Instructor)
	student := env.createUser(t, "stud@example.com", model.Student)
	course := env.createCourse(t, instructor.ID, true)
	l2 := env.createLesson(t, course.ID, 2)
	l1 := env.createLesson(t, course.ID, 1)

	if _, err := env.lesson.ListByCourse(student.ID, 9999); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound got %v", err)
	}

	if _, err := env.enrollment.Enroll(student.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := env.lesson.MarkComplete(student.ID, l1.ID); err != nil {
		t.Fatalf("mark complete: %v", err)
	}

	lessons, err := env.lesson.ListByCourse(student.ID, course.ID)
	if err != nil {
		t.Fatalf("list lessons: %v", err)
	}
	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons got %d", len(lessons))
	}
	// 按 order_index 排序
	if lessons[0].ID != l1.ID || lessons[1].ID != l2.ID {
		t.Fatalf("lessons not ordered by order_index")
	}
	if !lessons[0].IsCompleted || lessons[1].IsCompleted {
		t.Fatalf("completion flags wrong: %v / %v", lessons[0].IsCompleted, lessons[1].IsCompleted)
	}
}

func TestLessonService_WriteOpsCheckOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@example.com", model.Instructor)
	other := env.createUser(t, "other@example.com", model.Instructor)
	course := env.createCourse(t, owner.ID, true)

	title := "Intro"
	req := LessonReq{CourseID: course.ID, Title: &title}

	if _, err := env.lesson.Create(other.ID, req); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied got %v", err)
	}

	lesson, err := env.lesson.Create(owner.ID, req)
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}

	newTitle := "Renamed"
	if _, err := env.lesson.Update(other.ID, lesson.ID, LessonReq{Title: &newTitle}); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied on update got %v", err)
	}
	updated, err := env.lesson.Update(owner.ID, lesson.ID, LessonReq{Title: &newTitle})
	if err != nil {
		t.Fatalf("update lesson: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("expected partial update to apply, got %q", updated.Title)
	}

	if err := env.lesson.Delete(other.ID, lesson.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied on delete got %v", err)
	}
	if err := env.lesson.Delete(owner.ID, lesson.ID); err != nil {
		t.Fatalf("delete lesson: %v", err)
	}
	if _, err := env.lesson.Get(owner.ID, lesson.ID); !errors.Is(err, util.ErrLessonNotFound) {
		t.Fatalf("expected lesson gone got %v", err)
	}
}
