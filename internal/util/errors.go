package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPermissionDenied   = errors.New("not enough permissions")

	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseNotPublished = errors.New("course is not published")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrTestNotFound       = errors.New("test not found")

	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
	ErrAlreadyCompleted   = errors.New("lesson already completed")
	ErrCompletionNotFound = errors.New("lesson completion record not found")
)
