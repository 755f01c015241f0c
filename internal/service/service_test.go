package service

import (
	"fmt"
	"testing"
	"time"

	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB 每个测试一个独立的内存库，避免测试间串数据
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type testEnv struct {
	db         *gorm.DB
	auth       *AuthService
	course     *CourseService
	lesson     *LessonService
	enrollment *EnrollmentService
	test       *TestService
	user       *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := openTestDB(t)
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	completionRepo := repository.NewCompletionRepository(db)
	testRepo := repository.NewTestRepository(db)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret!"
	cfg.JWT.ExpireTime = time.Hour

	return &testEnv{
		db:         db,
		auth:       NewAuthService(userRepo, cfg),
		course:     NewCourseService(courseRepo),
		lesson:     NewLessonService(lessonRepo, courseRepo, completionRepo, enrollmentRepo, db),
		enrollment: NewEnrollmentService(enrollmentRepo, courseRepo, lessonRepo, completionRepo, db),
		test:       NewTestService(testRepo, lessonRepo, courseRepo, db),
		user:       NewUserService(userRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, email string, role model.UserRole) *model.User {
	t.Helper()
	u := &model.User{Email: email, Password: "x", FullName: "Test User", Role: role}
	if err := e.db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (e *testEnv) createCourse(t *testing.T, instructorID uint, published bool) *model.Course {
	t.Helper()
	c := &model.Course{Title: "Course", InstructorID: instructorID, IsPublished: published}
	if err := e.db.Create(c).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	return c
}

func (e *testEnv) createLesson(t *testing.T, courseID uint, order int) *model.Lesson {
	t.Helper()
	l := &model.Lesson{CourseID: courseID, Title: fmt.Sprintf("Lesson %d", order), OrderIndex: order}
	if err := e.db.Create(l).Error; err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	return l
}

func (e *testEnv) loadEnrollment(t *testing.T, userID, courseID uint) *model.Enrollment {
	t.Helper()
	var en model.Enrollment
	if err := e.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&en).Error; err != nil {
		t.Fatalf("load enrollment: %v", err)
	}
	return &en
}
