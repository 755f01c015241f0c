package controller

import (
	"errors"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// My godoc
// @Summary 我的选课
// @Tags 选课
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Enrollment} "成功"
// @Router /enrollments/my [get]
func (c *EnrollmentController) My(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	enrollments, err := c.EnrollmentService.MyEnrollments(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, enrollments)
}

// swagger:model EnrollRequest
type EnrollRequest struct {
	CourseID uint `json:"courseId" binding:"required"`
}

// Enroll godoc
// @Summary 选课
// @Description 课程必须已发布且未选过
// @Tags 选课
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body EnrollRequest true "课程ID"
// @Success 201 {object} util.Response{data=model.Enrollment} "选课成功"
// @Failure 400 {object} util.Response "课程未发布或重复选课"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /enrollments/ [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(claims.UserID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "Course not found")
		case errors.Is(err, util.ErrCourseNotPublished):
			util.BadRequest(ctx, "Course is not published")
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.BadRequest(ctx, "Already enrolled in this course")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, enrollment)
}

// swagger:model CompleteLessonRequest
type CompleteLessonRequest struct {
	LessonID         uint `json:"lessonId" binding:"required"`
	TimeSpentMinutes *int `json:"timeSpentMinutes"`
}

// CompleteLesson godoc
// @Summary 完成课时（选课端）
// @Description 要求已选该课时所属课程，完成后重算进度
// @Tags 选课
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CompleteLessonRequest true "课时完成信息"
// @Success 200 {object} util.Response{data=model.LessonCompletion} "成功"
// @Failure 400 {object} util.Response "未选课或课时已完成"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /enrollments/lessons/complete [post]
func (c *EnrollmentController) CompleteLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req CompleteLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}

	completion, err := c.EnrollmentService.CompleteLesson(claims.UserID, req.LessonID, req.TimeSpentMinutes)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx, "Lesson not found")
		case errors.Is(err, util.ErrNotEnrolled):
			util.BadRequest(ctx, "Not enrolled in this course")
		case errors.Is(err, util.ErrAlreadyCompleted):
			util.BadRequest(ctx, "Lesson already completed")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, completion)
}

// Progress godoc
// @Summary 课程进度详情
// @Tags 选课
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=service.ProgressReport} "成功"
// @Failure 404 {object} util.Response "未选该课程"
// @Router /enrollments/course/{id}/progress [get]
func (c *EnrollmentController) Progress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	report, err := c.EnrollmentService.Progress(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrNotEnrolled) {
			util.NotFound(ctx, "Not enrolled in this course")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, report)
}
