package controller

import (
	"errors"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// ListByCourse godoc
// @Summary 课程课时列表
// @Description 按顺序返回课时，已选课用户附带完成标记
// @Tags 课时
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]service.LessonWithCompletion} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /lessons/course/{id} [get]
func (c *LessonController) ListByCourse(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	lessons, err := c.LessonService.ListByCourse(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "Course not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, lessons)
}

// Get godoc
// @Summary 课时详情
// @Tags 课时
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Success 200 {object} util.Response{data=service.LessonWithCompletion} "成功"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /lessons/{id} [get]
func (c *LessonController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	lesson, err := c.LessonService.Get(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		lessonWriteError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// Create godoc
// @Summary 创建课时
// @Description 仅课程归属讲师可创建
// @Tags 课时
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.LessonReq true "课时信息"
// @Success 201 {object} util.Response{data=model.Lesson} "创建成功"
// @Failure 403 {object} util.Response "非课程归属人"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /lessons/ [post]
func (c *LessonController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.LessonReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}
	if req.CourseID == 0 || req.Title == nil || *req.Title == "" {
		util.UnprocessableEntity(ctx, "courseId and title are required")
		return
	}

	lesson, err := c.LessonService.Create(claims.UserID, req)
	if err != nil {
		lessonWriteError(ctx, err)
		return
	}

	util.Created(ctx, lesson)
}

// Update godoc
// @Summary 更新课时
// @Tags 课时
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Param   body body service.LessonReq true "待更新字段"
// @Success 200 {object} util.Response{data=model.Lesson} "成功"
// @Failure 403 {object} util.Response "非课程归属人"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /lessons/{id} [put]
func (c *LessonController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.LessonReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.Update(claims.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		lessonWriteError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// Delete godoc
// @Summary 删除课时
// @Description 级联删除其测验与完成记录
// @Tags 课时
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Success 204 "删除成功"
// @Failure 403 {object} util.Response "非课程归属人"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /lessons/{id} [delete]
func (c *LessonController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.LessonService.Delete(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		lessonWriteError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// MarkComplete godoc
// @Summary 标记课时完成
// @Description 不要求已选课；已选课时会同步重算课程进度
// @Tags 课时
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Success 201 {object} util.Response{data=object} "标记成功"
// @Failure 400 {object} util.Response "课时已完成"
// @Failure 404 {object} util.Response "课时不存在"
// @Router /lessons/{id}/complete [post]
func (c *LessonController) MarkComplete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	completion, err := c.LessonService.MarkComplete(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx, "Lesson not found")
		case errors.Is(err, util.ErrAlreadyCompleted):
			util.BadRequest(ctx, "Lesson already completed")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"message":     "Lesson marked as completed",
		"completedAt": completion.CompletedAt,
	})
}

// Unmark godoc
// @Summary 撤销课时完成
// @Description 删除完成记录并重算课程进度
// @Tags 课时
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Success 204 "撤销成功"
// @Failure 404 {object} util.Response "完成记录不存在"
// @Router /lessons/{id}/complete [delete]
func (c *LessonController) Unmark(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.LessonService.Unmark(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrCompletionNotFound) {
			util.NotFound(ctx, "Lesson completion record not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.NoContent(ctx)
}

func lessonWriteError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrLessonNotFound):
		util.NotFound(ctx, "Lesson not found")
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "Course not found")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
