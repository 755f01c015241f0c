package controller

import (
	"errors"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// ListByLesson godoc
// @Summary 课时的测验列表
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Success 200 {object} util.Response{data=[]model.Test} "成功"
// @Router /tests/lesson/{id} [get]
func (c *TestController) ListByLesson(ctx *gin.Context) {
	tests, err := c.TestService.ListByLesson(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, tests)
}

// Get godoc
// @Summary 测验详情
// @Description 含按顺序排列的题目与选项
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=model.Test} "成功"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /tests/{id} [get]
func (c *TestController) Get(ctx *gin.Context) {
	test, err := c.TestService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx, "Test not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, test)
}

// Create godoc
// @Summary 创建测验
// @Description 仅课程归属讲师可创建，支持嵌套题目与选项
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.TestReq true "测验信息"
// @Success 201 {object} util.Response{data=model.Test} "创建成功"
// @Failure 403 {object} util.Response "非课程归属人"
// @Failure 404 {object} util.Response "课时不存在"
// @Failure 422 {object} util.Response "请求参数错误"
// @Router /tests/ [post]
func (c *TestController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.TestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}

	test, err := c.TestService.Create(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx, "Lesson not found")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, test)
}

// SubmitAttempt godoc
// @Summary 提交答题
// @Description 评分并记录答题记录，通过时联动课时完成与进度重算
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "测验ID"
// @Param   body body service.TestAttemptReq true "答案，键为题目ID"
// @Success 200 {object} util.Response{data=model.TestAttempt} "成功"
// @Failure 404 {object} util.Response "测验不存在"
// @Failure 422 {object} util.Response "请求参数错误"
// @Router /tests/{id}/attempt [post]
func (c *TestController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.TestAttemptReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}

	attempt, err := c.TestService.SubmitAttempt(claims.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx, "Test not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, attempt)
}

// Attempts godoc
// @Summary 我的答题记录
// @Description 当前用户在该测验下的答题记录，按时间倒序
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=[]model.TestAttempt} "成功"
// @Router /tests/{id}/attempts [get]
func (c *TestController) Attempts(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	attempts, err := c.TestService.Attempts(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}
