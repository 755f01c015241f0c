package controller

import (
	"errors"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// List godoc
// @Summary 课程目录
// @Description 分页获取课程列表，默认只含已发布课程
// @Tags 课程
// @Produce  json
// @Param   skip query int false "偏移量" default(0)
// @Param   limit query int false "数量上限" default(100)
// @Param   is_published query bool false "只看已发布" default(true)
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /courses/ [get]
func (c *CourseController) List(ctx *gin.Context) {
	skip := util.ParseIntDefault(ctx.Query("skip"), 0)
	limit := util.ParseIntDefault(ctx.Query("limit"), 100)
	publishedOnly := ctx.DefaultQuery("is_published", "true") == "true"

	courses, err := c.CourseService.List(skip, limit, publishedOnly)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// Get godoc
// @Summary 课程详情
// @Tags 课程
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Course} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	course, err := c.CourseService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "Course not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, course)
}

// Create godoc
// @Summary 创建课程
// @Description 仅讲师可创建，创建者即课程归属人
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CourseReq true "课程信息"
// @Success 201 {object} util.Response{data=model.Course} "创建成功"
// @Failure 403 {object} util.Response "角色不允许"
// @Failure 422 {object} util.Response "请求参数错误"
// @Router /courses/ [post]
func (c *CourseController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.CourseReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}
	if req.Title == nil || *req.Title == "" {
		util.UnprocessableEntity(ctx, "title is required")
		return
	}

	course, err := c.CourseService.Create(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// Update godoc
// @Summary 更新课程
// @Description 仅课程归属讲师可更新，支持部分字段
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Param   body body service.CourseReq true "待更新字段"
// @Success 200 {object} util.Response{data=model.Course} "成功"
// @Failure 403 {object} util.Response "非课程归属人"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.CourseReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(claims.UserID, util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		courseWriteError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// Delete godoc
// @Summary 删除课程
// @Description 级联删除课时、测验与选课记录
// @Tags 课程
// @Security ApiKeyAuth
// @Param   id path int true "课程ID"
// @Success 204 "删除成功"
// @Failure 403 {object} util.Response "非课程归属人"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.CourseService.Delete(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		courseWriteError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

func courseWriteError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx, "Course not found")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
