package controller

import (
	"errors"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// List godoc
// @Summary 用户列表
// @Description 管理员分页查看全部用户
// @Tags 用户管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response "成功"
// @Router /admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page := util.ParseIntDefault(ctx.Query("page"), 1)
	limit := util.ParseIntDefault(ctx.Query("limit"), 20)

	users, total, err := c.UserService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// Get godoc
// @Summary 用户详情
// @Tags 用户管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "用户ID"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /admin/users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	user, err := c.UserService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// Update godoc
// @Summary 更新用户
// @Description 管理员更新用户资料与角色
// @Tags 用户管理
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "用户ID"
// @Param   body body service.UserUpdateReq true "用户信息"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 400 {object} util.Response "邮箱已被占用"
// @Failure 404 {object} util.Response "用户不存在"
// @Failure 422 {object} util.Response "请求参数错误"
// @Router /admin/users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	var req service.UserUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrEmailRegistered):
			util.BadRequest(ctx, "Email already registered")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// Delete godoc
// @Summary 删除用户
// @Tags 用户管理
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "用户ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /admin/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.UserService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.NoContent(ctx)
}
