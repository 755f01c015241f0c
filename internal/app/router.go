package app

import (
	"lms_backend/docs"
	"lms_backend/internal/config"
	"lms_backend/internal/middleware"
	"lms_backend/internal/model"

	"lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		// 课程目录对游客开放
		public.GET("/courses/", c.course.List)
		public.GET("/courses/:id", c.course.Get)
	}
}

func (a *App) registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/auth/me", c.auth.Me)

	lessons := group.Group("/lessons")
	{
		lessons.GET("/course/:id", c.lesson.ListByCourse)
		lessons.GET("/:id", c.lesson.Get)
		lessons.POST("/:id/complete", c.lesson.MarkComplete)
		lessons.DELETE("/:id/complete", c.lesson.Unmark)
	}

	enrollments := group.Group("/enrollments")
	{
		enrollments.GET("/my", c.enrollment.My)
		enrollments.POST("/", c.enrollment.Enroll)
		enrollments.POST("/lessons/complete", c.enrollment.CompleteLesson)
		enrollments.GET("/course/:id/progress", c.enrollment.Progress)
	}

	tests := group.Group("/tests")
	{
		tests.GET("/lesson/:id", c.test.ListByLesson)
		tests.GET("/:id", c.test.Get)
		tests.POST("/:id/attempt", c.test.SubmitAttempt)
		tests.GET("/:id/attempts", c.test.Attempts)
	}
}

func (a *App) registerInstructorRoutes(group *gin.RouterGroup, c *controllers) {
	instructor := group.Group("")
	instructor.Use(middleware.RoleMiddleware(model.Instructor))
	{
		instructor.POST("/courses/", c.course.Create)
		instructor.PUT("/courses/:id", c.course.Update)
		instructor.DELETE("/courses/:id", c.course.Delete)

		instructor.POST("/lessons/", c.lesson.Create)
		instructor.PUT("/lessons/:id", c.lesson.Update)
		instructor.DELETE("/lessons/:id", c.lesson.Delete)

		instructor.POST("/tests/", c.test.Create)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
		admin.GET("/users/:id", c.user.Get)
		admin.PUT("/users/:id", c.user.Update)
		admin.DELETE("/users/:id", c.user.Delete)
	}
}
