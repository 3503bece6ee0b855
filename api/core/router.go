package core

import (
	"github.com/anoixa/label-bed/api/common"
	handlerAnnotations "github.com/anoixa/label-bed/api/handler/annotations"
	handlerAuth "github.com/anoixa/label-bed/api/handler/auth"
	handlerImages "github.com/anoixa/label-bed/api/handler/images"
	handlerLabels "github.com/anoixa/label-bed/api/handler/labels"
	handlerProjects "github.com/anoixa/label-bed/api/handler/projects"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/anoixa/label-bed/config"
	"github.com/anoixa/label-bed/internal/auth"
	svcAnnotation "github.com/anoixa/label-bed/internal/services/annotation"
	svcExport "github.com/anoixa/label-bed/internal/services/export"
	svcImage "github.com/anoixa/label-bed/internal/services/image"
	svcLabel "github.com/anoixa/label-bed/internal/services/label"
	svcProject "github.com/anoixa/label-bed/internal/services/project"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RouterDependencies 路由注册依赖
type RouterDependencies struct {
	DB                *gorm.DB
	JWTService        *auth.JWTService
	LoginService      *auth.LoginService
	ProjectService    *svcProject.Service
	UploadService     *svcImage.UploadService
	DeleteService     *svcImage.DeleteService
	QueryService      *svcImage.QueryService
	LabelService      *svcLabel.Service
	AnnotationService *svcAnnotation.Service
	Exporter          *svcExport.Exporter
	AuthRateLimiter   *middleware.IPRateLimiter
	Config            *config.Config
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, deps *RouterDependencies) {
	registerBasicRoutes(router, deps)
	registerAPIRoutes(router, deps)
}

// registerBasicRoutes 注册基础路由
func registerBasicRoutes(router *gin.Engine, deps *RouterDependencies) {
	healthHandler := NewHealthHandler(deps.DB)
	router.GET("/health", healthHandler.Handle)

	router.GET("/version", func(context *gin.Context) {
		common.RespondSuccess(context, gin.H{
			"version": config.Version,
			"commit":  config.CommitHash,
		})
	})
}

// registerAPIRoutes 注册 API 路由
func registerAPIRoutes(router *gin.Engine, deps *RouterDependencies) {
	authHandler := handlerAuth.NewHandler(deps.LoginService)
	projectHandler := handlerProjects.NewHandler(deps.ProjectService, deps.Exporter)
	imageHandler := handlerImages.NewHandler(deps.UploadService, deps.DeleteService, deps.QueryService)
	labelHandler := handlerLabels.NewHandler(deps.LabelService)
	annotationHandler := handlerAnnotations.NewHandler(deps.AnnotationService)

	apiGroup := router.Group("/api")
	apiGroup.Use(func(context *gin.Context) {
		context.Header("Cache-Control", "no-store")
		context.Next()
	})
	{
		apiGroup.GET("/ver", func(context *gin.Context) {
			common.RespondSuccess(context, gin.H{"message": config.Version})
		})

		// 认证路由
		authGroup := apiGroup.Group("/auth")
		authGroup.Use(deps.AuthRateLimiter.Middleware())
		{
			authGroup.POST("/register", authHandler.RegisterHandler)
			authGroup.POST("/login", authHandler.LoginHandler)
		}
		apiGroup.GET("/auth/user",
			middleware.JWTAuth(deps.JWTService, deps.LoginService),
			authHandler.CurrentUserHandler)

		v1 := apiGroup.Group("/v1")
		v1.Use(middleware.JWTAuth(deps.JWTService, deps.LoginService))
		{
			// Projects
			projectsGroup := v1.Group("/projects")
			{
				projectsGroup.GET("", projectHandler.ListProjectsHandler)
				projectsGroup.POST("", projectHandler.CreateProjectHandler)
				projectsGroup.GET("/:identifier", projectHandler.ProjectDetailHandler)
				projectsGroup.DELETE("/:identifier", projectHandler.DeleteProjectHandler)
				projectsGroup.POST("/:identifier/export", projectHandler.ExportProjectHandler)

				projectsGroup.POST("/:identifier/images", imageHandler.UploadHandler)
				projectsGroup.GET("/:identifier/images", imageHandler.ListHandler)

				projectsGroup.POST("/:identifier/labels", labelHandler.AddLabelHandler)
				projectsGroup.GET("/:identifier/labels", labelHandler.ListLabelsHandler)
				projectsGroup.DELETE("/:identifier/labels/:label_id", labelHandler.DeleteLabelHandler)
			}

			// Images
			imagesGroup := v1.Group("/images")
			{
				imagesGroup.DELETE("/:identifier", imageHandler.DeleteHandler)

				imagesGroup.POST("/:identifier/annotations", annotationHandler.AddAnnotationHandler)
				imagesGroup.GET("/:identifier/annotations", annotationHandler.ListAnnotationsHandler)
				imagesGroup.DELETE("/:identifier/annotations/:annotation_id", annotationHandler.DeleteAnnotationHandler)
			}
		}
	}
}
