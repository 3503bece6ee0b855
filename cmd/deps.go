package cmd

import (
	"log"
	"time"

	"github.com/anoixa/label-bed/api/core"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/anoixa/label-bed/config"
	"github.com/anoixa/label-bed/database/dbcore"
	"github.com/anoixa/label-bed/database/repo/accounts"
	"github.com/anoixa/label-bed/database/repo/annotations"
	"github.com/anoixa/label-bed/database/repo/images"
	"github.com/anoixa/label-bed/database/repo/labels"
	"github.com/anoixa/label-bed/database/repo/projects"
	"github.com/anoixa/label-bed/internal/auth"
	svcAnnotation "github.com/anoixa/label-bed/internal/services/annotation"
	svcExport "github.com/anoixa/label-bed/internal/services/export"
	svcImage "github.com/anoixa/label-bed/internal/services/image"
	svcLabel "github.com/anoixa/label-bed/internal/services/label"
	svcProject "github.com/anoixa/label-bed/internal/services/project"
	"github.com/anoixa/label-bed/storage/local"
)

// buildDependencies 组装仓库与服务依赖
func buildDependencies(cfg *config.Config) *core.RouterDependencies {
	db := dbcore.GetDBInstance()
	if err := dbcore.AutoMigrateDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	storage, err := local.NewStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	accountsRepo := accounts.NewRepository(db)
	projectsRepo := projects.NewRepository(db)
	imagesRepo := images.NewRepository(db)
	labelsRepo := labels.NewRepository(db)
	annotationsRepo := annotations.NewRepository(db)

	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiresIn)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	loginService := auth.NewLoginService(accountsRepo, jwtService)

	exporter := svcExport.NewExporter(projectsRepo, imagesRepo, labelsRepo, annotationsRepo, storage)

	return &core.RouterDependencies{
		DB:                db,
		JWTService:        jwtService,
		LoginService:      loginService,
		ProjectService:    svcProject.NewService(projectsRepo, storage),
		UploadService:     svcImage.NewUploadService(imagesRepo, projectsRepo, storage, cfg.MaxUploadBytes()),
		DeleteService:     svcImage.NewDeleteService(imagesRepo, storage),
		QueryService:      svcImage.NewQueryService(imagesRepo, projectsRepo),
		LabelService:      svcLabel.NewService(labelsRepo, projectsRepo),
		AnnotationService: svcAnnotation.NewService(annotationsRepo, imagesRepo, labelsRepo),
		Exporter:          exporter,
		AuthRateLimiter:   middleware.NewIPRateLimiter(cfg.RateLimitAuthRPS, cfg.RateLimitAuthBurst, 10*time.Minute),
		Config:            cfg,
	}
}
