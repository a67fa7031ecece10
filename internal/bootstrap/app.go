package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"

	googleauth "schoolmatch-backend/internal/auth"
	"schoolmatch-backend/internal/documents"
	"schoolmatch-backend/internal/enrich"
	"schoolmatch-backend/internal/match"
	"schoolmatch-backend/internal/profile"
	"schoolmatch-backend/internal/schools"
	"schoolmatch-backend/internal/shared/config"
	"schoolmatch-backend/internal/shared/server"
	"schoolmatch-backend/internal/shared/storage/db"
	"schoolmatch-backend/internal/shared/storage/object"
	localstore "schoolmatch-backend/internal/shared/storage/object/local"
	s3store "schoolmatch-backend/internal/shared/storage/object/s3"
	"schoolmatch-backend/internal/vision"
	visionopenai "schoolmatch-backend/internal/vision/openai"
)

const (
	uploadsDefaultRegion = "us-east-1"
	uploadsDefaultPrefix = "documents/"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	UploadsPresign   *s3.PresignClient
	UploadsBucket    string
	UploadsPrefix    string
	SchoolsRepo      schools.Repo
	DocumentsRepo    documents.DocumentsRepo
	DocumentsService *documents.Service
	ProfileService   *profile.Service
	MatchService     *match.Service
	DocumentsHandler *documents.Handler
	ProfileHandler   *profile.Handler
	MatchHandler     *match.Handler
	SchoolsHandler   *schools.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	presign, bucket, prefix, err := buildUploadsPresign(ctx)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:         cfg,
		DB:             sqlDB,
		Store:          store,
		UploadsPresign: presign,
		UploadsBucket:  bucket,
		UploadsPrefix:  prefix,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		DocumentHandler: app.DocumentsHandler,
		ProfileHandler:  app.ProfileHandler,
		MatchHandler:    app.MatchHandler,
		SchoolsHandler:  app.SchoolsHandler,
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildUploadsPresign(ctx context.Context) (*s3.PresignClient, string, string, error) {
	bucket := strings.TrimSpace(os.Getenv("UPLOADS_S3_BUCKET"))
	if bucket == "" {
		return nil, "", "", nil
	}

	region := strings.TrimSpace(os.Getenv("AWS_REGION"))
	if region == "" {
		region = uploadsDefaultRegion
	}
	prefix := strings.TrimSpace(os.Getenv("UPLOADS_S3_PREFIX"))
	if prefix == "" {
		prefix = uploadsDefaultPrefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, "", "", fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return s3.NewPresignClient(client), bucket, prefix, nil
}

func buildServices(app *App) error {
	var docRepo documents.DocumentsRepo
	var schoolRepo schools.Repo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		schoolRepo = &schools.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		schoolRepo = schools.NewMemoryRepo(schools.SeedCandidates()...)
	}

	docSvc := &documents.Service{Store: app.Store, Repo: docRepo}

	var visionClient vision.Client
	if app.Config.VisionProvider == "openai" && strings.TrimSpace(app.Config.VisionAPIKey) != "" {
		client, err := visionopenai.NewClient(app.Config.VisionAPIKey, app.Config.VisionModel)
		if err != nil {
			return err
		}
		visionClient = client
	} else {
		log.Printf("bootstrap: no extraction provider configured; using heuristic extraction")
	}

	profileSvc := &profile.Service{Vision: visionClient}

	weights, err := match.ParseWeights(app.Config.MatchWeights)
	if err != nil {
		return fmt.Errorf("MATCH_WEIGHTS: %w", err)
	}

	matchSvc := &match.Service{
		Profiles: profileSvc,
		Schools:  schoolRepo,
		Scorer:   match.Scorer{Weights: weights},
		Bands:    match.DefaultBands(),
		Enricher: &enrich.Pool{Workers: app.Config.EnrichWorkers},
		TopN:     app.Config.MatchTopN,
		MinScore: app.Config.MatchMinScore,
		MaxPool:  app.Config.MatchMaxPool,
	}

	app.SchoolsRepo = schoolRepo
	app.DocumentsRepo = docRepo
	app.DocumentsService = docSvc
	app.ProfileService = profileSvc
	app.MatchService = matchSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.ProfileHandler = profile.NewHandler(profileSvc, docSvc)
	app.MatchHandler = match.NewHandler(matchSvc, docSvc)
	app.SchoolsHandler = schools.NewHandler(schoolRepo)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
	)

	return nil
}
