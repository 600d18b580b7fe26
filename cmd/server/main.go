package main

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/fadilmartias/compatibility-matrix/internal/config"
	"github.com/fadilmartias/compatibility-matrix/internal/domain/fiber/handler"
	applogger "github.com/fadilmartias/compatibility-matrix/internal/logger"
	"github.com/fadilmartias/compatibility-matrix/internal/middleware"
	"github.com/fadilmartias/compatibility-matrix/internal/model"
	"github.com/fadilmartias/compatibility-matrix/internal/repository"
	"github.com/fadilmartias/compatibility-matrix/internal/service"
	"github.com/fadilmartias/compatibility-matrix/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zlog, err := applogger.New(appConfig.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	// Use middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: config.LoadAppConfig().Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	db := ConnectDB()

	profileRepo := repository.NewProfileRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	dimensionRepo := repository.NewDimensionRepository(db)
	biometricRepo := repository.NewBiometricRepository(db)
	compatRepo := repository.NewCompatibilityRepository(db)
	connectionRepo := repository.NewConnectionRepository(db)

	authService := service.NewSupabaseAuthService()

	compatUC := usecase.NewCompatibilityUsecase(assessmentRepo, biometricRepo, compatRepo, dimensionRepo, profileRepo, zlog)
	authUC := usecase.NewAuthUsecase(authService, profileRepo)
	userUC := usecase.NewUserUsecase(profileRepo)
	assessmentUC := usecase.NewAssessmentUsecase(assessmentRepo, dimensionRepo, compatUC, zlog)
	biometricUC := usecase.NewBiometricUsecase(biometricRepo, compatRepo, profileRepo, compatUC, zlog)
	connectionUC := usecase.NewConnectionUsecase(connectionRepo, profileRepo, compatRepo, assessmentRepo)

	api := app.Group("/api/v1")
	handler.NewAuthHandler(authUC).RegisterRoutes(api)
	handler.NewUserHandler(userUC).RegisterRoutes(api)
	handler.NewAssessmentHandler(assessmentUC).RegisterRoutes(api)
	handler.NewBiometricHandler(biometricUC).RegisterRoutes(api)
	handler.NewCompatibilityHandler(compatUC).RegisterRoutes(api)
	handler.NewConnectionHandler(connectionUC).RegisterRoutes(api)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			zlog.Debug("goroutine monitor", "active", runtime.NumGoroutine())
		}
	}()

	zlog.Info("server starting", "port", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Jakarta",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)  // cukup 5 idle
		pgDB.SetMaxOpenConns(10) // max 10 koneksi aktif
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)           // simpan 20 koneksi siap pakai
		pgDB.SetMaxOpenConns(200)          // max 200 koneksi aktif
		pgDB.SetConnMaxLifetime(time.Hour) // recycle tiap 1 jam

	}

	// migrasi tabel
	err = db.AutoMigrate(
		&model.Profile{},
		&model.AssessmentDimension{},
		&model.AssessmentQuestion{},
		&model.UserAssessment{},
		&model.BiometricMeasurement{},
		&model.CompatibilityScore{},
		&model.BiometricCompatibilityScore{},
		&model.Connection{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
