package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/worklane/jobboard-backend-go/internal/config"
	appHTTP "github.com/worklane/jobboard-backend-go/internal/handler/http"
	"github.com/worklane/jobboard-backend-go/internal/pkg/database"
	"github.com/worklane/jobboard-backend-go/internal/pkg/email"
	"github.com/worklane/jobboard-backend-go/internal/pkg/jwt"
	"github.com/worklane/jobboard-backend-go/internal/pkg/oauth"
	"github.com/worklane/jobboard-backend-go/internal/pkg/storage"
	"github.com/worklane/jobboard-backend-go/internal/repository/postgresql"
	applicationService "github.com/worklane/jobboard-backend-go/internal/service/application"
	attendanceService "github.com/worklane/jobboard-backend-go/internal/service/attendance"
	serviceAuth "github.com/worklane/jobboard-backend-go/internal/service/auth"
	"github.com/worklane/jobboard-backend-go/internal/service/file"
	jobService "github.com/worklane/jobboard-backend-go/internal/service/job"
	"github.com/worklane/jobboard-backend-go/internal/service/leave"
	"github.com/worklane/jobboard-backend-go/internal/service/master"
	userService "github.com/worklane/jobboard-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	jobSvc := jobService.NewJobService(db, jobRepo)
	applicationSvc := applicationService.NewApplicationService(db, applicationRepo, jobRepo, fileService, emailService)
	leaveSvc := leave.NewLeaveService(db, leaveRepo, emailService)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, locationRepo, settingsRepo)
	masterService := master.NewMasterService(locationRepo, settingsRepo)
	userSvc := userService.NewUserService(db, userRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	jobHandler := appHTTP.NewJobHandler(jobSvc)
	applicationHandler := appHTTP.NewApplicationHandler(applicationSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	masterHandler := appHTTP.NewMasterHandler(masterService)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		jobHandler,
		applicationHandler,
		attendanceHandler,
		leaveHandler,
		masterHandler,
		userHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
