package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/sutra-hrms/hrms-backend-go/internal/config"
	appHTTP "github.com/sutra-hrms/hrms-backend-go/internal/handler/http"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/cache"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/oauth"
	"github.com/sutra-hrms/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sutra-hrms/hrms-backend-go/internal/service/attendance"
	authService "github.com/sutra-hrms/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/sutra-hrms/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/sutra-hrms/hrms-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	var cacheStore cache.Store
	if cfg.Redis.Enabled {
		redisStore, err := cache.NewRedisStore(cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Error connecting to redis: ", err)
		}
		defer redisStore.Close()
		cacheStore = redisStore
	} else {
		slog.Warn("redis disabled, using in-process cache store")
		cacheStore = cache.NewMemoryStore()
	}
	cacheFacade := cache.NewFacade(cacheStore)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)

	authSvc := authService.NewAuthService(userRepo, jwtService, googleService, cfg.Admin)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, cacheFacade)
	employeeSvc := employeeService.NewEmployeeService(txManager, employeeRepo, attendanceSvc, cacheFacade)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, cacheFacade)

	if err := authSvc.SeedAdmin(context.Background()); err != nil {
		log.Fatal("Error seeding admin account: ", err)
	}

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(authSvc, googleService),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
