package main

import (
	"fmt"
	"net/http"

	"github.com/ujustbe/attendance-backend-go/internal/config"
	holidayDomain "github.com/ujustbe/attendance-backend-go/internal/domain/holiday"
	appHTTP "github.com/ujustbe/attendance-backend-go/internal/handler/http"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/cron"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/database"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/jwt"
	"github.com/ujustbe/attendance-backend-go/internal/repository/postgresql"
	employeeService "github.com/ujustbe/attendance-backend-go/internal/service/employee"
	holidayService "github.com/ujustbe/attendance-backend-go/internal/service/holiday"
	leaveService "github.com/ujustbe/attendance-backend-go/internal/service/leave"
	reportService "github.com/ujustbe/attendance-backend-go/internal/service/report"
	sessionService "github.com/ujustbe/attendance-backend-go/internal/service/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	sessionSvc := sessionService.NewSessionService(sessionRepo, cfg.Attendance.Timezone)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, holidayDomain.DefaultRules())
	reportSvc := reportService.NewReportService(
		employeeRepo,
		leaveRepo,
		sessionRepo,
		holidaySvc,
		cfg.Attendance.PrimaryDepartment,
		cfg.Attendance.Timezone,
	)

	sessionHandler := appHTTP.NewSessionHandler(sessionSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, cfg.Attendance.ReportTimeout)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		JWTService,
		sessionHandler,
		reportHandler,
		leaveHandler,
		holidayHandler,
		employeeHandler,
	)

	if cfg.Attendance.MaterializeHolidays {
		scheduler := cron.NewScheduler()
		holidayJobs := cron.NewHolidayJobs(holidaySvc, cfg.Attendance.Timezone)
		holidayJobs.RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
