package main

import (
	"fmt"
	"net/http"

	"github.com/clockwise-hr/attendance-backend-go/internal/config"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/anomaly"
	appHTTP "github.com/clockwise-hr/attendance-backend-go/internal/handler/http"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/clockwise-hr/attendance-backend-go/internal/repository/postgresql"
	anomalyService "github.com/clockwise-hr/attendance-backend-go/internal/service/anomaly"
	leaveService "github.com/clockwise-hr/attendance-backend-go/internal/service/leave"
	timesheetService "github.com/clockwise-hr/attendance-backend-go/internal/service/timesheet"
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

	workerRepo := postgresql.NewWorkerRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	scheduleRepo := postgresql.NewWorkScheduleRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	detectorCfg := anomaly.DefaultConfig()
	if cfg.Anomaly.MissedClockOutAfter > 0 {
		detectorCfg.MissedClockOutAfter = cfg.Anomaly.MissedClockOutAfter
	}
	if cfg.Anomaly.ExcessiveOvertimeHours > 0 {
		detectorCfg.ExcessiveOvertimeHours = cfg.Anomaly.ExcessiveOvertimeHours
	}
	if cfg.Anomaly.ExcessiveBreakMinutes > 0 {
		detectorCfg.ExcessiveBreakMinutes = cfg.Anomaly.ExcessiveBreakMinutes
	}

	tsService := timesheetService.NewTimesheetService(workerRepo, timesheetRepo, scheduleRepo)
	lvService := leaveService.NewLeaveService(db, workerRepo, leaveRequestRepo)
	detector := anomalyService.NewDetector(detectorCfg)
	analysisService := anomalyService.NewAnalysisService(detector, workerRepo, timesheetRepo, scheduleRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(tsService)
	anomalyHandler := appHTTP.NewAnomalyHandler(analysisService)
	leaveHandler := appHTTP.NewLeaveHandler(lvService)

	router := appHTTP.NewRouter(cfg, attendanceHandler, anomalyHandler, leaveHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
