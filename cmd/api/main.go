package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/pdks-app/pdks-backend-go/internal/config"
	appHTTP "github.com/pdks-app/pdks-backend-go/internal/handler/http"
	"github.com/pdks-app/pdks-backend-go/internal/pkg/database"
	"github.com/pdks-app/pdks-backend-go/internal/repository/postgresql"
	reportService "github.com/pdks-app/pdks-backend-go/internal/service/report"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "pdks-backend"),
	)

	reportRepo := postgresql.NewReportRepository(db)
	reportSvc := reportService.NewReportService(reportRepo, logger, cfg.Report.QueryTimeout)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(cfg.App.Env, cfg.App.FrontendURL, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
