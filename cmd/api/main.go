package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/leavedesk/leavedesk-go/internal/config"
	"github.com/leavedesk/leavedesk-go/internal/fixtures"
	appHTTP "github.com/leavedesk/leavedesk-go/internal/handler/http"
	"github.com/leavedesk/leavedesk-go/internal/pkg/sheetdb"
	boardService "github.com/leavedesk/leavedesk-go/internal/service/board"
	dashboardService "github.com/leavedesk/leavedesk-go/internal/service/dashboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var backend sheetdb.Backend
	switch cfg.Sheet.Mode {
	case "http":
		backend = sheetdb.NewClient(cfg.Sheet.Endpoint, nil)
	case "demo":
		backend = sheetdb.NewMemory(cfg.Sheet.DemoPasscode, fixtures.DemoRecords(time.Now()))
	default:
		fmt.Println("Unsupported sheet mode:", cfg.Sheet.Mode)
		return
	}

	boardSvc := boardService.NewService(backend)
	dashboardSvc := dashboardService.NewService(boardSvc)

	leaveHandler := appHTTP.NewLeaveHandler(boardSvc, dashboardSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		boardSvc,
		cfg.App.FrontendURL,
		leaveHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
