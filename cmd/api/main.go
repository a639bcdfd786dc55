package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/shiftlens/schedule-scanner/internal/config"
	appHTTP "github.com/shiftlens/schedule-scanner/internal/handler/http"
	"github.com/shiftlens/schedule-scanner/internal/pkg/vision"
	"github.com/shiftlens/schedule-scanner/internal/repository/fsjson"
	scheduleService "github.com/shiftlens/schedule-scanner/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	archive, err := fsjson.NewArchive(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize schedule archive:", err)
	}

	visionClient, err := vision.NewGeminiClient(context.Background(), cfg.Gemini)
	if err != nil {
		log.Fatal("Failed to initialize vision client:", err)
	}
	defer visionClient.Close()

	svc := scheduleService.NewScheduleService(archive, visionClient)
	scheduleHandler := appHTTP.NewScheduleHandler(svc)
	router := appHTTP.NewRouter(scheduleHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
