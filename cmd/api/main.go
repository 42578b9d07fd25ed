// cmd/api/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/ps-vitor/ss-monitor/internal/api/handlers"
	"github.com/ps-vitor/ss-monitor/internal/config"
	"github.com/ps-vitor/ss-monitor/internal/fetch"
	"github.com/ps-vitor/ss-monitor/internal/notify"
	"github.com/ps-vitor/ss-monitor/internal/price"
	"github.com/ps-vitor/ss-monitor/internal/scanner"
	"github.com/ps-vitor/ss-monitor/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	log := logger.New("api", false)
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("load config failed", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if cfg.App.Debug {
		log = logger.New("api", true)
	}
	defer log.Sync()

	if cfg.Telegram.BotToken == "" || cfg.Telegram.ChatID == "" {
		log.Error("BOT_TOKEN and CHAT_ID must be set")
		os.Exit(1)
	}

	fetcher := fetch.New(cfg.Monitor.FetchTimeout(), cfg.Monitor.UserAgent, cfg.Monitor.AcceptLanguage)
	notifier := notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	extractor := price.New(cfg.Monitor.PlausibilityFloor)
	sc := scanner.New(fetcher, notifier, extractor, cfg.Monitor.MaxPrice, log)
	runner := scanner.NewRunner(sc, cfg.Locations, cfg.Monitor.StateFile, log)

	h := handlers.New(runner, cfg.Locations, cfg.Monitor.StateFile)
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Info("server running", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
