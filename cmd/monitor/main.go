// cmd/monitor/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/ps-vitor/ss-monitor/internal/config"
	"github.com/ps-vitor/ss-monitor/internal/fetch"
	"github.com/ps-vitor/ss-monitor/internal/notify"
	"github.com/ps-vitor/ss-monitor/internal/price"
	"github.com/ps-vitor/ss-monitor/internal/scanner"
	"github.com/ps-vitor/ss-monitor/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	cronSpec := flag.String("cron", "", "cron spec for resident mode; empty runs one pass and exits")
	flag.Parse()

	// .env is optional; deployments usually set the environment directly.
	_ = godotenv.Load()

	log := logger.New("monitor", false)
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("load config failed", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if cfg.App.Debug {
		log = logger.New("monitor", true)
	}
	defer log.Sync()

	if cfg.Telegram.BotToken == "" || cfg.Telegram.ChatID == "" {
		log.Error("BOT_TOKEN and CHAT_ID must be set")
		os.Exit(1)
	}

	runner := buildRunner(cfg, log)

	if *cronSpec == "" {
		runner.Run(context.Background())
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(*cronSpec, func() { runner.Run(context.Background()) }); err != nil {
		log.Error("invalid cron spec", "spec", *cronSpec, "error", err)
		os.Exit(1)
	}
	log.Info("resident mode", "cron", *cronSpec, "locations", len(cfg.Locations))
	c.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	// Let an in-flight pass finish before exiting.
	<-c.Stop().Done()
}

func buildRunner(cfg *config.Config, log *logger.Logger) *scanner.Runner {
	fetcher := fetch.New(cfg.Monitor.FetchTimeout(), cfg.Monitor.UserAgent, cfg.Monitor.AcceptLanguage)
	notifier := notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	extractor := price.New(cfg.Monitor.PlausibilityFloor)

	sc := scanner.New(fetcher, notifier, extractor, cfg.Monitor.MaxPrice, log)
	return scanner.NewRunner(sc, cfg.Locations, cfg.Monitor.StateFile, log)
}
