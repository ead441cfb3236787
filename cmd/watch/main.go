package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trimline-service/internal/app/config"
	"trimline-service/internal/app/drivers/logger"
	"trimline-service/internal/app/services/syncengine"
	"trimline-service/internal/pkg/slots"
	"trimline-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// watch keeps a polling replica of the remote store and logs its derived
// views every time fresh data lands. SIGHUP forces an immediate pull, the way
// a client refreshes when its window regains focus.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	baseURL := utils.GetEnvString("WATCH_BASE_URL", "http://localhost:8080")

	schedule := slots.NewDailySchedule(
		internalConfig.Schedule.StartHour,
		internalConfig.Schedule.EndHour,
		internalConfig.Schedule.SlotMinutes,
	)
	interval := time.Duration(internalConfig.Sync.PollIntervalSeconds) * time.Second

	client := syncengine.NewClient(baseURL, &http.Client{Timeout: 10 * time.Second})

	var engine *syncengine.Engine
	engine = syncengine.NewEngine(client, schedule, interval, zapLogger, func(store slots.Store) {
		today := time.Now().Format("2006-01-02")

		fields := []zap.Field{
			zap.Int("day_count", len(store)),
			zap.Float64("fill_ratio_today", engine.FillRatio(today)),
			zap.Bool("today_full", engine.IsDayFull(today)),
		}
		if day, timeLabel, ok := engine.EarliestFree(today, internalConfig.Sync.HorizonDays); ok {
			fields = append(fields, zap.String("earliest_free", day+" "+timeLabel))
		}
		zapLogger.Info("store updated", fields...)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refresh := make(chan os.Signal, 1)
	signal.Notify(refresh, syscall.SIGHUP)
	go func() {
		for range refresh {
			engine.NotifyVisible(ctx)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		engine.Close()
		cancel()
	}()

	zapLogger.Info("watching remote store",
		zap.String("base_url", baseURL),
		zap.Duration("poll_interval", interval),
	)
	engine.Run(ctx)
}
