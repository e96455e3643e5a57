package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/unifeed/unifeed/cache"
	"github.com/unifeed/unifeed/config"
	"github.com/unifeed/unifeed/global"
	"github.com/unifeed/unifeed/logger"
	"github.com/unifeed/unifeed/router"
	"github.com/unifeed/unifeed/scheduler"
)

func main() {
	config.InitConfig()

	// Run database migrations
	config.MigrateDB()

	jobCtx, stopJobs := context.WithCancel(context.Background())
	defer stopJobs()

	eviction := scheduler.NewEvictionJob(
		cache.NewStore(global.DB),
		config.AppConfig.EvictionInterval(),
		config.AppConfig.Retention(),
	)
	go eviction.Run(jobCtx)

	r := router.InitRouter()
	port := config.AppConfig.App.Port
	if port == "" {
		port = ":8080"
	}
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.L.Info("Shutdown Server ...")

	stopJobs()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L.Fatalf("Server Shutdown: %v", err)
	}
	logger.L.Info("Server exiting")
}
