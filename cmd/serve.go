package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/config"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/global"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/pkg/log"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/api"
	"github.com/shoreagents/shoreagents-asset-dog-sub011/server/env"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AssetDog server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Setup(); err != nil {
			return err
		}
		if err := log.Setup(config.GlobalCfg.Debug); err != nil {
			return err
		}
		global.Config = config.GlobalCfg
		global.Cache = api.SetupCache()
		global.Cron = cron.New()
		global.DBConn = env.SetupDB()

		e, err := api.SetupRoutes(global.DBConn)
		if err != nil {
			return err
		}

		go func() {
			log.Infof("AssetDog listening on %s", global.Config.Server.Addr)
			if err := e.Start(global.Config.Server.Addr); err != nil && err != http.ErrServerClosed {
				log.Errorf("server stopped: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info("shutting down")
		global.Cron.Stop()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(ctx)
	},
}
