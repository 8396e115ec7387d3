package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KNICEX/price-watch/internal/repo"
	"github.com/KNICEX/price-watch/internal/schedule"
	"github.com/KNICEX/price-watch/internal/service/exchange/wallex"
	"github.com/KNICEX/price-watch/internal/service/monitor"
	"github.com/KNICEX/price-watch/ioc"
)

func main() {
	if err := ioc.InitViper(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ioc.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCfg := ioc.InitAppConfig()
	divCfg := ioc.InitDivergenceConfig()
	quote := divCfg.SettlementCurrency

	db := ioc.InitDB()
	signalRepo := repo.NewSignalRepo(db)

	wallexCli := ioc.InitWallexCli(ioc.InitWallexConfig())
	marketSvc := wallex.NewMarketService(wallexCli, quote)
	referenceSvc := ioc.InitReferenceService(wallexCli, quote)

	recorder := ioc.InitMetrics()
	if srv := ioc.InitMetricsServer(); srv != nil {
		srv.Start(ctx)
	}

	divergenceMonitor := monitor.NewDivergenceMonitor(marketSvc, signalRepo, divCfg.Thresholds(), quote,
		ioc.InitMonitorOptions(appCfg, recorder)...)
	task := monitor.NewDivergenceMonitorTask(divergenceMonitor, referenceSvc, marketSvc, recorder)

	scheduler := schedule.NewScheduler(task, appCfg.CycleInterval,
		schedule.WithSetup(func(ctx context.Context) error {
			return repo.InitTables(db)
		}),
	)

	slog.Info("price watch started", "reference", referenceSvc.Name(), "interval", appCfg.CycleInterval)
	if err := scheduler.RunForever(ctx); err != nil {
		ioc.Critical("critical error in main loop", "error", err)
		os.Exit(1)
	}
	slog.Info("price watch stopped by user")
}
