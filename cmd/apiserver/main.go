package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tahagaber/Capify-store/internal/app/config"
	"github.com/tahagaber/Capify-store/internal/app/domains/modules/mdcache"
	"github.com/tahagaber/Capify-store/internal/app/domains/modules/mdsheet"
	"github.com/tahagaber/Capify-store/internal/app/domains/repo/rporder"
	"github.com/tahagaber/Capify-store/internal/app/domains/services/svingest"
	"github.com/tahagaber/Capify-store/internal/app/domains/services/svorder"
	"github.com/tahagaber/Capify-store/internal/app/domains/services/svreport"
	redisinfra "github.com/tahagaber/Capify-store/internal/app/infra/persistence/redis"
	"github.com/tahagaber/Capify-store/internal/app/infra/sheet"
	"github.com/tahagaber/Capify-store/internal/app/pkg/logger"
	orderhandler "github.com/tahagaber/Capify-store/internal/app/server/handlers/order"
	reporthandler "github.com/tahagaber/Capify-store/internal/app/server/handlers/report"
	synchandler "github.com/tahagaber/Capify-store/internal/app/server/handlers/sync"
	"github.com/tahagaber/Capify-store/internal/app/server/routers"
	"github.com/tahagaber/Capify-store/internal/app/worker"
)

var (
	configPath = flag.String("config", "config/config.yaml", "配置文件路径")
)

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化 Logger
	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// 3. 初始化基础设施
	cacheClient, err := redisinfra.NewCacheClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer cacheClient.Close()

	sheetClient := sheet.NewClient(cfg.Sheet.Endpoint, cfg.Sheet.Timeout)

	// 4. 组装模块与服务
	cacheModule := mdcache.NewCacheModule(cacheClient)
	sheetModule := mdsheet.NewSheetModule(sheetClient, zapLogger)

	store := rporder.NewOrderRepository()
	reportService := svreport.NewReportService(store, zapLogger)
	ingestService := svingest.NewIngestService(sheetModule, cacheModule, store, reportService, zapLogger)
	orderService := svorder.NewOrderService(store, cacheModule, sheetModule, reportService, zapLogger)

	syncWorker := worker.NewSyncWorker(ingestService, store, cfg.Sync.Interval, cfg.Sync.Staleness, zapLogger)

	// 5. 配置路由
	engine := routers.SetupRoutes(
		orderhandler.NewOrderHandler(orderService, cfg.Sheet.CountryCode),
		reporthandler.NewReportHandler(reportService),
		synchandler.NewSyncHandler(syncWorker),
		zapLogger,
	)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	// 6. 启动同步 Worker（后台 goroutine）
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	go syncWorker.Start(workerCtx)

	// 7. 启动 HTTP Server（后台 goroutine）
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 8. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server, cancelWorker)
	case err := <-serverErrChan:
		log.Fatalf("HTTP server error: %v", err)
	}

	log.Println("Application stopped")
}

// gracefulShutdown 优雅停机
func gracefulShutdown(server *http.Server, cancelWorker context.CancelFunc) {
	// 1. 停止同步 Worker
	log.Println("Stopping sync worker...")
	cancelWorker()

	// 2. 停止 HTTP Server
	log.Println("Stopping HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped gracefully")
	}

	log.Println("All services stopped gracefully")
}
