package main

import (
	"context"
	"log"
	"net"
	"os/signal"
	"syscall"
	"time"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/config"
	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/infrastructure/cache"
	"couplepath/services/progress-service/internal/infrastructure/memstore"
	"couplepath/services/progress-service/internal/infrastructure/notify"
	"couplepath/services/progress-service/internal/infrastructure/repository"
	"couplepath/services/progress-service/internal/infrastructure/seed"
	grpc_server "couplepath/services/progress-service/internal/transport/grpc"
	"couplepath/services/progress-service/pkg/progresspb"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type stores struct {
	catalog    usecase.Catalog
	progress   usecase.ProgressStore
	responses  usecase.ResponseStore
	couples    usecase.CoupleStore
	milestones usecase.MilestoneChecker
	seedTarget seed.Target
}

func main() {
	// 1. Config and logger
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Storage
	st := openStores(cfg, logg)

	// 3. Redis: catalog cache and notifications
	var notifier usecase.Notifier
	var catalogCache *cache.CatalogCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logg.Fatal("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
		}
		defer rdb.Close()

		ttl, err := time.ParseDuration(cfg.CatalogCacheTTL)
		if err != nil {
			ttl = cache.DefaultTTL
		}
		catalogCache = cache.NewCatalogCache(st.catalog, rdb, ttl, logg)
		st.catalog = catalogCache
		notifier = notify.NewRedisNotifier(rdb, cfg.NotifyChannel)
		logg.Info("connected to redis", "addr", cfg.RedisAddr)
	}

	// 4. Catalog seed
	if cfg.SeedCatalog || cfg.Storage == "memory" {
		programs, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			logg.Fatal("failed to load catalog", "file", cfg.SeedFile, "error", err)
		}
		if err := seed.Apply(ctx, st.seedTarget, programs); err != nil {
			logg.Fatal("failed to seed catalog", "error", err)
		}
		if catalogCache != nil {
			for _, p := range programs {
				if err := catalogCache.Invalidate(ctx, p.Program.ID); err != nil {
					logg.Warn("catalog cache invalidation failed", "program_id", p.Program.ID, "error", err)
				}
			}
		}
		logg.Info("catalog seeded", "programs", len(programs))
	}

	// 5. Use cases and transport
	progressServer := grpc_server.NewProgressServer(
		usecase.NewProgressionUseCase(st.catalog, st.progress, st.milestones, logg),
		usecase.NewStreakUseCase(st.progress),
		usecase.NewRevealUseCase(st.catalog, st.responses, st.couples, notifier, cfg.DailyQuestionProgram, logg),
		usecase.NewCoupleUseCase(st.couples, logg),
		logg.With("component", "grpc"),
	)

	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		logg.Fatal("failed to listen", "addr", cfg.GRPCPort, "error", err)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpc_server.UnaryRecover(logg),
		grpc_server.UnaryLogger(logg),
	))
	progresspb.RegisterProgressServiceServer(grpcServer, progressServer)

	go func() {
		logg.Info("progress service running", "addr", cfg.GRPCPort, "storage", cfg.Storage)
		if err := grpcServer.Serve(lis); err != nil {
			logg.Fatal("failed to serve", "error", err)
		}
	}()

	<-ctx.Done()
	logg.Info("shutting down")
	grpcServer.GracefulStop()
}

func openStores(cfg config.Config, logg *logger.Logger) stores {
	if cfg.Storage == "memory" {
		mem := memstore.New()
		logg.Warn("using in-memory storage, data is lost on restart")
		return stores{
			catalog:    mem,
			progress:   mem,
			responses:  mem,
			couples:    mem,
			milestones: usecase.NoMilestones,
			seedTarget: mem,
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logg.Fatal("failed to connect to db", "host", cfg.DBHost, "error", err)
	}

	logg.Info("running migrations")
	if err := repository.AutoMigrate(db); err != nil {
		logg.Fatal("failed to migrate db", "error", err)
	}

	catalog := repository.NewCatalogRepository(db)
	st := stores{
		catalog:    catalog,
		progress:   repository.NewProgressRepository(db),
		responses:  repository.NewResponseRepository(db),
		couples:    repository.NewCoupleRepository(db),
		milestones: usecase.NoMilestones,
		seedTarget: catalog,
	}
	if cfg.MilestonesEnabled {
		st.milestones = repository.NewMilestoneRPC(db)
	}
	return st
}
