package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	msghandler "github.com/aliskhannn/channel-gateway/internal/api/handlers/message"
	"github.com/aliskhannn/channel-gateway/internal/api/router"
	"github.com/aliskhannn/channel-gateway/internal/api/server"
	"github.com/aliskhannn/channel-gateway/internal/cache"
	"github.com/aliskhannn/channel-gateway/internal/config"
	"github.com/aliskhannn/channel-gateway/internal/failqueue"
	"github.com/aliskhannn/channel-gateway/internal/gate"
	"github.com/aliskhannn/channel-gateway/internal/migrate"
	"github.com/aliskhannn/channel-gateway/internal/publisher"
	msgconsumer "github.com/aliskhannn/channel-gateway/internal/rabbitmq/handlers/message"
	"github.com/aliskhannn/channel-gateway/internal/rabbitmq/queue"
	chanrepo "github.com/aliskhannn/channel-gateway/internal/repository/channel"
	msgrepo "github.com/aliskhannn/channel-gateway/internal/repository/message"
	"github.com/aliskhannn/channel-gateway/internal/scheduler"
	msgsvc "github.com/aliskhannn/channel-gateway/internal/service/message"
	"github.com/aliskhannn/channel-gateway/internal/worker"
	"github.com/aliskhannn/channel-gateway/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewMessageQueue(ch, queue.Topology{
		Exchange:   cfg.RabbitMQ.Exchange,
		Queue:      cfg.RabbitMQ.Queue,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
	})
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create message queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migrate.Up(db.Master); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to apply migrations")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	channels := chanrepo.NewRepository(db)
	permissions := gate.New(channels, cfg.Gate.TTL)
	store := msgrepo.NewRepository(db, permissions, cfg.Store.DuplicateWindow)
	hot := cache.New(rdb.Client, cfg.Cache.HotTTL, cfg.Cache.DedupTTL)
	failures := failqueue.New(cfg.FailureQueue.Path)

	var alert publisher.Alerter
	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != "" {
		alert = telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.ChatID)
	}

	recorder := msgsvc.NewRecorder(store, hot)
	pub := publisher.New(publisher.Config{
		Endpoints:      cfg.Publisher.Endpoints,
		Token:          cfg.Publisher.Token,
		RequestTimeout: cfg.Publisher.RequestTimeout,
		BaseDelay:      cfg.Publisher.BaseDelay,
		MaxRetries:     cfg.Publisher.MaxRetries,
		Backoff:        cfg.Publisher.Backoff,
	}, recorder, failures, alert)

	service := msgsvc.NewService(store, hot, channels, pub, failures, q, cfg.Retry)

	pool := worker.NewPool(q, msgconsumer.NewHandler(service, val))
	poolDone := make(chan struct{})
	go func() {
		pool.Run(ctx, cfg.Retry, cfg.Workers.Count)
		close(poolDone)
	}()

	sched, err := scheduler.New()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create scheduler")
	}

	if err := sched.RegisterMaintenance(ctx, service, cfg.Cache.CleanupInterval); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to register maintenance jobs")
	}
	sched.Start()

	r := router.New(msghandler.NewHandler(service, val))
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	zlog.Logger.Info().
		Str("addr", cfg.Server.HTTPPort).
		Int("workers", cfg.Workers.Count).
		Strs("endpoints", cfg.Publisher.Endpoints).
		Msg("gateway started")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if err := sched.Shutdown(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown scheduler")
	}

	select {
	case <-poolDone:
	case <-shutdownCtx.Done():
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis client")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}
}
