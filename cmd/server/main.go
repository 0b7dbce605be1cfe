package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pathwise/internal/advisor"
	"pathwise/internal/catalog"
	cataloghandler "pathwise/internal/catalog/handler"
	"pathwise/internal/discovery"
	discoveryhandler "pathwise/internal/discovery/handler"
	discoverymetrics "pathwise/internal/discovery/metrics"
	"pathwise/internal/narrative"
	"pathwise/internal/platform/config"
	"pathwise/internal/platform/httpserver"
	"pathwise/internal/platform/logger"
	platformredis "pathwise/internal/platform/redis"
	"pathwise/internal/ratelimit"
	ratelimitmetrics "pathwise/internal/ratelimit/metrics"
	ratelimitmw "pathwise/internal/ratelimit/middleware"
	"pathwise/internal/ratelimit/store/bucket"
	httptransport "pathwise/internal/transport/http"
	"pathwise/pkg/platform/audit"
	auditkafka "pathwise/pkg/platform/audit/store/kafka"
	auditmemory "pathwise/pkg/platform/audit/store/memory"
	auditworker "pathwise/pkg/platform/audit/worker"
)

// main wires the dependency graph and owns process lifecycle. Business logic
// lives under internal/; nothing here decides a recommendation.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	cat, err := catalog.Load()
	if err != nil {
		log.Error("catalog failed validation", "error", err)
		os.Exit(1)
	}
	log.Info("catalog loaded", "countries", cat.Len())

	// Audit pipeline: non-blocking publisher, background worker, in-memory
	// ring always on, Kafka sink when brokers are configured.
	auditPublisher := audit.NewPublisher(0, log)
	auditStores := []audit.Store{auditmemory.New(0)}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaStore, err := auditkafka.New(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Error("kafka audit sink unavailable", "error", err)
			os.Exit(1)
		}
		defer kafkaStore.Close()
		auditStores = append(auditStores, kafkaStore)
		log.Info("kafka audit sink enabled", "brokers", cfg.Kafka.Brokers)
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	worker := auditworker.New(auditPublisher.Inbox(), log, auditStores...)
	go func() {
		if err := worker.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	// Redis is optional; without it the rate limiter falls back to the
	// in-memory store and limits hold per instance only.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	var bucketStore ratelimit.BucketStore = bucket.NewInMemoryBucketStore()
	var healthChecker httptransport.HealthChecker
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		bucketStore = bucket.NewRedisBucketStore(redisClient.Client)
		healthChecker = redisClient
		log.Info("redis rate-limit store enabled")
	}
	limiter := ratelimit.NewLimiter(bucketStore, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	rateLimitMW := ratelimitmw.New(limiter, log,
		ratelimitmw.WithDisabled(cfg.RateLimit.Disabled),
		ratelimitmw.WithMetrics(ratelimitmetrics.New()),
	)

	engine := discovery.NewEngine(discovery.WithStructuredPolicySignal(cfg.StructuredPolicy))
	classifier := discovery.NewClassifier(engine)

	serviceOpts := []discovery.ServiceOption{
		discovery.WithAuditor(auditPublisher),
		discovery.WithMetrics(discoverymetrics.New()),
	}
	if advisorCfg := advisorConfig(cfg.Advisor); advisorCfg.Enabled() {
		advisorClient, err := advisor.New(advisorCfg)
		if err != nil {
			log.Error("advisor misconfigured", "error", err)
			os.Exit(1)
		}
		serviceOpts = append(serviceOpts, discovery.WithAdvisor(advisorClient, cfg.Advisor.Timeout))
		log.Info("advisory notes enabled", "model", cfg.Advisor.Model)
	}

	service := discovery.NewService(cat, classifier, narrative.New(), log, serviceOpts...)

	router := httptransport.NewRouter(httptransport.Deps{
		Discovery: discoveryhandler.New(service, log),
		Catalog:   cataloghandler.New(cat, auditPublisher, log),
		RateLimit: rateLimitMW,
		Health:    healthChecker,
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting pathwise", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	stopWorker()
	log.Info("shutdown complete")
}

func advisorConfig(cfg config.Advisor) advisor.Config {
	return advisor.Config{
		Endpoint:    cfg.Endpoint,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.Timeout,
	}
}
