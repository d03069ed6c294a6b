package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/merkulovlad/orderpipe/internal/cache"
	"github.com/merkulovlad/orderpipe/internal/config"
	"github.com/merkulovlad/orderpipe/internal/deadletter"
	"github.com/merkulovlad/orderpipe/internal/dedup"
	"github.com/merkulovlad/orderpipe/internal/docstore"
	"github.com/merkulovlad/orderpipe/internal/group"
	"github.com/merkulovlad/orderpipe/internal/handler"
	"github.com/merkulovlad/orderpipe/internal/kafkaadapter"
	"github.com/merkulovlad/orderpipe/internal/logger"
	"github.com/merkulovlad/orderpipe/internal/model"
	"github.com/merkulovlad/orderpipe/internal/orchestrator"
	"github.com/merkulovlad/orderpipe/internal/preload"
	"github.com/merkulovlad/orderpipe/internal/publish"
	"github.com/merkulovlad/orderpipe/internal/queueclient"
	"github.com/merkulovlad/orderpipe/internal/repository"
	"github.com/merkulovlad/orderpipe/internal/transform"
	"github.com/merkulovlad/orderpipe/internal/validator"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.NewLogger(&logger.Config{Level: cfg.LogLevel})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := log.Sync(); err != nil {
			fmt.Printf("failed to sync logger: %v\n", err)
		}
	}()

	log.Info("connecting to relational store")
	db, err := repository.ConnectDB(cfg.DB.DSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			log.Errorf("failed to close database connection: %v", err)
		}
	}(db)

	repo := repository.NewPostgresRepository(db, log, cfg.DB.ChunkSize, cfg.DB.MaxRetries, cfg.DB.RetryDelayMs, cfg.Executor.DBConcurrency)

	var orderSource docstore.OrderSource
	if cfg.Mongo.Enabled {
		log.Info("connecting to document store")
		mongoClient, err := mongo.Connect(context.Background(), mongoopts.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			log.Fatalf("failed to connect to mongo: %v", err)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Errorf("failed to disconnect mongo: %v", err)
			}
		}()
		orderSource = docstore.NewMongoOrderSource(mongoClient.Database(cfg.Mongo.Database), log)
	} else {
		log.Info("mongodb disabled, using no-op order source")
		orderSource = noopOrderSource{}
	}

	dataTTL := time.Duration(cfg.Cache.Data.TTLMinutes) * time.Minute
	partnerTTL := time.Duration(cfg.Cache.Partner.TTLMinutes) * time.Minute
	dedupTTL := time.Duration(cfg.Cache.Dedup.TTLMinutes) * time.Minute

	customerCache := cache.New[model.Customer](cfg.Cache.Data.MaxSize, dataTTL)
	inventoryCache := cache.New[model.Inventory](cfg.Cache.Data.MaxSize, dataTTL)
	pricingCache := cache.New[model.Pricing](cfg.Cache.Data.MaxSize, dataTTL)
	partnerCache := cache.New[model.PartnerStatus](cfg.Cache.Partner.MaxSize, partnerTTL)
	unitCache := cache.New[model.UnitStatus](cfg.Cache.Partner.MaxSize, partnerTTL)
	dedupCache := cache.New[int64](cfg.Cache.Dedup.MaxSize, dedupTTL)

	dedupSvc := dedup.New(dedupCache)
	val := validator.New(repo, partnerCache, unitCache)
	cachingPreloader := preload.NewCachingPreloader(repo, customerCache, inventoryCache, pricingCache)

	threshold, err := decimal.NewFromString(cfg.Grouping.HighValueThreshold)
	if err != nil {
		log.Fatalf("invalid grouping high-value threshold %q: %v", cfg.Grouping.HighValueThreshold, err)
	}
	grouper := group.New(group.Config{
		Strategy:           cfg.Grouping.Strategy,
		HighValueThreshold: threshold,
		MinGroupSize:       cfg.Grouping.MinGroupSize,
	})

	tr := transform.New(log, int64(cfg.Executor.ProcessingConcurrency), cfg.Kafka.Group)

	var queueClient queueclient.QueueClient
	if cfg.WMQ.Enabled {
		log.Info("connecting to downstream queue")
		queueClient, err = queueclient.Dial(cfg.WMQ.URL, cfg.WMQ.Topic, log)
		if err != nil {
			log.Fatalf("failed to connect to downstream queue: %v", err)
		}
		defer func() {
			if err := queueClient.Close(); err != nil {
				log.Errorf("failed to close downstream queue connection: %v", err)
			}
		}()
	} else {
		log.Info("wmq disabled, using no-op queue client")
		queueClient = noopQueueClient{}
	}

	pub := publish.New(queueClient, grouper, log, int64(cfg.WMQ.PublishConcurrency), cfg.WMQ.Topic+".grouped", cfg.WMQ.Topic+".individual")
	orc := orchestrator.New(cachingPreloader, tr, pub)
	sink := deadletter.NewLogSink(log)
	h := handler.New(dedupSvc, val, orderSource, orc, sink, log, cfg.Grouping.EventTypes)

	consumer := kafkaadapter.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Group, h, log)

	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info("shutting down...")
		cancel()
	}()

	log.Info("starting consumer loop")
	if err := consumer.Run(ctx); err != nil {
		log.Errorf("consumer stopped: %v", err)
	}
}

type noopOrderSource struct{}

func (noopOrderSource) FetchOrdersForEvent(ctx context.Context, e model.Event) ([]model.Order, error) {
	return nil, nil
}
func (noopOrderSource) BatchUpdateOrderStatus(ctx context.Context, ids []string, status string) {}

type noopQueueClient struct{}

func (noopQueueClient) Send(ctx context.Context, destination string, headers map[string]string, body []byte) error {
	return nil
}
func (noopQueueClient) Close() error { return nil }
