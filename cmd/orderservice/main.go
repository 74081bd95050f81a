package main

import (
	"context"
	"fmt"

	"github.com/rezvik/foodorder/internal/adapter/config"
	"github.com/rezvik/foodorder/internal/adapter/handler/http"
	"github.com/rezvik/foodorder/internal/adapter/logger"
	"github.com/rezvik/foodorder/internal/adapter/publisher/kafka"
	"github.com/rezvik/foodorder/internal/adapter/storage"
	"github.com/rezvik/foodorder/internal/adapter/storage/repository"
	"github.com/rezvik/foodorder/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	publisher, err := kafka.NewPublisher(conf.Kafka, log.Named("Publisher"))
	if err != nil {
		log.Error("publisher creating error", zap.Error(err))
		return
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("publisher close error", zap.Error(err))
		}
	}()
	if !publisher.Enabled() {
		log.Warn("kafka brokers not configured, order events disabled")
	}

	svc, err := service.NewService(repo, repo, repo, publisher, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
