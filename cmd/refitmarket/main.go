package main

import (
	"context"
	"fmt"

	"github.com/refitlab/refitmarket/internal/adapter/auth"
	"github.com/refitlab/refitmarket/internal/adapter/client/portone"
	"github.com/refitlab/refitmarket/internal/adapter/config"
	"github.com/refitlab/refitmarket/internal/adapter/handler/http"
	"github.com/refitlab/refitmarket/internal/adapter/logger"
	"github.com/refitlab/refitmarket/internal/adapter/metrics"
	"github.com/refitlab/refitmarket/internal/adapter/storage"
	"github.com/refitlab/refitmarket/internal/adapter/storage/repository"
	"github.com/refitlab/refitmarket/internal/core/service"
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
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	gateway, err := portone.NewClient(conf.Portone, log.Named("Portone"))
	if err != nil {
		log.Error("payment gateway client creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, gateway, metrics.New(),
		log.Named("Service"), conf.App.ResetQuotaOnLevelUp)
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	balanceHandler, err := http.NewBalanceHandler(svc, log.Named("Balance handler"))
	if err != nil {
		log.Error("balance handler creating error", zap.Error(err))
		return
	}
	donationHandler, err := http.NewDonationHandler(svc, log.Named("Donation handler"))
	if err != nil {
		log.Error("donation handler creating error", zap.Error(err))
		return
	}
	reviewHandler, err := http.NewReviewHandler(svc, log.Named("Review handler"))
	if err != nil {
		log.Error("review handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		orderHandler, balanceHandler, donationHandler, reviewHandler, log.Named("Router"))
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
