package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loafer-be/internal/admin"
	"loafer-be/internal/auth"
	"loafer-be/internal/cart"
	"loafer-be/internal/catalog"
	"loafer-be/internal/checkout"
	"loafer-be/internal/config"
	"loafer-be/internal/httpx"
	"loafer-be/internal/logger"
	"loafer-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	tokens, err := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal("token manager", zap.Error(err))
	}

	catalogRepo, err := catalog.NewRepository()
	if err != nil {
		log.Fatal("catalog seed", zap.Error(err))
	}
	catalogSvc := catalog.NewService(catalogRepo, cfg.PriceRanges)

	userRepo := user.NewRepository()
	if err := user.SeedDemoAccounts(context.Background(), userRepo); err != nil {
		log.Fatal("seed demo accounts", zap.Error(err))
	}
	userSvc := user.NewService(userRepo, tokens)

	cartRepo := cart.NewRepository()
	cartSvc := cart.NewService(cartRepo, catalogRepo, cfg.ThresholdPolicy(), cfg.TaxRate)

	checkoutRepo := checkout.NewRepository()
	rates := checkout.MethodRates{}
	rates.Standard, _ = cfg.MethodPolicy("standard")
	rates.Express, _ = cfg.MethodPolicy("express")
	checkoutSvc := checkout.NewService(checkoutRepo, cartRepo, rates, cfg.TaxRate)

	adminSvc := admin.NewService(checkoutRepo, catalogRepo, userRepo)

	router := httpx.NewRouter(httpx.Deps{
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Checkout: checkoutSvc,
		User:     userSvc,
		Admin:    adminSvc,
		Tokens:   tokens,
		AppEnv:   cfg.AppEnv,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		log.Info("storefront API listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
