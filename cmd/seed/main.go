package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"order-admin/internal/app"
	"order-admin/internal/config"
	"order-admin/internal/seed"
)

func main() {
	checkOnly := flag.Bool("check", false, "only verify the database connection and schema")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("connect: %v", err)
	}
	defer application.Close()

	if *checkOnly {
		logger.Info("connection ok")
		return
	}

	res, err := seed.Run(ctx, application.Users, application.Orders, logger)
	if err != nil {
		application.Close()
		logger.Fatalf("seed: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"user_created":   res.UserCreated,
		"orders_created": res.OrdersCreated,
	}).Info("seed ok")
}
