package main

import (
	"context"

	"werkbon/internal/api"

	"github.com/sirupsen/logrus"
)

// @title Werkbon API
// @version 1.0
// @description Field-service work orders: planning, on-site entry and shareable read-only links.

// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logrus.Info("App start")
	if err := api.StartServer(context.Background()); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("App terminated")
}
