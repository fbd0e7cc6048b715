package main

import (
	"context"

	"visaportal/internal/pkg"

	"github.com/sirupsen/logrus"
)

// @title Visa Services Portal API
// @version 1.0
// @description B2B operations portal: orders, contract templates and legal document generation.
// @BasePath /
func main() {
	logrus.Info("App start")

	app, err := pkg.NewApp(context.Background())
	if err != nil {
		logrus.Fatalf("failed to init application: %v", err)
	}
	app.RunApp()

	logrus.Info("App terminated")
}
