package main

import (
	"werkbon/internal/app/dsn"
	"werkbon/internal/app/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	repo, err := repository.New(dsnStr)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	logrus.Info("Connected to database successfully")

	if err := repo.Migrate(); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Database migration completed successfully")
}
