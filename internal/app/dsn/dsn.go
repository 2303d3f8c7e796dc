package dsn

import (
	"fmt"
	"os"
)

// FromEnv builds the postgres DSN from DB_* variables. It returns "" when
// the host is not set.
func FromEnv() string {
	host, ok := os.LookupEnv("DB_HOST")
	if !ok || host == "" {
		return ""
	}
	port := getEnv("DB_PORT", "5432")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	dbname := os.Getenv("DB_NAME")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s", host, port, user, pass, dbname, sslmode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
