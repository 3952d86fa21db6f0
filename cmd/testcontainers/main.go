package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/swipefile/internal/database"
	"github.com/localnerve/swipefile/internal/logger"
	"github.com/localnerve/swipefile/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run a swipefile development database (and optional Authorizer) in containers,
migrated and seeded, until interrupted.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to a .env file providing
  TEST_DB_TYPE   postgres | mariadb (default mariadb)
  TEST_DB_IMAGE  database image (default mariadb:11)
  AUTHZ_IMAGE    optional Authorizer image

example
  testcontainers -f /path/to/something/.env
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	log, err := logger.New(logger.Options{Mode: "development", Level: "info"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if envFilename != "" {
		log.Info("Loading environment variables", "file", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatal("Failed to load environment variables", "error", err)
		}
	} else {
		log.Info("No environment file specified, using current environment variables")
	}

	dbType := envOr("TEST_DB_TYPE", "mariadb")
	image := envOr("TEST_DB_IMAGE", "mariadb:11")

	ctx := context.Background()
	containers, err := testutil.StartDatabase(ctx, nil, dbType, image, os.Getenv("AUTHZ_IMAGE"))
	if err != nil {
		log.Fatal("Failed to create test containers", "error", err)
	}

	db, err := database.Connect(containers.Config, log)
	if err == nil {
		if err = database.AutoMigrate(db); err == nil {
			err = database.Seed(db)
		}
		database.Close(db)
	}
	if err != nil {
		containers.Terminate(nil)
		log.Fatal("Failed to prepare database", "error", err)
	}
	log.Info("Test containers ready; press Ctrl-C to stop")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	sig := <-sigs
	log.Info("Terminating test containers", "signal", sig.String())
	containers.Terminate(nil)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
