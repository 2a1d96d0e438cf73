package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ssmohri/SCM-resilience/internal/config"
	"github.com/ssmohri/SCM-resilience/internal/database"
	"github.com/ssmohri/SCM-resilience/migrations"
)

var (
	log = logrus.New()

	configPath string
	cfg        config.Config
)

func init() {
	const (
		defaultConfigPath = "/run/config.json"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
}

func main() {
	flag.Parse()

	if err := config.Read(configPath, &cfg); err != nil {
		log.Fatalf("unable to read config %s: %s", configPath, err.Error())
	}
	if cfg.Development() {
		log.SetLevel(logrus.DebugLevel)
	}

	migrator, err := database.Migrate(cfg.Postgres.URL(), migrations.FS)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		log.Error("failed to check migration version: ", err)
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("migration successful")
}
