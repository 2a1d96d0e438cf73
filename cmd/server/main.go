package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/ssmohri/SCM-resilience/internal/config"
	"github.com/ssmohri/SCM-resilience/internal/database"
	"github.com/ssmohri/SCM-resilience/internal/repository"
	"github.com/ssmohri/SCM-resilience/internal/routing"
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

func setupLogging() {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if cfg.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to set up log file: ", err)
		}
		log.AddHook(hook)
	}

	routing.Log = log
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := config.Read(configPath, &cfg); err != nil {
		log.Fatalf("unable to read config %s: %s", configPath, err.Error())
	}

	setupLogging()

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	jwt, err := config.NewJWT(cfg.Jwt)
	if err != nil {
		log.Fatal("unable to load jwt keys: ", err)
	}
	cookies := config.NewCookies(cfg, jwt)
	ws := config.NewWebSocket(cfg)

	db, err := database.Connect(mainCtx, cfg.Postgres)
	if err != nil {
		log.Fatal("unable to create connection pool: ", err)
	}
	defer db.Close()

	if err := repository.New(db).Ping(mainCtx); err != nil {
		log.Fatal("unable to ping database: ", err)
	}

	if _, err := database.Migrate(cfg.Postgres.URL(), migrations.FS); err != nil {
		log.Fatal("unable to migrate database: ", err)
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: buildHandler(db, cookies, jwt, ws),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", cfg.Addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
