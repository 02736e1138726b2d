package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/go-kyugo/usersvc/config"
	"github.com/go-kyugo/usersvc/http/route"
	"github.com/go-kyugo/usersvc/logger"
	"github.com/go-kyugo/usersvc/middleware"
	"github.com/go-kyugo/usersvc/router"
	"github.com/go-kyugo/usersvc/server"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to a JSON or YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lvl, err := logger.ParseLevel(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.App.Debug {
		lvl = logger.LevelDebug
	}
	std := logger.New(os.Stdout, cfg.Logger.Type, lvl)
	logger.SetStd(std)

	srv, err := newServer(cfg, std)
	if err != nil {
		logger.Fatal("Server.New failed", logger.Fields{"error": err.Error()})
	}
	if err := srv.Start(); err != nil {
		logger.Fatal("Server.Start failed", logger.Fields{"error": err.Error()})
	}
}

func newServer(cfg config.Config, l *logger.Logger) (*server.Server, error) {
	r := router.New()
	route.Register(r)

	for _, rt := range r.Routes() {
		l.Debug("Router.Route", logger.Fields{"method": rt.Method, "pattern": rt.Pattern})
	}

	return server.New(server.Options{
		Config:  &cfg,
		Handler: r.Handler(),
		DefaultMiddlewares: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.Logger,
			middleware.Recover,
			middleware.CORS(cfg.Server.Cors),
		},
		Logger: l,
	})
}
