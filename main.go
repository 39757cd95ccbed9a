package main

import (
	"ChiwawaRelay/impl/core"
	"ChiwawaRelay/internal/config"
	repository "ChiwawaRelay/internal/database"
	"ChiwawaRelay/internal/http-server/api"
	"ChiwawaRelay/internal/lib/logger"
	"ChiwawaRelay/internal/lib/sl"
	"ChiwawaRelay/internal/service/chiwawa"
	"ChiwawaRelay/internal/service/events"
	"ChiwawaRelay/internal/ws"
	"flag"
	"log/slog"

	"github.com/joho/godotenv"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	envPath := flag.String("env", ".env", "path to optional .env file")
	flag.Parse()

	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load(*envPath)

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting chiwawa relay", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	if conf.Chiwawa.ValidationToken == "" {
		lg.Warn("validation token is empty, all webhooks will be rejected")
	}

	handler := core.New(lg)
	handler.SetAuthKey(conf.Listen.ApiKey)
	handler.SetReply(conf.Reply.Mode, conf.Reply.Prefix, conf.Reply.Title)
	handler.SetValidator(chiwawa.NewValidator(conf, lg))

	client := chiwawa.NewClient(conf, lg)
	handler.SetChiwawaService(client)
	lg.With(
		sl.Secret("api_token", conf.Chiwawa.ApiToken),
		slog.String("url_template", conf.Chiwawa.UrlTemplate),
		slog.Duration("timeout", conf.Chiwawa.Timeout),
	).Info("chiwawa client initialized")

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		handler.SetRepository(db)
		client.AddObserver(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("user", conf.Mongo.User),
			slog.String("database", conf.Mongo.Database),
		).Info("delivery journal initialized")
	}

	publisher, err := events.NewPublisher(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("amqp publisher")
	}
	if publisher != nil {
		defer publisher.Close()
		client.AddObserver(publisher)
		lg.With(
			slog.String("exchange", conf.Amqp.Exchange),
			slog.String("routing_key", conf.Amqp.RoutingKey),
		).Info("delivery events publisher initialized")
	}

	var hub *ws.Hub
	if conf.Listen.ApiKey != "" {
		hub = ws.NewHub(lg)
		go hub.Run()
		client.AddObserver(hub)
		lg.Info("live delivery feed enabled")
	}

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
