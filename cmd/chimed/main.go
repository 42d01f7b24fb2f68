package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/ilikeorangutans/chime/pkg/engine"
	"github.com/ilikeorangutans/chime/pkg/notify"
	"github.com/ilikeorangutans/chime/pkg/version"
	"github.com/ilikeorangutans/chime/pkg/web"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	FancyLogs      bool `split_words:"true"`
	Debug          bool
	Addr           string        `default:":8080"`
	TickInterval   time.Duration `split_words:"true" default:"1s"`
	TelegramToken  string        `split_words:"true"`
	TelegramChatID int64         `split_words:"true"`
}

func main() {
	var config Config
	if err := envconfig.Process("chime", &config); err != nil {
		log.Fatal().Err(err).Send()
	}

	if config.FancyLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Info().Str("log-level", zerolog.GlobalLevel().String()).Str("sha", version.SHA).Str("build-time", version.BuildTime).Str("addr", config.Addr).Dur("tick-interval", config.TickInterval).Msg("chimed starting up")

	notifiers := []notify.Notifier{notify.NewLogNotifier()}
	if config.TelegramToken != "" {
		telegram, err := notify.NewTelegramNotifier(config.TelegramToken, config.TelegramChatID)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create telegram notifier")
		}
		notifiers = append(notifiers, telegram)
	}

	e := engine.New(notify.Multi(notifiers...))

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", config.TickInterval), func() {
		e.Tick(time.Now())
	}); err != nil {
		log.Fatal().Err(err).Msg("could not schedule tick")
	}
	c.Start()

	server := web.NewServer(e)
	httpServer := &http.Server{
		Addr:    config.Addr,
		Handler: server.Router(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	go func() {
		<-signals
		log.Info().Msg("received interrupt signal")
		cancel()
	}()

	go func() {
		log.Info().Str("addr", config.Addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("could not start HTTP server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	<-c.Stop().Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("could not shut down HTTP server")
	}
}
