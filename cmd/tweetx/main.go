package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"tweetx/internal/config"
	"tweetx/internal/db"
	"tweetx/internal/routes"

	"github.com/rs/zerolog/log"

	"github.com/rs/zerolog"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Info().Msg("TweetX program initiated")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load configuration")
	}

	ctx := context.Background()
	if err := db.Connect(ctx, cfg.MongoURI); err != nil {
		log.Fatal().Err(err).Msg("Unable to connect to database")
	}
	defer func() {
		if err := db.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Unable to disconnect from database")
		}
	}()

	users := db.NewUserRepo(cfg.Database)
	posts := db.NewPostRepo(cfg.Database)
	app := routes.NewApp(users, posts, log.Logger, cfg.SessionTTL)

	log.Info().Msg(fmt.Sprintf("Server is running on http://localhost%v", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, app.Router()); err != nil {
		log.Error().Msg(fmt.Sprintf("Unable to start server : %v", err))
	}
}
