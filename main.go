package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if BuildKey == "" {
		panic("missing build key")
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx := context.Background()
	log.Info().Str("build", BuildKey).Msg("starting")

	godotenv.Load(".env")

	config, err := loadConfig("config.json")
	if err != nil {
		panic(err)
	}

	conn, err := dbSetup(ctx)
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	queries := New(conn)

	mail := NewMailWorker(NewMailer(config.Mail))

	backend, err := newFileBackend(ctx, config.Storage)
	if err != nil {
		panic(err)
	}

	go backgroundDeleteExpiredItems(ctx, queries)

	err = startServer(ctx, conn, queries, mail, backend, config, BuildKey)
	if err != nil {
		panic(err)
	}

	log.Info().Msg("ready")
	select {}
}
