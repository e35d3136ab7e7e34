package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

func backgroundDeleteExpiredItems(
	ctx context.Context,
	queries *Queries,
) {
	for {
		log.Info().Msg("running background job: delete expired account tokens")
		if result, err := queries.DeleteExpiredTokens(ctx); err != nil {
			log.Error().Err(err).Msg("deleting expired account tokens")
		} else {
			log.Info().Int64("n", result.RowsAffected()).Msg("deleted expired account tokens")
		}

		time.Sleep(time.Hour)
	}
}
