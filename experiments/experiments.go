package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"tetris/bot"
	"tetris/engine"
	"tetris/game"
	"tetris/metrics"
)

const (
	SessionsPerConfig = 20
	// MaxPiecesPerSession cuts off bots good enough to play forever.
	MaxPiecesPerSession = 300
)

var weightConfigs = []metrics.BotConfig{
	{ID: 1, Lines: 8, Holes: -7, Height: -0.5, Bumpiness: -1, Sessions: SessionsPerConfig},
	{ID: 2, Lines: 12, Holes: -4, Height: -0.3, Bumpiness: -0.5, Sessions: SessionsPerConfig},
	{ID: 3, Lines: 4, Holes: -12, Height: -1, Bumpiness: -1, Sessions: SessionsPerConfig},
	{ID: 4, Lines: 2, Holes: -6, Height: -2, Bumpiness: -2, Sessions: SessionsPerConfig},
}

// RunBotEvaluation plays a batch of headless sessions for every weight
// configuration and writes the per-session records under dir. Session seeds
// are just the running count, so a run is reproducible end to end.
func RunBotEvaluation(dir string) error {
	log.Info().Msgf("starting bot evaluation...")

	count := 0
	records := []metrics.SessionRecord{}
	for ci, config := range weightConfigs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(weightConfigs), config)

		for i := 0; i < config.Sessions; i++ {
			count++
			metric := runSession(config, uint64(count))
			records = append(records, metrics.SessionRecord{
				Config:        config.ID,
				SessionMetric: metric,
			})

			log.Info().Msgf("completed config %d of %d session %d of %d: %d pieces, %d lines, game over %t",
				ci+1, len(weightConfigs), i+1, config.Sessions, metric.Pieces, metric.Lines, metric.GameOver)
		}
	}

	log.Info().Msgf("completed bot evaluation")

	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteBotConfigs(weightConfigs)
	if err != nil {
		return fmt.Errorf("failed to store bot configs: %w", err)
	}
	log.Info().Msg("stored bot configs")

	err = writer.WriteSessionRecords(records)
	if err != nil {
		return fmt.Errorf("failed to store session records: %w", err)
	}
	log.Info().Msgf("stored session records in %s", writer.Dir())

	return nil
}

// runSession plays one bot session to game over or the piece cutoff and
// returns its metric.
func runSession(config metrics.BotConfig, seed uint64) metrics.SessionMetric {
	eng := engine.New(engine.Config{
		Rules:     game.NewStandardRules(),
		Collector: metrics.NewCollector(),
		Seed:      seed,
	})
	weights := bot.Weights{
		Lines:     config.Lines,
		Holes:     config.Holes,
		Height:    config.Height,
		Bumpiness: config.Bumpiness,
	}
	eng.SetSource(bot.New(weights, eng.Session, seed))

	for !eng.Session().Over() && eng.Session().Pieces() < MaxPiecesPerSession {
		eng.Step()
	}
	return eng.Finish()
}
