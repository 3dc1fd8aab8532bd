package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tetris/bot"
	"tetris/engine"
	"tetris/experiments"
	"tetris/game"
	"tetris/metrics"
	"tetris/tui"
)

func main() {
	width := flag.Int("width", 10, "Board width in columns")
	height := flag.Int("height", 20, "Board height in rows")
	level := flag.Int("level", 0, "Starting level")
	seed := flag.Uint64("seed", 0, "Piece sequence seed, 0 means time-based")
	botPlays := flag.Bool("bot", false, "Let the bot play alongside the keyboard")
	experiment := flag.Bool("experiment", false, "Run the bot evaluation instead of the game")
	statsDir := flag.String("stats", "", "Directory to write session records to")
	logFile := flag.String("log", "", "File to write logs to, empty disables logging")
	flag.Parse()

	if *experiment {
		runExperiment(*statsDir)
		return
	}

	runGame(*width, *height, *level, *seed, *botPlays, *statsDir, *logFile)
}

func runExperiment(dir string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if dir == "" {
		dir = "experiments"
	}
	if err := experiments.RunBotEvaluation(dir); err != nil {
		log.Fatal().Err(err).Msg("bot evaluation failed")
	}
}

func runGame(width, height, level int, seed uint64, botPlays bool, statsDir, logFile string) {
	// the terminal belongs to tcell while the game runs, so logs go to a
	// file or nowhere
	log.Logger = zerolog.Nop()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	}

	rules := game.NewStandardRules()
	rules.Width = width
	rules.Height = height
	rules.Level = level

	screen, err := tui.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	// a panic below must not leave the terminal raw; Fini is safe to call twice
	defer screen.Fini()

	input := tui.NewInput(screen.Tcell())

	collector := metrics.NewDummyCollector()
	if statsDir != "" {
		collector = metrics.NewCollector()
	}

	eng := engine.New(engine.Config{
		Rules:     rules,
		Source:    input,
		Renderer:  screen,
		Collector: collector,
		Seed:      seed,
	})
	if botPlays {
		player := bot.New(bot.DefaultWeights(), eng.Session, uint64(time.Now().UnixNano()))
		// keyboard keys win over the bot's queued moves
		eng.SetSource(engine.Combine(input, player))
	}

	eng.Run()

	// restore the terminal before printing anything
	screen.Fini()

	session := eng.Session()
	fmt.Printf("Cleared %d line(s) over %d piece(s), reached level %d.\n",
		session.Lines(), session.Pieces(), session.Level())

	if statsDir != "" {
		writeRecords(statsDir, eng.Records())
	}
}

func writeRecords(dir string, sessions []metrics.SessionMetric) {
	records := make([]metrics.SessionRecord, 0, len(sessions))
	for _, session := range sessions {
		records = append(records, metrics.SessionRecord{SessionMetric: session})
	}

	writer, err := metrics.NewWriter(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create stats writer: %v\n", err)
		return
	}
	if err := writer.WriteSessionRecords(records); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write session records: %v\n", err)
		return
	}
	fmt.Printf("Session records written to %s.\n", writer.Dir())
}
