package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// BotConfig is one scoring-weight configuration under evaluation.
type BotConfig struct {
	ID        int
	Lines     float64
	Holes     float64
	Height    float64
	Bumpiness float64
	Sessions  int
}

// SessionRecord ties a finished session to the bot configuration that
// played it. Config 0 means a human session.
type SessionRecord struct {
	Config int // BotConfig.ID
	SessionMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder of dir for this run's files.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the folder the records land in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteBotConfigs(configs []BotConfig) error {
	// Create a file
	path := filepath.Join(w.baseDir, "bot_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create bot configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "lines", "holes", "height", "bumpiness", "sessions"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write bot configs header: %w", err)
	}

	// Write each row
	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.FormatFloat(config.Lines, 'f', -1, 64),
			strconv.FormatFloat(config.Holes, 'f', -1, 64),
			strconv.FormatFloat(config.Height, 'f', -1, 64),
			strconv.FormatFloat(config.Bumpiness, 'f', -1, 64),
			strconv.Itoa(config.Sessions),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write bot config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSessionRecords(records []SessionRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "session_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create session records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "config", "seed", "start_time", "end_time", "duration", "pieces", "lines", "level", "game_over"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write session records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			record.ID.String(),
			strconv.Itoa(record.Config),
			strconv.FormatUint(record.Seed, 10),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.Pieces),
			strconv.Itoa(record.Lines),
			strconv.Itoa(record.Level),
			strconv.FormatBool(record.GameOver),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write session record row: %w", err)
		}
	}

	return nil
}
