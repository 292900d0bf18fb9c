package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID         int
	Random     bool // Uniform random mover; the search fields are ignored
	Depth      int
	Goroutines int
}

func (c AgentConfig) String() string {
	if c.Random {
		return fmt.Sprintf("agent%d(random)", c.ID)
	}
	return fmt.Sprintf("agent%d(depth=%d goroutines=%d)", c.ID, c.Depth, c.Goroutines)
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, plays Red
	Agent2 int // AgentConfig.ID, plays Black
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
	create  func(path string) (io.WriteCloser, error)
}

// NewWriter creates <root>/<name>/<timestamp> to hold the experiment's files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
		create: func(path string) (io.WriteCloser, error) {
			return os.Create(path)
		},
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.FormatBool(config.Random),
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Goroutines),
		})
	}
	header := []string{"id", "random", "depth", "goroutines"}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner.String(),
			record.Reason.String(),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "reason", "total_moves", "start_time", "end_time", "duration"}
	return w.writeCSV("games.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Move.String(),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.Score),
		})
	}
	header := []string{"game", "step", "player", "move", "depth", "goroutines", "duration", "candidates", "nodes", "cutoffs", "score"}
	return w.writeCSV("moves.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := w.create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, closeErr)
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
