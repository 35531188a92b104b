package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store persists headless run results under a base directory: one
// subdirectory per run with metadata JSON and a per-tick series CSV. It
// records raw simulation series, never rendered glyph output.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Steps     int       `json:"steps"`
	Mode      string    `json:"mode"`
	Cutoff    float64   `json:"cutoff"`
}

// Result is the per-tick series of a headless run.
type Result struct {
	Ticks      []int
	Population []int // live cells per tick, under the run's cutoff
}

// Save writes one run and returns its id.
func (s *Store) Save(meta RunMetadata, result *Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()
	if err := w.Write([]string{"tick", "population"}); err != nil {
		return "", err
	}
	for i, tick := range result.Ticks {
		row := []string{strconv.Itoa(tick), strconv.Itoa(result.Population[i])}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
}

// List returns metadata for all stored runs, newest last.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}
