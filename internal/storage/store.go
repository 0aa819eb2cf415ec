package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/orbitals/internal/cloud"
	"github.com/san-kum/orbitals/internal/element"
	"github.com/san-kum/orbitals/internal/geom"
	"github.com/san-kum/orbitals/internal/orbital"
)

// Store persists sampling runs as one directory per run: metadata.json plus
// samples.csv.
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
	ID           string             `json:"id"`
	Element      string             `json:"element"`
	AtomicNumber int                `json:"atomic_number"`
	N            int                `json:"n"`
	L            int                `json:"l"`
	M            int                `json:"m"`
	Samples      int                `json:"samples"`
	Seed         uint64             `json:"seed"`
	Timestamp    time.Time          `json:"timestamp"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Orbital reconstructs the run's quantum state.
func (m RunMetadata) Orbital() (orbital.Orbital, error) {
	return orbital.New(m.N, m.L, m.M)
}

func (s *Store) Save(el element.Element, orb orbital.Orbital, seed uint64, samples []cloud.CloudSample, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d%d%d_%d", strings.ToLower(el.Symbol), orb.N, orb.L, orb.M, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Element:      el.Symbol,
		AtomicNumber: el.AtomicNumber,
		N:            orb.N,
		L:            orb.L,
		M:            orb.M,
		Samples:      len(samples),
		Seed:         seed,
		Timestamp:    time.Now(),
		Metrics:      metrics,
	}

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

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "z", "weight"}); err != nil {
		return "", err
	}
	for _, sample := range samples {
		row := []string{
			formatF32(sample.Position.X),
			formatF32(sample.Position.Y),
			formatF32(sample.Position.Z),
			formatF32(sample.Weight),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]cloud.CloudSample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, nil
	}

	samples := make([]cloud.CloudSample, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 4 {
			return nil, fmt.Errorf("malformed sample row: %v", row)
		}
		x, err := strconv.ParseFloat(row[0], 32)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(row[1], 32)
		if err != nil {
			return nil, err
		}
		z, err := strconv.ParseFloat(row[2], 32)
		if err != nil {
			return nil, err
		}
		weight, err := strconv.ParseFloat(row[3], 32)
		if err != nil {
			return nil, err
		}
		samples = append(samples, cloud.CloudSample{
			Position: geom.Vec3{X: float32(x), Y: float32(y), Z: float32(z)},
			Weight:   float32(weight),
		})
	}
	return samples, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func formatF32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 6, 32)
}
