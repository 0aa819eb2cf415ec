package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/orbitals/internal/cloud"
)

type exportSample struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Z      float32 `json:"z"`
	Weight float32 `json:"weight"`
}

type exportRun struct {
	RunMetadata
	Points []exportSample `json:"points"`
}

// ExportJSON writes a run's metadata and samples as a single JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []cloud.CloudSample) error {
	out := exportRun{
		RunMetadata: *meta,
		Points:      make([]exportSample, len(samples)),
	}
	for i, s := range samples {
		out.Points[i] = exportSample{
			X:      s.Position.X,
			Y:      s.Position.Y,
			Z:      s.Position.Z,
			Weight: s.Weight,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
