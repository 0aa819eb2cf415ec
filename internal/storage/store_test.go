package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/orbitals/internal/cloud"
	"github.com/san-kum/orbitals/internal/element"
	"github.com/san-kum/orbitals/internal/geom"
	"github.com/san-kum/orbitals/internal/orbital"
)

func testSamples() []cloud.CloudSample {
	return []cloud.CloudSample{
		{Position: geom.Vec3{X: 0.1, Y: -0.2, Z: 0.3}, Weight: 0.9},
		{Position: geom.Vec3{X: -0.4, Y: 0.5, Z: -0.6}, Weight: 0.1},
		{Position: geom.Vec3{}, Weight: 0},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	el := element.Hydrogen()
	orb := orbital.MustNew(2, 1, 0)
	metrics := map[string]float64{"mean_radius": 1.5}

	runID, err := st.Save(el, orb, 42, testSamples(), metrics)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Element != "H" || meta.AtomicNumber != 1 {
		t.Errorf("element metadata wrong: %+v", meta)
	}
	if meta.N != 2 || meta.L != 1 || meta.M != 0 {
		t.Errorf("orbital metadata wrong: %+v", meta)
	}
	if meta.Metrics["mean_radius"] != 1.5 {
		t.Errorf("metrics not persisted: %v", meta.Metrics)
	}

	loaded, err := meta.Orbital()
	if err != nil {
		t.Fatalf("stored orbital invalid: %v", err)
	}
	if loaded != orb {
		t.Errorf("orbital roundtrip mismatch: %v", loaded)
	}
}

func TestLoadSamplesRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	want := testSamples()
	runID, err := st.Save(element.Hydrogen(), orbital.GroundState(), 1, want, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Position.Sub(want[i].Position).Length() > 1e-5 {
			t.Errorf("sample %d position drifted: %v vs %v", i, got[i].Position, want[i].Position)
		}
		if diff := got[i].Weight - want[i].Weight; diff > 1e-5 || diff < -1e-5 {
			t.Errorf("sample %d weight drifted: %v vs %v", i, got[i].Weight, want[i].Weight)
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("fresh store should list no runs, got %d", len(runs))
	}

	if _, err := st.Save(element.Hydrogen(), orbital.GroundState(), 1, testSamples(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{ID: "h_100_1", Element: "H", AtomicNumber: 1, N: 1}
	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, testSamples()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"h_100_1"`) {
		t.Error("export missing run id")
	}
	if !strings.Contains(out, `"points"`) {
		t.Error("export missing points array")
	}
}
