package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/climsim/internal/ebm"
)

func sampleResult() *ebm.Result {
	return &ebm.Result{
		Times: []float64{0.0, 0.5, 1.0},
		States: []ebm.State{
			{Atmosphere: 288.0, Ocean: 288.0},
			{Atmosphere: 288.0000000123, Ocean: 288.0000000001},
			{Atmosphere: 288.0000000250, Ocean: 288.0000000003},
		},
		Metrics: map[string]float64{
			"peak_warming": 2.5e-8,
		},
		StepsTaken:    3,
		StepsRejected: 1,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("baseline", 42, 0.1, 1.0, "rk45", 1.85, sampleResult())
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

	if meta.Scenario != "baseline" {
		t.Errorf("expected scenario 'baseline', got '%s'", meta.Scenario)
	}

	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}

	if meta.ECS != 1.85 {
		t.Errorf("expected ecs 1.85, got %f", meta.ECS)
	}

	if meta.Steps != 3 || meta.Rejected != 1 {
		t.Errorf("expected 3 steps / 1 rejected, got %d / %d", meta.Steps, meta.Rejected)
	}

	if meta.Metrics["peak_warming"] != 2.5e-8 {
		t.Errorf("expected peak_warming 2.5e-8, got %g", meta.Metrics["peak_warming"])
	}

	times, atm, ocn, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}

	if len(times) != 3 || len(atm) != 3 || len(ocn) != 3 {
		t.Fatalf("expected 3 samples, got %d/%d/%d", len(times), len(atm), len(ocn))
	}

	// Sub-microkelvin structure must survive the round trip.
	if atm[1] != 288.0000000123 {
		t.Errorf("atmosphere precision lost: got %.13f", atm[1])
	}

	if ocn[2] != 288.0000000003 {
		t.Errorf("ocean precision lost: got %.13f", ocn[2])
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	_, err = st.Save("quiet", 7, 0.1, 1.0, "rk45", 1.85, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}

	if runs[0].Scenario != "quiet" {
		t.Errorf("expected scenario 'quiet', got '%s'", runs[0].Scenario)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("baseline", 1, 0.1, 1.0, "rk45", 1.85, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	metaPath := filepath.Join(runDir, "metadata.json")
	csvPath := filepath.Join(runDir, "states.csv")

	if _, err := os.Stat(metaPath); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}

	if _, err := os.Stat(csvPath); os.IsNotExist(err) {
		t.Error("states.csv not created")
	}
}

func TestListIgnoresStrayFiles(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "empty_run"), 0755); err != nil {
		t.Fatalf("mkdir stray dir: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}
