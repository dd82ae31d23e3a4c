package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigMatchesModel(t *testing.T) {
	cfg := DefaultConfig()

	p := cfg.ModelParams()
	if p.S0 != 1361.0 || p.Ca != 1e8 || p.Co != 1e10 {
		t.Errorf("unexpected physical constants: %+v", p)
	}
	if p.ECS() != 1.85 {
		t.Errorf("default ECS should be 1.85, got %f", p.ECS())
	}
	if len(p.Eruptions) != 2 {
		t.Errorf("expected 2 eruptions, got %d", len(p.Eruptions))
	}

	s := cfg.InitialState()
	if s.Atmosphere != 288.0 || s.Ocean != 288.0 {
		t.Errorf("unexpected initial state: %+v", s)
	}

	sc := cfg.SolverConfig()
	if sc.End != 1000.0 || !sc.Adaptive {
		t.Errorf("unexpected solver config: %+v", sc)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	body := []byte("scenario: custom\nduration: 250\nparams:\n  f_max: 7.4\n")
	if err := os.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Scenario != "custom" || cfg.Duration != 250 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Params.Fmax != 7.4 {
		t.Errorf("nested override not applied: %f", cfg.Params.Fmax)
	}
	if cfg.Params.S0 != 1361.0 {
		t.Errorf("unset key should keep its default, got %f", cfg.Params.S0)
	}
	if cfg.Integrator != "rk45" {
		t.Errorf("unset key should keep its default, got %q", cfg.Integrator)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := GetPreset("quiet")
	cfg.Seed = 7
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Scenario != "quiet" || loaded.Seed != 7 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.Params.NoiseAmp != 0 {
		t.Errorf("round trip lost zeroed noise: %f", loaded.Params.NoiseAmp)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("listed preset %q not found", name)
		}
		if cfg.Scenario != name {
			t.Errorf("preset %q labels itself %q", name, cfg.Scenario)
		}
		if cfg.Dt <= 0 || cfg.Duration <= 0 {
			t.Errorf("preset %q has unusable stepping: %+v", name, cfg)
		}
	}

	if GetPreset("volcanic-winter") != nil {
		t.Error("unknown preset should return nil")
	}
}

func TestPresetIsolation(t *testing.T) {
	a := GetPreset("baseline")
	a.Params.Fmax = 99
	a.Params.Eruptions[0].Forcing = -50

	b := GetPreset("baseline")
	if b.Params.Fmax == 99 {
		t.Error("presets should not share state across calls")
	}
	if b.Params.Eruptions[0].Forcing == -50 {
		t.Error("eruption records should not be shared")
	}
}
