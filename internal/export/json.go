package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/climsim/internal/ebm"
)

type ExportData struct {
	Scenario   string             `json:"scenario"`
	Integrator string             `json:"integrator"`
	Seed       int64              `json:"seed"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	ECS        float64            `json:"ecs"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	Atmosphere []float64          `json:"t_atm"`
	Ocean      []float64          `json:"t_ocn"`
	Metrics    map[string]float64 `json:"metrics"`
}

func newExportData(scenario, integrator string, seed int64, dt, duration, ecs float64, result *ebm.Result) ExportData {
	return ExportData{
		Scenario:   scenario,
		Integrator: integrator,
		Seed:       seed,
		Dt:         dt,
		Duration:   duration,
		ECS:        ecs,
		Steps:      len(result.Times),
		Times:      result.Times,
		Atmosphere: result.AtmosphereSeries(),
		Ocean:      result.OceanSeries(),
		Metrics:    result.Metrics,
	}
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, scenario, integrator string, seed int64, dt, duration, ecs float64, result *ebm.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, newExportData(scenario, integrator, seed, dt, duration, ecs, result))
}

func ExportJSONStdout(scenario, integrator string, seed int64, dt, duration, ecs float64, result *ebm.Result) error {
	return WriteJSON(os.Stdout, newExportData(scenario, integrator, seed, dt, duration, ecs, result))
}
