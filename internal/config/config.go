package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/climsim/internal/climate"
	"github.com/san-kum/climsim/internal/ebm"
)

const (
	DefaultDt        = 0.1
	DefaultDuration  = 1000.0
	DefaultTolerance = 1e-6
	DefaultMinDt     = 1e-9
	DefaultMaxDt     = 5.0
	DefaultSeed      = 42
)

type Config struct {
	Scenario   string        `yaml:"scenario"`
	Integrator string        `yaml:"integrator"`
	Start      float64       `yaml:"start"`
	Duration   float64       `yaml:"duration"`
	Dt         float64       `yaml:"dt"`
	Adaptive   bool          `yaml:"adaptive"`
	Tolerance  float64       `yaml:"tolerance"`
	MinDt      float64       `yaml:"min_dt"`
	MaxDt      float64       `yaml:"max_dt"`
	Seed       int64         `yaml:"seed"`
	Initial    InitialConfig `yaml:"initial"`
	Params     ParamsConfig  `yaml:"params"`
}

type InitialConfig struct {
	Atmosphere float64 `yaml:"atmosphere"`
	Ocean      float64 `yaml:"ocean"`
}

type ParamsConfig struct {
	S0             float64          `yaml:"s0"`
	Ca             float64          `yaml:"c_atm"`
	Co             float64          `yaml:"c_ocean"`
	A              float64          `yaml:"olr_intercept"`
	B0             float64          `yaml:"olr_slope"`
	Fmax           float64          `yaml:"f_max"`
	K              float64          `yaml:"exchange"`
	AlbedoFeedback float64          `yaml:"albedo_feedback"`
	VaporFeedback  float64          `yaml:"vapor_feedback"`
	CloudFeedback  float64          `yaml:"cloud_feedback"`
	NoiseAmp       float64          `yaml:"noise"`
	Eruptions      []EruptionConfig `yaml:"eruptions"`
}

type EruptionConfig struct {
	Start   float64 `yaml:"start"`
	End     float64 `yaml:"end"`
	Forcing float64 `yaml:"forcing"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario:   "baseline",
		Integrator: "rk45",
		Start:      0,
		Duration:   DefaultDuration,
		Dt:         DefaultDt,
		Adaptive:   true,
		Tolerance:  DefaultTolerance,
		MinDt:      DefaultMinDt,
		MaxDt:      DefaultMaxDt,
		Seed:       DefaultSeed,
		Initial:    InitialConfig{Atmosphere: 288.0, Ocean: 288.0},
		Params: ParamsConfig{
			S0:             1361.0,
			Ca:             1e8,
			Co:             1e10,
			A:              -337.825,
			B0:             2.0,
			Fmax:           3.7,
			K:              1e7,
			AlbedoFeedback: 0.01,
			VaporFeedback:  0.01,
			CloudFeedback:  0.5,
			NoiseAmp:       0.3,
			Eruptions: []EruptionConfig{
				{Start: 100, End: 105, Forcing: -2.0},
				{Start: 600, End: 605, Forcing: -3.0},
			},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ModelParams converts the yaml view into the physical parameter set.
func (c *Config) ModelParams() climate.Params {
	eruptions := make([]climate.Eruption, len(c.Params.Eruptions))
	for i, e := range c.Params.Eruptions {
		eruptions[i] = climate.Eruption{Start: e.Start, End: e.End, Forcing: e.Forcing}
	}
	return climate.Params{
		S0:             c.Params.S0,
		Ca:             c.Params.Ca,
		Co:             c.Params.Co,
		A:              c.Params.A,
		B0:             c.Params.B0,
		Fmax:           c.Params.Fmax,
		K:              c.Params.K,
		AlbedoFeedback: c.Params.AlbedoFeedback,
		VaporFeedback:  c.Params.VaporFeedback,
		CloudFeedback:  c.Params.CloudFeedback,
		NoiseAmp:       c.Params.NoiseAmp,
		Eruptions:      eruptions,
	}
}

func (c *Config) InitialState() ebm.State {
	return ebm.State{Atmosphere: c.Initial.Atmosphere, Ocean: c.Initial.Ocean}
}

func (c *Config) SolverConfig() ebm.Config {
	sc := ebm.DefaultConfig()
	sc.Start = c.Start
	sc.End = c.Start + c.Duration
	sc.Dt = c.Dt
	sc.MinDt = c.MinDt
	sc.MaxDt = c.MaxDt
	sc.Tolerance = c.Tolerance
	sc.Adaptive = c.Adaptive
	return sc
}
