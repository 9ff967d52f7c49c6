package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/aegis/pkg/domain/model/config"
	"github.com/secmon-lab/aegis/pkg/service/report"
	"github.com/urfave/cli/v3"
)

// Profile is the optional TOML file that tunes scoring passes
type Profile struct {
	TopRisks          int     `toml:"top_risks"`
	HighRiskThreshold float64 `toml:"high_risk_threshold"`
	HeatmapSize       int     `toml:"heatmap_size"`
	ReportFormat      string  `toml:"report_format"`
}

// Validate checks if the Profile is valid. Zero values mean "not set".
func (p *Profile) Validate() error {
	if p.TopRisks < 0 {
		return goerr.Wrap(ErrInvalidConfig, "top_risks must not be negative", goerr.V(FieldKey, "top_risks"), goerr.V("value", p.TopRisks))
	}
	if p.HighRiskThreshold < 0 || p.HighRiskThreshold > 10 {
		return goerr.Wrap(ErrInvalidConfig, "high_risk_threshold must be within [0, 10]", goerr.V(FieldKey, "high_risk_threshold"), goerr.V("value", p.HighRiskThreshold))
	}
	if p.HeatmapSize < 0 {
		return goerr.Wrap(ErrInvalidConfig, "heatmap_size must not be negative", goerr.V(FieldKey, "heatmap_size"), goerr.V("value", p.HeatmapSize))
	}
	if p.ReportFormat != "" {
		if _, err := report.ParseFormat(p.ReportFormat); err != nil {
			return goerr.Wrap(ErrInvalidConfig, "unknown report_format", goerr.V(FieldKey, "report_format"), goerr.V("value", p.ReportFormat))
		}
	}
	return nil
}

// LoadProfile reads and validates a profile file
func LoadProfile(path string) (*Profile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "profile does not exist", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read profile", goerr.V(ConfigPathKey, path))
	}

	var profile Profile
	if err := toml.Unmarshal(data, &profile); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML profile", goerr.V(ConfigPathKey, path), goerr.V("error", err.Error()))
	}

	if err := profile.Validate(); err != nil {
		return nil, goerr.Wrap(err, "profile validation failed", goerr.V(ConfigPathKey, path))
	}

	return &profile, nil
}

// Engine holds CLI flags that tune a scoring pass. Flags win over the
// profile file, which wins over the defaults.
type Engine struct {
	configPath string
	topRisks   int
	threshold  float64
	format     string
}

// Flags returns CLI flags for engine configuration
func (e *Engine) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Engine profile TOML file",
			Sources:     cli.EnvVars("AEGIS_CONFIG"),
			Destination: &e.configPath,
		},
		&cli.IntFlag{
			Name:        "top",
			Usage:       "Number of top risks to report (default 3)",
			Sources:     cli.EnvVars("AEGIS_TOP_RISKS"),
			Destination: &e.topRisks,
		},
		&cli.FloatFlag{
			Name:        "threshold",
			Usage:       "Risk score at which an asset gets targeted recommendations (default 6)",
			Sources:     cli.EnvVars("AEGIS_HIGH_RISK_THRESHOLD"),
			Destination: &e.threshold,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Report format [text|json|pdf] (default text)",
			Sources:     cli.EnvVars("AEGIS_REPORT_FORMAT"),
			Destination: &e.format,
		},
	}
}

// LogValue implements slog.LogValuer
func (e Engine) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", e.configPath),
		slog.Int("top", e.topRisks),
		slog.Float64("threshold", e.threshold),
		slog.String("format", e.format),
	)
}

// Configure merges defaults, the profile file and flags
func (e *Engine) Configure() (*domainConfig.Engine, report.Format, error) {
	cfg := domainConfig.DefaultEngine()
	format := report.FormatText

	if e.configPath != "" {
		profile, err := LoadProfile(e.configPath)
		if err != nil {
			return nil, "", err
		}
		if profile.TopRisks > 0 {
			cfg.TopRisks = profile.TopRisks
		}
		if profile.HighRiskThreshold > 0 {
			cfg.HighRiskThreshold = profile.HighRiskThreshold
		}
		if profile.HeatmapSize > 0 {
			cfg.HeatmapSize = profile.HeatmapSize
		}
		if profile.ReportFormat != "" {
			format = report.Format(profile.ReportFormat)
		}
	}

	if e.topRisks < 0 {
		return nil, "", goerr.Wrap(ErrInvalidConfig, "--top must not be negative", goerr.V("value", e.topRisks))
	}
	if e.topRisks > 0 {
		cfg.TopRisks = e.topRisks
	}
	if e.threshold < 0 || e.threshold > 10 {
		return nil, "", goerr.Wrap(ErrInvalidConfig, "--threshold must be within [0, 10]", goerr.V("value", e.threshold))
	}
	if e.threshold > 0 {
		cfg.HighRiskThreshold = e.threshold
	}
	if e.format != "" {
		f, err := report.ParseFormat(e.format)
		if err != nil {
			return nil, "", goerr.Wrap(ErrInvalidConfig, "invalid --format", goerr.V("value", e.format))
		}
		format = f
	}

	return cfg, format, nil
}
