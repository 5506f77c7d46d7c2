package bgstrip

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the JSON tuning file accepted by the command line tool.
// Fields left out of the file keep their default values.
type Config struct {
	BorderWidth    int        `json:"border_width"`
	Tolerances     []float64  `json:"tolerances"`
	HaloThreshold  float64    `json:"halo_threshold"`
	ErodeRadius    int        `json:"erode_radius"`
	BlurSigma      float64    `json:"blur_sigma"`
	Suffix         string     `json:"suffix"`
	TimeoutSeconds float64    `json:"timeout_seconds"`
	Thresholds     Thresholds `json:"thresholds"`
}

// DefaultConfig returns the configuration NewRemover uses when given no
// options.
func DefaultConfig() Config {
	return Config{
		BorderWidth:    DefaultBorderWidth,
		Tolerances:     append([]float64(nil), DefaultTolerances...),
		HaloThreshold:  DefaultHaloThreshold,
		ErodeRadius:    DefaultErodeRadius,
		BlurSigma:      DefaultBlurSigma,
		Suffix:         DefaultSuffix,
		TimeoutSeconds: DefaultTimeout.Seconds(),
		Thresholds:     DefaultThresholds(),
	}
}

// LoadConfig reads a JSON config file over the defaults and validates
// the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case c.BorderWidth < 1:
		return fmt.Errorf("border width must be positive, got %d", c.BorderWidth)
	case len(c.Tolerances) == 0:
		return errors.New("no tolerances given")
	case c.ErodeRadius < 0:
		return fmt.Errorf("erode radius must not be negative, got %d", c.ErodeRadius)
	case !(c.BlurSigma >= 0):
		return fmt.Errorf("blur sigma must be a non-negative number, got %g", c.BlurSigma)
	case !(c.TimeoutSeconds >= 0):
		return fmt.Errorf("timeout must be a non-negative number, got %g", c.TimeoutSeconds)
	case !(c.HaloThreshold >= 0):
		return fmt.Errorf("halo threshold must be a non-negative number, got %g", c.HaloThreshold)
	}
	for _, t := range c.Tolerances {
		if !(t > 0 && t <= 100) {
			return fmt.Errorf("tolerance %g out of range (0,100]", t)
		}
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}
	return nil
}

// Timeout returns the per-candidate time limit.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}

// Options converts the config into Remover options. The keyer is the
// pure Go pipeline; callers wanting another engine append WithKeyer.
func (c Config) Options() []Option {
	return []Option{
		WithBorderWidth(c.BorderWidth),
		WithTolerances(c.Tolerances...),
		WithHaloThreshold(c.HaloThreshold),
		WithSuffix(c.Suffix),
		WithTimeout(c.Timeout()),
		WithThresholds(c.Thresholds),
		WithKeyer(&PipelineKeyer{ErodeRadius: c.ErodeRadius, BlurSigma: c.BlurSigma}),
	}
}

// ParseTolerances parses a comma separated list of percentages such as
// "10,15,20" or "10%, 20%".
func ParseTolerances(s string) ([]float64, error) {
	var tols []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSuffix(strings.TrimSpace(field), "%")
		if field == "" {
			continue
		}
		t, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("bad tolerance %q: %w", field, err)
		}
		tols = append(tols, t)
	}
	if len(tols) == 0 {
		return nil, fmt.Errorf("no tolerances in %q", s)
	}
	return tols, nil
}
