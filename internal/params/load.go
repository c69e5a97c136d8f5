package params

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML preset and overlays it on base. Keys missing from the
// file keep base's values; unknown keys are an error.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read preset: %w", err)
	}
	return Parse(data, base)
}

// Parse decodes a YAML preset over base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	raw := newPreset(base)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if len(bytes.TrimSpace(data)) == 0 {
			return base, nil
		}
		return base, fmt.Errorf("%w: decode preset: %v", ErrInvalidConfig, err)
	}
	c, err := raw.config()
	if err != nil {
		return base, err
	}
	if err := c.Validate(); err != nil {
		return base, err
	}
	return c, nil
}

// FromMap overlays flag-style key/value pairs on base. Values are decoded
// weakly, so "60" becomes a number.
func FromMap(base Config, kv map[string]string) (Config, error) {
	if len(kv) == 0 {
		return base, nil
	}
	raw := newPreset(base)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &raw,
	})
	if err != nil {
		return base, err
	}
	if err := dec.Decode(kv); err != nil {
		return base, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c, err := raw.config()
	if err != nil {
		return base, err
	}
	if err := c.Validate(); err != nil {
		return base, err
	}
	return c, nil
}

// preset is Config as read from outside. Epoch is decoded as a float so that
// "2.7" is refused rather than truncated to 2.
type preset struct {
	Size       float64 `yaml:"size" mapstructure:"size"`
	Stellation float64 `yaml:"stellation" mapstructure:"stellation"`
	Epoch      float64 `yaml:"epoch" mapstructure:"epoch"`
	StepDelay  float64 `yaml:"step_delay" mapstructure:"step_delay"`
}

func newPreset(c Config) preset {
	return preset{Size: c.Size, Stellation: c.Stellation, Epoch: float64(c.Epoch), StepDelay: c.StepDelay}
}

func (p preset) config() (Config, error) {
	b, _ := FieldBounds(FieldEpoch)
	if !b.Contains(p.Epoch) {
		return Config{}, fmt.Errorf("%w: %s %v outside [%v, %v]", ErrInvalidConfig, FieldEpoch, p.Epoch, b.Min, b.Max)
	}
	if p.Epoch != math.Trunc(p.Epoch) {
		return Config{}, fmt.Errorf("%w: %s %v is not a whole number", ErrInvalidConfig, FieldEpoch, p.Epoch)
	}
	return Config{Size: p.Size, Stellation: p.Stellation, Epoch: int(p.Epoch), StepDelay: p.StepDelay}, nil
}
