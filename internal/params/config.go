// Package params holds the tunable generation parameters, the committed store
// for them and the gate that decides when they may change.
package params

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	// ErrInvalidConfig marks values outside their declared ranges.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrBusy marks requests refused because a regeneration is still drawing.
	ErrBusy = errors.New("generation in progress")
)

// Field names a tunable parameter. The values double as panel keys and
// preset-file keys.
type Field string

const (
	FieldSize       Field = "size"
	FieldStellation Field = "stellation"
	FieldEpoch      Field = "epoch"
	FieldStepDelay  Field = "step_delay"
)

// Fields lists every tunable in panel order.
func Fields() []Field {
	return []Field{FieldEpoch, FieldSize, FieldStellation, FieldStepDelay}
}

// Bounds is the inclusive range and granularity accepted for a field.
type Bounds struct {
	Min  float64
	Max  float64
	Step float64
}

// Contains reports whether v lies inside the range.
func (b Bounds) Contains(v float64) bool {
	return !math.IsNaN(v) && v >= b.Min && v <= b.Max
}

// Snap rounds v to the nearest multiple of Step.
func (b Bounds) Snap(v float64) float64 {
	if b.Step <= 0 {
		return v
	}
	snapped := math.Round(v/b.Step) * b.Step
	scale := math.Pow(10, decimals(b.Step))
	return math.Round(snapped*scale) / scale
}

// OnStep reports whether v already sits on the step grid.
func (b Bounds) OnStep(v float64) bool {
	return math.Abs(b.Snap(v)-v) <= stepTolerance
}

const stepTolerance = 1e-9

// FieldBounds returns the accepted range for f.
func FieldBounds(f Field) (Bounds, bool) {
	switch f {
	case FieldSize:
		return Bounds{Min: 10, Max: 100, Step: 1}, true
	case FieldStellation:
		return Bounds{Min: 0, Max: 2, Step: 0.1}, true
	case FieldEpoch:
		return Bounds{Min: 1, Max: 6, Step: 1}, true
	case FieldStepDelay:
		return Bounds{Min: 0, Max: 200, Step: 50}, true
	}
	return Bounds{}, false
}

// Config is one complete set of generation parameters. StepDelay is in
// milliseconds.
type Config struct {
	Size       float64 `yaml:"size" mapstructure:"size"`
	Stellation float64 `yaml:"stellation" mapstructure:"stellation"`
	Epoch      int     `yaml:"epoch" mapstructure:"epoch"`
	StepDelay  float64 `yaml:"step_delay" mapstructure:"step_delay"`
}

// DefaultConfig returns the parameters used at start-up.
func DefaultConfig() Config {
	return Config{Size: 50, Stellation: 1, Epoch: 3, StepDelay: 0}
}

// ResetConfig returns the parameters restored by the reset control. Its epoch
// deliberately differs from DefaultConfig.
func ResetConfig() Config {
	return Config{Size: 50, Stellation: 1, Epoch: 5, StepDelay: 0}
}

// Value returns the field's current value as a float.
func (c Config) Value(f Field) (float64, bool) {
	switch f {
	case FieldSize:
		return c.Size, true
	case FieldStellation:
		return c.Stellation, true
	case FieldEpoch:
		return float64(c.Epoch), true
	case FieldStepDelay:
		return c.StepDelay, true
	}
	return 0, false
}

// With returns a copy of c with f set to value snapped to the field's step.
// The result is validated.
func (c Config) With(f Field, value float64) (Config, error) {
	b, ok := FieldBounds(f)
	if !ok {
		return c, fmt.Errorf("%w: unknown field %q", ErrInvalidConfig, f)
	}
	if !b.Contains(value) {
		return c, fmt.Errorf("%w: %s %v outside [%v, %v]", ErrInvalidConfig, f, value, b.Min, b.Max)
	}
	v := b.Snap(value)
	switch f {
	case FieldSize:
		c.Size = v
	case FieldStellation:
		c.Stellation = v
	case FieldEpoch:
		c.Epoch = int(v)
	case FieldStepDelay:
		c.StepDelay = v
	}
	return c, c.Validate()
}

// Validate checks every field against its bounds and step.
func (c Config) Validate() error {
	var errs []error
	for _, f := range Fields() {
		v, _ := c.Value(f)
		b, _ := FieldBounds(f)
		if !b.Contains(v) {
			errs = append(errs, fmt.Errorf("%w: %s %v outside [%v, %v]", ErrInvalidConfig, f, v, b.Min, b.Max))
			continue
		}
		if !b.OnStep(v) {
			errs = append(errs, fmt.Errorf("%w: %s %v is not a multiple of %v", ErrInvalidConfig, f, v, b.Step))
		}
	}
	return errors.Join(errs...)
}

// StepDelayDuration converts StepDelay to a time.Duration.
func (c Config) StepDelayDuration() time.Duration {
	return time.Duration(c.StepDelay * float64(time.Millisecond))
}

// Estimate is the loose upper bound on how long a regeneration draws:
// 3^(epoch-1) * stepDelay * 3. It ignores the seed phase.
func (c Config) Estimate() time.Duration {
	ms := math.Pow(3, float64(c.Epoch-1)) * c.StepDelay * 3
	return time.Duration(ms * float64(time.Millisecond))
}

func (c Config) String() string {
	return fmt.Sprintf("size=%g stellation=%g epoch=%d step_delay=%gms", c.Size, c.Stellation, c.Epoch, c.StepDelay)
}

func decimals(step float64) float64 {
	s := strings.TrimRight(fmt.Sprintf("%f", step), "0")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return float64(len(s) - i - 1)
	}
	return 0
}
