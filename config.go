package px2rem

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// ErrInvalidConfig is returned by New when the configuration cannot produce
// meaningful conversions.
var ErrInvalidConfig = errors.New("invalid px2rem configuration")

// ErrInvalidDpr is returned by GenerateThree for a negative or non-finite
// device pixel ratio.
var ErrInvalidDpr = errors.New("device pixel ratio must be a positive finite number")

// Config holds converter settings. It is copied into the Converter and never
// mutated afterwards.
type Config struct {
	BaseDpr        float64 // DPR the source stylesheet was authored at (default: 2)
	RemUnit        float64 // Pixels per rem (default: 75)
	RemPrecision   int     // Decimal digits kept after conversion (default: 6)
	ForcePxComment string  // Directive comment that keeps a declaration in px (default: "px")
	KeepComment    string  // Directive comment that skips conversion (default: "no")
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		BaseDpr:        2,
		RemUnit:        75,
		RemPrecision:   6,
		ForcePxComment: "px",
		KeepComment:    "no",
	}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	switch {
	case !isFinite(c.BaseDpr) || c.BaseDpr <= 0:
		return fmt.Errorf("%w: base DPR must be a positive finite number, got %v", ErrInvalidConfig, c.BaseDpr)
	case !isFinite(c.RemUnit) || c.RemUnit <= 0:
		return fmt.Errorf("%w: rem unit must be a positive finite number, got %v", ErrInvalidConfig, c.RemUnit)
	case c.RemPrecision < 0:
		return fmt.Errorf("%w: rem precision must not be negative, got %d", ErrInvalidConfig, c.RemPrecision)
	case c.ForcePxComment == "" || c.KeepComment == "":
		return fmt.Errorf("%w: directive comments must not be empty", ErrInvalidConfig)
	case c.ForcePxComment == c.KeepComment:
		return fmt.Errorf("%w: force-px and keep comments are both %q", ErrInvalidConfig, c.KeepComment)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Option customizes a Converter.
type Option func(*options)

type options struct {
	config Config
	log    *zap.Logger
}

// WithConfig replaces every setting at once.
func WithConfig(config Config) Option {
	return func(o *options) { o.config = config }
}

// WithBaseDpr sets the DPR the source stylesheet was authored at.
func WithBaseDpr(dpr float64) Option {
	return func(o *options) { o.config.BaseDpr = dpr }
}

// WithRemUnit sets how many pixels make one rem.
func WithRemUnit(unit float64) Option {
	return func(o *options) { o.config.RemUnit = unit }
}

// WithRemPrecision sets the number of decimal digits kept after conversion.
func WithRemPrecision(precision int) Option {
	return func(o *options) { o.config.RemPrecision = precision }
}

// WithForcePxComment sets the directive that keeps a declaration in px.
func WithForcePxComment(comment string) Option {
	return func(o *options) { o.config.ForcePxComment = comment }
}

// WithKeepComment sets the directive that skips conversion of a declaration.
func WithKeepComment(comment string) Option {
	return func(o *options) { o.config.KeepComment = comment }
}

// WithLogger sets the logger used for debug output. Nil means no logging.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}
