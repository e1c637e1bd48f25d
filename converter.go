package px2rem

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yacobolo/px2rem/internal/cssast"
)

// ParseError reports malformed input CSS, with the 1-based line and column.
type ParseError = cssast.ParseError

// DPRs lists the device pixel ratios of the synthesized pixel variants.
var DPRs = [...]int{1, 2, 3}

// Converter rewrites stylesheets. It only holds immutable state and is safe
// for concurrent use.
type Converter struct {
	config  Config
	baseDpr decimal.Decimal
	remUnit decimal.Decimal
	log     *zap.Logger
}

// New creates a Converter. Settings not given through options keep their
// DefaultConfig values.
func New(opts ...Option) (*Converter, error) {
	o := options{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	log := o.log
	if log == nil {
		log = zap.NewNop()
	}

	return &Converter{
		config:  o.config,
		baseDpr: decimal.NewFromFloat(o.config.BaseDpr),
		remUnit: decimal.NewFromFloat(o.config.RemUnit),
		log:     log.Named("px2rem"),
	}, nil
}

// Config returns the converter settings.
func (c *Converter) Config() Config {
	return c.config
}

// Output holds every stylesheet produced from one input.
type Output struct {
	Rem   string
	Pixel map[int]string // keyed by DPR: 1, 2 and 3
}

// GenerateAll produces the rem stylesheet and the pixel stylesheets for
// every DPR in DPRs.
func (c *Converter) GenerateAll(cssText string) (*Output, error) {
	rem, err := c.GenerateRem(cssText)
	if err != nil {
		return nil, err
	}

	out := &Output{Rem: rem, Pixel: make(map[int]string, len(DPRs))}
	for _, dpr := range DPRs {
		px, err := c.GenerateThree(cssText, float64(dpr))
		if err != nil {
			return nil, fmt.Errorf("generate %dx: %w", dpr, err)
		}
		out.Pixel[dpr] = px
	}

	return out, nil
}

// passStats counts what one transform pass did, for debug logging
type passStats struct {
	rules     int
	converted int
	kept      int
	forced    int
	variants  int
	pruned    int
}

func (s *passStats) fields() []zap.Field {
	return []zap.Field{
		zap.Int("rules", s.rules),
		zap.Int("converted", s.converted),
		zap.Int("kept", s.kept),
		zap.Int("forced", s.forced),
		zap.Int("variant_rules", s.variants),
		zap.Int("pruned", s.pruned),
	}
}
