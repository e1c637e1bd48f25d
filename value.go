package px2rem

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// unitKind selects the target unit of a conversion
type unitKind int

const (
	toPixel unitKind = iota
	toRem
)

func (k unitKind) suffix() string {
	if k == toRem {
		return "rem"
	}
	return "px"
}

// pxPattern matches an unsigned integer or decimal followed by "px" at a word boundary
var pxPattern = regexp.MustCompile(`\b(\d+(\.\d+)?)px\b`)

// pixelSpan is one pixel length found in a value
type pixelSpan struct {
	start, end int // byte offsets of "<number>px"
	magnitude  decimal.Decimal
}

// hasPixels reports whether value contains at least one pixel length
func hasPixels(value string) bool {
	return pxPattern.MatchString(value)
}

// findPixelSpans returns every pixel length in value, in order
func findPixelSpans(value string) []pixelSpan {
	matches := pxPattern.FindAllStringSubmatchIndex(value, -1)
	spans := make([]pixelSpan, 0, len(matches))
	for _, m := range matches {
		magnitude, err := decimal.NewFromString(value[m[2]:m[3]])
		if err != nil {
			continue
		}
		spans = append(spans, pixelSpan{start: m[0], end: m[1], magnitude: magnitude})
	}
	return spans
}

// convertValue rewrites every pixel length in value. Text around the
// lengths is kept as is. dpr is only used for toPixel.
func (c *Converter) convertValue(kind unitKind, value string, dpr float64) string {
	spans := findPixelSpans(value)
	if len(spans) == 0 {
		return value
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(value[last:span.start])
		b.WriteString(c.formatLength(kind, span.magnitude, dpr))
		last = span.end
	}
	b.WriteString(value[last:])

	return b.String()
}

// guardDigits are kept beyond RemPrecision when dividing, so the final
// rounding sees more than the configured precision
const guardDigits = 16

// formatLength converts one pixel magnitude and renders it with its unit.
// Rounding is half away from zero on the exact decimal result; zero is
// rendered without a unit.
func (c *Converter) formatLength(kind unitKind, px decimal.Decimal, dpr float64) string {
	precision := int32(c.config.RemPrecision)

	var n decimal.Decimal
	switch kind {
	case toPixel:
		n = px.Mul(decimal.NewFromFloat(dpr)).DivRound(c.baseDpr, precision+guardDigits)
	case toRem:
		n = px.DivRound(c.remUnit, precision+guardDigits)
	}

	n = n.Round(precision)
	if n.IsZero() {
		return "0"
	}
	return n.String() + kind.suffix()
}
