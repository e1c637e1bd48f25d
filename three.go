package px2rem

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yacobolo/px2rem/internal/cssast"
)

// GenerateThree returns cssText with every pixel length scaled from BaseDpr
// to dpr. A dpr of 0 means 2; negative, NaN and infinite values return
// ErrInvalidDpr. Rules are never split or removed.
//
// A "px" directive is removed but the value is still scaled like any other
// declaration; only the "no" directive prevents conversion here.
func (c *Converter) GenerateThree(cssText string, dpr float64) (string, error) {
	if dpr == 0 {
		dpr = 2
	}
	if !isFinite(dpr) || dpr < 0 {
		return "", fmt.Errorf("%w: got %v", ErrInvalidDpr, dpr)
	}

	sheet, err := cssast.Parse(cssText)
	if err != nil {
		return "", err
	}

	var stats passStats
	sheet.Rules = walkRules(sheet.Rules, func(rule *cssast.Rule, _ bool) []*cssast.Rule {
		stats.rules++
		scaled := *rule
		scaled.Items = c.scaleItems(rule.Items, dpr, &stats)
		return []*cssast.Rule{&scaled}
	}, false)

	c.log.Debug("Generated pixel stylesheet", append(stats.fields(), zap.Float64("dpr", dpr))...)

	return cssast.Print(sheet), nil
}

// scaleItems returns a new item list with pixel lengths scaled to dpr and
// directive comments removed
func (c *Converter) scaleItems(items []cssast.Item, dpr float64, stats *passStats) []cssast.Item {
	out := make([]cssast.Item, 0, len(items))

	for i := 0; i < len(items); i++ {
		decl, ok := items[i].(*cssast.Declaration)
		if !ok || !hasPixels(decl.Value) {
			out = append(out, items[i])
			continue
		}

		directive := c.resolveDirective(items, i)
		if directive != DirectiveNone {
			i++ // drop the directive comment
		}

		if directive == DirectiveKeep {
			stats.kept++
			out = append(out, decl)
			continue
		}
		if directive == DirectiveForcePx {
			stats.forced++
		}

		stats.converted++
		out = append(out, &cssast.Declaration{
			Property: decl.Property,
			Value:    c.convertValue(toPixel, decl.Value, dpr),
		})
	}

	return out
}
