package px2rem

import (
	"strconv"

	"github.com/yacobolo/px2rem/internal/cssast"
)

// GenerateRem returns cssText with pixel lengths converted to rem.
//
// Declarations followed by the force-px directive are moved into three
// sibling rules, one per DPR in DPRs, inserted right after their source rule
// with every selector prefixed by [data-dpr="N"]. Rules left without
// declarations are removed.
func (c *Converter) GenerateRem(cssText string) (string, error) {
	sheet, err := cssast.Parse(cssText)
	if err != nil {
		return "", err
	}

	var stats passStats
	sheet.Rules = walkRules(sheet.Rules, func(rule *cssast.Rule, inKeyframes bool) []*cssast.Rule {
		stats.rules++
		return c.remRule(rule, inKeyframes, &stats)
	}, false)

	c.log.Debug("Generated rem stylesheet", stats.fields()...)

	return cssast.Print(sheet), nil
}

// remRule converts one style rule or keyframe and returns the rules that
// replace it: the converted rule unless it ended up empty, followed by the
// DPR variants when any declaration was forced to px.
func (c *Converter) remRule(rule *cssast.Rule, inKeyframes bool, stats *passStats) []*cssast.Rule {
	items := make([]cssast.Item, 0, len(rule.Items))
	var variants [len(DPRs)][]cssast.Item

	for i := 0; i < len(rule.Items); i++ {
		decl, ok := rule.Items[i].(*cssast.Declaration)
		if !ok || !hasPixels(decl.Value) {
			items = append(items, rule.Items[i])
			continue
		}

		directive := c.resolveDirective(rule.Items, i)
		if directive != DirectiveNone {
			i++ // drop the directive comment
		}

		switch {
		case directive == DirectiveKeep:
			stats.kept++
			items = append(items, decl)

		case directive == DirectiveForcePx && decl.Value == "0px":
			stats.forced++
			items = append(items, &cssast.Declaration{Property: decl.Property, Value: "0"})

		case directive == DirectiveForcePx && !inKeyframes:
			stats.forced++
			for n, dpr := range DPRs {
				variants[n] = append(variants[n], &cssast.Declaration{
					Property: decl.Property,
					Value:    c.convertValue(toPixel, decl.Value, float64(dpr)),
				})
			}

		default:
			// No directive, or force-px inside @keyframes which has no DPR variants
			stats.converted++
			items = append(items, &cssast.Declaration{
				Property: decl.Property,
				Value:    c.convertValue(toRem, decl.Value, 0),
			})
		}
	}

	out := make([]*cssast.Rule, 0, 1+len(DPRs))
	if len(items) > 0 {
		converted := *rule
		converted.Items = items
		out = append(out, &converted)
	} else {
		stats.pruned++
	}

	if len(variants[0]) > 0 {
		for n, dpr := range DPRs {
			out = append(out, &cssast.Rule{
				Kind:      rule.Kind,
				Selectors: dprSelectors(rule.Selectors, dpr),
				Items:     variants[n],
			})
		}
		stats.variants += len(DPRs)
	}

	return out
}

// dprSelectors scopes every selector to documents with the given data-dpr
func dprSelectors(selectors []string, dpr int) []string {
	prefix := `[data-dpr="` + strconv.Itoa(dpr) + `"] `
	out := make([]string, len(selectors))
	for i, sel := range selectors {
		out[i] = prefix + sel
	}
	return out
}
