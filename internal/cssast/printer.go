package cssast

import (
	"strings"
)

const indentUnit = "  "

// Print serializes a Stylesheet back to CSS text.
//
// Top-level rules are separated by a blank line, declarations go one per
// line with two-space indentation. Style rules and keyframes without any
// items are omitted. The output has no trailing newline.
func Print(sheet *Stylesheet) string {
	if sheet == nil {
		return ""
	}
	return printRules(sheet.Rules, 0, "\n\n")
}

func printRules(rules []*Rule, depth int, sep string) string {
	parts := make([]string, 0, len(rules))
	for _, rule := range rules {
		if s := printRule(rule, depth); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}

func printRule(rule *Rule, depth int) string {
	indent := strings.Repeat(indentUnit, depth)

	switch rule.Kind {
	case KindComment:
		return indent + "/*" + rule.Text + "*/"

	case KindOther:
		return indent + rule.Text

	case KindMedia:
		return indent + "@media " + rule.Prelude + " {\n" +
			printRules(rule.Rules, depth+1, "\n\n") +
			"\n" + indent + "}"

	case KindKeyframes:
		return indent + "@" + rule.Vendor + "keyframes " + rule.Name + " {\n" +
			printRules(rule.Rules, depth+1, "\n") +
			"\n" + indent + "}"

	case KindStyle, KindKeyframe:
		if len(rule.Items) == 0 {
			return ""
		}

		var b strings.Builder
		if rule.Kind == KindKeyframe {
			b.WriteString(indent + strings.Join(rule.Selectors, ", "))
		} else {
			for i, sel := range rule.Selectors {
				if i > 0 {
					b.WriteString(",\n")
				}
				b.WriteString(indent + sel)
			}
		}
		b.WriteString(" {\n")

		inner := indent + indentUnit
		for _, item := range rule.Items {
			b.WriteString(inner)
			switch it := item.(type) {
			case *Declaration:
				b.WriteString(it.Property + ": " + it.Value + ";")
			case *Comment:
				b.WriteString("/*" + it.Text + "*/")
			}
			b.WriteString("\n")
		}
		b.WriteString(indent + "}")
		return b.String()
	}

	return ""
}
