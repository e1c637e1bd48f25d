package px2rem

import "github.com/yacobolo/px2rem/internal/cssast"

// ruleFunc maps a style rule or keyframe to the rules that replace it in the
// output, in order. Returning nil drops the rule.
type ruleFunc func(rule *cssast.Rule, inKeyframes bool) []*cssast.Rule

// walkRules builds a new rule list from rules. @media blocks are rebuilt
// around their walked children with inKeyframes cleared, @keyframes
// children are walked with inKeyframes set, style rules and keyframes go through fn, and everything
// else is passed through untouched.
func walkRules(rules []*cssast.Rule, fn ruleFunc, inKeyframes bool) []*cssast.Rule {
	out := make([]*cssast.Rule, 0, len(rules))

	for _, rule := range rules {
		switch rule.Kind {
		case cssast.KindMedia:
			media := *rule
			media.Rules = walkRules(rule.Rules, fn, false)
			out = append(out, &media)

		case cssast.KindKeyframes:
			block := *rule
			block.Rules = walkRules(rule.Rules, fn, true)
			out = append(out, &block)

		case cssast.KindStyle, cssast.KindKeyframe:
			out = append(out, fn(rule, inKeyframes)...)

		default:
			out = append(out, rule)
		}
	}

	return out
}
