package px2rem

import (
	"strings"

	"github.com/yacobolo/px2rem/internal/cssast"
)

// Directive is the conversion instruction carried by the comment that
// immediately follows a declaration.
type Directive int

const (
	// DirectiveNone means no directive: default conversion for the mode.
	DirectiveNone Directive = iota
	// DirectiveKeep leaves the declaration unconverted.
	DirectiveKeep
	// DirectiveForcePx keeps the declaration in pixels.
	DirectiveForcePx
)

func (d Directive) String() string {
	switch d {
	case DirectiveKeep:
		return "keep"
	case DirectiveForcePx:
		return "force-px"
	}
	return "none"
}

// resolveDirective classifies items[i+1] without modifying items.
// When the result is not DirectiveNone the caller must drop items[i+1].
func (c *Converter) resolveDirective(items []cssast.Item, i int) Directive {
	if i+1 >= len(items) {
		return DirectiveNone
	}

	comment, ok := items[i+1].(*cssast.Comment)
	if !ok {
		return DirectiveNone
	}

	switch strings.TrimSpace(comment.Text) {
	case c.config.KeepComment:
		return DirectiveKeep
	case c.config.ForcePxComment:
		return DirectiveForcePx
	}
	return DirectiveNone
}
