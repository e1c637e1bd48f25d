// Package cssast parses CSS text into a small rule tree and prints it back.
//
// The tree keeps exactly what the px2rem transforms need: style rules with
// their selectors and declaration lists (comments included, since comments
// carry conversion directives), @media blocks, @keyframes blocks and their
// keyframes. Every other at-rule is kept verbatim.
package cssast

import "fmt"

// Kind identifies the variant of a Rule.
type Kind int

const (
	// KindStyle is a plain style rule: selectors { declarations }.
	KindStyle Kind = iota
	// KindMedia is an @media block holding nested rules.
	KindMedia
	// KindKeyframes is an @keyframes block (possibly vendor prefixed).
	KindKeyframes
	// KindKeyframe is a single keyframe inside an @keyframes block.
	KindKeyframe
	// KindComment is a comment between rules.
	KindComment
	// KindOther is any other at-rule, kept as raw source text.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindStyle:
		return "style"
	case KindMedia:
		return "media"
	case KindKeyframes:
		return "keyframes"
	case KindKeyframe:
		return "keyframe"
	case KindComment:
		return "comment"
	case KindOther:
		return "other"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Stylesheet is a parsed CSS document.
type Stylesheet struct {
	Rules []*Rule
}

// Rule is a node of the rule tree. Which fields are meaningful depends on Kind.
type Rule struct {
	Kind Kind

	Selectors []string // KindStyle, KindKeyframe: ".a", "from", "50%"
	Items     []Item   // KindStyle, KindKeyframe: declarations and comments in order

	Prelude string  // KindMedia: "screen and (max-width: 750px)"
	Vendor  string  // KindKeyframes: "", "-webkit-", "-moz-", ...
	Name    string  // KindKeyframes: animation name
	Rules   []*Rule // KindMedia: nested rules; KindKeyframes: keyframes

	Text string // KindComment: text between /* and */; KindOther: raw source
}

// Item is an entry of a declaration list: *Declaration or *Comment.
type Item interface {
	item()
}

// Declaration is a property: value pair. Value includes any !important suffix.
type Declaration struct {
	Property string
	Value    string
}

// Comment is a comment inside a declaration list.
// Text is everything between /* and */, untrimmed.
type Comment struct {
	Text string
}

func (*Declaration) item() {}
func (*Comment) item()     {}

// ParseError reports malformed CSS.
type ParseError struct {
	Line    int // 1-based
	Column  int // 1-based, in bytes
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("css parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}
