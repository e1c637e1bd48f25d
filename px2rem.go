// Package px2rem converts pixel lengths in CSS into rem or DPR-scaled pixels.
//
// Stylesheets are assumed to be authored for a device with a base device
// pixel ratio (2 by default). px2rem produces either one rem stylesheet or
// three pixel stylesheets for DPR 1, 2 and 3.
//
// # Rem
//
//	conv, err := px2rem.New(px2rem.WithRemUnit(75))
//	out, err := conv.GenerateRem(".a { width: 75px; }")
//	// .a {
//	//   width: 1rem;
//	// }
//
// # Directives
//
// A comment right after a declaration changes how that declaration is
// converted:
//
//	.a {
//		border: 1px solid #ddd; /* px */
//		font-size: 24px; /* no */
//	}
//
// "no" leaves the value untouched. In rem output, "px" moves the declaration
// into three sibling rules scoped by [data-dpr="1"], [data-dpr="2"] and
// [data-dpr="3"], each with the pixel value scaled to that ratio. Inside
// @keyframes the "px" directive is not supported and the value becomes rem.
// Both comment tokens are configurable.
//
// # Pixel stylesheets
//
//	out1x, err := conv.GenerateThree(css, 1)
//	out3x, err := conv.GenerateThree(css, 3)
//
// GenerateAll produces the rem stylesheet and all three pixel stylesheets.
package px2rem
