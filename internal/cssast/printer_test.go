package cssast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want string
	}{
		{
			name: "style rule",
			css:  ".a,.b{width:10px;color:red}",
			want: ".a,\n.b {\n  width: 10px;\n  color: red;\n}",
		},
		{
			name: "comments",
			css:  "/* top */ .a { width: 10px; /* px */ }",
			want: "/* top */\n\n.a {\n  width: 10px;\n  /* px */\n}",
		},
		{
			name: "media",
			css:  "@media screen and (max-width:750px){.a{width:10px}.b{height:2px}}",
			want: "@media screen and (max-width:750px) {\n  .a {\n    width: 10px;\n  }\n\n  .b {\n    height: 2px;\n  }\n}",
		},
		{
			name: "keyframes",
			css:  "@-webkit-keyframes spin{from{left:0}to{left:10px}}",
			want: "@-webkit-keyframes spin {\n  from {\n    left: 0;\n  }\n  to {\n    left: 10px;\n  }\n}",
		},
		{
			name: "empty rule omitted",
			css:  ".a {} .b { color: red; }",
			want: ".b {\n  color: red;\n}",
		},
		{
			name: "other at-rule verbatim",
			css:  "@import url(a.css);\n.a { color: red; }",
			want: "@import url(a.css);\n\n.a {\n  color: red;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := Parse(tt.css)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Print(sheet))
		})
	}
}

func TestPrintRoundTrip(t *testing.T) {
	css := ".a {\n  width: 10px;\n}\n\n@media print {\n  .b {\n    color: red;\n  }\n}"
	sheet, err := Parse(css)
	require.NoError(t, err)
	assert.Equal(t, css, Print(sheet))
}

func TestPrintNil(t *testing.T) {
	assert.Empty(t, Print(nil))
}
