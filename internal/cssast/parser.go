package cssast

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// token is a lexer token together with its byte offset in the source
type token struct {
	tt     css.TokenType
	text   string
	offset int
}

// parserState walks the token stream of one document
type parserState struct {
	src    string
	tokens []token
	pos    int
}

// Parse parses CSS text into a Stylesheet.
// Malformed input yields a *ParseError.
func Parse(content string) (*Stylesheet, error) {
	tokens, err := tokenize(content)
	if err != nil {
		return nil, err
	}

	state := &parserState{src: content, tokens: tokens}
	rules, err := state.parseRuleList(-1)
	if err != nil {
		return nil, err
	}

	return &Stylesheet{Rules: rules}, nil
}

// tokenize runs the tdewolff lexer to completion
func tokenize(content string) ([]token, error) {
	lexer := css.NewLexer(parse.NewInputString(content))

	var tokens []token
	offset := 0
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				line, col := position(content, offset)
				return nil, &ParseError{Line: line, Column: col, Message: err.Error()}
			}
			return tokens, nil
		}

		tokens = append(tokens, token{tt: tt, text: string(text), offset: offset})
		offset += len(text)
	}
}

// position converts a byte offset into a 1-based line and column
func position(src string, offset int) (int, int) {
	if offset > len(src) {
		offset = len(src)
	}
	before := src[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")
	return line, col
}

func (s *parserState) errorAt(offset int, msg string) error {
	line, col := position(s.src, offset)
	return &ParseError{Line: line, Column: col, Message: msg}
}

// eofOffset is where errors about unexpected end of input point to
func (s *parserState) eofOffset() int {
	return len(s.src)
}

func (s *parserState) atEOF() bool {
	return s.pos >= len(s.tokens)
}

func (s *parserState) peek() token {
	return s.tokens[s.pos]
}

// skipSpace skips whitespace and the HTML comment markers CSS tolerates
func (s *parserState) skipSpace() {
	for !s.atEOF() {
		switch s.peek().tt {
		case css.WhitespaceToken, css.CDOToken, css.CDCToken:
			s.pos++
		default:
			return
		}
	}
}

// parseRuleList parses rules until EOF (top level, open < 0) or until the
// '}' closing the block opened at offset open.
func (s *parserState) parseRuleList(open int) ([]*Rule, error) {
	var rules []*Rule

	for {
		s.skipSpace()
		if s.atEOF() {
			if open >= 0 {
				return nil, s.errorAt(open, "missing '}'")
			}
			return rules, nil
		}

		tok := s.peek()
		switch tok.tt {
		case css.RightBraceToken:
			if open < 0 {
				return nil, s.errorAt(tok.offset, "unexpected '}'")
			}
			s.pos++
			return rules, nil

		case css.SemicolonToken:
			s.pos++

		case css.CommentToken:
			s.pos++
			rules = append(rules, &Rule{Kind: KindComment, Text: commentText(tok.text)})

		case css.AtKeywordToken:
			rule, err := s.parseAtRule()
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)

		default:
			rule, err := s.parseQualifiedRule(KindStyle)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
	}
}

// parseAtRule handles @media and @keyframes; everything else is kept raw
func (s *parserState) parseAtRule() (*Rule, error) {
	start := s.peek()
	name := strings.ToLower(strings.TrimPrefix(start.text, "@"))

	switch {
	case name == "media":
		s.pos++
		prelude, open, err := s.collectPrelude()
		if err != nil {
			return nil, err
		}
		rules, err := s.parseRuleList(open)
		if err != nil {
			return nil, err
		}
		return &Rule{Kind: KindMedia, Prelude: joinTokens(prelude), Rules: rules}, nil

	case isKeyframesKeyword(name):
		s.pos++
		prelude, open, err := s.collectPrelude()
		if err != nil {
			return nil, err
		}
		keyframes, err := s.parseKeyframeList(open)
		if err != nil {
			return nil, err
		}
		return &Rule{
			Kind:   KindKeyframes,
			Vendor: start.text[1 : len(start.text)-len("keyframes")],
			Name:   joinTokens(prelude),
			Rules:  keyframes,
		}, nil
	}

	end, err := s.skipAtRule()
	if err != nil {
		return nil, err
	}
	return &Rule{Kind: KindOther, Text: strings.TrimSpace(s.src[start.offset:end])}, nil
}

// isKeyframesKeyword matches "keyframes" and vendor variants like "-webkit-keyframes"
func isKeyframesKeyword(name string) bool {
	if name == "keyframes" {
		return true
	}
	vendor, found := strings.CutSuffix(name, "keyframes")
	return found && len(vendor) > 2 && vendor[0] == '-' && vendor[len(vendor)-1] == '-'
}

// skipAtRule consumes an unknown at-rule up to its ';' or the end of its
// block and returns the end offset
func (s *parserState) skipAtRule() (int, error) {
	depth := 0
	open := -1
	for !s.atEOF() {
		tok := s.peek()
		s.pos++
		end := tok.offset + len(tok.text)

		switch tok.tt {
		case css.SemicolonToken:
			if depth == 0 {
				return end, nil
			}
		case css.LeftBraceToken:
			if depth == 0 {
				open = tok.offset
			}
			depth++
		case css.RightBraceToken:
			if depth == 0 {
				return 0, s.errorAt(tok.offset, "unexpected '}'")
			}
			depth--
			if depth == 0 {
				return end, nil
			}
		}
	}

	if depth > 0 {
		return 0, s.errorAt(open, "missing '}'")
	}
	// Statement at-rule without trailing semicolon at EOF
	return s.eofOffset(), nil
}

// parseKeyframeList parses the keyframes of an @keyframes block
func (s *parserState) parseKeyframeList(open int) ([]*Rule, error) {
	var keyframes []*Rule

	for {
		s.skipSpace()
		if s.atEOF() {
			return nil, s.errorAt(open, "missing '}'")
		}

		tok := s.peek()
		switch tok.tt {
		case css.RightBraceToken:
			s.pos++
			return keyframes, nil
		case css.CommentToken:
			s.pos++
			keyframes = append(keyframes, &Rule{Kind: KindComment, Text: commentText(tok.text)})
		case css.SemicolonToken:
			s.pos++
		default:
			rule, err := s.parseQualifiedRule(KindKeyframe)
			if err != nil {
				return nil, err
			}
			keyframes = append(keyframes, rule)
		}
	}
}

// parseQualifiedRule parses "selectors { declarations }"
func (s *parserState) parseQualifiedRule(kind Kind) (*Rule, error) {
	start := s.peek().offset

	prelude, open, err := s.collectPrelude()
	if err != nil {
		return nil, err
	}

	var selectors []string
	for _, part := range splitTopLevel(prelude) {
		if sel := joinTokens(part); sel != "" {
			selectors = append(selectors, sel)
		}
	}
	if len(selectors) == 0 {
		return nil, s.errorAt(start, "selector missing")
	}

	items, err := s.parseDeclarationList(open)
	if err != nil {
		return nil, err
	}

	return &Rule{Kind: kind, Selectors: selectors, Items: items}, nil
}

// collectPrelude gathers tokens up to the '{' that opens a block, consumes
// the brace and returns its offset. Comments are dropped.
func (s *parserState) collectPrelude() ([]token, int, error) {
	var prelude []token
	depth := 0
	start := s.eofOffset()
	if !s.atEOF() {
		start = s.peek().offset
	}

	for !s.atEOF() {
		tok := s.peek()
		switch tok.tt {
		case css.LeftBraceToken:
			if depth == 0 {
				s.pos++
				return prelude, tok.offset, nil
			}
		case css.SemicolonToken, css.RightBraceToken:
			if depth == 0 {
				return nil, 0, s.errorAt(tok.offset, "expected '{'")
			}
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		}
		s.pos++
		if tok.tt != css.CommentToken {
			prelude = append(prelude, tok)
		}
	}

	return nil, 0, s.errorAt(start, "expected '{'")
}

// parseDeclarationList parses declarations and comments up to the '}'
// closing the block opened at offset open
func (s *parserState) parseDeclarationList(open int) ([]Item, error) {
	var items []Item

	for {
		s.skipSpace()
		if s.atEOF() {
			return nil, s.errorAt(open, "missing '}'")
		}

		tok := s.peek()
		switch tok.tt {
		case css.RightBraceToken:
			s.pos++
			return items, nil
		case css.SemicolonToken:
			s.pos++
		case css.CommentToken:
			s.pos++
			items = append(items, &Comment{Text: commentText(tok.text)})
		case css.AtKeywordToken:
			return nil, s.errorAt(tok.offset, "at-rule "+tok.text+" is not allowed in a declaration block")
		case css.LeftBraceToken:
			return nil, s.errorAt(tok.offset, "unexpected '{'")
		default:
			decl, err := s.parseDeclaration()
			if err != nil {
				return nil, err
			}
			items = append(items, decl)
		}
	}
}

// parseDeclaration reads "property: value" up to ';' or '}'.
// The terminating ';' is consumed, a '}' is left for the caller.
func (s *parserState) parseDeclaration() (*Declaration, error) {
	start := s.peek().offset

	var property []token
	for {
		if s.atEOF() {
			return nil, s.errorAt(start, "property missing ':'")
		}
		tok := s.peek()
		if tok.tt == css.ColonToken {
			s.pos++
			break
		}
		switch tok.tt {
		case css.SemicolonToken, css.RightBraceToken, css.LeftBraceToken:
			return nil, s.errorAt(start, "property missing ':'")
		}
		s.pos++
		property = append(property, tok)
	}

	name := joinTokens(property)
	if name == "" {
		return nil, s.errorAt(start, "property name missing")
	}

	var value []token
	depth := 0
	for !s.atEOF() {
		tok := s.peek()
		switch tok.tt {
		case css.SemicolonToken:
			if depth == 0 {
				s.pos++
				return &Declaration{Property: name, Value: joinTokens(value)}, nil
			}
		case css.RightBraceToken:
			if depth == 0 {
				return &Declaration{Property: name, Value: joinTokens(value)}, nil
			}
		case css.LeftBraceToken:
			return nil, s.errorAt(tok.offset, "unexpected '{' in value of "+name)
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		}
		s.pos++
		value = append(value, tok)
	}

	// EOF inside the value; the enclosing block reports the missing brace
	return &Declaration{Property: name, Value: joinTokens(value)}, nil
}

// splitTopLevel splits tokens on commas that are not nested in (), [] or functions
func splitTopLevel(tokens []token) [][]token {
	var parts [][]token
	depth := 0
	last := 0
	for i, tok := range tokens {
		switch tok.tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.CommaToken:
			if depth == 0 {
				parts = append(parts, tokens[last:i])
				last = i + 1
			}
		}
	}
	return append(parts, tokens[last:])
}

// joinTokens concatenates token text, dropping comments, collapsing each
// whitespace run into one space and trimming the result
func joinTokens(tokens []token) string {
	var b strings.Builder
	pendingSpace := false
	for _, tok := range tokens {
		switch tok.tt {
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteString(tok.text)
	}
	return b.String()
}

// commentText strips the comment delimiters
func commentText(raw string) string {
	text := strings.TrimPrefix(raw, "/*")
	return strings.TrimSuffix(text, "*/")
}
