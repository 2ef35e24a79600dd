package lexer

// Scanner performs lexical analysis on arithmetic source.
type Scanner struct {
	source []byte
	cursor int
	line   int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Reset re-initializes the scanner with new source for pool reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.line = 1
}

// Next returns the next token from the source.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Offset: uint32(s.cursor), Line: uint32(s.line)}
	}

	start := s.cursor
	ch := s.source[s.cursor]

	// A leading '-' is never folded into the literal; the grammar owns unary minus.
	if isDigit(ch) {
		return s.scanInteger()
	}

	s.cursor++
	kind := KindError
	switch ch {
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindStar
	case '/':
		kind = KindSlash
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	}

	return Token{Kind: kind, Offset: uint32(start), Length: 1, Line: uint32(s.line)}
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			s.cursor++
		} else if ch == '\n' {
			s.line++
			s.cursor++
		} else {
			break
		}
	}
}

func (s *Scanner) scanInteger() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}
	return Token{Kind: KindInteger, Offset: uint32(start), Length: uint32(s.cursor - start), Line: uint32(s.line)}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
