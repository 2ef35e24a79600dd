package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindError
	KindInteger
	KindPlus   // +
	KindMinus  // -
	KindStar   // *
	KindSlash  // /
	KindLParen // (
	KindRParen // )
)

var kindNames = [...]string{
	KindEOF:     "end of input",
	KindError:   "error",
	KindInteger: "integer",
	KindPlus:    "'+'",
	KindMinus:   "'-'",
	KindStar:    "'*'",
	KindSlash:   "'/'",
	KindLParen:  "'('",
	KindRParen:  "')'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token represents a lexical unit pointing back to the source.
// 16-byte struct to minimize stack overhead and avoid allocations.
type Token struct {
	Kind   Kind
	Offset uint32
	Length uint32
	Line   uint32
}

// Is reports whether the token is of kind k.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}
