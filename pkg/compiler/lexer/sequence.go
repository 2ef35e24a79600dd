package lexer

import (
	"errors"
	"fmt"
)

// ErrUnexpectedCharacter is returned by Tokenize for bytes outside the token set.
var ErrUnexpectedCharacter = errors.New("lexer: unexpected character")

// Sequence is a finite, ordered token list together with the source the
// tokens point into. It never contains the trailing EOF token.
type Sequence struct {
	Tokens []Token
	Src    []byte
}

// NewSequence wraps tokens produced elsewhere.
func NewSequence(src []byte, tokens []Token) *Sequence {
	return &Sequence{Tokens: tokens, Src: src}
}

// Tokenize scans src to completion.
func Tokenize(src []byte) (*Sequence, error) {
	s := NewScanner(src)
	seq := &Sequence{Src: src}
	for {
		tok := s.Next()
		switch tok.Kind {
		case KindEOF:
			return seq, nil
		case KindError:
			return nil, fmt.Errorf("%w %q at line %d, offset %d", ErrUnexpectedCharacter, src[tok.Offset], tok.Line, tok.Offset)
		}
		seq.Tokens = append(seq.Tokens, tok)
	}
}

// Len returns the number of tokens.
func (q *Sequence) Len() int { return len(q.Tokens) }

// At returns the i-th token.
func (q *Sequence) At(i int) Token { return q.Tokens[i] }

// Literal returns the source text of tok, or "" if tok points outside the source.
func (q *Sequence) Literal(tok Token) string {
	end := uint64(tok.Offset) + uint64(tok.Length)
	if end > uint64(len(q.Src)) {
		return ""
	}
	return string(q.Src[tok.Offset:end])
}
