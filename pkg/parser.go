package alder

import "fmt"

// Parser is a small recursive-descent parser over a token slice. It is not
// part of this package's normative core: only the *shape* of the
// statement tree matters, not the grammar used to build one. This parser
// covers a deliberately small subset of that shape — enough to drive the
// renderer end to end from the command-line tool in cmd/ and to give the
// lexer's keyword surface somewhere to be exercised — and is written in a
// peek/next/expect recursive-descent shape.
//
// Grammar handled:
//
//	program    = { function } ;
//	function   = "fn" IDENTIFIER "(" ")" "->" type "{" { stmt } "}" ;
//	stmt       = returnStmt | varStmt ;
//	returnStmt = "return" expr ";" ;
//	varStmt    = ["mut"] type IDENTIFIER "=" expr ";" ;
//	type       = "i8" | "i16" | ... | "string" ;
//	expr       = IDENTIFIER | any run of tokens up to ";" or an unmatched
//	             ")", taken verbatim as an opaque expression string.
type Parser struct {
	tokens []Token
	pos    int
	sink   ErrorSink
}

// NewParser creates a Parser over an already-lexed token slice, reporting
// grammar errors to sink.
func NewParser(tokens []Token, sink ErrorSink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// ParseModule parses as many top-level functions as it can out of the
// token stream and wraps them, together with an empty struct block, in a
// Module named name with the given include directives.
func (p *Parser) ParseModule(name string, includes []string) *Module {
	funcs := &Block{}

	for !p.atEnd() {
		fn := p.function()
		if fn != nil {
			funcs.Children = append(funcs.Children, fn)
		}
	}

	return &Module{
		Name:     name,
		Includes: includes,
		Structs:  &Block{},
		Funcs:    funcs,
	}
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) peek() Token {
	if p.atEnd() {
		return dumbToken
	}

	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if !p.atEnd() {
		p.pos++
	}

	return tok
}

func (p *Parser) expect(kind TokenKind) (Token, bool) {
	tok := p.peek()
	if tok.Kind != kind {
		p.sink.Report(PreconditionViolation, tok.Pos, fmt.Sprintf("expected %s, found %s", kind, tok.Kind))
		return tok, false
	}

	return p.next(), true
}

func (p *Parser) function() *Function {
	if _, ok := p.expect(Fn); !ok {
		p.recover()
		return nil
	}

	name, ok := p.expect(Identifier)
	if !ok {
		p.recover()
		return nil
	}

	if _, ok := p.expect(LeftParen); !ok {
		p.recover()
		return nil
	}

	if _, ok := p.expect(RightParen); !ok {
		p.recover()
		return nil
	}

	ret := Void
	if _, ok := p.expect(Arrow); ok {
		ret, _ = p.typeName()
	}

	if _, ok := p.expect(LeftBrace); !ok {
		p.recover()
		return nil
	}

	body := &Block{}
	for p.peek().Kind != RightBrace && !p.atEnd() {
		stmt := p.statement()
		if stmt == nil {
			break
		}

		body.Children = append(body.Children, stmt)
	}

	p.expect(RightBrace)

	return &Function{
		Name:       name.Lexeme,
		Args:       "",
		ReturnType: ret,
		Body:       body,
	}
}

func (p *Parser) statement() Statement {
	switch p.peek().Kind {
	case Return:
		return p.returnStatement()
	case Mut, KwI8, KwI16, KwI32, KwI64, KwU8, KwU16, KwU32, KwU64, KwF32, KwF64, KwBool, KwChar, KwVoid, KwString:
		return p.varStatement()
	default:
		tok := p.next()
		p.sink.Report(PreconditionViolation, tok.Pos, fmt.Sprintf("unexpected token %s in statement", tok.Kind))
		return nil
	}
}

func (p *Parser) returnStatement() Statement {
	p.next() // "return"
	expr := p.expr()
	p.expect(Semicolon)

	return &Return{Expr: expr}
}

func (p *Parser) varStatement() Statement {
	mutable := false
	if p.peek().Kind == Mut {
		p.next()
		mutable = true
	}

	typ, ok := p.typeName()
	if !ok {
		p.recover()
		return nil
	}

	name, ok := p.expect(Identifier)
	if !ok {
		p.recover()
		return nil
	}

	p.expect(Equal)
	expr := p.expr()
	p.expect(Semicolon)

	return &Variable{
		Mutable: mutable,
		Type:    typ,
		Name:    name.Lexeme,
		Expr:    expr,
	}
}

// typeName consumes a builtin-type keyword and resolves it.
func (p *Parser) typeName() (BuiltinType, bool) {
	tok := p.next()
	if b, ok := builtinFromName(tok.Lexeme); ok {
		return b, true
	}

	p.sink.Report(PreconditionViolation, tok.Pos, fmt.Sprintf("expected a type, found %s", tok.Kind))
	return Void, false
}

// expr collects tokens verbatim up to (but excluding) the next ";" or
// unmatched ")", the way every other expression string in the statement
// tree is carried: opaque, with well-formedness left to whatever produced
// it. This toy grammar does not parse operator precedence; it only needs
// to hand the renderer something to splice in.
func (p *Parser) expr() string {
	var out string
	depth := 0
	for !p.atEnd() && p.peek().Kind != Semicolon {
		switch p.peek().Kind {
		case LeftParen:
			depth++
		case RightParen:
			if depth == 0 {
				return out
			}
			depth--
		}

		if out != "" {
			out += " "
		}

		out += p.next().Lexeme
	}

	return out
}

// recover skips tokens until the next statement boundary and consumes
// it, so one bad statement does not cascade into spurious errors for the
// rest of the function body. It always consumes at least one token when
// not already at end of input, guaranteeing the parser makes progress
// even when the boundary it lands on is a RightBrace it did not expect.
func (p *Parser) recover() {
	for !p.atEnd() && p.peek().Kind != Semicolon && p.peek().Kind != RightBrace {
		p.next()
	}

	if !p.atEnd() {
		p.next()
	}
}
