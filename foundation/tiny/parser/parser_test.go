// File: parser_test.go
// Title: TINY Parser Unit Tests
// Description: Unit tests for the recursive descent parser: statement and
//              expression structure, associativity, error reporting, the
//              nesting limit and end-of-input handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial comprehensive parser test suite
// - 2026-10-19 v0.2.0: TINY grammar tests

package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tinylog "github.com/msto63/tiny/foundation/core/log"
	"github.com/msto63/tiny/foundation/tiny/ast"
	"github.com/msto63/tiny/foundation/tiny/lexer"
	"github.com/msto63/tiny/foundation/tiny/token"
)

const acceptanceSource = "read x;\nif x < 10 then\n   write x\nend"

func parseString(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	toks := lexer.New(src, lexer.Options{Logger: tinylog.NewNop()}).Tokenize()
	return New(toks, Options{Logger: tinylog.NewNop()}).ParseProgram()
}

func TestParser_ParseProgram(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "end-to-end example",
			input: acceptanceSource,
			want:  "Program(StmtSeq[Read(x), If(cond=BinaryOp(<,Identifier(x),Number(10)), then=StmtSeq[Write(Identifier(x))], else=None)])",
		},
		{
			name:  "left associative subtraction",
			input: "a:=1-2-3",
			want:  "Program(StmtSeq[Assign(a, BinaryOp(-,BinaryOp(-,Number(1),Number(2)),Number(3)))])",
		},
		{
			name:  "left associative division",
			input: "a:=8/4/2",
			want:  "Program(StmtSeq[Assign(a, BinaryOp(/,BinaryOp(/,Number(8),Number(4)),Number(2)))])",
		},
		{
			name:  "term binds tighter than simple expression",
			input: "write 1+2*3",
			want:  "Program(StmtSeq[Write(BinaryOp(+,Number(1),BinaryOp(*,Number(2),Number(3))))])",
		},
		{
			name:  "parentheses override precedence",
			input: "write (1+2)*3",
			want:  "Program(StmtSeq[Write(BinaryOp(*,BinaryOp(+,Number(1),Number(2)),Number(3)))])",
		},
		{
			name:  "parenthesized relational operand",
			input: "write a<(b<c)",
			want:  "Program(StmtSeq[Write(BinaryOp(<,Identifier(a),BinaryOp(<,Identifier(b),Identifier(c))))])",
		},
		{
			name:  "relational with arithmetic sides",
			input: "write a+1 = b*2",
			want:  "Program(StmtSeq[Write(BinaryOp(=,BinaryOp(+,Identifier(a),Number(1)),BinaryOp(*,Identifier(b),Number(2))))])",
		},
		{
			name:  "repeat until",
			input: "repeat n := n - 1 until n = 0",
			want:  "Program(StmtSeq[Repeat(body=StmtSeq[Assign(n, BinaryOp(-,Identifier(n),Number(1)))], cond=BinaryOp(=,Identifier(n),Number(0)))])",
		},
		{
			name:  "trailing semicolon before end",
			input: "if x then write x; end",
			want:  "Program(StmtSeq[If(cond=Identifier(x), then=StmtSeq[Write(Identifier(x))], else=None)])",
		},
		{
			name:  "trailing semicolon before until",
			input: "repeat read x; until x",
			want:  "Program(StmtSeq[Repeat(body=StmtSeq[Read(x)], cond=Identifier(x))])",
		},
		{
			name:  "trailing semicolon at end of program",
			input: "read x;",
			want:  "Program(StmtSeq[Read(x)])",
		},
		{
			name:  "keywords are case-insensitive",
			input: "READ x; Write X",
			want:  "Program(StmtSeq[Read(x), Write(Identifier(X))])",
		},
		{
			name:  "comments are ignored",
			input: "{ factorial } read n { input }; write n",
			want:  "Program(StmtSeq[Read(n), Write(Identifier(n))])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parseString(t, tt.input)
			if err != nil {
				t.Fatalf("ParseProgram() error = %v", err)
			}
			if got := program.String(); got != tt.want {
				t.Errorf("ParseProgram() =\n%s\nwant\n%s", got, tt.want)
			}
			if errs := ast.ValidateAST(program); len(errs) != 0 {
				t.Errorf("parsed tree fails validation: %v", errs)
			}
		})
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     ErrorKind
		expected token.Category
		found    token.Token
	}{
		{
			name:     "endif instead of end",
			input:    "read x;\nif x < 10 then\n   write x\nendif",
			kind:     Mismatch,
			expected: token.END,
			found:    token.New("endif", token.IDENTIFIER),
		},
		{
			name:  "chained relational",
			input: "write a<b<c",
			kind:  TrailingInput,
			found: token.New("<", token.LESSTHAN),
		},
		{
			name:  "statement starts with then",
			input: "then x",
			kind:  UnexpectedStatement,
			found: token.New("then", token.THEN),
		},
		{
			name:     "missing then",
			input:    "if x write x end",
			kind:     Mismatch,
			expected: token.THEN,
			found:    token.New("write", token.WRITE),
		},
		{
			name:     "missing assign",
			input:    "x 1",
			kind:     Mismatch,
			expected: token.ASSIGN,
			found:    token.New("1", token.NUMBER),
		},
		{
			name:     "missing until",
			input:    "repeat read x",
			kind:     Mismatch,
			expected: token.UNTIL,
			found:    token.New("EOF", token.EOF),
		},
		{
			name:     "unclosed parenthesis",
			input:    "write (a+1",
			kind:     Mismatch,
			expected: token.CLOSEDBRACKET,
			found:    token.New("EOF", token.EOF),
		},
		{
			name:  "unknown character in factor",
			input: "write #",
			kind:  UnexpectedFactor,
			found: token.New("#", token.UNKNOWN),
		},
		{
			name:  "missing operand",
			input: "x := 1 +",
			kind:  UnexpectedFactor,
			found: token.New("EOF", token.EOF),
		},
		{
			name:     "read needs identifier",
			input:    "read 5",
			kind:     Mismatch,
			expected: token.IDENTIFIER,
			found:    token.New("5", token.NUMBER),
		},
		{
			name:  "double semicolon",
			input: "read x;; write x",
			kind:  TrailingInput,
			found: token.New(";", token.SEMICOLON),
		},
		{
			name:  "trailing garbage",
			input: "write x )",
			kind:  TrailingInput,
			found: token.New(")", token.CLOSEDBRACKET),
		},
		{
			name:  "empty input",
			input: "",
			kind:  UnexpectedStatement,
			found: token.New("EOF", token.EOF),
		},
		{
			name:     "else without else keyword",
			input:    "if x then write 1 else write 2 end",
			kind:     Mismatch,
			expected: token.END,
			found:    token.New("else", token.IDENTIFIER),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parseString(t, tt.input)
			if err == nil {
				t.Fatalf("ParseProgram() = %v, want error", program)
			}
			if program != nil {
				t.Error("ParseProgram() returned a partial program")
			}

			se, ok := AsSyntaxError(err)
			if !ok {
				t.Fatalf("error %T is not a *SyntaxError", err)
			}
			if se.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v (%v)", se.Kind, tt.kind, err)
			}
			if tt.kind == Mismatch {
				if !se.HasExpected || se.Expected != tt.expected {
					t.Errorf("Expected = %v (%v), want %v", se.Expected, se.HasExpected, tt.expected)
				}
			} else if se.HasExpected {
				t.Errorf("HasExpected set for %v", se.Kind)
			}
			if !se.Found.Same(tt.found) {
				t.Errorf("Found = %v, want %v", se.Found, tt.found)
			}
		})
	}
}

func TestSyntaxError_Message(t *testing.T) {
	src := "read x;\nif x < 10 then\n   write x\nendif"
	_, err := parseString(t, src)
	if err == nil {
		t.Fatal("expected error")
	}

	want := `syntax error: expected END but found ("endif", IDENTIFIER) at line 4, column 1`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	// no position suffix for tokens without position
	toks := []token.Token{token.New("then", token.THEN), token.EOFToken(token.Pos{})}
	_, err = Parse(toks)
	if err == nil {
		t.Fatal("expected error")
	}
	want = `syntax error: unexpected token ("then", THEN) where a statement was expected`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsSyntaxError(t *testing.T) {
	_, err := ParseSource("write")
	if !IsSyntaxError(err) {
		t.Errorf("IsSyntaxError(%v) = false", err)
	}

	wrapped := fmt.Errorf("compile: %w", err)
	if !IsSyntaxError(wrapped) {
		t.Error("IsSyntaxError() does not see through wrapping")
	}
	var se *SyntaxError
	if !errors.As(wrapped, &se) || se.Kind != UnexpectedFactor {
		t.Errorf("errors.As() = %v", se)
	}

	if IsSyntaxError(errors.New("other")) || IsSyntaxError(nil) {
		t.Error("IsSyntaxError() true for unrelated error")
	}
}

func TestParser_ElseFromTokens(t *testing.T) {
	toks := []token.Token{
		token.New("if", token.IF),
		token.New("c", token.IDENTIFIER),
		token.New("then", token.THEN),
		token.New("write", token.WRITE),
		token.New("1", token.NUMBER),
		token.New(";", token.SEMICOLON),
		token.New("else", token.ELSE),
		token.New("write", token.WRITE),
		token.New("2", token.NUMBER),
		token.New("end", token.END),
		token.EOFToken(token.Pos{}),
	}

	program, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := "Program(StmtSeq[If(cond=Identifier(c), then=StmtSeq[Write(Number(1))], else=StmtSeq[Write(Number(2))])])"
	if got := program.String(); got != want {
		t.Errorf("Parse() = %s, want %s", got, want)
	}
}

func TestParser_ElseKeywordFromSource(t *testing.T) {
	src := "if x < 1 then write 1 else write 2 end"
	toks := lexer.New(src, lexer.Options{ElseKeyword: true, Logger: tinylog.NewNop()}).Tokenize()

	program, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	stmt := program.Body.Statements[0].(*ast.IfStmt)
	if stmt.Else == nil || len(stmt.Else.Statements) != 1 {
		t.Errorf("else branch = %v", stmt.Else)
	}
}

func TestParser_Positions(t *testing.T) {
	program, err := parseString(t, acceptanceSource)
	if err != nil {
		t.Fatal(err)
	}

	ifStmt := program.Body.Statements[1].(*ast.IfStmt)
	if ifStmt.Pos.Line != 2 || ifStmt.Pos.Column != 1 {
		t.Errorf("if position = %v, want 2:1", ifStmt.Pos)
	}
	cond := ifStmt.Cond.(*ast.BinaryExpr)
	if cond.Pos.Line != 2 || cond.Pos.Column != 6 {
		t.Errorf("condition position = %v, want 2:6", cond.Pos)
	}
	write := ifStmt.Then.Statements[0].(*ast.WriteStmt)
	if write.Pos.Line != 3 || write.Pos.Column != 4 {
		t.Errorf("write position = %v, want 3:4", write.Pos)
	}
}

func TestParser_MissingEOF(t *testing.T) {
	toks := []token.Token{
		token.New("read", token.READ),
		token.New("x", token.IDENTIFIER),
	}

	program, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := program.String(); got != "Program(StmtSeq[Read(x)])" {
		t.Errorf("Parse() = %s", got)
	}

	_, err = Parse([]token.Token{token.New("write", token.WRITE)})
	se, ok := AsSyntaxError(err)
	if !ok || se.Kind != UnexpectedFactor || se.Found.Category != token.EOF {
		t.Errorf("Parse(write) error = %v", err)
	}
}

func TestParser_StopsAtFirstEOF(t *testing.T) {
	toks := []token.Token{
		token.New("read", token.READ),
		token.New("x", token.IDENTIFIER),
		token.EOFToken(token.Pos{}),
		token.New("write", token.WRITE),
		token.New("x", token.IDENTIFIER),
	}

	program, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(program.Body.Statements) != 1 {
		t.Errorf("statements = %d, want 1", len(program.Body.Statements))
	}

	p := New(toks, Options{Logger: tinylog.NewNop()})
	_, _ = p.ParseProgram()
	if p.pos != 2 {
		t.Errorf("cursor = %d, want 2", p.pos)
	}
	for i := 0; i < 5; i++ {
		p.advance()
	}
	if p.pos != 2 || p.current.Category != token.EOF {
		t.Errorf("advance() moved past EOF to %d", p.pos)
	}
}

func TestParser_NestingTooDeep(t *testing.T) {
	deep := "write " + strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50)

	toks := lexer.Tokenize(deep)
	if _, err := New(toks, Options{Logger: tinylog.NewNop()}).ParseProgram(); err != nil {
		t.Fatalf("default limit rejected 50 levels: %v", err)
	}

	_, err := New(toks, Options{MaxDepth: 10, Logger: tinylog.NewNop()}).ParseProgram()
	se, ok := AsSyntaxError(err)
	if !ok || se.Kind != NestingTooDeep {
		t.Fatalf("error = %v, want NestingTooDeep", err)
	}
	if se.Depth != 10 {
		t.Errorf("Depth = %d, want 10", se.Depth)
	}
	if !strings.Contains(se.Error(), "nesting deeper than 10 levels") {
		t.Errorf("Error() = %q", se.Error())
	}

	if _, err := New(toks, Options{MaxDepth: -1, Logger: tinylog.NewNop()}).ParseProgram(); err != nil {
		t.Errorf("unlimited depth error = %v", err)
	}
}

func TestParser_NestingTooDeepStatements(t *testing.T) {
	src := strings.Repeat("repeat ", 1000) + "read x" + strings.Repeat(" until x", 1000)

	_, err := ParseSource(src)
	se, ok := AsSyntaxError(err)
	if !ok || se.Kind != NestingTooDeep || se.Depth != DefaultMaxDepth {
		t.Fatalf("error = %v, want NestingTooDeep at %d", err, DefaultMaxDepth)
	}
}

func TestParser_Reusable(t *testing.T) {
	p := New(lexer.Tokenize("read x; write x"), Options{Logger: tinylog.NewNop()})

	first, err := p.ParseProgram()
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.ParseProgram()
	if err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("second parse %s differs from first %s", second, first)
	}
	if first == second {
		t.Error("ParseProgram() returned a shared tree")
	}
}

func BenchmarkParser_Factorial(b *testing.B) {
	src := `{ factorial }
read x;
if 0 < x then
  fact := 1;
  repeat
    fact := fact * x;
    x := x - 1
  until x = 0;
  write fact
end`
	toks := lexer.Tokenize(src)
	logger := tinylog.NewNop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New(toks, Options{Logger: logger}).ParseProgram(); err != nil {
			b.Fatal(err)
		}
	}
}
