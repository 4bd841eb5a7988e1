// File: nodes.go
// Title: TINY AST Node Definitions
// Description: Defines the closed set of AST node types for TINY programs:
//              the program root, statement sequences, the five statement
//              kinds and the three expression kinds. Provides the compact
//              string form and node-local validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2026-10-19 v0.2.0: TINY statement and expression variants

package ast

import (
	"fmt"
	"strings"

	"github.com/msto63/tiny/foundation/tiny/token"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the compact single-line form of the subtree
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the position of the node's first token
	Position() Position

	// Validate checks the node itself, not its children
	Validate() error
}

// Position is the source position of a node. Nodes built from a token file
// carry the zero position.
type Position = token.Pos

// Stmt is one of *IfStmt, *RepeatStmt, *AssignStmt, *ReadStmt, *WriteStmt
type Stmt interface {
	Node
	stmtNode() // marker method
}

// Expr is one of *BinaryExpr, *NumberExpr, *IdentifierExpr
type Expr interface {
	Node
	exprNode() // marker method
}

// Program is the root of every parsed TINY program
type Program struct {
	Body *StmtSeq
	Pos  Position
}

// StmtSeq is a non-empty, ordered list of statements
type StmtSeq struct {
	Statements []Stmt
	Pos        Position
}

// IfStmt is "if Cond then Then [else Else] end". Else is nil when no else
// branch was written.
type IfStmt struct {
	Cond Expr
	Then *StmtSeq
	Else *StmtSeq
	Pos  Position
}

// RepeatStmt is "repeat Body until Cond"
type RepeatStmt struct {
	Body *StmtSeq
	Cond Expr
	Pos  Position
}

// AssignStmt is "Name := Value"
type AssignStmt struct {
	Name  string
	Value Expr
	Pos   Position
}

// ReadStmt is "read Name"
type ReadStmt struct {
	Name string
	Pos  Position
}

// WriteStmt is "write Value"
type WriteStmt struct {
	Value Expr
	Pos   Position
}

// BinaryExpr is "Left Op Right". Parenthesized records that the expression
// was written inside ( ), which is the only way a relational expression can
// become an operand.
type BinaryExpr struct {
	Op            Operator
	Left          Expr
	Right         Expr
	Parenthesized bool
	Pos           Position
}

// NumberExpr is a numeric literal kept as its source text
type NumberExpr struct {
	Literal string
	Pos     Position
}

// IdentifierExpr is a variable reference
type IdentifierExpr struct {
	Name string
	Pos  Position
}

// Operator is the operator of a BinaryExpr
type Operator int

const (
	OpLess Operator = iota // <
	OpEqual                // =
	OpAdd                  // +
	OpSub                  // -
	OpMul                  // *
	OpDiv                  // /
)

var operatorSymbols = [...]string{
	OpLess:  "<",
	OpEqual: "=",
	OpAdd:   "+",
	OpSub:   "-",
	OpMul:   "*",
	OpDiv:   "/",
}

// String returns the operator symbol
func (op Operator) String() string {
	if op.IsValid() {
		return operatorSymbols[op]
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// IsValid reports whether op is a declared operator
func (op Operator) IsValid() bool {
	return op >= OpLess && op <= OpDiv
}

// IsRelational reports whether op is < or =
func (op Operator) IsRelational() bool {
	return op == OpLess || op == OpEqual
}

// OperatorFor maps a token category to its operator
func OperatorFor(c token.Category) (Operator, bool) {
	switch c {
	case token.LESSTHAN:
		return OpLess, true
	case token.EQUAL:
		return OpEqual, true
	case token.PLUS:
		return OpAdd, true
	case token.MINUS:
		return OpSub, true
	case token.MULT:
		return OpMul, true
	case token.DIV:
		return OpDiv, true
	default:
		return 0, false
	}
}

// Implementation of Node interface for Program

func (p *Program) String() string {
	return fmt.Sprintf("Program(%s)", nodeString(p.Body))
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Position() Position {
	return p.Pos
}

func (p *Program) Validate() error {
	if p.Body == nil {
		return fmt.Errorf("program body is required")
	}
	return nil
}

// Implementation of Node interface for StmtSeq

func (s *StmtSeq) String() string {
	parts := make([]string, len(s.Statements))
	for i, stmt := range s.Statements {
		parts[i] = nodeString(stmt)
	}
	return "StmtSeq[" + strings.Join(parts, ", ") + "]"
}

func (s *StmtSeq) Accept(visitor Visitor) interface{} {
	return visitor.VisitStmtSeq(s)
}

func (s *StmtSeq) Position() Position {
	return s.Pos
}

func (s *StmtSeq) Validate() error {
	if len(s.Statements) == 0 {
		return fmt.Errorf("statement sequence must not be empty")
	}
	for i, stmt := range s.Statements {
		if isNil(stmt) {
			return fmt.Errorf("statement %d is nil", i)
		}
	}
	return nil
}

// Implementation of Node interface for IfStmt

func (s *IfStmt) String() string {
	elseStr := "None"
	if s.Else != nil {
		elseStr = s.Else.String()
	}
	return fmt.Sprintf("If(cond=%s, then=%s, else=%s)", nodeString(s.Cond), nodeString(s.Then), elseStr)
}

func (s *IfStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitIf(s)
}

func (s *IfStmt) Position() Position {
	return s.Pos
}

func (s *IfStmt) Validate() error {
	if isNil(s.Cond) {
		return fmt.Errorf("if condition is required")
	}
	if s.Then == nil {
		return fmt.Errorf("if then-branch is required")
	}
	return nil
}

func (s *IfStmt) stmtNode() {}

// Implementation of Node interface for RepeatStmt

func (s *RepeatStmt) String() string {
	return fmt.Sprintf("Repeat(body=%s, cond=%s)", nodeString(s.Body), nodeString(s.Cond))
}

func (s *RepeatStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitRepeat(s)
}

func (s *RepeatStmt) Position() Position {
	return s.Pos
}

func (s *RepeatStmt) Validate() error {
	if s.Body == nil {
		return fmt.Errorf("repeat body is required")
	}
	if isNil(s.Cond) {
		return fmt.Errorf("repeat condition is required")
	}
	return nil
}

func (s *RepeatStmt) stmtNode() {}

// Implementation of Node interface for AssignStmt

func (s *AssignStmt) String() string {
	return fmt.Sprintf("Assign(%s, %s)", s.Name, nodeString(s.Value))
}

func (s *AssignStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssign(s)
}

func (s *AssignStmt) Position() Position {
	return s.Pos
}

func (s *AssignStmt) Validate() error {
	if err := validateName(s.Name); err != nil {
		return fmt.Errorf("assignment target: %w", err)
	}
	if isNil(s.Value) {
		return fmt.Errorf("assignment value is required")
	}
	return nil
}

func (s *AssignStmt) stmtNode() {}

// Implementation of Node interface for ReadStmt

func (s *ReadStmt) String() string {
	return fmt.Sprintf("Read(%s)", s.Name)
}

func (s *ReadStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitRead(s)
}

func (s *ReadStmt) Position() Position {
	return s.Pos
}

func (s *ReadStmt) Validate() error {
	if err := validateName(s.Name); err != nil {
		return fmt.Errorf("read target: %w", err)
	}
	return nil
}

func (s *ReadStmt) stmtNode() {}

// Implementation of Node interface for WriteStmt

func (s *WriteStmt) String() string {
	return fmt.Sprintf("Write(%s)", nodeString(s.Value))
}

func (s *WriteStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitWrite(s)
}

func (s *WriteStmt) Position() Position {
	return s.Pos
}

func (s *WriteStmt) Validate() error {
	if isNil(s.Value) {
		return fmt.Errorf("write value is required")
	}
	return nil
}

func (s *WriteStmt) stmtNode() {}

// Implementation of Node interface for BinaryExpr

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("BinaryOp(%s,%s,%s)", e.Op, nodeString(e.Left), nodeString(e.Right))
}

func (e *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpr(e)
}

func (e *BinaryExpr) Position() Position {
	return e.Pos
}

// Validate enforces that a relational expression only appears as an
// operand when it was parenthesized.
func (e *BinaryExpr) Validate() error {
	if !e.Op.IsValid() {
		return fmt.Errorf("invalid operator %s", e.Op)
	}
	if isNil(e.Left) || isNil(e.Right) {
		return fmt.Errorf("binary expression %s requires two operands", e.Op)
	}
	for _, operand := range []Expr{e.Left, e.Right} {
		if inner, ok := operand.(*BinaryExpr); ok && inner.Op.IsRelational() && !inner.Parenthesized {
			return fmt.Errorf("relational operator %s used as operand of %s without parentheses", inner.Op, e.Op)
		}
	}
	return nil
}

func (e *BinaryExpr) exprNode() {}

// Implementation of Node interface for NumberExpr

func (e *NumberExpr) String() string {
	return fmt.Sprintf("Number(%s)", e.Literal)
}

func (e *NumberExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumber(e)
}

func (e *NumberExpr) Position() Position {
	return e.Pos
}

func (e *NumberExpr) Validate() error {
	if e.Literal == "" {
		return fmt.Errorf("number literal is empty")
	}
	return nil
}

func (e *NumberExpr) exprNode() {}

// Implementation of Node interface for IdentifierExpr

func (e *IdentifierExpr) String() string {
	return fmt.Sprintf("Identifier(%s)", e.Name)
}

func (e *IdentifierExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(e)
}

func (e *IdentifierExpr) Position() Position {
	return e.Pos
}

func (e *IdentifierExpr) Validate() error {
	return validateName(e.Name)
}

func (e *IdentifierExpr) exprNode() {}

// Helpers

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// isNil reports whether a node interface is nil or holds a nil pointer
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *IfStmt:
		return v == nil
	case *RepeatStmt:
		return v == nil
	case *AssignStmt:
		return v == nil
	case *ReadStmt:
		return v == nil
	case *WriteStmt:
		return v == nil
	case *BinaryExpr:
		return v == nil
	case *NumberExpr:
		return v == nil
	case *IdentifierExpr:
		return v == nil
	case *StmtSeq:
		return v == nil
	case *Program:
		return v == nil
	}
	return false
}

func nodeString(n Node) string {
	if isNil(n) {
		return "<nil>"
	}
	return n.String()
}
