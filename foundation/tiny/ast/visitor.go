// File: visitor.go
// Title: TINY AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing TINY ASTs and
//              the visitors used by the toolchain: the indented tree dump,
//              tree validation and node collection.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2026-10-19 v0.2.0: TINY node set, BaseVisitor dispatches through Self

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitProgram(p *Program) interface{}
	VisitStmtSeq(s *StmtSeq) interface{}

	// Statements
	VisitIf(s *IfStmt) interface{}
	VisitRepeat(s *RepeatStmt) interface{}
	VisitAssign(s *AssignStmt) interface{}
	VisitRead(s *ReadStmt) interface{}
	VisitWrite(s *WriteStmt) interface{}

	// Expressions
	VisitBinaryExpr(e *BinaryExpr) interface{}
	VisitNumber(e *NumberExpr) interface{}
	VisitIdentifier(e *IdentifierExpr) interface{}
}

// BaseVisitor walks every child of a node and returns nil. Embed it in a
// concrete visitor and set Self to that visitor so the walk reaches the
// overriding methods.
type BaseVisitor struct {
	Self Visitor
}

func (bv *BaseVisitor) self() Visitor {
	if bv.Self != nil {
		return bv.Self
	}
	return bv
}

func (bv *BaseVisitor) VisitProgram(p *Program) interface{} {
	if p.Body != nil {
		p.Body.Accept(bv.self())
	}
	return nil
}

func (bv *BaseVisitor) VisitStmtSeq(s *StmtSeq) interface{} {
	for _, stmt := range s.Statements {
		if !isNil(stmt) {
			stmt.Accept(bv.self())
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitIf(s *IfStmt) interface{} {
	v := bv.self()
	if !isNil(s.Cond) {
		s.Cond.Accept(v)
	}
	if s.Then != nil {
		s.Then.Accept(v)
	}
	if s.Else != nil {
		s.Else.Accept(v)
	}
	return nil
}

func (bv *BaseVisitor) VisitRepeat(s *RepeatStmt) interface{} {
	v := bv.self()
	if s.Body != nil {
		s.Body.Accept(v)
	}
	if !isNil(s.Cond) {
		s.Cond.Accept(v)
	}
	return nil
}

func (bv *BaseVisitor) VisitAssign(s *AssignStmt) interface{} {
	if !isNil(s.Value) {
		s.Value.Accept(bv.self())
	}
	return nil
}

func (bv *BaseVisitor) VisitRead(s *ReadStmt) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitWrite(s *WriteStmt) interface{} {
	if !isNil(s.Value) {
		s.Value.Accept(bv.self())
	}
	return nil
}

func (bv *BaseVisitor) VisitBinaryExpr(e *BinaryExpr) interface{} {
	v := bv.self()
	if !isNil(e.Left) {
		e.Left.Accept(v)
	}
	if !isNil(e.Right) {
		e.Right.Accept(v)
	}
	return nil
}

func (bv *BaseVisitor) VisitNumber(e *NumberExpr) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitIdentifier(e *IdentifierExpr) interface{} {
	return nil // Terminal node
}

// StringVisitor renders the indented tree dump, one node per line and two
// spaces per level.
type StringVisitor struct {
	buffer strings.Builder
	indent int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the built string representation
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the internal buffer
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
	sv.indent = 0
}

func (sv *StringVisitor) line(label string) {
	for i := 0; i < sv.indent; i++ {
		sv.buffer.WriteString("  ")
	}
	sv.buffer.WriteString(label)
	sv.buffer.WriteByte('\n')
}

func (sv *StringVisitor) child(n Node) {
	sv.indent++
	if isNil(n) {
		sv.line("<nil>")
	} else {
		n.Accept(sv)
	}
	sv.indent--
}

func (sv *StringVisitor) VisitProgram(p *Program) interface{} {
	sv.line("Program")
	sv.child(p.Body)
	return nil
}

func (sv *StringVisitor) VisitStmtSeq(s *StmtSeq) interface{} {
	sv.line("StmtSeq")
	for _, stmt := range s.Statements {
		sv.child(stmt)
	}
	return nil
}

func (sv *StringVisitor) VisitIf(s *IfStmt) interface{} {
	sv.line("IfStmt")
	sv.child(s.Cond)
	sv.child(s.Then)
	if s.Else != nil {
		sv.child(s.Else)
	}
	return nil
}

func (sv *StringVisitor) VisitRepeat(s *RepeatStmt) interface{} {
	sv.line("RepeatStmt")
	sv.child(s.Body)
	sv.child(s.Cond)
	return nil
}

func (sv *StringVisitor) VisitAssign(s *AssignStmt) interface{} {
	sv.line("AssignStmt")
	sv.indent++
	sv.line(fmt.Sprintf("Identifier(%s)", s.Name))
	sv.indent--
	sv.child(s.Value)
	return nil
}

func (sv *StringVisitor) VisitRead(s *ReadStmt) interface{} {
	sv.line("ReadStmt")
	sv.indent++
	sv.line(fmt.Sprintf("Identifier(%s)", s.Name))
	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitWrite(s *WriteStmt) interface{} {
	sv.line("WriteStmt")
	sv.child(s.Value)
	return nil
}

func (sv *StringVisitor) VisitBinaryExpr(e *BinaryExpr) interface{} {
	sv.line("OpExpr")
	sv.indent++
	sv.line(fmt.Sprintf("Op(%s)", e.Op))
	sv.indent--
	sv.child(e.Left)
	sv.child(e.Right)
	return nil
}

func (sv *StringVisitor) VisitNumber(e *NumberExpr) interface{} {
	sv.line(e.String())
	return nil
}

func (sv *StringVisitor) VisitIdentifier(e *IdentifierExpr) interface{} {
	sv.line(e.String())
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	vv := &ValidationVisitor{
		errors: make([]error, 0),
	}
	vv.Self = vv
	return vv
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) check(kind string, n Node) {
	if err := n.Validate(); err != nil {
		pos := n.Position()
		if pos.IsValid() {
			vv.errors = append(vv.errors, fmt.Errorf("%s at %s: %w", kind, pos, err))
		} else {
			vv.errors = append(vv.errors, fmt.Errorf("%s: %w", kind, err))
		}
	}
}

func (vv *ValidationVisitor) VisitProgram(p *Program) interface{} {
	vv.check("program", p)
	return vv.BaseVisitor.VisitProgram(p)
}

func (vv *ValidationVisitor) VisitStmtSeq(s *StmtSeq) interface{} {
	vv.check("statement sequence", s)
	return vv.BaseVisitor.VisitStmtSeq(s)
}

func (vv *ValidationVisitor) VisitIf(s *IfStmt) interface{} {
	vv.check("if statement", s)
	return vv.BaseVisitor.VisitIf(s)
}

func (vv *ValidationVisitor) VisitRepeat(s *RepeatStmt) interface{} {
	vv.check("repeat statement", s)
	return vv.BaseVisitor.VisitRepeat(s)
}

func (vv *ValidationVisitor) VisitAssign(s *AssignStmt) interface{} {
	vv.check("assignment", s)
	return vv.BaseVisitor.VisitAssign(s)
}

func (vv *ValidationVisitor) VisitRead(s *ReadStmt) interface{} {
	vv.check("read statement", s)
	return nil
}

func (vv *ValidationVisitor) VisitWrite(s *WriteStmt) interface{} {
	vv.check("write statement", s)
	return vv.BaseVisitor.VisitWrite(s)
}

func (vv *ValidationVisitor) VisitBinaryExpr(e *BinaryExpr) interface{} {
	vv.check("binary expression", e)
	return vv.BaseVisitor.VisitBinaryExpr(e)
}

func (vv *ValidationVisitor) VisitNumber(e *NumberExpr) interface{} {
	vv.check("number", e)
	return nil
}

func (vv *ValidationVisitor) VisitIdentifier(e *IdentifierExpr) interface{} {
	vv.check("identifier", e)
	return nil
}

// CollectorVisitor collects statements, identifiers and numbers from the AST
type CollectorVisitor struct {
	BaseVisitor
	Statements  []Stmt
	Identifiers []*IdentifierExpr
	Numbers     []*NumberExpr
	Operators   map[Operator]int
	MaxDepth    int

	depth int
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	cv := &CollectorVisitor{
		Statements:  make([]Stmt, 0),
		Identifiers: make([]*IdentifierExpr, 0),
		Numbers:     make([]*NumberExpr, 0),
		Operators:   make(map[Operator]int),
	}
	cv.Self = cv
	return cv
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Statements = cv.Statements[:0]
	cv.Identifiers = cv.Identifiers[:0]
	cv.Numbers = cv.Numbers[:0]
	cv.Operators = make(map[Operator]int)
	cv.MaxDepth = 0
	cv.depth = 0
}

// VisitStmtSeq tracks statement nesting depth
func (cv *CollectorVisitor) VisitStmtSeq(s *StmtSeq) interface{} {
	cv.depth++
	if cv.depth > cv.MaxDepth {
		cv.MaxDepth = cv.depth
	}
	cv.BaseVisitor.VisitStmtSeq(s)
	cv.depth--
	return nil
}

func (cv *CollectorVisitor) VisitIf(s *IfStmt) interface{} {
	cv.Statements = append(cv.Statements, s)
	return cv.BaseVisitor.VisitIf(s)
}

func (cv *CollectorVisitor) VisitRepeat(s *RepeatStmt) interface{} {
	cv.Statements = append(cv.Statements, s)
	return cv.BaseVisitor.VisitRepeat(s)
}

func (cv *CollectorVisitor) VisitAssign(s *AssignStmt) interface{} {
	cv.Statements = append(cv.Statements, s)
	return cv.BaseVisitor.VisitAssign(s)
}

func (cv *CollectorVisitor) VisitRead(s *ReadStmt) interface{} {
	cv.Statements = append(cv.Statements, s)
	return nil
}

func (cv *CollectorVisitor) VisitWrite(s *WriteStmt) interface{} {
	cv.Statements = append(cv.Statements, s)
	return cv.BaseVisitor.VisitWrite(s)
}

func (cv *CollectorVisitor) VisitBinaryExpr(e *BinaryExpr) interface{} {
	cv.Operators[e.Op]++
	return cv.BaseVisitor.VisitBinaryExpr(e)
}

func (cv *CollectorVisitor) VisitIdentifier(e *IdentifierExpr) interface{} {
	cv.Identifiers = append(cv.Identifiers, e)
	return nil
}

func (cv *CollectorVisitor) VisitNumber(e *NumberExpr) interface{} {
	cv.Numbers = append(cv.Numbers, e)
	return nil
}

// Variables returns the distinct variable names: read and assignment
// targets in statement order, then any other referenced identifiers.
func (cv *CollectorVisitor) Variables() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, stmt := range cv.Statements {
		switch s := stmt.(type) {
		case *AssignStmt:
			add(s.Name)
		case *ReadStmt:
			add(s.Name)
		}
	}
	for _, id := range cv.Identifiers {
		add(id.Name)
	}
	return names
}

// Utility functions for working with visitors

// ValidateAST validates every node of an AST and returns all errors found
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// ASTToString converts an AST node to the indented tree dump
func ASTToString(node Node) string {
	visitor := NewStringVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects statements, identifiers and numbers from an AST
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
