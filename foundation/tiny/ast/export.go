// File: export.go
// Title: AST Export
// Description: Converts an AST into plain maps and slices so that it can be
//              encoded as JSON or YAML for external consumers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

// ExportVisitor builds a tagged map tree. Every node becomes a map with a
// "kind" entry; positions are included when the node has one.
type ExportVisitor struct{}

func withPos(m map[string]interface{}, pos Position) map[string]interface{} {
	if pos.IsValid() {
		m["line"] = pos.Line
		m["column"] = pos.Column
	}
	return m
}

func (ev ExportVisitor) export(n Node) interface{} {
	if isNil(n) {
		return nil
	}
	return n.Accept(ev)
}

func (ev ExportVisitor) VisitProgram(p *Program) interface{} {
	return withPos(map[string]interface{}{
		"kind": "Program",
		"body": ev.export(p.Body),
	}, p.Pos)
}

func (ev ExportVisitor) VisitStmtSeq(s *StmtSeq) interface{} {
	stmts := make([]interface{}, len(s.Statements))
	for i, stmt := range s.Statements {
		stmts[i] = ev.export(stmt)
	}
	return withPos(map[string]interface{}{
		"kind":       "StmtSeq",
		"statements": stmts,
	}, s.Pos)
}

func (ev ExportVisitor) VisitIf(s *IfStmt) interface{} {
	m := map[string]interface{}{
		"kind": "If",
		"cond": ev.export(s.Cond),
		"then": ev.export(s.Then),
	}
	if s.Else != nil {
		m["else"] = ev.export(s.Else)
	}
	return withPos(m, s.Pos)
}

func (ev ExportVisitor) VisitRepeat(s *RepeatStmt) interface{} {
	return withPos(map[string]interface{}{
		"kind": "Repeat",
		"body": ev.export(s.Body),
		"cond": ev.export(s.Cond),
	}, s.Pos)
}

func (ev ExportVisitor) VisitAssign(s *AssignStmt) interface{} {
	return withPos(map[string]interface{}{
		"kind":  "Assign",
		"name":  s.Name,
		"value": ev.export(s.Value),
	}, s.Pos)
}

func (ev ExportVisitor) VisitRead(s *ReadStmt) interface{} {
	return withPos(map[string]interface{}{
		"kind": "Read",
		"name": s.Name,
	}, s.Pos)
}

func (ev ExportVisitor) VisitWrite(s *WriteStmt) interface{} {
	return withPos(map[string]interface{}{
		"kind":  "Write",
		"value": ev.export(s.Value),
	}, s.Pos)
}

func (ev ExportVisitor) VisitBinaryExpr(e *BinaryExpr) interface{} {
	return withPos(map[string]interface{}{
		"kind":  "BinaryOp",
		"op":    e.Op.String(),
		"left":  ev.export(e.Left),
		"right": ev.export(e.Right),
	}, e.Pos)
}

func (ev ExportVisitor) VisitNumber(e *NumberExpr) interface{} {
	return withPos(map[string]interface{}{
		"kind":    "Number",
		"literal": e.Literal,
	}, e.Pos)
}

func (ev ExportVisitor) VisitIdentifier(e *IdentifierExpr) interface{} {
	return withPos(map[string]interface{}{
		"kind": "Identifier",
		"name": e.Name,
	}, e.Pos)
}

// Export converts an AST node into a tree of maps and slices
func Export(node Node) map[string]interface{} {
	m, _ := ExportVisitor{}.export(node).(map[string]interface{})
	return m
}
