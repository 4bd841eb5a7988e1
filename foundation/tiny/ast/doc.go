// File: doc.go
// Title: TINY Abstract Syntax Tree Package Documentation
// Description: Defines the AST of TINY programs with visitors for dumping,
//              validating, collecting and exporting trees.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST implementation
// - 2026-10-19 v0.2.0: TINY node set

/*
Package ast defines the Abstract Syntax Tree of TINY programs.

The tree is a closed set of node types. Statements implement Stmt and
expressions implement Expr; both interfaces carry an unexported marker
method, so a type switch over the concrete types below is exhaustive:

  Program     { Body *StmtSeq }
  StmtSeq     { Statements []Stmt }            never empty
  IfStmt      { Cond Expr; Then, Else *StmtSeq } Else nil without else branch
  RepeatStmt  { Body *StmtSeq; Cond Expr }
  AssignStmt  { Name string; Value Expr }
  ReadStmt    { Name string }
  WriteStmt   { Value Expr }
  BinaryExpr  { Op Operator; Left, Right Expr }
  NumberExpr  { Literal string }               source text, not converted
  IdentifierExpr { Name string }

Node.String returns a compact functional form such as

  Program(StmtSeq[Read(x), Write(Identifier(x))])

ASTToString renders the indented tree dump printed by the command line
tools, ValidateAST checks the structural invariants of a whole tree and
Export converts a tree into maps for JSON or YAML encoding.
*/
package ast
