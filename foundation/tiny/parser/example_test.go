package parser_test

import (
	"fmt"

	"github.com/msto63/tiny/foundation/tiny/ast"
	"github.com/msto63/tiny/foundation/tiny/parser"
)

func ExampleParseSource() {
	program, err := parser.ParseSource("read n; write n * 2")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(ast.ASTToString(program))
	// Output:
	// Program
	//   StmtSeq
	//     ReadStmt
	//       Identifier(n)
	//     WriteStmt
	//       OpExpr
	//         Op(*)
	//         Identifier(n)
	//         Number(2)
}

func ExampleParseSource_rejected() {
	_, err := parser.ParseSource("write a < b < c")
	fmt.Println(err)
	// Output:
	// syntax error: unexpected trailing input ("<", LESSTHAN) after program at line 1, column 13
}
