package main

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var SentinelCompareAnalyzer = &analysis.Analyzer{
	Name:     "sentinelcmp",
	Doc:      "reports comparisons against sentinel errors that should use errors.Is",
	Run:      runSentinelCompare,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var errorType = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

func runSentinelCompare(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.BinaryExpr)(nil)}, func(n ast.Node) {
		bin := n.(*ast.BinaryExpr)
		if bin.Op != token.EQL && bin.Op != token.NEQ {
			return
		}

		for _, side := range []ast.Expr{bin.X, bin.Y} {
			if v := sentinel(pass, side); v != nil {
				pass.Reportf(bin.Pos(), "compare with errors.Is(err, %s) instead of %s", v.Name(), bin.Op)
				return
			}
		}
	})

	return nil, nil
}

// sentinel returns the package level error variable e refers to, if any.
func sentinel(pass *analysis.Pass, e ast.Expr) *types.Var {
	var ident *ast.Ident
	switch x := e.(type) {
	case *ast.Ident:
		ident = x
	case *ast.SelectorExpr:
		ident = x.Sel
	default:
		return nil
	}

	v, ok := pass.TypesInfo.Uses[ident].(*types.Var)
	if !ok || v.Pkg() == nil || v.Parent() != v.Pkg().Scope() {
		return nil
	}
	if !strings.HasPrefix(v.Name(), "Err") || !types.Implements(v.Type(), errorType) {
		return nil
	}
	return v
}
