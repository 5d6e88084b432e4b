package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

type object = map[string]interface{}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	m := object{"pos": node.Pos().String()}
	switch n := node.(type) {
	case *Program:
		m["type"] = "Program"
		m["items"] = mapSlice(n.Items, func(d Decl) interface{} { return toJSON(d) })

	case *FuncDecl:
		m["type"] = "FuncDecl"
		m["result"] = n.Result.String()
		m["name"] = n.Name.Value
		m["params"] = mapSlice(n.Params, func(p *Param) interface{} { return toJSON(p) })
		if n.Body != nil {
			m["body"] = toJSON(n.Body)
		}

	case *Param:
		m["type"] = "Param"
		m["paramType"] = n.Type.String()
		m["name"] = n.Name.Value
		if n.Synthetic {
			m["synthetic"] = true
		}

	case *Name:
		m["type"] = "Name"
		m["value"] = n.Value

	case *BasicLit:
		m["type"] = "BasicLit"
		m["kind"] = n.Kind.String()
		m["value"] = n.Value

	case *UnaryExpr:
		m["type"] = "UnaryExpr"
		m["op"] = n.Op.String()
		m["x"] = toJSON(n.X)

	case *PostfixExpr:
		m["type"] = "PostfixExpr"
		m["op"] = n.Op.String()
		m["x"] = toJSON(n.X)

	case *BinaryExpr:
		m["type"] = "BinaryExpr"
		m["op"] = n.Op.String()
		m["x"] = toJSON(n.X)
		m["y"] = toJSON(n.Y)

	case *CallExpr:
		m["type"] = "CallExpr"
		m["fun"] = n.Fun.Value
		m["args"] = mapSlice(n.Args, func(a Expr) interface{} { return toJSON(a) })

	case *IndexExpr:
		m["type"] = "IndexExpr"
		m["x"] = toJSON(n.X)
		m["index"] = toJSON(n.Index)

	case *EmptyStmt:
		m["type"] = "EmptyStmt"

	case *BreakStmt:
		m["type"] = "BreakStmt"

	case *ExprStmt:
		m["type"] = "ExprStmt"
		m["x"] = toJSON(n.X)

	case *VarDeclStmt:
		m["type"] = "VarDecl"
		m["varType"] = n.Type.String()
		m["name"] = n.Name.Value
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}

	case *BlockStmt:
		m["type"] = "BlockStmt"
		if n.DeclList {
			m["declList"] = true
		}
		m["stmts"] = mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) })

	case *IfStmt:
		m["type"] = "IfStmt"
		m["cond"] = toJSON(n.Cond)
		m["then"] = toJSON(n.Then)
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}

	case *WhileStmt:
		m["type"] = "WhileStmt"
		m["cond"] = toJSON(n.Cond)
		m["body"] = toJSON(n.Body)

	case *DoWhileStmt:
		m["type"] = "DoWhileStmt"
		m["body"] = toJSON(n.Body)
		m["cond"] = toJSON(n.Cond)

	case *ForStmt:
		m["type"] = "ForStmt"
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		if n.Cond != nil {
			m["cond"] = toJSON(n.Cond)
		}
		if n.Post != nil {
			m["post"] = toJSON(n.Post)
		}
		m["body"] = toJSON(n.Body)

	case *ReturnStmt:
		m["type"] = "ReturnStmt"
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}

	default:
		m["type"] = "Unknown"
	}
	return m
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}
