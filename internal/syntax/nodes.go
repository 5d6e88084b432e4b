package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Nodes fall into two closed families, Expr and Stmt, plus the top-level
// Decl family. Each family is sealed by an unexported marker method, so a
// type switch over the concrete types below covers every variant.

// Node is implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the node's leading token
	aNode()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is implemented by nodes allowed at the top level of a Program:
// *FuncDecl, *VarDeclStmt and a declaration-list *BlockStmt.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// SetPos sets the node position. It is meant for code that builds trees
// without the parser.
func (n *node) SetPos(p Pos) { n.pos = p }

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program and declarations

// Program is a parsed source file.
type Program struct {
	node
	Items []Decl // in source order
}

// FuncDecl is a function definition or, when Body is nil, a prototype.
//
//	fn Result Name ( Params ) { Body }
//	Result Name ( Params ) ;
type FuncDecl struct {
	// A FuncDecl in statement position is a local function definition.
	stmt
	Result Kind // type keyword
	Name   *Name
	Params []*Param
	Body   *BlockStmt
}

func (*FuncDecl) aDecl() {}

// IsProto reports whether d is a prototype without a body.
func (d *FuncDecl) IsProto() bool { return d.Body == nil }

// Param is one function parameter. Synthetic is set when the source omitted
// the name and the parser invented a placeholder.
type Param struct {
	node
	Type      Kind
	Name      *Name
	Synthetic bool
}

// ----------------------------------------------------------------------------
// Expressions

// Name is an identifier reference.
type Name struct {
	expr
	Value string
}

// BasicLit is a literal. Kind is one of IntLit, FloatLit, StringLit, CharLit
// or BoolLit; Value is the source spelling, decoded for strings and chars.
type BasicLit struct {
	expr
	Kind  Kind
	Value string
}

// UnaryExpr is a prefix operation: !X, -X, +X, ++X, --X.
type UnaryExpr struct {
	expr
	Op Kind
	X  Expr
}

// PostfixExpr is X++ or X--.
type PostfixExpr struct {
	expr
	Op Kind
	X  Expr
}

// BinaryExpr is X Op Y. Op may be Assign; compound assignments are
// desugared by the parser and never appear here.
type BinaryExpr struct {
	expr
	Op Kind
	X  Expr
	Y  Expr
}

// CallExpr is Fun(Args...).
type CallExpr struct {
	expr
	Fun  *Name
	Args []Expr
}

// IndexExpr is X[Index].
type IndexExpr struct {
	expr
	X     Expr
	Index Expr
}

// ----------------------------------------------------------------------------
// Statements

// EmptyStmt is a lone ";".
type EmptyStmt struct {
	stmt
}

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	stmt
	X Expr
}

// VarDeclStmt declares one variable: Type Name [= Init].
type VarDeclStmt struct {
	stmt
	Type Kind
	Name *Name
	Init Expr // or nil
}

func (*VarDeclStmt) aDecl() {}

// BlockStmt is { Stmts }. A block produced by desugaring a multi-name
// declaration ("int a, b = 1;") has DeclList set; it groups VarDeclStmts in
// the enclosing scope instead of opening a new one.
type BlockStmt struct {
	stmt
	Stmts    []Stmt
	DeclList bool
}

func (*BlockStmt) aDecl() {}

// IfStmt is if (Cond) Then [else Else]. Else is nil, another *IfStmt, or any
// other statement.
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt is while (Cond) Body.
type WhileStmt struct {
	stmt
	Cond Expr
	Body Stmt
}

// DoWhileStmt is do Body while (Cond);.
type DoWhileStmt struct {
	stmt
	Body Stmt
	Cond Expr
}

// ForStmt is for (Init; Cond; Post) Body. Init is nil, a *VarDeclStmt, a
// declaration-list *BlockStmt or an *ExprStmt; Cond and Post may be nil.
type ForStmt struct {
	stmt
	Init Stmt
	Cond Expr
	Post Expr
	Body Stmt
}

// BreakStmt is break;.
type BreakStmt struct {
	stmt
}

// ReturnStmt is return [Result];.
type ReturnStmt struct {
	stmt
	Result Expr // or nil
}
