package ast

// Visitor is implemented by anything that walks the tree — the
// prettyprinter, the type engine, and test helpers all implement it
// rather than type-switching on Node, following the
// Accept(v Visitor) convention.
type Visitor interface {
	VisitProgram(n *Program)
	VisitMissing(n *Missing)
	VisitName(n *Name)
	VisitTypeHint(n *TypeHint)

	VisitBinaryExpr(n *BinaryExpr)
	VisitAssignExpr(n *AssignExpr)
	VisitReferenceExpr(n *ReferenceExpr)
	VisitUnaryExpr(n *UnaryExpr)
	VisitTernaryExpr(n *TernaryExpr)
	VisitShortTernaryExpr(n *ShortTernaryExpr)
	VisitInstanceofExpr(n *InstanceofExpr)
	VisitCastExpr(n *CastExpr)
	VisitIntegerLiteral(n *IntegerLiteral)
	VisitFloatLiteral(n *FloatLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitBoolLiteral(n *BoolLiteral)
	VisitNullLiteral(n *NullLiteral)
	VisitMagicConstant(n *MagicConstant)
	VisitVariable(n *Variable)
	VisitVariableVariable(n *VariableVariable)
	VisitParenthesizedExpr(n *ParenthesizedExpr)
	VisitArrayExpr(n *ArrayExpr)
	VisitIndexExpr(n *IndexExpr)
	VisitPropertyAccessExpr(n *PropertyAccessExpr)
	VisitStaticAccessExpr(n *StaticAccessExpr)
	VisitCallExpr(n *CallExpr)
	VisitFunctionClosureCreationExpr(n *FunctionClosureCreationExpr)
	VisitNewExpr(n *NewExpr)
	VisitCloneExpr(n *CloneExpr)
	VisitThrowExpr(n *ThrowExpr)
	VisitYieldExpr(n *YieldExpr)
	VisitMatchExpr(n *MatchExpr)
	VisitControlExpr(n *ControlExpr)
	VisitIncludeExpr(n *IncludeExpr)
	VisitClosureExpr(n *ClosureExpr)
	VisitArrowFunctionExpr(n *ArrowFunctionExpr)
	VisitInterpolatedStringExpr(n *InterpolatedStringExpr)
	VisitShellExecExpr(n *ShellExecExpr)
	VisitAttributedClosureExpr(n *AttributedClosureExpr)

	VisitExpressionStmt(n *ExpressionStmt)
	VisitBlockStmt(n *BlockStmt)
	VisitInlineHTMLStmt(n *InlineHTMLStmt)
	VisitNamespaceStmt(n *NamespaceStmt)
	VisitUseStmt(n *UseStmt)
	VisitFunctionDeclStmt(n *FunctionDeclStmt)
	VisitClassDeclStmt(n *ClassDeclStmt)
	VisitMethodDecl(n *MethodDecl)
	VisitPropertyDecl(n *PropertyDecl)
	VisitClassConstDecl(n *ClassConstDecl)
	VisitUseTraitDecl(n *UseTraitDecl)
	VisitEnumCaseDecl(n *EnumCaseDecl)
	VisitTopLevelConstStmt(n *TopLevelConstStmt)
	VisitIfStmt(n *IfStmt)
	VisitWhileStmt(n *WhileStmt)
	VisitDoWhileStmt(n *DoWhileStmt)
	VisitForStmt(n *ForStmt)
	VisitForeachStmt(n *ForeachStmt)
	VisitSwitchStmt(n *SwitchStmt)
	VisitTryStmt(n *TryStmt)
	VisitReturnStmt(n *ReturnStmt)
	VisitBreakStmt(n *BreakStmt)
	VisitContinueStmt(n *ContinueStmt)
	VisitEchoStmt(n *EchoStmt)
	VisitGlobalStmt(n *GlobalStmt)
	VisitStaticVarStmt(n *StaticVarStmt)
	VisitGotoStmt(n *GotoStmt)
	VisitLabelStmt(n *LabelStmt)
	VisitAttributedStmt(n *AttributedStmt)
}

// BaseVisitor provides no-op implementations of every Visit method so
// callers that only care about a handful of node kinds can embed it and
// override selectively.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(n *Program) {}
func (BaseVisitor) VisitMissing(n *Missing) {}
func (BaseVisitor) VisitName(n *Name)       {}
func (BaseVisitor) VisitTypeHint(n *TypeHint) {}

func (BaseVisitor) VisitBinaryExpr(n *BinaryExpr)                               {}
func (BaseVisitor) VisitAssignExpr(n *AssignExpr)                               {}
func (BaseVisitor) VisitReferenceExpr(n *ReferenceExpr)                         {}
func (BaseVisitor) VisitUnaryExpr(n *UnaryExpr)                                 {}
func (BaseVisitor) VisitTernaryExpr(n *TernaryExpr)                             {}
func (BaseVisitor) VisitShortTernaryExpr(n *ShortTernaryExpr)                   {}
func (BaseVisitor) VisitInstanceofExpr(n *InstanceofExpr)                       {}
func (BaseVisitor) VisitCastExpr(n *CastExpr)                                   {}
func (BaseVisitor) VisitIntegerLiteral(n *IntegerLiteral)                       {}
func (BaseVisitor) VisitFloatLiteral(n *FloatLiteral)                           {}
func (BaseVisitor) VisitStringLiteral(n *StringLiteral)                         {}
func (BaseVisitor) VisitBoolLiteral(n *BoolLiteral)                             {}
func (BaseVisitor) VisitNullLiteral(n *NullLiteral)                             {}
func (BaseVisitor) VisitMagicConstant(n *MagicConstant)                         {}
func (BaseVisitor) VisitVariable(n *Variable)                                   {}
func (BaseVisitor) VisitVariableVariable(n *VariableVariable)                   {}
func (BaseVisitor) VisitParenthesizedExpr(n *ParenthesizedExpr)                 {}
func (BaseVisitor) VisitArrayExpr(n *ArrayExpr)                                 {}
func (BaseVisitor) VisitIndexExpr(n *IndexExpr)                                 {}
func (BaseVisitor) VisitPropertyAccessExpr(n *PropertyAccessExpr)               {}
func (BaseVisitor) VisitStaticAccessExpr(n *StaticAccessExpr)                   {}
func (BaseVisitor) VisitCallExpr(n *CallExpr)                                   {}
func (BaseVisitor) VisitFunctionClosureCreationExpr(n *FunctionClosureCreationExpr) {}
func (BaseVisitor) VisitNewExpr(n *NewExpr)                                     {}
func (BaseVisitor) VisitCloneExpr(n *CloneExpr)                                 {}
func (BaseVisitor) VisitThrowExpr(n *ThrowExpr)                                 {}
func (BaseVisitor) VisitYieldExpr(n *YieldExpr)                                 {}
func (BaseVisitor) VisitMatchExpr(n *MatchExpr)                                 {}
func (BaseVisitor) VisitControlExpr(n *ControlExpr)                             {}
func (BaseVisitor) VisitIncludeExpr(n *IncludeExpr)                            {}
func (BaseVisitor) VisitClosureExpr(n *ClosureExpr)                            {}
func (BaseVisitor) VisitArrowFunctionExpr(n *ArrowFunctionExpr)                 {}
func (BaseVisitor) VisitInterpolatedStringExpr(n *InterpolatedStringExpr)       {}
func (BaseVisitor) VisitShellExecExpr(n *ShellExecExpr)                        {}
func (BaseVisitor) VisitAttributedClosureExpr(n *AttributedClosureExpr)         {}

func (BaseVisitor) VisitExpressionStmt(n *ExpressionStmt)     {}
func (BaseVisitor) VisitBlockStmt(n *BlockStmt)               {}
func (BaseVisitor) VisitInlineHTMLStmt(n *InlineHTMLStmt)     {}
func (BaseVisitor) VisitNamespaceStmt(n *NamespaceStmt)       {}
func (BaseVisitor) VisitUseStmt(n *UseStmt)                   {}
func (BaseVisitor) VisitFunctionDeclStmt(n *FunctionDeclStmt) {}
func (BaseVisitor) VisitClassDeclStmt(n *ClassDeclStmt)       {}
func (BaseVisitor) VisitMethodDecl(n *MethodDecl)             {}
func (BaseVisitor) VisitPropertyDecl(n *PropertyDecl)         {}
func (BaseVisitor) VisitClassConstDecl(n *ClassConstDecl)     {}
func (BaseVisitor) VisitUseTraitDecl(n *UseTraitDecl)         {}
func (BaseVisitor) VisitEnumCaseDecl(n *EnumCaseDecl)         {}
func (BaseVisitor) VisitTopLevelConstStmt(n *TopLevelConstStmt) {}
func (BaseVisitor) VisitIfStmt(n *IfStmt)                     {}
func (BaseVisitor) VisitWhileStmt(n *WhileStmt)               {}
func (BaseVisitor) VisitDoWhileStmt(n *DoWhileStmt)           {}
func (BaseVisitor) VisitForStmt(n *ForStmt)                   {}
func (BaseVisitor) VisitForeachStmt(n *ForeachStmt)           {}
func (BaseVisitor) VisitSwitchStmt(n *SwitchStmt)             {}
func (BaseVisitor) VisitTryStmt(n *TryStmt)                   {}
func (BaseVisitor) VisitReturnStmt(n *ReturnStmt)             {}
func (BaseVisitor) VisitBreakStmt(n *BreakStmt)               {}
func (BaseVisitor) VisitContinueStmt(n *ContinueStmt)         {}
func (BaseVisitor) VisitEchoStmt(n *EchoStmt)                 {}
func (BaseVisitor) VisitGlobalStmt(n *GlobalStmt)             {}
func (BaseVisitor) VisitStaticVarStmt(n *StaticVarStmt)       {}
func (BaseVisitor) VisitGotoStmt(n *GotoStmt)                 {}
func (BaseVisitor) VisitLabelStmt(n *LabelStmt)               {}
func (BaseVisitor) VisitAttributedStmt(n *AttributedStmt)     {}

var _ Visitor = BaseVisitor{}
