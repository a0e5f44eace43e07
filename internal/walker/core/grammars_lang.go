package core

// PythonGrammar names the tree-sitter-python node kinds the indentation
// walker recognizes.
func PythonGrammar() Grammar {
	g := newGrammar()
	g.FunctionDef = set("function_definition")
	g.ClassDef = set("class_definition")
	g.If = set("if_statement")
	g.For = set("for_statement")
	g.While = set("while_statement")
	g.Binary = set("binary_operator", "comparison_operator", "boolean_operator")
	g.Unary = set("unary_operator", "not_operator")
	g.Assignment = set("assignment")
	g.AugAssign = set("augmented_assignment")
	g.Call = set("call")
	g.Subscript = set("subscript")
	g.Member = set("attribute")
	g.Ternary = set("conditional_expression")
	g.ArrayLiteral = set("list", "tuple", "set")
	g.ObjectLiteral = set("dictionary")
	g.Throw = set("raise_statement")
	g.Return = set("return_statement")
	g.Try = set("try_statement")
	g.TemplateStr = set("string") // f-strings appear as string nodes with interpolation children
	g.Break = set("break_statement", "continue_statement", "pass_statement")
	g.Identifier = set("identifier")
	g.StringLit = set("string")
	g.NumberLit = set("integer", "float")
	g.ParenExpr = set("parenthesized_expression")
	g.Block = set("block")
	g.ExprStmt = set("expression_statement")
	g.VarDecl = set("assignment")
	g.Comprehension = set("list_comprehension", "set_comprehension", "dictionary_comprehension", "generator_expression")
	g.Delete = set("delete_statement")
	return g
}

// javaScriptGrammar names tree-sitter-javascript node kinds (also used
// for typescript, per its classifier reuse rule).
func javaScriptGrammar() Grammar {
	g := newGrammar()
	g.FunctionDef = set("function_declaration", "function", "method_definition", "generator_function_declaration")
	g.ClassDef = set("class_declaration", "class")
	g.If = set("if_statement")
	g.For = set("for_statement")
	g.ForEach = set("for_in_statement")
	g.While = set("while_statement")
	g.DoWhile = set("do_statement")
	g.Binary = set("binary_expression")
	g.Unary = set("unary_expression")
	g.Update = set("update_expression")
	g.Assignment = set("assignment_expression")
	g.AugAssign = set("augmented_assignment_expression")
	g.Call = set("call_expression")
	g.New = set("new_expression")
	g.Subscript = set("subscript_expression")
	g.Member = set("member_expression")
	g.Ternary = set("ternary_expression")
	g.ArrayLiteral = set("array")
	g.ObjectLiteral = set("object")
	g.Throw = set("throw_statement")
	g.Return = set("return_statement")
	g.Try = set("try_statement")
	g.ArrowFunc = set("arrow_function")
	g.TemplateStr = set("template_string")
	g.Labeled = set("labeled_statement")
	g.Break = set("break_statement", "continue_statement", "empty_statement")
	g.Identifier = set("identifier")
	g.StringLit = set("string")
	g.NumberLit = set("number")
	g.ParenExpr = set("parenthesized_expression")
	g.Block = set("statement_block")
	g.ExprStmt = set("expression_statement")
	g.VarDecl = set("variable_declarator")
	return g
}

// JavaScriptGrammar is the exported constructor for the javascript dialect.
func JavaScriptGrammar() Grammar { return javaScriptGrammar() }

// TypeScriptGrammar reuses the javascript grammar; the parser registry
// parses TypeScript source with the JavaScript grammar too.
func TypeScriptGrammar() Grammar { return javaScriptGrammar() }

// JavaGrammar names tree-sitter-java node kinds.
func JavaGrammar() Grammar {
	g := newGrammar()
	g.FunctionDef = set("method_declaration", "constructor_declaration")
	g.ClassDef = set("class_declaration")
	g.If = set("if_statement")
	g.For = set("for_statement")
	g.ForEach = set("enhanced_for_statement")
	g.While = set("while_statement")
	g.DoWhile = set("do_statement")
	g.Binary = set("binary_expression")
	g.Unary = set("unary_expression")
	g.Update = set("update_expression")
	g.Assignment = set("assignment_expression")
	g.Call = set("method_invocation")
	g.New = set("object_creation_expression")
	g.Subscript = set("array_access")
	g.Member = set("field_access")
	g.Ternary = set("ternary_expression")
	g.ArrayLiteral = set("array_initializer")
	g.Throw = set("throw_statement")
	g.Return = set("return_statement")
	g.Try = set("try_statement")
	g.Cast = set("cast_expression")
	g.Break = set("break_statement", "continue_statement")
	g.Identifier = set("identifier")
	g.StringLit = set("string_literal")
	g.NumberLit = set("decimal_integer_literal", "decimal_floating_point_literal")
	g.ParenExpr = set("parenthesized_expression")
	g.Block = set("block")
	g.ExprStmt = set("expression_statement")
	g.VarDecl = set("variable_declarator")
	return g
}

// cFamilyGrammar names the node kinds tree-sitter-c and tree-sitter-cpp
// share; cpp adds a handful of extras layered on in CppGrammar.
func cFamilyGrammar() Grammar {
	g := newGrammar()
	g.FunctionDef = set("function_definition")
	g.If = set("if_statement")
	g.For = set("for_statement")
	g.While = set("while_statement")
	g.DoWhile = set("do_statement")
	g.Binary = set("binary_expression")
	g.Unary = set("unary_expression")
	g.Update = set("update_expression")
	g.Assignment = set("assignment_expression")
	g.Call = set("call_expression")
	g.Subscript = set("subscript_expression")
	g.Member = set("field_expression")
	g.Ternary = set("conditional_expression")
	g.ArrayLiteral = set("initializer_list")
	g.Throw = set()
	g.Return = set("return_statement")
	g.Cast = set("cast_expression")
	g.Sizeof = set("sizeof_expression")
	g.Break = set("break_statement", "continue_statement")
	g.Identifier = set("identifier")
	g.StringLit = set("string_literal")
	g.NumberLit = set("number_literal")
	g.ParenExpr = set("parenthesized_expression")
	g.Block = set("compound_statement")
	g.ExprStmt = set("expression_statement")
	g.VarDecl = set("init_declarator")
	return g
}

// CGrammar names tree-sitter-c node kinds.
func CGrammar() Grammar { return cFamilyGrammar() }

// CppGrammar layers C++-only constructs (new/delete, classes, throw,
// try/catch) onto the shared C-family table.
func CppGrammar() Grammar {
	g := cFamilyGrammar()
	g.ClassDef = set("class_specifier", "struct_specifier")
	g.New = set("new_expression")
	g.Delete = set("delete_expression")
	g.Throw = set("throw_expression")
	g.Try = set("try_statement")
	return g
}
