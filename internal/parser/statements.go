package parser

import (
	"github.com/BasaltDev/BasaltLang/internal/ast"
	"github.com/BasaltDev/BasaltLang/internal/lexer"
)

func (p *Parser) parseLet(tok lexer.Token) ast.Statement {
	p.advance() // consume 'let'
	mutable := false
	if p.curIs(lexer.KEYWORD, "undef") {
		p.advance()
		name, ok := p.expectIdent("expected variable name after 'undef'")
		if !ok {
			return nil
		}
		return &ast.LetStatement{Token: tok, Name: name, Mutable: true, Undef: true}
	}
	if p.curIs(lexer.KEYWORD, "mut") {
		mutable = true
		p.advance()
	}
	name, ok := p.expectIdent("expected variable name in let declaration")
	if !ok {
		return nil
	}
	if p.cur().Type != lexer.ASSIGNMENT {
		p.errorf(p.cur().Pos, "missing assignment operator, declare with 'let undef %s' for an undefined variable", name)
		return nil
	}
	p.advance()
	value := p.parseValueExpression()
	if value == nil {
		return nil
	}
	return &ast.LetStatement{Token: tok, Name: name, Mutable: mutable, Value: value}
}

func (p *Parser) parseMutability(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for "+tok.Literal+"() function") {
		return nil
	}
	name, ok := p.expectIdent("invalid argument for " + tok.Literal + "() function")
	if !ok {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for "+tok.Literal+"() function") {
		return nil
	}
	return &ast.MutabilityStatement{Token: tok, Name: name, Mutable: tok.Literal == "mut"}
}

func (p *Parser) parsePrint(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis") {
		return nil
	}
	value := p.parseValueExpression()
	if value == nil {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis") {
		return nil
	}
	return &ast.PrintStatement{Token: tok, Kind: tok.Literal, Value: value}
}

func (p *Parser) parseInput(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for input() function") {
		return nil
	}
	prompt := p.parseValueExpression()
	if prompt == nil {
		return nil
	}
	p.skipSoft()
	target := ""
	if p.cur().Type == lexer.IDENTIFIER {
		target = p.cur().Literal
		p.advance()
	} else if !p.curIs(lexer.PARENTHESIS, ")") {
		p.errorf(p.cur().Pos, "can't assign input value to '%s', output must go into a variable", p.cur().Literal)
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for input() function") {
		return nil
	}
	return &ast.InputStatement{Token: tok, Prompt: prompt, Target: target}
}

func (p *Parser) parseClear(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for clear() function") {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for clear() function") {
		return nil
	}
	return &ast.ClearStatement{Token: tok}
}

func (p *Parser) parseWait(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for wait() function") {
		return nil
	}
	duration := p.parseValueExpression()
	if duration == nil {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for wait() function") {
		return nil
	}
	return &ast.WaitStatement{Token: tok, Duration: duration}
}

func (p *Parser) parseExit(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for exit() function") {
		return nil
	}
	var code ast.Expression
	if !p.curIs(lexer.PARENTHESIS, ")") {
		code = p.parseValueExpression()
		if code == nil {
			return nil
		}
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for exit() function") {
		return nil
	}
	return &ast.ExitStatement{Token: tok, Code: code}
}

func (p *Parser) parseIf(tok lexer.Token) ast.Statement {
	p.advance()
	condition := p.parseCondition()
	if condition == nil {
		return nil
	}
	consequence := p.parseBlock()
	if consequence == nil {
		return nil
	}
	stmt := &ast.IfStatement{Token: tok, Condition: condition, Consequence: consequence}
	for {
		p.skipSeparators()
		if p.curIs(lexer.KEYWORD, "elseif") {
			eiTok := p.cur()
			p.advance()
			eiCond := p.parseCondition()
			if eiCond == nil {
				return nil
			}
			eiBody := p.parseBlock()
			if eiBody == nil {
				return nil
			}
			stmt.ElseIfs = append(stmt.ElseIfs, ast.ElseIfClause{Token: eiTok, Condition: eiCond, Body: eiBody})
			continue
		}
		if p.curIs(lexer.KEYWORD, "else") {
			p.advance()
			elseBody := p.parseBlock()
			if elseBody == nil {
				return nil
			}
			stmt.Else = elseBody
		}
		return stmt
	}
}

func (p *Parser) parseWhile(tok lexer.Token) ast.Statement {
	p.advance()
	condition := p.parseCondition()
	if condition == nil {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.WhileStatement{Token: tok, Condition: condition, Body: body}
}

func (p *Parser) parseRepeat(tok lexer.Token) ast.Statement {
	p.advance()
	count := p.parseValueExpression()
	if count == nil {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.RepeatStatement{Token: tok, Count: count, Body: body}
}

func (p *Parser) parseForeach(tok lexer.Token) ast.Statement {
	p.advance()
	name, ok := p.expectIdent("expected loop variable name in foreach")
	if !ok {
		return nil
	}
	if !p.curIs(lexer.KEYWORD, "in") {
		p.errorf(p.cur().Pos, "missing 'in' keyword between foreach values")
		return nil
	}
	p.advance()
	iterable := p.parseValueExpression()
	if iterable == nil {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.ForeachStatement{Token: tok, Name: name, Iterable: iterable, Body: body}
}

// parseFunction parses `fn name(params) { … }`. Parameter lists accept
// both () and [] brackets and may be omitted entirely.
func (p *Parser) parseFunction(tok lexer.Token) *ast.FunctionStatement {
	p.advance() // consume 'fn'
	if p.cur().Type != lexer.IDENTIFIER {
		p.errorf(p.cur().Pos, "invalid function name '%s'", p.cur().Literal)
		return nil
	}
	name := p.cur().Literal
	p.advance()
	var params []string
	var closing string
	var closingType lexer.TokenType
	switch {
	case p.curIs(lexer.PARENTHESIS, "("):
		closing, closingType = ")", lexer.PARENTHESIS
	case p.curIs(lexer.SQUARE, "["):
		closing, closingType = "]", lexer.SQUARE
	case p.curIs(lexer.CURLY, "{"):
		closing = ""
	default:
		p.errorf(p.cur().Pos, "missing opening curly brace for function")
		return nil
	}
	if closing != "" {
		p.advance()
		for {
			p.skipSoft()
			if p.curIs(closingType, closing) {
				p.advance()
				break
			}
			if p.cur().Type == lexer.EOF {
				p.errorf(tok.Pos, "missing closing parenthesis in parameter list of function '%s'", name)
				return nil
			}
			if p.cur().Type != lexer.IDENTIFIER {
				p.errorf(p.cur().Pos, "invalid parameter name '%s' for function '%s'", p.cur().Literal, name)
				return nil
			}
			params = append(params, p.cur().Literal)
			p.advance()
		}
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.FunctionStatement{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseCall(tok lexer.Token) ast.Statement {
	p.advance() // consume 'call'
	if p.cur().Type != lexer.IDENTIFIER {
		p.errorf(p.cur().Pos, "invalid function '%s' being called", p.cur().Literal)
		return nil
	}
	name := p.cur().Literal
	p.advance()
	var args []ast.Expression
	if p.curIs(lexer.PARENTHESIS, "(") || p.curIs(lexer.SQUARE, "[") {
		var ok bool
		args, ok = p.parseArgs()
		if !ok {
			return nil
		}
	}
	target, ok := p.parseTarget()
	if !ok {
		return nil
	}
	return &ast.CallStatement{Token: tok, Name: name, Args: args, Target: target}
}

func (p *Parser) parseReturn(tok lexer.Token) ast.Statement {
	p.advance()
	value := p.parseValueExpression()
	if value == nil {
		return nil
	}
	return &ast.ReturnStatement{Token: tok, Value: value}
}

func (p *Parser) parseClass(tok lexer.Token) ast.Statement {
	p.advance() // consume 'class'
	if p.cur().Type != lexer.IDENTIFIER {
		p.errorf(p.cur().Pos, "invalid class name '%s'", p.cur().Literal)
		return nil
	}
	name := p.cur().Literal
	p.advance()
	var params []string
	if p.curIs(lexer.PARENTHESIS, "(") {
		p.advance()
		for {
			p.skipSoft()
			if p.curIs(lexer.PARENTHESIS, ")") {
				p.advance()
				break
			}
			if p.cur().Type == lexer.EOF {
				p.errorf(tok.Pos, "missing closing parenthesis in parameter list of class '%s'", name)
				return nil
			}
			if p.cur().Type != lexer.IDENTIFIER {
				p.errorf(p.cur().Pos, "invalid class parameter name '%s'", p.cur().Literal)
				return nil
			}
			params = append(params, p.cur().Literal)
			p.advance()
		}
	}
	open := p.cur()
	if !p.expect(lexer.CURLY, "{", "missing opening curly brace for class body") {
		return nil
	}
	stmt := &ast.ClassStatement{Token: tok, Name: name, Params: params}
	for {
		p.skipSeparators()
		if p.curIs(lexer.CURLY, "}") {
			p.advance()
			return stmt
		}
		if p.cur().Type == lexer.EOF {
			p.errorf(open.Pos, "missing closing curly brace")
			return nil
		}
		if !p.curIs(lexer.KEYWORD, "fn") {
			p.errorf(p.cur().Pos, "unexpected token '%s' in class body", p.cur().Literal)
			p.sync()
			continue
		}
		method := p.parseFunction(p.cur())
		if method == nil {
			return nil
		}
		stmt.Methods = append(stmt.Methods, method)
	}
}

func (p *Parser) parseSelfSet(tok lexer.Token) ast.Statement {
	p.advance() // consume 'self'
	if !p.curIs(lexer.KEYWORD, "set") {
		p.errorf(p.cur().Pos, "expected 'set' after 'self'")
		return nil
	}
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for self set() function") {
		return nil
	}
	name, ok := p.expectIdent("expected variable as first argument to self set() function")
	if !ok {
		return nil
	}
	p.skipSoft()
	value := p.parseValueExpression()
	if value == nil {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for self set() function") {
		return nil
	}
	return &ast.SelfSetStatement{Token: tok, Name: name, Value: value}
}

func (p *Parser) parseImport(tok lexer.Token) ast.Statement {
	p.advance()
	pathTok := p.cur()
	if pathTok.Type != lexer.STRING && pathTok.Type != lexer.IDENTIFIER {
		p.errorf(pathTok.Pos, "invalid argument '%s' passed to import", pathTok.Literal)
		return nil
	}
	path := p.parseValueExpression()
	if path == nil {
		return nil
	}
	return &ast.ImportStatement{Token: tok, Path: path}
}

func (p *Parser) parseFile(tok lexer.Token) ast.Statement {
	p.advance() // consume 'file'
	opTok := p.cur()
	if opTok.Type != lexer.KEYWORD || (opTok.Literal != "read" && opTok.Literal != "write" && opTok.Literal != "append") {
		p.errorf(opTok.Pos, "invalid file operation '%s'", opTok.Literal)
		return nil
	}
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for file function") {
		return nil
	}
	path := p.parseValueExpression()
	if path == nil {
		return nil
	}
	p.skipSoft()
	stmt := &ast.FileStatement{Token: tok, Op: opTok.Literal, Path: path}
	if opTok.Literal == "read" {
		target, ok := p.expectIdent("expected variable to read file contents into")
		if !ok {
			return nil
		}
		stmt.Target = target
	} else {
		content := p.parseValueExpression()
		if content == nil {
			return nil
		}
		stmt.Content = content
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for file function") {
		return nil
	}
	return stmt
}

func (p *Parser) parseSystem(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for system() function") {
		return nil
	}
	command := p.parseValueExpression()
	if command == nil {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for system() function") {
		return nil
	}
	return &ast.SystemStatement{Token: tok, Command: command}
}

func (p *Parser) parseStringOp(tok lexer.Token) ast.Statement {
	p.advance() // consume 'string'
	opTok := p.cur()
	valid := opTok.Literal == "upper" || opTok.Literal == "lower" || opTok.Literal == "trim" || opTok.Literal == "replace"
	if opTok.Type != lexer.KEYWORD || !valid {
		p.errorf(opTok.Pos, "invalid string function '%s'", opTok.Literal)
		return nil
	}
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for string function") {
		return nil
	}
	name, ok := p.expectIdent("expected string variable as first argument to string function")
	if !ok {
		return nil
	}
	stmt := &ast.StringOpStatement{Token: tok, Op: opTok.Literal, Name: name}
	if opTok.Literal == "replace" {
		p.skipSoft()
		old := p.parseValueExpression()
		if old == nil {
			return nil
		}
		p.skipSoft()
		repl := p.parseValueExpression()
		if repl == nil {
			return nil
		}
		stmt.Args = []ast.Expression{old, repl}
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for string function") {
		return nil
	}
	return stmt
}

func (p *Parser) parseListOp(tok lexer.Token) ast.Statement {
	p.advance() // consume 'list'
	opTok := p.cur()
	switch opTok.Literal {
	case "add", "remove", "get", "len", "pop", "set":
	default:
		p.errorf(opTok.Pos, "invalid list function '%s'", opTok.Literal)
		return nil
	}
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for list function") {
		return nil
	}
	name, ok := p.expectIdent("expected list variable as first argument to list function")
	if !ok {
		return nil
	}
	stmt := &ast.ListOpStatement{Token: tok, Op: opTok.Literal, Name: name}
	p.skipSoft()
	switch opTok.Literal {
	case "add":
		stmt.Value = p.parseValueExpression()
		if stmt.Value == nil {
			return nil
		}
	case "remove":
		stmt.Index = p.parseValueExpression()
		if stmt.Index == nil {
			return nil
		}
	case "len":
		target, ok := p.expectIdent("expected variable to return list length to")
		if !ok {
			return nil
		}
		stmt.Target = target
	case "get", "pop":
		stmt.Index = p.parseValueExpression()
		if stmt.Index == nil {
			return nil
		}
		p.skipSoft()
		target, ok := p.expectIdent("expected variable to return list value to")
		if !ok {
			return nil
		}
		stmt.Target = target
	case "set":
		stmt.Index = p.parseValueExpression()
		if stmt.Index == nil {
			return nil
		}
		p.skipSoft()
		stmt.Value = p.parseValueExpression()
		if stmt.Value == nil {
			return nil
		}
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for list function") {
		return nil
	}
	return stmt
}

func (p *Parser) parseDictOp(tok lexer.Token) ast.Statement {
	p.advance() // consume 'dict'
	opTok := p.cur()
	switch opTok.Literal {
	case "get", "set", "delete":
	default:
		p.errorf(opTok.Pos, "invalid dict function '%s'", opTok.Literal)
		return nil
	}
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for dict function") {
		return nil
	}
	name, ok := p.expectIdent("expected dict variable as first argument to dict function")
	if !ok {
		return nil
	}
	p.skipSoft()
	key := p.parseValueExpression()
	if key == nil {
		return nil
	}
	stmt := &ast.DictOpStatement{Token: tok, Op: opTok.Literal, Name: name, Key: key}
	p.skipSoft()
	switch opTok.Literal {
	case "get":
		target, ok := p.expectIdent("expected variable to return dict value to")
		if !ok {
			return nil
		}
		stmt.Target = target
	case "set":
		stmt.Value = p.parseValueExpression()
		if stmt.Value == nil {
			return nil
		}
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for dict function") {
		return nil
	}
	return stmt
}

func (p *Parser) parseAscii(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for ascii function") {
		return nil
	}
	name, ok := p.expectIdent("invalid argument passed to ascii function")
	if !ok {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for ascii function") {
		return nil
	}
	return &ast.AsciiStatement{Token: tok, Op: tok.Literal, Name: name}
}

func (p *Parser) parseCoerce(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for type conversion function") {
		return nil
	}
	name, ok := p.expectIdent("expected variable to convert value of")
	if !ok {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for type conversion function") {
		return nil
	}
	return &ast.CoerceStatement{Token: tok, Kind: tok.Literal, Name: name}
}

func (p *Parser) parseRandom(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for random() function") {
		return nil
	}
	target, ok := p.expectIdent("expected variable to return random value to")
	if !ok {
		return nil
	}
	p.skipSoft()
	low := p.parseValueExpression()
	if low == nil {
		return nil
	}
	p.skipSoft()
	high := p.parseValueExpression()
	if high == nil {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for random() function") {
		return nil
	}
	return &ast.RandomStatement{Token: tok, Target: target, Low: low, High: high}
}

func (p *Parser) parseSplit(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for split() function") {
		return nil
	}
	name, ok := p.expectIdent("invalid argument passed to split() function")
	if !ok {
		return nil
	}
	p.skipSoft()
	sep := p.parseValueExpression()
	if sep == nil {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for split() function") {
		return nil
	}
	return &ast.SplitStatement{Token: tok, Name: name, Separator: sep}
}

func (p *Parser) parseClassify(tok lexer.Token) ast.Statement {
	p.advance()
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for "+tok.Literal+"() function") {
		return nil
	}
	value := p.parseValueExpression()
	if value == nil {
		return nil
	}
	p.skipSoft()
	target, ok := p.expectIdent("expected variable as 2nd argument to " + tok.Literal + "() function")
	if !ok {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for "+tok.Literal+"() function") {
		return nil
	}
	return &ast.ClassifyStatement{Token: tok, Kind: tok.Literal, Value: value, Target: target}
}

// parseModifierStatement handles the @class and @class_variable decorator
// statements.
func (p *Parser) parseModifierStatement(tok lexer.Token) ast.Statement {
	switch tok.Literal {
	case "class":
		return p.parseNew(tok)
	case "class_variable":
		return p.parseMethodCall(tok)
	default:
		p.errorf(tok.Pos, "unknown modifier '@%s'", tok.Literal)
		p.advance()
		return nil
	}
}

func (p *Parser) parseNew(tok lexer.Token) ast.Statement {
	p.advance() // consume '@class'
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for @class() modifier") {
		return nil
	}
	class, ok := p.expectIdent("expected a class name as the argument for @class() modifier")
	if !ok {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for @class() modifier") {
		return nil
	}
	if !p.curIs(lexer.KEYWORD, "new") {
		p.errorf(p.cur().Pos, "expected 'new' after @class(%s)", class)
		return nil
	}
	p.advance()
	if !p.curIs(lexer.PARENTHESIS, "(") && !p.curIs(lexer.SQUARE, "[") {
		p.errorf(p.cur().Pos, "missing opening parenthesis for class new() function")
		return nil
	}
	args, ok := p.parseArgs()
	if !ok {
		return nil
	}
	target, ok := p.parseTarget()
	if !ok {
		return nil
	}
	return &ast.NewStatement{Token: tok, Class: class, Args: args, Target: target}
}

func (p *Parser) parseMethodCall(tok lexer.Token) ast.Statement {
	p.advance() // consume '@class_variable'
	if !p.expect(lexer.PARENTHESIS, "(", "missing opening parenthesis for @class_variable() modifier") {
		return nil
	}
	instance, ok := p.expectIdent("expected an instance name as the argument for @class_variable() modifier")
	if !ok {
		return nil
	}
	if !p.expect(lexer.PARENTHESIS, ")", "missing closing parenthesis for @class_variable() modifier") {
		return nil
	}
	if !p.curIs(lexer.KEYWORD, "call") {
		p.errorf(p.cur().Pos, "expected 'call' after @class_variable(%s)", instance)
		return nil
	}
	p.advance()
	method, ok := p.expectIdent("expected class method as call argument")
	if !ok {
		return nil
	}
	var args []ast.Expression
	if p.curIs(lexer.PARENTHESIS, "(") || p.curIs(lexer.SQUARE, "[") {
		args, ok = p.parseArgs()
		if !ok {
			return nil
		}
	}
	target, ok := p.parseTarget()
	if !ok {
		return nil
	}
	return &ast.MethodCallStatement{Token: tok, Instance: instance, Method: method, Args: args, Target: target}
}
