package toml

// toml 包实现了一个生产级的 TOML 解析器：基于游标的单遍递归下降实现，
// 构建显式 AST，在首个错误处终止并携带精确位置。
//
// 范围：
// - 裸键 / 引号键，基本 / 字面字符串及其多行变体（转义、\u/\U、折行）
// - 整数（0x/0o/0b 前缀、_ 分隔符）、浮点、布尔、日期字面量（仅词法识别）
// - 数组、内联表、[table] 与 [[array-of-tables]] 表头及点分路径
// - 保序表：键按首次插入顺序迭代，重复赋值原位覆盖
// - 确定性错误：label:line:column 定位，首个错误即中止，不返回部分树
//
// 非目标（设计如此）：
// - 注释保留
// - 格式化往返 / 序列化
// - 日期时间的日历分解
// - 流式解析
//
// 解析器不依赖任何共享全局状态，多个 goroutine 可对各自的输入并发解析。

// =========================
// AST Definitions
// =========================

type ValueKind string

var ValueKinds = struct {
	ValueString   ValueKind
	ValueInt      ValueKind
	ValueFloat    ValueKind
	ValueBool     ValueKind
	ValueDatetime ValueKind
	ValueTable    ValueKind
	ValueArray    ValueKind
}{
	ValueString:   "string",
	ValueInt:      "int",
	ValueFloat:    "float",
	ValueBool:     "bool",
	ValueDatetime: "datetime",
	ValueTable:    "table",
	ValueArray:    "array",
}

type Node interface {
	Kind() ValueKind
	Value() any
}

// -------- Table --------

// Entry is one key/value association of a Table.
type Entry struct {
	Key   string
	Value Node
}

// Table keeps its entries in first-insert order. Assigning an existing key
// replaces the value in place and keeps the original position.
type Table struct {
	Items []Entry
}

func NewTable() *Table {
	return &Table{}
}

func (*Table) Kind() ValueKind { return ValueKinds.ValueTable }

func (*Table) Value() any { return nil }

func (t *Table) Set(key string, n Node) {
	for i := range t.Items {
		if t.Items[i].Key == key {
			t.Items[i].Value = n
			return
		}
	}
	t.Items = append(t.Items, Entry{Key: key, Value: n})
}

func (t *Table) Get(key string) (Node, bool) {
	for i := range t.Items {
		if t.Items[i].Key == key {
			return t.Items[i].Value, true
		}
	}
	return nil, false
}

// Item returns the node bound to key, or nil when absent.
func (t *Table) Item(key string) Node {
	n, _ := t.Get(key)
	return n
}

func (t *Table) Len() int { return len(t.Items) }

func (t *Table) Keys() []string {
	keys := make([]string, len(t.Items))
	for i := range t.Items {
		keys[i] = t.Items[i].Key
	}
	return keys
}

// -------- Array --------

type Array struct {
	Elems []Node
}

func (v *Array) Kind() ValueKind { return ValueKinds.ValueArray }

func (v *Array) Value() any { return v.Elems }

func (v *Array) Append(n Node) {
	v.Elems = append(v.Elems, n)
}

// -------- Value --------

type Value struct {
	Type ValueKind
	V    any
}

func (v *Value) Kind() ValueKind { return v.Type }

func (v *Value) Value() any { return v.V }

// =========================
// Public API
// =========================

// Parse parses a complete TOML document and returns the root table. On
// failure the first error is returned and the root is nil.
func Parse(input string) (*Table, error) {
	return ParseNamed(input, "<string>")
}

// ParseNamed is Parse with a diagnostic label, normally a file name, that
// prefixes error positions. The label has no parsing semantics.
func ParseNamed(input, src string) (*Table, error) {
	p := &parser{cursor: newCursor(input), src: src}
	return p.parse()
}

// =========================
// Parser Implementation
// =========================

type parser struct {
	cursor
	src string
}

// parse is the document driver: it loops over top-level constructs and
// dispatches table headers and key-value sequences. A byte that starts no
// recognized construct ends the document.
func (p *parser) parse() (*Table, error) {
	root := NewTable()
	for !p.atEnd() {
		p.skipSpace()
		if p.atEnd() {
			break
		}
		c := p.peek()
		switch {
		case c == '#':
			p.skipComment()
		case c == '[':
			p.advance()
			if err := p.parseTable(root); err != nil {
				return nil, err
			}
		case isBareKeyChar(c):
			if err := p.parseKeyValue(root); err != nil {
				return nil, err
			}
		default:
			return root, nil
		}
	}
	return root, nil
}

// parseKeyValue consumes key-value lines into t until a table header or
// the end of input. Each pair must be the last thing on its line apart
// from trailing blanks and a comment.
func (p *parser) parseKeyValue(t *Table) error {
	for !p.atEnd() {
		p.skipSpace()
		if p.atEnd() {
			break
		}

		var key string
		var err error
		c := p.peek()
		switch {
		case isAlnum(c) || c == '_':
			key = p.parseBareKey()
		case c == '"':
			p.advance()
			key, err = p.parseBasicString()
			if err != nil {
				return err
			}
		case c == '\'':
			p.advance()
			key, err = p.parseLiteralString()
			if err != nil {
				return err
			}
		case c == '[':
			return nil
		case c == '#':
			p.skipComment()
			continue
		default:
			return p.errf(ErrSyntax, "unexpected token")
		}

		p.skipBlanks()
		if p.atEnd() {
			return p.errf(ErrSyntax, "unterminated key value pair")
		}
		if p.peek() != '=' {
			return p.errf(ErrSyntax, "unexpected token")
		}
		p.advance()

		p.skipBlanks()
		if p.atEnd() {
			return p.errf(ErrSyntax, "unterminated key value pair")
		}

		v, err := p.parseValue()
		if err != nil {
			return err
		}
		t.Set(key, v)

		p.skipBlanks()
		if p.atEnd() {
			break
		}
		if p.peek() == '#' {
			p.skipComment()
		}
		if p.peek() == '\r' {
			p.advance()
		}
		if p.atEnd() {
			break
		}
		if p.peek() != '\n' {
			return p.errf(ErrSyntax, "new line expected")
		}
		p.advance()
	}
	return nil
}

// =========================
// Value Parsing
// =========================

// parseValue dispatches on a 1-3 byte lookahead to the sub-parser for the
// value at the cursor.
func (p *parser) parseValue() (Node, error) {
	c := p.peek()
	switch {
	case p.hasPrefix(`"""`):
		p.advanceN(3)
		s, err := p.parseMultiLineBasicString()
		if err != nil {
			return nil, err
		}
		return &Value{Type: ValueKinds.ValueString, V: s}, nil
	case p.hasPrefix(`'''`):
		p.advanceN(3)
		s, err := p.parseMultiLineLiteralString()
		if err != nil {
			return nil, err
		}
		return &Value{Type: ValueKinds.ValueString, V: s}, nil
	case c == '"':
		p.advance()
		s, err := p.parseBasicString()
		if err != nil {
			return nil, err
		}
		return &Value{Type: ValueKinds.ValueString, V: s}, nil
	case c == '\'':
		p.advance()
		s, err := p.parseLiteralString()
		if err != nil {
			return nil, err
		}
		return &Value{Type: ValueKinds.ValueString, V: s}, nil
	case isDigit(c) || c == '+' || c == '-' || c == '.' || c == 'n' || c == 'i':
		return p.parseNumberOrDate()
	case c == 't' || c == 'f':
		return p.parseBool()
	case c == '[':
		p.advance()
		return p.parseArray()
	case c == '{':
		p.advance()
		return p.parseInlineTable()
	default:
		return nil, p.errf(ErrSyntax, "unexpected token")
	}
}

// parseArray builds an array from the values up to the closing bracket.
// Whitespace, comments and commas between values are skipped uniformly,
// so separators are optional.
func (p *parser) parseArray() (*Array, error) {
	arr := &Array{}
	for !p.atEnd() {
		c := p.peek()
		switch {
		case isSpace(c) || c == ',':
			p.advance()
		case c == '#':
			p.skipComment()
		case c == ']':
			p.advance()
			return arr, nil
		default:
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
	}
	return nil, p.errf(ErrSyntax, "unterminated array")
}

// parseInlineTable builds a single-line table literal. After every pair a
// comma continues and a closing brace terminates; a trailing comma before
// the brace is tolerated.
func (p *parser) parseInlineTable() (*Table, error) {
	t := NewTable()
	for !p.atEnd() {
		p.skipBlanks()
		if p.atEnd() {
			break
		}

		var key string
		var err error
		c := p.peek()
		switch {
		case isAlnum(c) || c == '_':
			key = p.parseBareKey()
		case c == '"':
			p.advance()
			key, err = p.parseBasicString()
			if err != nil {
				return nil, err
			}
		case c == '\'':
			p.advance()
			key, err = p.parseLiteralString()
			if err != nil {
				return nil, err
			}
		case c == '}':
			p.advance()
			return t, nil
		default:
			return nil, p.errf(ErrSyntax, "unexpected token")
		}

		p.skipBlanks()
		if p.atEnd() {
			return nil, p.errf(ErrSyntax, "unterminated key value pair")
		}
		if p.peek() != '=' {
			return nil, p.errf(ErrSyntax, "unexpected token")
		}
		p.advance()

		p.skipBlanks()
		if p.atEnd() {
			return nil, p.errf(ErrSyntax, "unterminated key value pair")
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		t.Set(key, v)

		p.skipBlanks()
		if p.atEnd() {
			break
		}
		switch p.peek() {
		case ',':
			p.advance()
		case '}':
			p.advance()
			return t, nil
		default:
			return nil, p.errf(ErrSyntax, "unexpected token")
		}
	}
	return nil, p.errf(ErrSyntax, "unterminated inline table")
}

// =========================
// Table Headers
// =========================

// parseTable consumes a [table] or [[array-of-tables]] header after the
// opening bracket, resolves the dotted path and parses the body that
// follows into the resolved table.
func (p *parser) parseTable(root *Table) error {
	isArray := false
	if !p.atEnd() && p.peek() == '[' {
		isArray = true
		p.advance()
	}

	var path []string
	for {
		if p.atEnd() {
			return p.errf(ErrSyntax, "unterminated table header")
		}
		c := p.peek()
		if c == ' ' || c == '\t' {
			p.skipBlanks()
			continue
		}
		if c == ']' {
			if !isArray {
				p.advance()
				break
			}
			if !p.hasPrefix("]]") {
				return p.errf(ErrSyntax, "unexpected token")
			}
			p.advanceN(2)
			break
		}

		var part string
		var err error
		switch {
		case isAlnum(c) || c == '_':
			part = p.parseBareKey()
		case c == '"':
			p.advance()
			part, err = p.parseBasicString()
		case c == '\'':
			p.advance()
			part, err = p.parseLiteralString()
		default:
			return p.errf(ErrSyntax, "unexpected token")
		}
		if err != nil {
			return err
		}
		path = append(path, part)

		p.skipBlanks()
		if !p.atEnd() && p.peek() == '.' {
			p.advance()
		}
	}

	if len(path) == 0 {
		return p.errf(ErrSyntax, "empty table name")
	}

	for !p.atEnd() && (p.peek() == ' ' || p.peek() == '\t' || p.peek() == '\r') {
		p.advance()
	}
	if !p.atEnd() && p.peek() != '\n' {
		return p.errf(ErrSyntax, "new line expected")
	}

	target, err := p.walkTablePath(root, path, isArray)
	if err != nil {
		return err
	}
	return p.parseKeyValue(target)
}

// descendTablePart enters the table named by one path part, materializing
// it when absent. An array at the part names the last element of an
// array-of-tables; anything else already bound to the part is a conflict.
func (p *parser) descendTablePart(t *Table, part string) (*Table, error) {
	n, ok := t.Get(part)
	if !ok {
		next := NewTable()
		t.Set(part, next)
		return next, nil
	}
	switch v := n.(type) {
	case *Table:
		return v, nil
	case *Array:
		if len(v.Elems) > 0 {
			if last, ok := v.Elems[len(v.Elems)-1].(*Table); ok {
				return last, nil
			}
		}
		return nil, p.errf(ErrSyntax, "key %q already defined and is not a table", part)
	default:
		return nil, p.errf(ErrSyntax, "key %q already defined and is not a table", part)
	}
}

// walkTablePath resolves a header path to the table the following body
// writes into. A plain header descends every part; an array-of-tables
// header descends all but the last part, then appends a fresh table to
// the array bound to the last part, creating the array on first use.
func (p *parser) walkTablePath(root *Table, path []string, isArray bool) (*Table, error) {
	t := root
	if !isArray {
		for _, part := range path {
			next, err := p.descendTablePart(t, part)
			if err != nil {
				return nil, err
			}
			t = next
		}
		return t, nil
	}

	for _, part := range path[:len(path)-1] {
		next, err := p.descendTablePart(t, part)
		if err != nil {
			return nil, err
		}
		t = next
	}

	last := path[len(path)-1]
	n, ok := t.Get(last)
	if !ok {
		arr := &Array{}
		elem := NewTable()
		arr.Append(elem)
		t.Set(last, arr)
		return elem, nil
	}
	arr, ok := n.(*Array)
	if !ok {
		return nil, p.errf(ErrSyntax, "key %q already defined and is not an array", last)
	}
	elem := NewTable()
	arr.Append(elem)
	return elem, nil
}
