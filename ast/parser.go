package ast

// The grammar, from lowest to highest precedence:
//
//	Alternation   := Concatenation ('|' Concatenation)*
//	Concatenation := Repetition*
//	Repetition    := Atom ('*' | '+' | '?')?
//	Atom          := Char | '\' AnyChar | '(' Alternation ')'
//
// One method per rule; the cursor is a rune index into the pattern, so
// error locations count runes, not bytes.
type parser struct {
	pattern []rune
	src     string
	pos     int
}

// parseAlternation returns nil, nil for an empty expression at the end of
// input or before ')'; the caller decides whether that is an error. An
// empty branch next to a '|' is always an error.
func (p *parser) parseAlternation() (Node, error) {
	branch, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	var branches []Node
	for p.pos < len(p.pattern) && p.pattern[p.pos] == '|' {
		if branch == nil {
			return nil, &EmptyPatternError{Location: p.pos, Source: p.src}
		}
		branches = append(branches, branch)
		p.pos++
		if branch, err = p.parseConcatenation(); err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, &EmptyPatternError{Location: p.pos, Source: p.src}
		}
	}
	// a|b|c becomes Or(a, Or(b, c)): fold the branches from the right.
	tree := branch
	for i := len(branches) - 1; i >= 0; i-- {
		tree = Or{Left: branches[i], Right: tree}
	}
	return tree, nil
}

func (p *parser) parseConcatenation() (Node, error) {
	var parts []Node
	for p.pos < len(p.pattern) {
		if c := p.pattern[p.pos]; c == '|' || c == ')' {
			break
		}
		part, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	switch len(parts) {
	case 0:
		return nil, nil
	case 1:
		return parts[0], nil
	}
	return Seq(parts), nil
}

func (p *parser) parseRepetition() (Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	// At most one postfix operator binds here; a second one in a row falls
	// through to parseAtom on the next iteration and is rejected there.
	if p.pos < len(p.pattern) {
		switch p.pattern[p.pos] {
		case '*':
			p.pos++
			return Star{Content: atom}, nil
		case '+':
			p.pos++
			return Plus{Content: atom}, nil
		case '?':
			p.pos++
			return Question{Content: atom}, nil
		}
	}
	return atom, nil
}

func (p *parser) parseAtom() (Node, error) {
	switch c := p.pattern[p.pos]; c {
	case '*', '+', '?':
		return nil, &DanglingRepetitionError{Location: p.pos, Source: p.src}
	case '(':
		open := p.pos
		p.pos++
		inner, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.pattern) {
			return nil, &UnclosedGroupError{Location: open, Source: p.src}
		}
		p.pos++ // the ')'
		if inner == nil {
			return nil, &EmptyPatternError{Location: open, Source: p.src}
		}
		return Group{Content: inner}, nil
	case '\\':
		if p.pos+1 >= len(p.pattern) {
			return nil, &DanglingEscapeError{Location: p.pos, Source: p.src}
		}
		p.pos += 2
		return Char(p.pattern[p.pos-1]), nil
	default:
		p.pos++
		return Char(c), nil
	}
}
