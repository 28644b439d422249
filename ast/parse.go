// Package ast parses regular expressions into abstract syntax trees and
// renders those trees in a human-readable form.
package ast

// A Node is one node of a parsed regular expression. The set of
// implementations is closed: Char, Seq, Or, Star, Plus, Question and Group.
type Node interface {
	label() string
	children() []Node
}

// Char is a single literal character.
type Char rune

// Seq is an ordered run of subexpressions matched left to right. It is
// never empty and never has a single element; Parse collapses those cases.
type Seq []Node

// Or is a binary alternation. Left is tried before Right. Chains like
// a|b|c right-associate into Or(a, Or(b, c)).
type Or struct {
	Left, Right Node
}

// Star matches its content zero or more times.
type Star struct {
	Content Node
}

// Plus matches its content one or more times.
type Plus struct {
	Content Node
}

// Question matches its content zero or one times.
type Question struct {
	Content Node
}

// Group is a parenthesized subexpression. It is kept as an explicit node
// so that repetition operators bind to the whole group.
type Group struct {
	Content Node
}

// Parse converts a regular expression to its syntax tree. The syntax
// covers literal characters, '|' alternation, '(' ')' grouping, the
// postfix operators '*', '+' and '?', and '\' escaping the next character.
// An empty pattern, or an empty subexpression such as "()" or "a|", is an
// error. All returned errors implement ParseError.
func Parse(pattern string) (Node, error) {
	p := parser{pattern: []rune(pattern), src: pattern}
	tree, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.pattern) {
		// parseAlternation only stops early on an unmatched ')'.
		return nil, &UnopenedGroupError{Location: p.pos, Source: pattern}
	}
	if tree == nil {
		return nil, &EmptyPatternError{Location: 0, Source: pattern}
	}
	return tree, nil
}
