package ast

import "strings"

func (c Char) label() string   { return "Char(" + string(rune(c)) + ")" }
func (Seq) label() string      { return "Seq" }
func (Or) label() string       { return "Or" }
func (Star) label() string     { return "Star" }
func (Plus) label() string     { return "Plus" }
func (Question) label() string { return "Question" }
func (Group) label() string    { return "Group" }

func (Char) children() []Node       { return nil }
func (s Seq) children() []Node      { return s }
func (o Or) children() []Node       { return []Node{o.Left, o.Right} }
func (s Star) children() []Node     { return []Node{s.Content} }
func (p Plus) children() []Node     { return []Node{p.Content} }
func (q Question) children() []Node { return []Node{q.Content} }
func (g Group) children() []Node    { return []Node{g.Content} }

// Render draws the tree with branch connectors, one node per line. The
// root starts at column 0 and there is no trailing newline. Output is
// byte-identical across calls for the same tree.
func Render(n Node) string {
	var b strings.Builder
	render(&b, n, "")
	return b.String()
}

// render writes n's label, then each child on its own line below it.
// prefix is the accumulated indentation for n's children: "│ " segments
// where an ancestor still has siblings to come, "  " where it does not.
func render(b *strings.Builder, n Node, prefix string) {
	b.WriteString(n.label())
	kids := n.children()
	for i, kid := range kids {
		b.WriteByte('\n')
		b.WriteString(prefix)
		if i < len(kids)-1 {
			b.WriteString("├─")
			render(b, kid, prefix+"│ ")
		} else {
			b.WriteString("└─")
			render(b, kid, prefix+"  ")
		}
	}
}
