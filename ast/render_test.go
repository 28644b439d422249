package ast

import "testing"

type renderCase struct {
	Name  string
	Regex string
	Want  string
}

var renderCases = []renderCase{
	{
		Name:  "Leaf",
		Regex: "a",
		Want:  "Char(a)",
	},
	{
		Name:  "Right-associated alternation",
		Regex: "a|b|c",
		Want: "Or\n" +
			"├─Char(a)\n" +
			"└─Or\n" +
			"  ├─Char(b)\n" +
			"  └─Char(c)",
	},
	{
		Name:  "Sequence",
		Regex: "abc",
		Want: "Seq\n" +
			"├─Char(a)\n" +
			"├─Char(b)\n" +
			"└─Char(c)",
	},
	{
		Name:  "Unary wrappers use the last-sibling connector",
		Regex: "(a)*",
		Want: "Star\n" +
			"└─Group\n" +
			"  └─Char(a)",
	},
	{
		Name:  "Continuation bar under a non-last sibling",
		Regex: "(a|b)+c",
		Want: "Seq\n" +
			"├─Plus\n" +
			"│ └─Group\n" +
			"│   └─Or\n" +
			"│     ├─Char(a)\n" +
			"│     └─Char(b)\n" +
			"└─Char(c)",
	},
	{
		Name:  "Deep nesting mixes bars and padding",
		Regex: "a(b|cd*)?|e",
		Want: "Or\n" +
			"├─Seq\n" +
			"│ ├─Char(a)\n" +
			"│ └─Question\n" +
			"│   └─Group\n" +
			"│     └─Or\n" +
			"│       ├─Char(b)\n" +
			"│       └─Seq\n" +
			"│         ├─Char(c)\n" +
			"│         └─Star\n" +
			"│           └─Char(d)\n" +
			"└─Char(e)",
	},
}

func TestRender(t *testing.T) {
	for _, tc := range renderCases {
		tree, err := Parse(tc.Regex)
		if err != nil {
			t.Errorf("%s: Parse(%q) failed: %v", tc.Name, tc.Regex, err)
			continue
		}
		if got := Render(tree); got != tc.Want {
			t.Errorf("%s: Render(Parse(%q)) =\n%s\nwant:\n%s", tc.Name, tc.Regex, got, tc.Want)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	tree, err := Parse("a(b|cd*)?|e")
	if err != nil {
		t.Fatal(err)
	}
	first := Render(tree)
	for i := 0; i < 10; i++ {
		if got := Render(tree); got != first {
			t.Fatalf("run %d differs:\n%s\nwant:\n%s", i, got, first)
		}
	}
}
