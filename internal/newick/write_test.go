package newick

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daryltucker/reroot/internal/model"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"scenario tree", "(A:1,B:1,(C:1,D:1):1);", "(A:1,B:1,(C:1,D:1):1);"},
		{"no lengths", "(A,B,C);", "(A,B,C);"},
		{"shortest numbers", "(A:1.50,B:2.0,C:0.000001);", "(A:1.5,B:2,C:1e-06);"},
		{"negative length", "(A:-1,B:1e-3);", "(A:-1,B:0.001);"},
		{"support values", "((A,B)95:0.1,C);", "((A,B)95:0.1,C);"},
		{"internal labels", "((A,B)X,C)Root;", "((A,B)X,C)Root;"},
		{"quoted numeric internal label", "((A,B)'95',C);", "((A,B)'95',C);"},
		{"quoting", "('Homo sapiens':1,'it''s','a,b','x[1]',plain_name);", "('Homo sapiens':1,'it''s','a,b','x[1]',plain_name);"},
		{"needless quotes dropped", "('A','B');", "(A,B);"},
		{"comments and whitespace dropped", "( A [x] , B ) ;", "(A,B);"},
		{"root length kept", "(A,B):2;", "(A,B):2;"},
		{"single leaf", "A;", "A;"},
		{"anonymous leaf", "('':1,A,(B,'')X);", "('':1,A,(B,'')X);"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, Format(tree))
		})
	}
}

func TestFormatBuiltTree(t *testing.T) {
	t.Parallel()

	tree := model.New()
	root := tree.AddClade(model.NoNode, model.Clade{})
	tree.AddClade(root, model.Clade{Label: "tab\tname", Length: model.Float(0.25)})
	inner := tree.AddClade(root, model.Clade{Label: "1e5", Confidence: model.Float(80)})
	tree.AddClade(inner, model.Clade{Label: "B"})
	tree.AddClade(root, model.Clade{Confidence: model.Float(0.9)})

	require.Equal(t, "('tab\tname':0.25,(B)'1e5',0.9);", Format(tree))
	require.Equal(t, ";", Format(model.New()))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"(A:1,B:1,(C:1,D:1):1);",
		"((A:0.1,B:0.2)90:0.3,(C:0.4,'D d':0.5)'7':0.6,E)Root;",
		"(((('it''s':1e-9,B),C),D),E);",
		"[&R] ( A , ( B , C ) 0.5 ) ;",
		"((A)B)C:3;",
		"('':1,A:1,B:1);",
	}
	for _, in := range inputs {
		first, err := Parse(in)
		require.NoError(t, err, in)
		once := Format(first)

		second, err := Parse(once)
		require.NoError(t, err, once)
		require.Equal(t, once, Format(second))
		require.Equal(t, first.LeafLabels(), second.LeafLabels())
	}
}

func TestWriterWriteTree(t *testing.T) {
	t.Parallel()

	tree, err := Parse("(A:1,B:1);")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteTree(tree))
	require.NoError(t, w.WriteTree(tree))
	require.Equal(t, "(A:1,B:1);\n(A:1,B:1);\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterReportsIOErrors(t *testing.T) {
	t.Parallel()

	tree, err := Parse("(A,B);")
	require.NoError(t, err)
	require.EqualError(t, NewWriter(failingWriter{}).WriteTree(tree), "disk full")
}
