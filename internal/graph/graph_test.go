package graph_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/graph"
)

func squaredError() (w, loss *autodiff.Value) {
	x := autodiff.Constant(1)
	y := autodiff.Constant(2)
	w = autodiff.Param(1)
	loss = w.Mul(x).Sub(y).Pow(2)
	return w, loss
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		build func() *autodiff.Value
		want  graph.Stats
	}{
		{
			name: "squared error",
			build: func() *autodiff.Value {
				_, loss := squaredError()
				return loss
			},
			want: graph.Stats{Nodes: 4, Leaves: 1, Edges: 3, Depth: 3},
		},
		{
			name: "diamond",
			build: func() *autodiff.Value {
				a := autodiff.Param(2)
				b := a.Mul(autodiff.Constant(2))
				c := a.Mul(autodiff.Constant(3)).Exp()
				return b.Mul(c)
			},
			want: graph.Stats{Nodes: 5, Leaves: 1, Edges: 5, Depth: 3},
		},
		{
			name: "shared operand",
			build: func() *autodiff.Value {
				c := autodiff.Param(3)
				return c.Mul(c)
			},
			want: graph.Stats{Nodes: 2, Leaves: 1, Edges: 2, Depth: 1},
		},
		{
			name:  "single leaf",
			build: func() *autodiff.Value { return autodiff.Param(1) },
			want:  graph.Stats{Nodes: 1, Leaves: 1},
		},
		{
			name:  "nil",
			build: func() *autodiff.Value { return nil },
			want:  graph.Stats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, graph.Summarize(tt.build())); diff != "" {
				t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteDOT(t *testing.T) {
	w, loss := squaredError()
	require.NoError(t, loss.Backward())

	var buf bytes.Buffer
	require.NoError(t, graph.WriteDOT(&buf, loss))
	dot := buf.String()

	assert.True(t, strings.HasPrefix(dot, "digraph autodiff {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `{ param | data 1 | grad -2 }`)
	assert.Contains(t, dot, `{ pow | data 1 | grad 1 }`)
	assert.Contains(t, dot, `{ sub | data -1 | grad -2 }`)
	assert.Contains(t, dot, `{ mul | data 1 | grad -2 }`)
	assert.Equal(t, 3, strings.Count(dot, " -> "))
	assert.Contains(t, dot, `"`+w.ID().String()+`" -> `)
}

func TestWriteDOT_BeforeBackward(t *testing.T) {
	_, loss := squaredError()

	var buf bytes.Buffer
	require.NoError(t, graph.WriteDOT(&buf, loss))
	assert.Contains(t, buf.String(), `{ param | data 1 | grad - }`)
}

func TestWriteDOT_Nil(t *testing.T) {
	err := graph.WriteDOT(&bytes.Buffer{}, nil)
	assert.ErrorIs(t, err, autodiff.ErrNilOutput)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteDOT_WriterError(t *testing.T) {
	_, loss := squaredError()
	assert.Error(t, graph.WriteDOT(failingWriter{}, loss))
}
