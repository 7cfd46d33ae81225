// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qft/bfs"
	"github.com/katalvlaran/qft/core"
)

// chainGraph builds a → b → c → d with a side branch a -knows-> e.
func chainGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, g.AddNode(core.Node{ID: id}))
	}
	require.NoError(t, g.AddEdge(core.Edge{Source: "a", Target: "b", Relation: "next"}))
	require.NoError(t, g.AddEdge(core.Edge{Source: "b", Target: "c", Relation: "next"}))
	require.NoError(t, g.AddEdge(core.Edge{Source: "c", Target: "d", Relation: "next"}))
	require.NoError(t, g.AddEdge(core.Edge{Source: "a", Target: "e", Relation: "knows"}))
	require.NoError(t, g.AddEdge(core.Edge{Source: "d", Target: "a", Relation: "next"}))

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "a")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := chainGraph(t)
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	_, err = bfs.BFS(g, "a", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, "a", bfs.WithRelations())
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(chainGraph(t), "a")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "e", "c", "d"}, res.Order)
	require.Equal(t, map[string]int{"a": 0, "b": 1, "e": 1, "c": 2, "d": 3}, res.Depth)
	require.Equal(t, "c", res.Parent["d"])

	path, err := res.PathTo("d")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d"}, path)

	path, err = res.PathTo("a")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, path)
}

func TestBFS_Direction(t *testing.T) {
	// e has no outgoing edges.
	res, err := bfs.BFS(chainGraph(t), "e")
	require.NoError(t, err)
	require.Equal(t, []string{"e"}, res.Order)
	_, err = res.PathTo("a")
	require.Error(t, err)
}

func TestBFS_MaxDepthAndRelations(t *testing.T) {
	g := chainGraph(t)

	res, err := bfs.BFS(g, "a", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "e"}, res.Order)

	res, err = bfs.BFS(g, "a", bfs.WithRelations("next"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d"}, res.Order)

	res, err = bfs.BFS(g, "a", bfs.WithFilterEdge(func(e core.Edge) bool { return e.Target != "b" }))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "e"}, res.Order)
}

func TestBFS_DanglingTargetsSkipped(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "a"}))
	require.NoError(t, g.AddEdge(core.Edge{Source: "a", Target: "ghost", Relation: "r"}))

	reached, err := bfs.Reachable(g, "a")
	require.NoError(t, err)
	require.Empty(t, reached)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	res, err := bfs.BFS(chainGraph(t), "a", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "e" {
			return stop
		}

		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []string{"a", "b", "e"}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(chainGraph(t), "a", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
