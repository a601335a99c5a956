// Package coverage_test validates the bounded-radius reachability
// computation: input validation, the self-coverage invariant, inclusive
// radius bounds, and shortest-path (not hop-count) semantics.
package coverage_test

import (
	"testing"

	"github.com/Eashwar-S/rpp-scenarios/coverage"
	"github.com/Eashwar-S/rpp-scenarios/graph"
)

func TestCompute_NilGraph(t *testing.T) {
	if _, err := coverage.Compute(nil, 1.0); err != coverage.ErrNilGraph {
		t.Fatalf("err = %v; want ErrNilGraph", err)
	}
}

func TestCompute_NegativeRadius(t *testing.T) {
	g := graph.NewGraph(2)
	if _, err := coverage.Compute(g, -0.5); err != coverage.ErrNegativeRadius {
		t.Fatalf("err = %v; want ErrNegativeRadius", err)
	}
}

func TestCompute_EveryNodeCoversItself(t *testing.T) {
	// Even with radius 0 each vertex is at distance 0 from itself.
	g := graph.NewGraph(5)
	_ = g.AddEdge(1, 2, 2.0, true)
	_ = g.AddEdge(2, 3, 2.0, false)

	cov, err := coverage.Compute(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range g.Vertices() {
		if !cov[id].Contains(id) {
			t.Errorf("cov[%d] does not contain %d", id, id)
		}
		if len(cov[id]) != 1 {
			t.Errorf("radius 0: cov[%d] = %v; want only itself", id, cov[id])
		}
	}
}

func TestCompute_InclusiveRadiusBound(t *testing.T) {
	// 1—2 at exactly the radius: distance == radius still covers.
	g := graph.NewGraph(2)
	_ = g.AddEdge(1, 2, 5.0, true)

	cov, err := coverage.Compute(g, 5.0)
	if err != nil {
		t.Fatal(err)
	}
	if !cov[1].Contains(2) || !cov[2].Contains(1) {
		t.Errorf("distance == radius must cover: cov[1]=%v cov[2]=%v", cov[1], cov[2])
	}
}

func TestCompute_ShortestPathNotHops(t *testing.T) {
	// Path 1—2—3 costs 3, direct 1—3 costs 5. With radius 3 vertex 3 is
	// reachable from 1 only via the two-hop route.
	g := graph.NewGraph(3)
	_ = g.AddEdge(1, 2, 1.0, true)
	_ = g.AddEdge(2, 3, 2.0, true)
	_ = g.AddEdge(1, 3, 5.0, false)

	cov, err := coverage.Compute(g, 3.0)
	if err != nil {
		t.Fatal(err)
	}
	if !cov[1].Contains(3) {
		t.Error("cov[1] missing 3: shortest path 1-2-3 costs 3 <= radius")
	}
	// With a tighter radius the two-hop route no longer fits.
	cov, err = coverage.Compute(g, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if cov[1].Contains(3) {
		t.Error("cov[1] contains 3 at radius 2.5; shortest distance is 3")
	}
}

func TestCompute_RequirednessIrrelevant(t *testing.T) {
	// A non-required edge carries coverage exactly like a required one.
	g := graph.NewGraph(2)
	_ = g.AddEdge(1, 2, 1.0, false)

	cov, err := coverage.Compute(g, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if !cov[1].Contains(2) {
		t.Error("non-required edge ignored by coverage")
	}
}

func TestCompute_DisconnectedComponents(t *testing.T) {
	g := graph.NewGraph(4)
	_ = g.AddEdge(1, 2, 1.0, true)
	_ = g.AddEdge(3, 4, 1.0, true)

	cov, err := coverage.Compute(g, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	if cov[1].Contains(3) || cov[1].Contains(4) {
		t.Errorf("cov[1] = %v; crosses components", cov[1])
	}
	if len(cov[3]) != 2 {
		t.Errorf("cov[3] = %v; want {3,4}", cov[3])
	}
}

func TestCompute_IsolatedVertices(t *testing.T) {
	// Declared vertices without any incident edge still get a singleton set.
	g := graph.NewGraph(3)
	_ = g.AddEdge(1, 2, 1.0, true)

	cov, err := coverage.Compute(g, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(cov[3]) != 1 || !cov[3].Contains(3) {
		t.Errorf("cov[3] = %v; want {3}", cov[3])
	}
}

func TestCompute_EndToEndExampleRadius(t *testing.T) {
	// The 4-vertex reference instance: capacity 10, factor 2 => radius 5.
	g := graph.NewGraph(4)
	_ = g.AddEdge(1, 2, 3.0, true)
	_ = g.AddEdge(3, 4, 4.0, true)
	_ = g.AddEdge(1, 3, 2.0, false)
	_ = g.AddEdge(2, 4, 2.0, false)

	cov, err := coverage.Compute(g, 5.0)
	if err != nil {
		t.Fatal(err)
	}
	// From 1: itself (0), 2 (3), 3 (2), 4 (via 2: 3+2=5, via 3: 2+4=6 -> 5).
	for _, want := range []int{1, 2, 3, 4} {
		if !cov[1].Contains(want) {
			t.Errorf("cov[1] = %v; missing %d", cov[1], want)
		}
	}
}
