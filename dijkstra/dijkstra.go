package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/davidvella/dheap"
)

// Unreachable is the distance reported for vertices that cannot be reached
// from the source.
const Unreachable = math.MaxInt

var (
	ErrUnknownSource  = errors.New("source vertex not in graph")
	ErrUnknownVertex  = errors.New("edge references a vertex not in graph")
	ErrNegativeWeight = errors.New("edge weights must be non-negative")
)

// Graph is a weighted directed graph. The JSON tags match the interchange
// format used by graph files.
type Graph struct {
	Vertices []string `json:"vertices"`
	Edges    []Edge   `json:"edges"`
}

// Edge is a weighted directed edge between two named vertices.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// Result holds the shortest-path tree computed by ShortestPaths.
type Result struct {
	// Source is the vertex the distances are measured from.
	Source string
	// Distances maps every vertex to its shortest distance from Source,
	// or Unreachable.
	Distances map[string]int
	// Predecessors maps each vertex to the previous vertex on its shortest
	// path. The source and unreachable vertices have no entry.
	Predecessors map[string]string
}

type arc struct {
	to     string
	weight int
}

// ShortestPaths runs Dijkstra's algorithm from source over g using a d-ary
// heap as the frontier. Relaxations update the queued distance in place, so
// every vertex is popped exactly once.
//
// Arity 4 is a good default: the workload is dominated by decrease-key, which
// a wider heap makes cheaper.
func ShortestPaths(g Graph, source string, d int) (Result, error) {
	adjacency := make(map[string][]arc, len(g.Vertices))
	for _, v := range g.Vertices {
		adjacency[v] = nil
	}
	if _, ok := adjacency[source]; !ok {
		return Result{}, fmt.Errorf("vertex %q: %w", source, ErrUnknownSource)
	}
	for _, e := range g.Edges {
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrNegativeWeight)
		}
		if _, ok := adjacency[e.From]; !ok {
			return Result{}, fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownVertex)
		}
		if _, ok := adjacency[e.To]; !ok {
			return Result{}, fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownVertex)
		}
		adjacency[e.From] = append(adjacency[e.From], arc{to: e.To, weight: e.Weight})
	}

	pq, err := dheap.New[string](d, dheap.Min[int]())
	if err != nil {
		return Result{}, fmt.Errorf("create frontier: %w", err)
	}

	distances := make(map[string]int, len(g.Vertices))
	predecessors := make(map[string]string)

	for v := range adjacency {
		distance := Unreachable
		if v == source {
			distance = 0
		}
		distances[v] = distance
		if err := pq.Insert(v, distance); err != nil {
			return Result{}, fmt.Errorf("seed frontier with %q: %w", v, err)
		}
	}

	for !pq.IsEmpty() {
		current, distance, _ := pq.Pop()
		if distance == Unreachable {
			// Everything left in the frontier is disconnected.
			break
		}

		for _, a := range adjacency[current] {
			candidate := distance + a.weight
			if candidate >= distances[a.to] {
				continue
			}
			distances[a.to] = candidate
			predecessors[a.to] = current
			if pq.Contains(a.to) {
				// Decrease-key: the neighbor just became more important.
				if err := pq.IncreasePriority(a.to, candidate); err != nil {
					return Result{}, fmt.Errorf("relax %q: %w", a.to, err)
				}
			}
		}
	}

	return Result{
		Source:       source,
		Distances:    distances,
		Predecessors: predecessors,
	}, nil
}

// Path reconstructs the shortest path from the result's source to target.
// Returns nil when target is unreachable or unknown.
func (r Result) Path(target string) []string {
	if _, ok := r.Distances[target]; !ok {
		return nil
	}
	if target != r.Source {
		if _, ok := r.Predecessors[target]; !ok {
			return nil
		}
	}

	var reversed []string
	current := target
	for {
		reversed = append(reversed, current)
		if current == r.Source {
			break
		}
		current = r.Predecessors[current]
	}

	path := make([]string, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}
	return path
}
