// Package dijkstra computes single-source shortest paths over weighted
// directed graphs, using a d-ary heap priority queue as the frontier.
//
// It is both a usable algorithm and the canonical embedding of the dheap
// package: relaxing an edge performs an in-place decrease-key on the queued
// vertex instead of inserting duplicates, so each vertex is popped exactly
// once.
//
// Basic usage:
//
//	g := dijkstra.Graph{
//	    Vertices: []string{"A", "B", "C"},
//	    Edges: []dijkstra.Edge{
//	        {From: "A", To: "B", Weight: 1},
//	        {From: "B", To: "C", Weight: 2},
//	        {From: "A", To: "C", Weight: 9},
//	    },
//	}
//
//	result, err := dijkstra.ShortestPaths(g, "A", 4)
//	if err != nil {
//	    // unknown source or negative edge weight
//	}
//	fmt.Println(result.Distances["C"]) // 3
//	fmt.Println(result.Path("C"))      // [A B C]
//
// Graph and Edge carry JSON tags, so graphs can be loaded directly from
// files with encoding/json.
package dijkstra
