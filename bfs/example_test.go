package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathcost/bfs"
	"github.com/katalvlaran/pathcost/core"
)

// ExampleBFS lists hop depths from A in a small directed graph.
func ExampleBFS() {
	g, _ := core.FromAdjacency(map[string][]core.Arc{
		"A": {{To: "B", Weight: 5}, {To: "C", Weight: 2}},
		"C": {{To: "D", Weight: 4}},
		"E": {{To: "A", Weight: 1}},
	})

	res, _ := bfs.BFS(g, "A")
	for _, id := range res.Order {
		fmt.Println(id, res.Depth[id])
	}
	fmt.Println("E reached:", res.Reached("E"))
	// Output:
	// A 0
	// B 1
	// C 1
	// D 2
	// E reached: false
}
