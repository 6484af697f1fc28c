package sino_test

import (
	"fmt"
	"time"

	"github.com/zoscra/pimst-solver/sino"
)

// ExampleExplore runs a one-shot search over a tiny triangle instance.
func ExampleExplore() {
	costs := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}

	res, err := sino.Explore(costs, sino.Random, sino.DefaultConfig(), 0, time.Time{})
	if err != nil {
		fmt.Println("explore:", err)
		return
	}

	fmt.Println(res.Status, res.Tour)
	// Output: done [0 1 2]
}

// ExampleExplorer_Explore drives a multi-start ensemble over one shared
// instance and keeps the best completed tour.
func ExampleExplorer_Explore() {
	costs := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}

	e, err := sino.New(costs, sino.Random, sino.DefaultConfig())
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	done := 0
	for start := 0; start < len(costs); start++ {
		res, err := e.Explore(start, time.Time{})
		if err != nil {
			fmt.Println("explore:", err)
			return
		}
		if res.Status == sino.Done {
			done++
		}
	}

	fmt.Println("completed:", done)
	// Output: completed: 3
}
