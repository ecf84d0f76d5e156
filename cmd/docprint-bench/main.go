// docprint-bench is a standalone throughput benchmark for the document
// layout engine, for comparing builds outside of "docprint bench".
package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/relsqui/prettydoc/pkg/ppbench"
)

func main() {
	docs := flag.Int("docs", 500, "number of documents of each shape to generate")
	branching := flag.Int("branching", 10, "branching factor controlling nesting depth / list width")
	flag.Parse()

	fmt.Println("Document Layout Benchmark")
	fmt.Println("=========================")
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Printf("Corpus: %d docs/shape, branching %d\n", *docs, *branching)
	fmt.Println()

	fmt.Println("Running benchmarks...")
	fmt.Println()
	results := ppbench.Run(*docs, *branching)

	fmt.Println("SUMMARY")
	fmt.Println("=======")
	for _, r := range results {
		fmt.Println(r)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Println()
	fmt.Printf("Peak heap allocation: %d MB\n", m.HeapSys/(1024*1024))
	fmt.Printf("Total allocations: %d MB\n", m.TotalAlloc/(1024*1024))
}
