package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
	"github.com/Khoshkhah/routing-engine/pkg/loader"
	"github.com/Khoshkhah/routing-engine/pkg/query"
)

var (
	shortcutsPath = flag.String("shortcuts", "", "path to the shortcuts CSV file")
	edgesPath     = flag.String("edges", "", "path to the edge metadata CSV file")
	source        = flag.Uint("source", 0, "source edge id")
	target        = flag.Uint("target", 0, "target edge id")
	algorithm     = flag.String("algorithm", "pruned", "algorithm: classic, pruned")
)

func main() {
	flag.Parse()

	if *shortcutsPath == "" || *edgesPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --shortcuts and --edges are required")
		flag.Usage()
		os.Exit(1)
	}

	fmt.Printf("Loading shortcuts from: %s\n", *shortcutsPath)
	t0 := time.Now()
	shortcuts, err := loader.LoadShortcuts(*shortcutsPath)
	if err != nil {
		log.Fatalf("Error: failed to load shortcuts: %v", err)
	}
	fmt.Printf("Loaded %d shortcuts in %s\n", len(shortcuts), time.Since(t0))

	fmt.Printf("Loading edges from: %s\n", *edgesPath)
	t0 = time.Now()
	edgeMeta, err := loader.LoadEdgeMetadata(*edgesPath)
	if err != nil {
		log.Fatalf("Error: failed to load edge metadata: %v", err)
	}
	fmt.Printf("Loaded %d edges in %s\n\n", len(edgeMeta), time.Since(t0))

	store := graphstore.NewStore(shortcuts, edgeMeta)

	if *source == 0 && *target == 0 {
		fmt.Println("No query specified. Use --source and --target.")
		return
	}

	fmt.Printf("Query: %d -> %d (%s)\n", *source, *target, *algorithm)

	src, dst := graphstore.EdgeID(*source), graphstore.EdgeID(*target)
	t0 = time.Now()
	var result graphstore.QueryResult
	if *algorithm == "classic" {
		result = query.Classic(store, src, dst)
	} else {
		result = query.Pruned(store, src, dst)
	}
	elapsed := time.Since(t0)

	if !result.Reachable {
		fmt.Println("No path found")
		fmt.Printf("Query time: %s\n", elapsed)
		return
	}

	fmt.Printf("Distance: %g\n", result.Distance)
	fmt.Printf("Path length: %d edges\n", len(result.Path))
	fmt.Printf("Query time: %s\n", elapsed)

	fmt.Print("Path: ")
	shown := result.Path
	truncated := false
	if len(shown) > 10 {
		shown = shown[:10]
		truncated = true
	}
	for i, edge := range shown {
		if i > 0 {
			fmt.Print(" -> ")
		}
		fmt.Print(edge)
	}
	if truncated {
		fmt.Print(" ...")
	}
	fmt.Println()
}
