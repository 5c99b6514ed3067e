package main

import (
	"bufio"
	"fmt"
	"os"
)

// loadDirectedEdgeList parses a plain-text "N\nu v\nu v\n..." directed edge
// list, the input format symmetrize expects: a vertex count followed by one
// "from to" pair per line.
func loadDirectedEdgeList(path string) (n uint32, edges []directedEdge, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("loaddirected: opening %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	if !sc.Scan() {
		return 0, nil, fmt.Errorf("loaddirected: %s: missing vertex-count line", path)
	}
	var count uint64
	if _, scanErr := fmt.Sscan(sc.Text(), &count); scanErr != nil {
		return 0, nil, fmt.Errorf("loaddirected: %s: parsing vertex count: %w", path, scanErr)
	}
	n = uint32(count)

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		var u, v uint32
		if _, scanErr := fmt.Sscan(line, &u, &v); scanErr != nil {
			return 0, nil, fmt.Errorf("loaddirected: %s: parsing edge line %q: %w", path, line, scanErr)
		}
		edges = append(edges, directedEdge{From: u, To: v})
	}
	if scanErr := sc.Err(); scanErr != nil {
		return 0, nil, fmt.Errorf("loaddirected: %s: %w", path, scanErr)
	}

	return n, edges, nil
}
