package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/qub-hpc/mastiff/csr"
)

// loadCSR parses the plain-text CSR dump format this driver accepts:
//
//	line 1: N M          (vertex count, undirected edge count)
//	line 2: N+1 offsets, space-separated (Offsets[0..N])
//	next 2*M lines: "neighbor weight" pairs, in directed-slot order
//
// This is a minimal stand-in for the original harness's binary `.bin`
// graph dumps (graph.c in original_source/): same three logical fields
// (offsets, neighbor list, weight list), reformatted as whitespace-
// separated text so it needs no format-specific parser beyond bufio.
func loadCSR(path string) (*csr.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loadcsr: opening %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	n, m, err := readDimensions(sc)
	if err != nil {
		return nil, err
	}

	offsets, err := readUint64s(sc, int(n)+1, "offsets")
	if err != nil {
		return nil, err
	}

	edges := make([]csr.EdgeSlot, 0, 2*m)
	for i := uint64(0); i < 2*m; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("loadcsr: %s: expected %d edge slots, got %d", path, 2*m, i)
		}
		var neighbor, weight uint64
		if _, err := fmt.Sscan(sc.Text(), &neighbor, &weight); err != nil {
			return nil, fmt.Errorf("loadcsr: %s: parsing edge slot %d: %w", path, i, err)
		}
		edges = append(edges, csr.EdgeSlot{Neighbor: uint32(neighbor), Weight: uint32(weight)})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loadcsr: %s: %w", path, err)
	}

	return csr.NewGraph(uint32(n), offsets, edges)
}

func readDimensions(sc *bufio.Scanner) (n, m uint64, err error) {
	if !sc.Scan() {
		return 0, 0, fmt.Errorf("loadcsr: missing header line")
	}
	if _, err := fmt.Sscan(sc.Text(), &n, &m); err != nil {
		return 0, 0, fmt.Errorf("loadcsr: parsing header: %w", err)
	}
	return n, m, nil
}

func readUint64s(sc *bufio.Scanner, want int, field string) ([]uint64, error) {
	if !sc.Scan() {
		return nil, fmt.Errorf("loadcsr: missing %s line", field)
	}
	out := make([]uint64, 0, want)
	start := 0
	line := sc.Text()
	for i := 0; i <= len(line); i++ {
		if i == len(line) || line[i] == ' ' {
			if i > start {
				v, err := strconv.ParseUint(line[start:i], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("loadcsr: parsing %s token %q: %w", field, line[start:i], err)
				}
				out = append(out, v)
			}
			start = i + 1
		}
	}
	if len(out) != want {
		return nil, fmt.Errorf("loadcsr: %s: got %d values, want %d", field, len(out), want)
	}
	return out, nil
}
