package ioformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// RawEdge is one input edge row: 0-based original vertex ids and a
// non-negative integer weight (§6).
type RawEdge struct {
	U, V int
	W    int64
}

// ParsedGraph is one `#Graph <id>` block of the input file, before
// canonicalisation (§6).
type ParsedGraph struct {
	ID    string
	N     int
	Edges []RawEdge
}

// ParseGraphs reads one or more `#Graph <id>` blocks from r (§6): each
// block is a header line, a vertex-count line, then one `u v w` edge
// row per line. Lines are trimmed; malformed rows fail with
// *ParseError naming the 1-based input line.
func ParseGraphs(r io.Reader) ([]ParsedGraph, error) {
	scanner := bufio.NewScanner(r)

	var graphs []ParsedGraph
	var current *ParsedGraph
	lineNo := 0
	awaitingVertexCount := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#Graph") {
			if current != nil {
				graphs = append(graphs, *current)
			}
			id, err := parseGraphHeader(line, lineNo)
			if err != nil {
				return nil, err
			}
			current = &ParsedGraph{ID: id}
			awaitingVertexCount = true
			continue
		}

		if current == nil {
			return nil, parseErr(lineNo, "edge row before any #Graph header")
		}

		if awaitingVertexCount {
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, parseErr(lineNo, "malformed vertex count %q: %v", line, err)
			}
			current.N = n
			awaitingVertexCount = false
			continue
		}

		edge, err := parseEdgeRow(line, lineNo)
		if err != nil {
			return nil, err
		}
		current.Edges = append(current.Edges, edge)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		graphs = append(graphs, *current)
	}
	return graphs, nil
}

func parseGraphHeader(line string, lineNo int) (string, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", parseErr(lineNo, "malformed #Graph header %q", line)
	}
	return fields[1], nil
}

func parseEdgeRow(line string, lineNo int) (RawEdge, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return RawEdge{}, parseErr(lineNo, "expected 3 fields \"u v w\", got %q", line)
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return RawEdge{}, parseErr(lineNo, "malformed u %q: %v", fields[0], err)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return RawEdge{}, parseErr(lineNo, "malformed v %q: %v", fields[1], err)
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil || w < 0 {
		return RawEdge{}, parseErr(lineNo, "malformed non-negative weight %q", fields[2])
	}
	return RawEdge{U: u, V: v, W: w}, nil
}
