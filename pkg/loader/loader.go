// Package loader reads shortcuts and edge metadata from disk into the
// in-memory shapes pkg/graphstore needs. This is explicitly outside the
// query core (spec.md §6): the core only ever consumes already-parsed
// []graphstore.Shortcut and map[graphstore.EdgeID]graphstore.EdgeMeta.
//
// The original generator writes Parquet/Arrow; no example in this module's
// dependency pack touches either format in Go, so this loader reads CSV
// instead (encoding/csv, stdlib) — a deliberate, documented exception to
// "prefer a pack dependency" for a component the spec places out of scope.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
	"github.com/Khoshkhah/routing-engine/pkg/h3adapter"
)

// LoadShortcuts reads the shortcut table from a CSV file with header
// columns incoming_edge, outgoing_edge, via_edge, cost, cell, inside (per
// spec.md §6). Rows with an unparsable field or an inside tag outside
// {-2,-1,0,1} are skipped.
func LoadShortcuts(path string) ([]graphstore.Shortcut, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open shortcuts: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	cols, err := readHeader(r, "incoming_edge", "outgoing_edge", "via_edge", "cost", "cell", "inside")
	if err != nil {
		return nil, fmt.Errorf("loader: shortcuts header: %w", err)
	}

	var out []graphstore.Shortcut
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		from, err1 := parseEdgeID(row[cols["incoming_edge"]])
		to, err2 := parseEdgeID(row[cols["outgoing_edge"]])
		via, err3 := parseEdgeID(row[cols["via_edge"]])
		cost, err4 := strconv.ParseFloat(row[cols["cost"]], 64)
		cell, err5 := parseCell(row[cols["cell"]])
		insideRaw, err6 := strconv.ParseInt(row[cols["inside"]], 10, 8)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil || err6 != nil {
			continue
		}
		if !graphstore.IsValidInsideTag(int8(insideRaw)) {
			continue
		}

		out = append(out, graphstore.Shortcut{
			From:    from,
			To:      to,
			Cost:    cost,
			ViaEdge: via,
			Cell:    cell,
			Inside:  graphstore.InsideTag(insideRaw),
		})
	}
	return out, nil
}

// LoadEdgeMetadata reads the edge metadata table from a CSV file with
// header columns id, incoming_cell, outgoing_cell, lca_res, length, cost
// (per spec.md §6). Extra columns are ignored; malformed rows are skipped
// silently; an empty result is a load failure.
func LoadEdgeMetadata(path string) (map[graphstore.EdgeID]graphstore.EdgeMeta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open edge metadata: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	cols, err := readHeader(r, "id", "incoming_cell", "outgoing_cell", "lca_res", "length", "cost")
	if err != nil {
		return nil, fmt.Errorf("loader: edge metadata header: %w", err)
	}

	out := make(map[graphstore.EdgeID]graphstore.EdgeMeta)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil || maxIndex(cols) >= len(row) {
			continue
		}

		id, err1 := parseEdgeID(row[cols["id"]])
		incoming, err2 := parseCell(row[cols["incoming_cell"]])
		outgoing, err3 := parseCell(row[cols["outgoing_cell"]])
		lcaRes, err4 := strconv.Atoi(row[cols["lca_res"]])
		length, err5 := strconv.ParseFloat(row[cols["length"]], 64)
		cost, err6 := strconv.ParseFloat(row[cols["cost"]], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil || err6 != nil {
			continue
		}

		out[id] = graphstore.EdgeMeta{
			IncomingCell: incoming,
			OutgoingCell: outgoing,
			LCARes:       lcaRes,
			Length:       length,
			Cost:         cost,
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("loader: %s: no edge metadata rows", path)
	}
	return out, nil
}

func readHeader(r *csv.Reader, want ...string) (map[string]int, error) {
	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range want {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return cols, nil
}

func maxIndex(cols map[string]int) int {
	max := 0
	for _, i := range cols {
		if i > max {
			max = i
		}
	}
	return max
}

func parseEdgeID(s string) (graphstore.EdgeID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return graphstore.EdgeID(v), err
}

func parseCell(s string) (h3adapter.Cell, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return h3adapter.Cell(v), err
}
