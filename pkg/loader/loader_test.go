package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khoshkhah/routing-engine/pkg/graphstore"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadShortcutsParsesValidRows(t *testing.T) {
	path := writeCSV(t, "shortcuts.csv", `incoming_edge,outgoing_edge,via_edge,cost,cell,inside
1,2,0,2.5,0,1
2,3,0,3.5,0,-1
`)
	shortcuts, err := LoadShortcuts(path)
	require.NoError(t, err)
	require.Len(t, shortcuts, 2)
	assert.Equal(t, graphstore.EdgeID(1), shortcuts[0].From)
	assert.Equal(t, graphstore.EdgeID(2), shortcuts[0].To)
	assert.Equal(t, graphstore.InsideUp, shortcuts[0].Inside)
	assert.Equal(t, graphstore.InsideDown, shortcuts[1].Inside)
}

func TestLoadShortcutsSkipsUnknownInsideAndMalformedRows(t *testing.T) {
	path := writeCSV(t, "shortcuts.csv", `incoming_edge,outgoing_edge,via_edge,cost,cell,inside
1,2,0,2.5,0,5
1,2,0,notanumber,0,1
2,3,0,1.0,0,0
`)
	shortcuts, err := LoadShortcuts(path)
	require.NoError(t, err)
	require.Len(t, shortcuts, 1)
	assert.Equal(t, graphstore.InsideLateral, shortcuts[0].Inside)
}

func TestLoadShortcutsMissingColumnErrors(t *testing.T) {
	path := writeCSV(t, "shortcuts.csv", "incoming_edge,outgoing_edge\n1,2\n")
	_, err := LoadShortcuts(path)
	assert.Error(t, err)
}

func TestLoadEdgeMetadataParsesValidRowsAndIgnoresExtraColumns(t *testing.T) {
	path := writeCSV(t, "edges.csv", `id,incoming_cell,outgoing_cell,lca_res,length,cost,street_name
1,100,200,5,12.5,1.0,Jalan Malioboro
2,0,0,-1,3.0,0.5,Gang Buntu
`)
	meta, err := LoadEdgeMetadata(path)
	require.NoError(t, err)
	require.Len(t, meta, 2)
	assert.Equal(t, 5, meta[1].LCARes)
	assert.Equal(t, -1, meta[2].LCARes)
}

func TestLoadEdgeMetadataEmptyResultIsFailure(t *testing.T) {
	path := writeCSV(t, "edges.csv", "id,incoming_cell,outgoing_cell,lca_res,length,cost\nnotanid,0,0,0,0,0\n")
	_, err := LoadEdgeMetadata(path)
	assert.Error(t, err)
}
