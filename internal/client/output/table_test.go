package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Render(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, []string{"ID", "Title"})
	tbl.AddRow("1", "Go tips")
	tbl.AddRow("12", "Generics")
	assert.Equal(t, 2, tbl.Len())

	require.NoError(t, tbl.Render())

	got := buf.String()
	assert.Contains(t, got, "Go tips")
	assert.Contains(t, got, "Generics")
	assert.Less(t, strings.Index(got, "Go tips"), strings.Index(got, "Generics"))
}
