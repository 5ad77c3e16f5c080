package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVStripsBOM(t *testing.T) {
	input := "\ufeffFirst Name,Last Name\nAda,Lovelace\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ada", rows[0].Get("First Name"))
}

func TestReadCSVSkipsNotesPreamble(t *testing.T) {
	input := strings.Join([]string{
		"Notes:",
		`"When exporting your connection data, you may notice that some of the email addresses are missing."`,
		"",
		"First Name,Last Name,URL,Email Address,Company,Position,Connected On",
		"Jane,Doe,https://www.linkedin.com/in/jane,,Acme,CTO,01 Jun 2023",
	}, "\n")

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane", rows[0].Get("First Name"))
	assert.Equal(t, "CTO", rows[0].Get("Position"))
}

func TestReadCSVPadsShortRowsAndSkipsBlankRows(t *testing.T) {
	input := "Name,Endorsement Count\nGo,12\nSQL\n,\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "SQL", rows[1].Get("Name"))
	assert.Equal(t, "", rows[1].Get("Endorsement Count"))
}

func TestReadCSVQuotedMultilineField(t *testing.T) {
	input := "Title,Description\nEngineer,\"Built things,\nthen more things\"\n"

	rows, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Built things,\nthen more things", rows[0].Get("Description"))
}

func TestReadCSVSingleColumn(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("Name\nGo\nKubernetes\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Kubernetes", rows[1].Get("Name"))
}

func TestReadCSVHeaderOnly(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("Name\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRowGetFallsBack(t *testing.T) {
	row := Row{"Location": "  ", "Geo Location": " Lisbon "}
	assert.Equal(t, "Lisbon", row.Get("Location", "Geo Location"))
	assert.Equal(t, "", row.Get("Missing"))
}
