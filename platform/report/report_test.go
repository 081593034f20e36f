package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateProducesPDFBytes(t *testing.T) {
	summary := Summary{
		Title:    "Test Save",
		Subtitle: "Trainer 12345678",
		Gen9: []RaidEntry{
			{Region: "Paldea", Stars: 6, Species: 888, Form: 0, TeraType: 10, Shiny: ShinyStar},
			{Region: "Kitakami", Stars: 3, Species: 25, Form: 0, TeraType: 3},
		},
	}

	data, err := Generate(summary, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGenerateHandlesEmptySections(t *testing.T) {
	data, err := Generate(Summary{Title: "Empty"}, nil)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
