package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	require.NoError(t, f.Format(&buf, map[string]string{"id": "sd-turbo"}))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "sd-turbo", decoded["id"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML)

	require.NoError(t, f.Format(&buf, map[string]string{"id": "sd-turbo"}))
	assert.Contains(t, buf.String(), "id: sd-turbo")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	data := Data{
		Headers: []string{"id", "name"},
		Rows: [][]string{
			{"sd-turbo", "SD-Turbo"},
			{"kolors", "Kolors"},
		},
	}
	require.NoError(t, f.Format(&buf, data))

	out := buf.String()
	assert.Contains(t, out, "sd-turbo")
	assert.Contains(t, out, "Kolors")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	require.NoError(t, f.Format(&buf, map[string]int{"models": 9}))
	assert.Contains(t, buf.String(), `"models"`)
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	format, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, Format(""), format)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("yaml"))
	assert.Equal(t, FormatTable, DetectFormat("TABLE"))
}
