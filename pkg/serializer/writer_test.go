package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testReport struct {
	SessionID string         `json:"sessionId" yaml:"sessionId"`
	Outcome   string         `json:"outcome" yaml:"outcome"`
	Attempts  []testAttempt  `json:"attempts" yaml:"attempts"`
	Labels    map[string]int `json:"labels,omitempty" yaml:"labels,omitempty"`
}

type testAttempt struct {
	Number  int  `json:"number" yaml:"number"`
	Derated bool `json:"derated" yaml:"derated"`
}

func sampleReport() testReport {
	return testReport{
		SessionID: "9e2c9f7e-1b97-4b0e-a2bb-0d0a93f1a001",
		Outcome:   "SuccessDerated",
		Attempts: []testAttempt{
			{Number: 1, Derated: false},
			{Number: 2, Derated: true},
		},
	}
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))

	var got testReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleReport(), got)
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))

	var got testReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleReport(), got)
}

func TestSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "SessionID")
	assert.Contains(t, out, "Attempts.[1].Derated")
	assert.Contains(t, out, "SuccessDerated")
}

func TestSerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	require.NoError(t, w.Serialize(context.Background(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestNewWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	w := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))
	require.NoError(t, w.Close())

	assert.FileExists(t, path)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"report.json", FormatJSON},
		{"report.yaml", FormatYAML},
		{"REPORT.YML", FormatYAML},
		{"report.table", FormatTable},
		{"report.txt", FormatTable},
		{"report.bin", FormatJSON},
		{"", FormatJSON},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatFromPath(tc.path), tc.path)
	}
}

func TestSupportedFormats(t *testing.T) {
	assert.Equal(t, []string{"json", "yaml", "table"}, SupportedFormats())
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown())
	}
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format(strings.ToUpper("json")).IsUnknown())
}
