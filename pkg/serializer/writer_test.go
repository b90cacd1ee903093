// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type testVersion string

func (v testVersion) MarshalText() ([]byte, error) {
	return []byte("v=" + string(v)), nil
}

type Envelope struct {
	Kind string `json:"kind"`
}

type testResult struct {
	Envelope
	Version testVersion       `json:"version"`
	Labels  map[string]string `json:"labels,omitempty"`
	Hidden  string            `json:"-"`
	Plain   int
}

type testRows []testConfig

func (r testRows) TableHeader() []string { return []string{"NAME", "VALUE"} }

func (r testRows) TableRows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, c := range r {
		rows = append(rows, []string{c.Name, strings.Repeat("*", c.Value)})
	}
	return rows
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: "a", Value: 1},
		{Name: "b", Value: 2},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[1].Name != "b" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: "a", Value: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result.Name != "a" || result.Value != 1 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTableFlattened(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testResult{
		Envelope: Envelope{Kind: "Comparison"},
		Version:      "1.0",
		Labels:       map[string]string{"env": "prod"},
		Hidden:       "secret",
		Plain:        7,
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "kind", "Comparison", "version", "v=1.0", "labels.env", "Plain"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in table output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "secret") {
		t.Errorf("json:\"-\" field should be skipped:\n%s", output)
	}
}

func TestWriter_SerializeTableRows(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), testRows{{Name: "driver", Value: 3}}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header, rule and one row, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "NAME") || !strings.Contains(lines[2], "***") {
		t.Errorf("unexpected table:\n%s", buf.String())
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), map[string]string{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: "x", Value: 1}); err != nil {
		t.Fatalf("Serialize should fall back to JSON: %v", err)
	}
	var result testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{"xml", true},
		{"", true},
	}
	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
		}
	}
	if len(SupportedFormats()) != 3 {
		t.Errorf("expected 3 supported formats")
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	writer := NewFileWriterOrStdout(FormatYAML, path)

	if err := writer.Serialize(context.Background(), testConfig{Name: "file", Value: 9}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("second Close should be a no-op: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), "name: file") {
		t.Errorf("unexpected file content: %s", content)
	}
}

func TestNewFileWriterOrStdout_Fallbacks(t *testing.T) {
	for _, path := range []string{"", "  ", StdioPath, filepath.Join(t.TempDir(), "missing", "out.json")} {
		writer := NewFileWriterOrStdout(FormatJSON, path)
		if writer == nil {
			t.Fatalf("expected writer for %q", path)
		}
		if writer.output != os.Stdout {
			t.Errorf("expected stdout fallback for %q", path)
		}
		_ = writer.Close()
	}
}
