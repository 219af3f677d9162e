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

type testLevel int

func (l testLevel) MarshalText() ([]byte, error) {
	if l == 0 {
		return []byte("low"), nil
	}
	return []byte("high"), nil
}

type Meta struct {
	Kind string `json:"kind" yaml:"kind"`
}

type testReport struct {
	Meta   `yaml:",inline"`
	Name   string            `json:"name" yaml:"name"`
	Count  int               `json:"count" yaml:"count"`
	Level  testLevel         `json:"level" yaml:"level"`
	IDs    []string          `json:"ids" yaml:"ids"`
	Labels map[string]string `json:"labels" yaml:"labels"`
	Next   *testReport       `json:"next" yaml:"next"`
}

func sampleReport() testReport {
	return testReport{
		Meta:   Meta{Kind: "QuicktestReport"},
		Name:   "npu",
		Count:  2,
		Level:  1,
		IDs:    []string{"a", "b"},
		Labels: map[string]string{"variant": "STX"},
	}
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if got["name"] != "npu" || got["level"] != "high" {
		t.Errorf("Unexpected data: %+v", got)
	}
	if got["kind"] != "QuicktestReport" {
		t.Errorf("embedded fields should be promoted, got %+v", got)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatYAML, &buf).Serialize(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if got["kind"] != "QuicktestReport" || got["count"] != 2 {
		t.Errorf("Unexpected data: %+v", got)
	}
	if !strings.Contains(buf.String(), "level: high") {
		t.Errorf("expected text-marshaled level, got:\n%s", buf.String())
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"FIELD", "VALUE",
		"Kind", "QuicktestReport",
		"Name", "npu",
		"Level", "high",
		"IDs.[0]", "IDs.[1]",
		"Labels.variant", "STX",
		"Next",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Meta.") {
		t.Errorf("embedded struct name should not prefix keys:\n%s", out)
	}
}

func TestWriter_SerializeTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), struct{}{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestWriter_SerializeTable_Scalar(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), 42); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "value") || !strings.Contains(buf.String(), "42") {
		t.Errorf("unexpected output: %q", buf.String())
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
		{Format("xml"), true},
		{Format(""), true},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsUnknown(); got != tt.want {
				t.Errorf("IsUnknown() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	if w.format != FormatJSON {
		t.Errorf("expected JSON fallback, got %s", w.format)
	}
}

func TestNewWriter_NilOutput(t *testing.T) {
	w := NewWriter(FormatJSON, nil)
	if w.output != os.Stdout {
		t.Error("expected stdout for nil output")
	}
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	w, err := NewFileWriter(FormatYAML, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}
	if err := w.Serialize(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "name: npu") {
		t.Errorf("unexpected file content:\n%s", b)
	}
}

func TestNewFileWriter_InvalidPath(t *testing.T) {
	if _, err := NewFileWriter(FormatJSON, filepath.Join(t.TempDir(), "missing", "r.json")); err == nil {
		t.Error("expected error for uncreatable path")
	}
}
