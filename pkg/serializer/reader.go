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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// StdioPath names stdin for readers and stdout for writers.
const StdioPath = "-"

// Reader handles deserialization of JSON or YAML documents from any io.Reader.
//
// Close must be called to release resources when using NewFileReader.
// It is safe to call Close multiple times.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader for input. Table format is write-only.
//
// If input implements io.Closer, it will be closed by Reader.Close().
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if err := readable(format); err != nil {
		return nil, err
	}

	r := &Reader{
		format: format,
		input:  input,
	}

	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}

	return r, nil
}

// NewFileReader creates a Reader for a local file. A path of "-" reads stdin,
// which is never closed.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if err := readable(format); err != nil {
		return nil, err
	}

	if filePath == StdioPath {
		return &Reader{format: format, input: os.Stdin}, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &Reader{
		format: format,
		input:  file,
		closer: file,
	}, nil
}

// NewFileReaderAuto creates a Reader with the format taken from the file
// extension. Stdin is read as YAML, which also accepts JSON.
func NewFileReaderAuto(filePath string) (*Reader, error) {
	if filePath == StdioPath {
		return NewFileReader(FormatYAML, filePath)
	}
	return NewFileReader(FormatFromPath(filePath), filePath)
}

func readable(format Format) error {
	if format.IsUnknown() {
		return fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return fmt.Errorf("table format does not support deserialization")
	}
	return nil
}

// Deserialize reads data from the input source and unmarshals it into v,
// which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader.
// Safe to call on a nil Reader and more than once.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// FromFile loads and deserializes a file in one call, with the format taken
// from the extension. "-" reads stdin.
//
// Example:
//
//	set, err := FromFile[validator.ConstraintSet]("constraints.yaml")
func FromFile[T any](path string) (*T, error) {
	reader, err := NewFileReaderAuto(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", path, err)
	}

	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var out T
	if err := reader.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("loaded object from file", slog.String("path", path))

	return &out, nil
}
