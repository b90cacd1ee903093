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

package header

import (
	"fmt"
	"time"

	cerrors "github.com/NVIDIA/versioncheck/pkg/errors"
)

// APIVersion is the schema version written into every document.
const APIVersion = "versioncheck.nvidia.com/v1alpha1"

// Kind represents the type of a versioncheck document.
type Kind string

// Kinds of documents read and written by versioncheck.
const (
	KindComparison       Kind = "Comparison"
	KindCheckResult      Kind = "CheckResult"
	KindConstraintSet    Kind = "ConstraintSet"
	KindInventory        Kind = "Inventory"
	KindValidationResult Kind = "ValidationResult"
	KindInspection       Kind = "Inspection"
	KindSortResult       Kind = "SortResult"
	KindCanonicals       Kind = "Canonicals"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindComparison, KindCheckResult, KindConstraintSet, KindInventory, KindValidationResult,
		KindInspection, KindSortResult, KindCanonicals:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a Header with the current API version and the provided options.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: APIVersion,
		Metadata:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header identifies a document: its kind, its schema version and free-form
// metadata such as the tool version and creation time.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets the kind and API version and resets Metadata to a timestamp and,
// when not empty, the tool version.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = make(map[string]string)

	h.Metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata["version"] = version
	}
}

// Expect checks a header read from a document. An empty kind or API version
// is accepted so hand-written files can omit them.
func (h *Header) Expect(kind Kind) error {
	if h.Kind != "" && h.Kind != kind {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("expected kind %s, got %s", kind, h.Kind),
			map[string]any{"kind": string(h.Kind)})
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported apiVersion %s", h.APIVersion),
			map[string]any{"apiVersion": h.APIVersion})
	}
	return nil
}
