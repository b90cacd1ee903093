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
package update

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/NVIDIA/versioncheck/pkg/errors"
)

// Mapper extracts a version string from a payload a release source returned.
type Mapper func(r io.Reader) (string, error)

// Mapper names accepted by MapperByName.
const (
	MapperFirstLine     = "first-line"
	MapperSpiget        = "spiget"
	MapperGitHubRelease = "github-release"
)

var mappers = map[string]Mapper{
	MapperFirstLine:     TrimFirstLine,
	MapperSpiget:        SpigetName,
	MapperGitHubRelease: GitHubReleaseTag,
}

// MapperByName returns the named Mapper.
func MapperByName(name string) (Mapper, error) {
	m, ok := mappers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown mapper %q", name),
			map[string]any{"supported": MapperNames()})
	}
	return m, nil
}

// MapperNames returns the names accepted by MapperByName, sorted.
func MapperNames() []string {
	names := make([]string, 0, len(mappers))
	for name := range mappers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TrimFirstLine returns the first line of a plain text payload with
// surrounding whitespace removed.
func TrimFirstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read payload", err)
	}
	if err == io.EOF && line == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "payload is empty")
	}
	return strings.TrimSpace(line), nil
}

// SpigetName returns the "name" field of a Spiget resource version object.
func SpigetName(r io.Reader) (string, error) {
	var payload struct {
		Name *string `json:"name"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode Spiget payload", err)
	}
	if payload.Name == nil {
		return "", errors.New(errors.ErrCodeInvalidRequest, "Spiget payload has no name")
	}
	return *payload.Name, nil
}

// GitHubReleaseTag returns the "tag_name" of the first release in a GitHub
// releases listing, which GitHub orders newest first.
func GitHubReleaseTag(r io.Reader) (string, error) {
	var releases []struct {
		TagName *string `json:"tag_name"`
	}
	if err := json.NewDecoder(r).Decode(&releases); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode GitHub releases payload", err)
	}
	if len(releases) == 0 {
		return "", errors.New(errors.ErrCodeNotFound, "no GitHub release found")
	}
	if releases[0].TagName == nil {
		return "", errors.New(errors.ErrCodeInvalidRequest, "GitHub release has no tag_name")
	}
	return *releases[0].TagName, nil
}
