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
// Package comparison builds the documents versioncheck reports for version
// comparisons: pairwise comparisons, canonical forms, parse inspections and
// sorted lists. The CLI writes them through pkg/serializer and the API
// serves them as JSON.
//
// Every document carries a header.Header with kind, apiVersion and metadata:
//
//	c := comparison.New(comparison.WithVersion("v0.1.0"))
//	res := c.Compare("1.0-SNAPSHOT", "1.0")
//	// res.Result == -1, res.Relation == "older", res.Newer == true
//
// # HTTP
//
//	GET  /v1/compare?a=&b=
//	GET  /v1/newer?current=&other=
//	GET  /v1/canonical?v=&v=...
//	GET  /v1/inspect?v=
//	POST /v1/sort      {"versions": [...], "descending": false}
//
// Sort bodies may be JSON or YAML, picked by Content-Type. Lists longer than
// defaults.MaxSortVersions are rejected.
package comparison
