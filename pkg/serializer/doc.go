// Copyright (c) 2025, Industrial Edge Works.  All rights reserved.
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

// Package serializer renders boot reports and diagnostics to various formats.
//
// Three output formats are supported:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable, matches the profile table file format
//   - Table: flattened key/value view for console inspection
//
// Usage:
//
//	w := serializer.NewStdoutWriter(serializer.FormatJSON)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//		log.Fatal(err)
//	}
//
// For HTTP responses use serializer.RespondJSON, which buffers the encoding
// before writing headers to avoid partial responses.
package serializer
