// Copyright 2026 Lodgekit Labs
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


// Package core defines the domain model shared across refbase packages.
//
// The central type is Document, a flattened unit of retrievable text
// with a title, content, and metadata. Documents carry string ids in
// two disjoint namespaces: "yaml_<i>" for documents derived from the
// knowledge source (assigned sequentially in traversal order at load
// time) and "custom_<n>" for documents added at runtime. The two
// namespaces never collide, even across refreshes.
package core
