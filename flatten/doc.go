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


// Package flatten converts an arbitrarily nested YAML tree into a flat
// ordered sequence of (title, content) sections.
//
// The walk operates directly on yaml.Node, whose Kind field provides
// the mapping/sequence/scalar variant dispatch and whose Content slice
// preserves mapping key order, so flattening the same tree twice always
// yields the same sections in the same order.
//
// Sequences and scalars are leaves; a mapping is the only node kind
// that extends the traversal path. A mapping containing a sequence
// therefore never recurses into the sequence's elements, and a
// section's content is never itself structured.
package flatten
