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


// Package loader turns the YAML knowledge file into a document set.
//
// A Loader is bound to one resolved path for its lifetime. Each Load
// call produces a fresh generation: the file is read, parsed, and
// flattened, and ids are recomputed from scratch, so ids are stable
// within a generation but not across reloads.
//
// Load reports failures as errors wrapping ErrSourceNotFound or
// ErrSourceMalformed; the retriever converts them into its
// silent-degrade policy (empty set, logged warning) at the boundary.
package loader
