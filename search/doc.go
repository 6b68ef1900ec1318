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


// Package search implements deterministic keyword ranking over a
// document set.
//
// Ranking is pure token overlap: the query is lowercased, split on
// whitespace, and filtered to tokens of three or more runes; each
// token contributes its substring occurrence count within a document's
// content plus a flat bonus when it appears in the title. There is no
// stemming, no stopword list, and no vector similarity.
//
// When no document scores above zero, Rank falls back to the head of
// the document set with zero scores, on the principle that something
// is better than nothing for the callers consuming these results.
//
// The Monitor interface exposes the stages of a ranking pass for
// diagnostics without affecting results.
package search
