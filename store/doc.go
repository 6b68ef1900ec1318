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


// Package store holds the in-memory document set owned by the
// retriever.
//
// DocumentSet is deliberately small: the retrieval engine is the only
// writer, and all mutation happens through Replace (wholesale swap on
// load/refresh), Add (manual insertion), and Clear. A read-write lock
// lets queries and stats run concurrently while refreshes stay
// exclusive, since refresh is rare relative to query volume.
//
// There is no persistence: documents added at runtime live only until
// the next refresh rebuilds the set from the knowledge source.
package store
