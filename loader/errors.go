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


package loader

import "errors"

var (
	// ErrSourceNotFound indicates the knowledge file is absent at the
	// resolved path.
	ErrSourceNotFound = errors.New("knowledge source not found")

	// ErrSourceMalformed indicates the knowledge file could not be
	// parsed as YAML.
	ErrSourceMalformed = errors.New("knowledge source malformed")
)
