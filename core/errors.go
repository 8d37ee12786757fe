// Copyright 2025 Raglab Systems
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


package core

import "errors"

// Domain validation errors
var (
	// ErrEmptyDocument indicates a document has no text content.
	ErrEmptyDocument = errors.New("document text cannot be empty")

	// ErrEmptySource indicates a document has no source identifier.
	ErrEmptySource = errors.New("document source cannot be empty")

	// ErrEmptyQuestion indicates a query question is empty.
	ErrEmptyQuestion = errors.New("question cannot be empty")
)

// Validate checks that a document is well-formed.
func (d *Document) Validate() error {
	if d.Source == "" {
		return ErrEmptySource
	}
	if d.Text == "" {
		return ErrEmptyDocument
	}
	return nil
}
