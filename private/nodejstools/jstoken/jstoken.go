// Copyright 2024-2026 Lomheny, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package jstoken defines the classified-token model that the completion
// engine consumes, and provides a line-local JavaScript classifier.
//
// The completion engine never needs a full parse: it asks a Stream for the
// tokens of small character ranges (at most one line at a time) and works
// over those.
package jstoken

// Category is the lexical category of a classified token.
type Category int

const (
	CategoryNone Category = iota
	CategoryIdentifier
	CategoryKeyword
	CategoryString
	CategoryNumber
	CategoryComment
	CategoryOperator
	CategoryPunctuation
)

// CanComplete reports whether a token of this category is a valid target for
// a completion commit. Identifier-like and keyword-like tokens are; pure
// punctuation and operators are not.
func (c Category) CanComplete() bool {
	return c == CategoryIdentifier || c == CategoryKeyword
}

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case CategoryIdentifier:
		return "identifier"
	case CategoryKeyword:
		return "keyword"
	case CategoryString:
		return "string"
	case CategoryNumber:
		return "number"
	case CategoryComment:
		return "comment"
	case CategoryOperator:
		return "operator"
	case CategoryPunctuation:
		return "punctuation"
	default:
		return "none"
	}
}

// Token is a classified token span. Start and End are absolute character
// offsets into the document snapshot the token was classified from; Text is
// the text of the span. Tokens are immutable.
type Token struct {
	Text     string
	Category Category
	Start    int
	End      int
}

// Len returns the length of the token span.
func (t Token) Len() int {
	return t.End - t.Start
}

// Stream produces classified tokens for an arbitrary character range of a
// document on demand. Returned tokens are non-overlapping, ordered by Start,
// and cover only the requested range: a token that would extend past the
// range boundary is truncated at the boundary.
type Stream interface {
	Classify(start int, end int) []Token
}
