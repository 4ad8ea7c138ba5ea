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

// This file implements the line-local JavaScript classifier.

package jstoken

import (
	"unicode"
)

// keywords is the fixed JavaScript (and related dialect) keyword list. It is
// process-wide constant data, initialized once.
var keywords = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {},
	"continue": {}, "debugger": {}, "default": {}, "delete": {}, "do": {},
	"else": {}, "enum": {}, "export": {}, "extends": {}, "false": {},
	"finally": {}, "for": {}, "function": {}, "if": {}, "implements": {},
	"import": {}, "in": {}, "instanceof": {}, "interface": {}, "let": {},
	"new": {}, "null": {}, "package": {}, "private": {}, "protected": {},
	"public": {}, "return": {}, "static": {}, "super": {}, "switch": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typeof": {}, "var": {},
	"void": {}, "while": {}, "with": {}, "yield": {}, "await": {},
}

// IsKeyword reports whether the given text is a reserved keyword.
func IsKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}

// multiCharOperators lists operators longer than one character, longest first
// within each leading byte so that classification always takes the longest
// match.
var multiCharOperators = []string{
	">>>=", "===", "!==", ">>>", "**=", "<<=", ">>=", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "**",
}

// Classifier is a Stream over a Snapshot.
//
// The classifier is line-local: the completion engine only ever requests
// sub-line ranges, so strings and comments that span lines are classified per
// line, with the open token running to the end of the requested range.
type Classifier struct {
	snapshot *Snapshot
}

var _ Stream = (*Classifier)(nil)

// NewClassifier returns a Stream that classifies ranges of the snapshot.
func NewClassifier(snapshot *Snapshot) *Classifier {
	return &Classifier{snapshot: snapshot}
}

// Classify implements Stream.
func (c *Classifier) Classify(start int, end int) []Token {
	text := c.snapshot.Text()
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	var tokens []Token
	i := start
	for i < end {
		ch := text[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			i++
		case isIdentifierStart(ch):
			tokenStart := i
			for i < end && isIdentifierPart(text[i]) {
				i++
			}
			tokens = append(tokens, c.newToken(text, tokenStart, i, identifierCategory(text[tokenStart:i])))
		case ch >= '0' && ch <= '9':
			tokenStart := i
			for i < end && isNumberPart(text[i]) {
				i++
			}
			tokens = append(tokens, c.newToken(text, tokenStart, i, CategoryNumber))
		case ch == '\'' || ch == '"' || ch == '`':
			tokens = append(tokens, c.classifyString(text, &i, end))
		case ch == '/' && i+1 < end && (text[i+1] == '/' || text[i+1] == '*'):
			tokens = append(tokens, c.classifyComment(text, &i, end))
		default:
			tokens = append(tokens, c.classifyOperator(text, &i, end))
		}
	}
	return tokens
}

func (c *Classifier) newToken(text string, start int, end int, category Category) Token {
	return Token{
		Text:     text[start:end],
		Category: category,
		Start:    start,
		End:      end,
	}
}

// classifyString consumes a string literal starting at *i. An unterminated
// string (the range boundary arrives first) is tolerated: the token runs to
// the boundary.
func (c *Classifier) classifyString(text string, i *int, end int) Token {
	tokenStart := *i
	quote := text[*i]
	*i++
	for *i < end {
		ch := text[*i]
		if ch == '\\' && *i+1 < end {
			*i += 2
			continue
		}
		*i++
		if ch == quote {
			break
		}
	}
	return c.newToken(text, tokenStart, *i, CategoryString)
}

func (c *Classifier) classifyComment(text string, i *int, end int) Token {
	tokenStart := *i
	if text[*i+1] == '/' {
		*i = end
		return c.newToken(text, tokenStart, end, CategoryComment)
	}
	*i += 2
	for *i < end {
		if text[*i] == '*' && *i+1 < end && text[*i+1] == '/' {
			*i += 2
			break
		}
		*i++
	}
	return c.newToken(text, tokenStart, *i, CategoryComment)
}

func (c *Classifier) classifyOperator(text string, i *int, end int) Token {
	tokenStart := *i
	for _, op := range multiCharOperators {
		if tokenStart+len(op) <= end && text[tokenStart:tokenStart+len(op)] == op {
			*i += len(op)
			return c.newToken(text, tokenStart, *i, CategoryOperator)
		}
	}
	*i++
	category := CategoryOperator
	switch text[tokenStart] {
	case '(', ')', '[', ']', '{', '}', ',', ';':
		category = CategoryPunctuation
	}
	return c.newToken(text, tokenStart, *i, category)
}

func identifierCategory(text string) Category {
	if IsKeyword(text) {
		return CategoryKeyword
	}
	return CategoryIdentifier
}

func isIdentifierStart(ch byte) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(rune(ch))
}

func isIdentifierPart(ch byte) bool {
	return isIdentifierStart(ch) || (ch >= '0' && ch <= '9')
}

func isNumberPart(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') ||
		(ch >= 'A' && ch <= 'F') || ch == 'x' || ch == 'X' || ch == '.' ||
		ch == 'o' || ch == 'O' || ch == '_'
}
