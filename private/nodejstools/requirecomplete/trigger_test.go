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

package requirecomplete

import (
	"strings"
	"testing"

	"github.com/Lomheny/nodejstools/private/nodejstools/jstoken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseCursor extracts the | cursor marker from text.
func parseCursor(t *testing.T, text string) (*jstoken.Snapshot, jstoken.Stream, int) {
	t.Helper()
	cursor := strings.Index(text, "|")
	require.GreaterOrEqual(t, cursor, 0, "test text needs a | cursor marker")
	snapshot := jstoken.NewSnapshot(strings.Replace(text, "|", "", 1))
	return snapshot, jstoken.NewClassifier(snapshot), cursor
}

func TestShouldTrigger(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		name         string
		text         string
		eatOpenParen bool
		expected     bool
	}{
		{
			name:         "start of document",
			text:         "require(|",
			eatOpenParen: true,
			expected:     true,
		},
		{
			name:         "member access never triggers",
			text:         "obj.require(|",
			eatOpenParen: true,
			expected:     false,
		},
		{
			name:         "assignment",
			text:         "var x = require(|",
			eatOpenParen: true,
			expected:     true,
		},
		{
			name:         "fresh line after identifier",
			text:         "foo\nrequire(|",
			eatOpenParen: true,
			expected:     true,
		},
		{
			name:         "statement keyword",
			text:         "return require(|",
			eatOpenParen: true,
			expected:     true,
		},
		{
			name:         "new keyword",
			text:         "x = new require(|",
			eatOpenParen: true,
			expected:     true,
		},
		{
			name:         "open bracket",
			text:         "list[require(|",
			eatOpenParen: true,
			expected:     true,
		},
		{
			name:         "argument position",
			text:         "f(a, require(|",
			eatOpenParen: true,
			expected:     true,
		},
		{
			name:         "semicolon",
			text:         "g(); require(|",
			eatOpenParen: true,
			expected:     true,
		},
		{
			name:         "adjacent identifier is permissive",
			text:         "var x require(|",
			eatOpenParen: true,
			expected:     true,
		},
		{
			name:         "digits count as identifier characters",
			text:         "42 require(|",
			eatOpenParen: true,
			expected:     true,
		},
		{
			name:         "non-expression keyword",
			text:         "function require(|",
			eatOpenParen: true,
			expected:     false,
		},
		{
			name:         "not require",
			text:         "acquire(|",
			eatOpenParen: true,
			expected:     false,
		},
		{
			name:         "missing open paren",
			text:         "require|",
			eatOpenParen: true,
			expected:     false,
		},
		{
			name:         "eager check without paren",
			text:         "require|",
			eatOpenParen: false,
			expected:     true,
		},
		{
			name:         "eager member access",
			text:         "obj.require|",
			eatOpenParen: false,
			expected:     false,
		},
		{
			name:         "empty document",
			text:         "|",
			eatOpenParen: true,
			expected:     false,
		},
	} {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			snapshot, stream, cursor := parseCursor(t, testCase.text)
			assert.Equal(
				t,
				testCase.expected,
				ShouldTrigger(snapshot, stream, cursor, testCase.eatOpenParen, false),
			)
		})
	}
}

// TestShouldTriggerFoldedTerminator covers classifiers that fold a statement
// terminator into the preceding token, handing back f(x); as one span.
func TestShouldTriggerFoldedTerminator(t *testing.T) {
	t.Parallel()
	text := "f(x); require("
	snapshot := jstoken.NewSnapshot(text)
	stream := stubStream{tokens: []jstoken.Token{
		{Text: "f(x);", Category: jstoken.CategoryIdentifier, Start: 0, End: 5},
		{Text: "require", Category: jstoken.CategoryIdentifier, Start: 6, End: 13},
		{Text: "(", Category: jstoken.CategoryPunctuation, Start: 13, End: 14},
	}}
	assert.True(t, ShouldTrigger(snapshot, stream, len(text), true, false))
}

func TestDetectQuote(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		name          string
		text          string
		quote         QuoteMode
		replaceOffset int // expected ReplaceStart relative to cursor
		replaceLength int
	}{
		{
			name:          "no quote",
			text:          "require(|",
			quote:         QuoteNone,
			replaceOffset: 0,
			replaceLength: 0,
		},
		{
			name:          "bare single quote",
			text:          "require('|",
			quote:         QuoteSingle,
			replaceOffset: 0,
			replaceLength: 0,
		},
		{
			name:          "partial path",
			text:          "require('ht|",
			quote:         QuoteSingle,
			replaceOffset: -2,
			replaceLength: 2,
		},
		{
			name:          "partial path with closing quote",
			text:          "require('ht|')",
			quote:         QuoteSingle,
			replaceOffset: -2,
			replaceLength: 3,
		},
		{
			name:          "double quote",
			text:          `require("ht|`,
			quote:         QuoteDouble,
			replaceOffset: -2,
			replaceLength: 2,
		},
	} {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			snapshot, stream, cursor := parseCursor(t, testCase.text)
			detection := Detect(snapshot, stream, cursor, true)
			require.True(t, detection.Triggered)
			assert.Equal(t, testCase.quote, detection.Quote)
			assert.Equal(t, cursor+testCase.replaceOffset, detection.ReplaceStart)
			assert.Equal(t, testCase.replaceLength, detection.ReplaceLength)
		})
	}
}

// TestDetectQuoteRoundTrip checks the commit contract: replacing the span
// with a candidate plus the closing quote leaves exactly one opening and one
// closing quote around the inserted text.
func TestDetectQuoteRoundTrip(t *testing.T) {
	t.Parallel()
	for _, text := range []string{
		"var http = require('ht|",
		"var http = require('ht|')",
		"var http = require('ht|'",
	} {
		text := text
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			snapshot, stream, cursor := parseCursor(t, text)
			detection := Detect(snapshot, stream, cursor, true)
			require.True(t, detection.Triggered)
			require.Equal(t, QuoteSingle, detection.Quote)
			source := snapshot.Text()
			committed := source[:detection.ReplaceStart] +
				"http" + detection.Quote.Char("") +
				source[detection.ReplaceStart+detection.ReplaceLength:]
			assert.True(t, strings.HasPrefix(committed, "var http = require('http'"), "got %q", committed)
			assert.NotContains(t, committed, "''")
		})
	}
}

func TestDetectMemberAccessWithQuote(t *testing.T) {
	t.Parallel()
	snapshot, stream, cursor := parseCursor(t, "obj.require('ht|")
	detection := Detect(snapshot, stream, cursor, true)
	assert.False(t, detection.Triggered)
	assert.Equal(t, QuoteNone, detection.Quote)
	assert.Equal(t, cursor, detection.ReplaceStart)
	assert.Equal(t, 0, detection.ReplaceLength)
}

type stubStream struct {
	tokens []jstoken.Token
}

func (s stubStream) Classify(start int, end int) []jstoken.Token {
	var tokens []jstoken.Token
	for _, token := range s.tokens {
		if token.Start >= start && token.End <= end {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
