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

package jstoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotLines(t *testing.T) {
	t.Parallel()
	snapshot := NewSnapshot("var x = 1\nrequire('fs')\n\nend")
	require.Equal(t, 4, snapshot.LineCount())
	assert.Equal(t, 0, snapshot.LineStart(0))
	assert.Equal(t, 9, snapshot.LineEnd(0))
	assert.Equal(t, 10, snapshot.LineStart(1))
	assert.Equal(t, 23, snapshot.LineEnd(1))
	assert.Equal(t, 24, snapshot.LineStart(2))
	assert.Equal(t, 24, snapshot.LineEnd(2))
	assert.Equal(t, 0, snapshot.LineOf(5))
	assert.Equal(t, 1, snapshot.LineOf(10))
	assert.Equal(t, 1, snapshot.LineOf(23))
	assert.Equal(t, 3, snapshot.LineOf(1000))
	assert.Equal(t, 0, snapshot.LineOf(-1))
}

func TestSnapshotEmpty(t *testing.T) {
	t.Parallel()
	snapshot := NewSnapshot("")
	require.Equal(t, 1, snapshot.LineCount())
	assert.Equal(t, 0, snapshot.LineStart(0))
	assert.Equal(t, 0, snapshot.LineEnd(0))
}

func TestClassifyTokens(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		name     string
		text     string
		expected []Token
	}{
		{
			name: "require call",
			text: "var x = require('fs')",
			expected: []Token{
				{Text: "var", Category: CategoryKeyword, Start: 0, End: 3},
				{Text: "x", Category: CategoryIdentifier, Start: 4, End: 5},
				{Text: "=", Category: CategoryOperator, Start: 6, End: 7},
				{Text: "require", Category: CategoryIdentifier, Start: 8, End: 15},
				{Text: "(", Category: CategoryPunctuation, Start: 15, End: 16},
				{Text: "'fs'", Category: CategoryString, Start: 16, End: 20},
				{Text: ")", Category: CategoryPunctuation, Start: 20, End: 21},
			},
		},
		{
			name: "member access",
			text: "obj.require",
			expected: []Token{
				{Text: "obj", Category: CategoryIdentifier, Start: 0, End: 3},
				{Text: ".", Category: CategoryOperator, Start: 3, End: 4},
				{Text: "require", Category: CategoryIdentifier, Start: 4, End: 11},
			},
		},
		{
			name: "longest operator match",
			text: "a !== b",
			expected: []Token{
				{Text: "a", Category: CategoryIdentifier, Start: 0, End: 1},
				{Text: "!==", Category: CategoryOperator, Start: 2, End: 5},
				{Text: "b", Category: CategoryIdentifier, Start: 6, End: 7},
			},
		},
		{
			name: "line comment",
			text: "x // trailing",
			expected: []Token{
				{Text: "x", Category: CategoryIdentifier, Start: 0, End: 1},
				{Text: "// trailing", Category: CategoryComment, Start: 2, End: 13},
			},
		},
		{
			name: "number and dollar identifier",
			text: "$el = 0x1f",
			expected: []Token{
				{Text: "$el", Category: CategoryIdentifier, Start: 0, End: 3},
				{Text: "=", Category: CategoryOperator, Start: 4, End: 5},
				{Text: "0x1f", Category: CategoryNumber, Start: 6, End: 10},
			},
		},
		{
			name: "escaped quote in string",
			text: `'a\'b'`,
			expected: []Token{
				{Text: `'a\'b'`, Category: CategoryString, Start: 0, End: 6},
			},
		},
	} {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			snapshot := NewSnapshot(testCase.text)
			tokens := NewClassifier(snapshot).Classify(0, snapshot.Len())
			require.Equal(t, testCase.expected, tokens)
		})
	}
}

func TestClassifyTruncatesAtBoundary(t *testing.T) {
	t.Parallel()
	snapshot := NewSnapshot("require('http')")
	// The boundary cuts through the string literal: the open string runs to
	// the boundary and no further.
	tokens := NewClassifier(snapshot).Classify(0, 12)
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Text: "'htt", Category: CategoryString, Start: 8, End: 12}, tokens[2])
}

func TestCanComplete(t *testing.T) {
	t.Parallel()
	assert.True(t, CategoryIdentifier.CanComplete())
	assert.True(t, CategoryKeyword.CanComplete())
	assert.False(t, CategoryOperator.CanComplete())
	assert.False(t, CategoryPunctuation.CanComplete())
	assert.False(t, CategoryString.CanComplete())
	assert.False(t, CategoryNumber.CanComplete())
}

func TestIsKeyword(t *testing.T) {
	t.Parallel()
	assert.True(t, IsKeyword("return"))
	assert.True(t, IsKeyword("typeof"))
	assert.False(t, IsKeyword("require"))
	assert.False(t, IsKeyword(""))
}
