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

// This file implements replacement-span resolution for completion commits.

package requirecomplete

import (
	"github.com/Lomheny/nodejstools/private/nodejstools/jstoken"
)

// Span is the text a completion commit will overwrite. A zero Length means
// insert rather than replace.
type Span struct {
	Start  int
	Length int
}

// End returns the offset just past the span.
func (s Span) End() int {
	return s.Start + s.Length
}

func tokenSpan(token jstoken.Token) Span {
	return Span{Start: token.Start, Length: token.Len()}
}

// ApplicableSpan determines the replaceable token span at the given position,
// for any completion commit. The second return is false when there is no
// applicable span and the caller should synthesize an empty span at the
// position.
//
// The decision is line-local: only tokens starting before the boundary are
// consulted, with the boundary extended by one character when the position is
// not at the line's end so that a token sitting exactly at the cursor
// participates. Tokens keep their full extent; a committed completion always
// replaces whole tokens.
func ApplicableSpan(snapshot *jstoken.Snapshot, stream jstoken.Stream, position int) (Span, bool) {
	line := snapshot.LineOf(position)
	boundary := position
	if position < snapshot.LineEnd(line) {
		boundary++
	}
	tokens := stream.Classify(snapshot.LineStart(line), snapshot.LineEnd(line))
	for len(tokens) > 0 && tokens[len(tokens)-1].Start >= boundary {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return Span{}, false
	}
	last := tokens[len(tokens)-1]
	if position > last.End {
		// Cursor in trailing whitespace.
		return Span{}, false
	}
	if position > last.Start {
		// Cursor strictly inside the last token.
		if last.Category.CanComplete() {
			return tokenSpan(last), true
		}
		return Span{}, false
	}
	// Cursor exactly at the last token's start.
	if last.Category.CanComplete() {
		if len(tokens) == 1 {
			return tokenSpan(last), true
		}
		previous := tokens[len(tokens)-2]
		if previous.End < position || !previous.Category.CanComplete() {
			return tokenSpan(last), true
		}
	}
	if len(tokens) >= 2 {
		// The cursor may sit exactly between two adjacent tokens, e.g. right
		// after an identifier immediately followed by a dot.
		previous := tokens[len(tokens)-2]
		if previous.End == position && previous.Category.CanComplete() {
			return tokenSpan(previous), true
		}
	}
	return Span{}, false
}
