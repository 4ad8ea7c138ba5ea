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

// This file implements the backward token scanner.

package requirecomplete

import (
	"github.com/Lomheny/nodejstools/private/nodejstools/jstoken"
)

// reverseScanner yields the classified tokens of a document strictly backward
// from a cursor position: most recent token first, ending with the first
// token of line 0.
//
// The scanner re-requests classification one line at a time rather than
// holding a full-document token list. The first line is truncated at the
// cursor; every earlier line is classified to its end. A scanner is not
// restartable; callers that need to rewind create a fresh one.
type reverseScanner struct {
	snapshot *jstoken.Snapshot
	stream   jstoken.Stream
	line     int
	tokens   []jstoken.Token
	index    int
}

func newReverseScanner(snapshot *jstoken.Snapshot, stream jstoken.Stream, from int) *reverseScanner {
	s := &reverseScanner{
		snapshot: snapshot,
		stream:   stream,
		line:     snapshot.LineOf(from),
	}
	s.loadLine(from)
	return s
}

// loadLine classifies the current line's sub-span [lineStart, boundary).
func (s *reverseScanner) loadLine(boundary int) {
	s.tokens = s.stream.Classify(s.snapshot.LineStart(s.line), boundary)
	s.index = len(s.tokens) - 1
}

// Next returns the next token walking backward, or false once the start of
// the document has been passed.
func (s *reverseScanner) Next() (jstoken.Token, bool) {
	for {
		if s.index >= 0 {
			token := s.tokens[s.index]
			s.index--
			return token, true
		}
		if s.line == 0 {
			return jstoken.Token{}, false
		}
		s.line--
		s.loadLine(s.snapshot.LineEnd(s.line))
	}
}
