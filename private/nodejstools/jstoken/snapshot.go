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

// Snapshot is an immutable view of a document's text with precomputed line
// boundaries. A cursor offset is only meaningful against the snapshot it was
// captured from; edits produce a new Snapshot.
type Snapshot struct {
	text       string
	lineStarts []int
}

// NewSnapshot returns a Snapshot of the given text.
func NewSnapshot(text string) *Snapshot {
	lineStarts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Snapshot{
		text:       text,
		lineStarts: lineStarts,
	}
}

// Text returns the full text of the snapshot.
func (s *Snapshot) Text() string {
	return s.text
}

// Len returns the length of the snapshot text.
func (s *Snapshot) Len() int {
	return len(s.text)
}

// LineCount returns the number of lines in the snapshot. The empty document
// has one (empty) line.
func (s *Snapshot) LineCount() int {
	return len(s.lineStarts)
}

// LineOf returns the line number containing the given offset. Offsets out of
// range clamp to the first or last line.
func (s *Snapshot) LineOf(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(s.text) {
		return len(s.lineStarts) - 1
	}
	// Binary search for the last line start <= offset.
	lo, hi := 0, len(s.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// LineStart returns the offset of the first character of the given line.
func (s *Snapshot) LineStart(line int) int {
	if line <= 0 {
		return 0
	}
	if line >= len(s.lineStarts) {
		return len(s.text)
	}
	return s.lineStarts[line]
}

// LineEnd returns the offset just past the last character of the given line,
// excluding the line terminator.
func (s *Snapshot) LineEnd(line int) int {
	if line < 0 {
		return 0
	}
	if line+1 < len(s.lineStarts) {
		// The next line starts after this line's "\n".
		return s.lineStarts[line+1] - 1
	}
	return len(s.text)
}

// Slice returns the text in [start, end), clamped to the snapshot bounds.
func (s *Snapshot) Slice(start int, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s.text) {
		end = len(s.text)
	}
	if start >= end {
		return ""
	}
	return s.text[start:end]
}
