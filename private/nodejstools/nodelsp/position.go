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

// This file converts between LSP positions (0-based line, UTF-16 character)
// and byte offsets into a snapshot.

package nodelsp

import (
	"unicode/utf8"

	"github.com/Lomheny/nodejstools/private/nodejstools/jstoken"
	"go.lsp.dev/protocol"
)

// utf16RuneLen returns the number of 16-bit words in the UTF-16 encoding of
// the rune, or -1 if the rune is not valid. It matches unicode/utf16.RuneLen,
// which requires Go 1.23; this module is built with an older toolchain.
func utf16RuneLen(r rune) int {
	switch {
	case 0 <= r && r < 0xd800, 0xe000 <= r && r < 0x10000:
		return 1
	case 0x10000 <= r && r <= utf8.MaxRune:
		return 2
	default:
		return -1
	}
}

// positionToOffset converts an LSP protocol position to a byte offset.
// Positions past the end of a line or of the document clamp.
func positionToOffset(snapshot *jstoken.Snapshot, position protocol.Position) int {
	line := int(position.Line)
	if line >= snapshot.LineCount() {
		return snapshot.Len()
	}
	lineStart := snapshot.LineStart(line)
	lineEnd := snapshot.LineEnd(line)
	targetChar := int(position.Character)
	utf16Col := 0
	for i, r := range snapshot.Slice(lineStart, lineEnd) {
		if utf16Col >= targetChar {
			return lineStart + i
		}
		utf16Col += utf16RuneLen(r)
	}
	return lineEnd
}

// offsetToPosition converts a byte offset to an LSP protocol position.
func offsetToPosition(snapshot *jstoken.Snapshot, offset int) protocol.Position {
	line := snapshot.LineOf(offset)
	utf16Col := 0
	for _, r := range snapshot.Slice(snapshot.LineStart(line), offset) {
		utf16Col += utf16RuneLen(r)
	}
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Col),
	}
}

// offsetRange converts a byte-offset span to an LSP protocol range.
func offsetRange(snapshot *jstoken.Snapshot, start int, length int) protocol.Range {
	return protocol.Range{
		Start: offsetToPosition(snapshot, start),
		End:   offsetToPosition(snapshot, start+length),
	}
}
