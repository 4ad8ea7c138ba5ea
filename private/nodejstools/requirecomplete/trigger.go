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

// This file implements require(...) trigger detection.

package requirecomplete

import (
	"strings"

	"github.com/Lomheny/nodejstools/private/nodejstools/jstoken"
)

// QuoteMode describes whether the require argument already has an opening
// quote, and which character.
type QuoteMode byte

const (
	QuoteNone QuoteMode = iota
	QuoteSingle
	QuoteDouble
)

// Char returns the quote character, or the default for QuoteNone.
func (q QuoteMode) Char(defaultQuote string) string {
	switch q {
	case QuoteSingle:
		return "'"
	case QuoteDouble:
		return "\""
	default:
		return defaultQuote
	}
}

// expressionPrefixes is the fixed allow-list of operator and keyword texts
// after which a require call can start an expression. A preceding "." is
// deliberately absent: obj.require( is a member access, not a module load.
//
// This is process-wide constant data, initialized once.
var expressionPrefixes = map[string]struct{}{
	"=": {}, "+": {}, "-": {}, "*": {}, "/": {}, "%": {},
	"+=": {}, "-=": {}, "*=": {}, "/=": {}, "%=": {},
	"&": {}, "|": {}, "^": {}, "~": {}, "!": {},
	"&=": {}, "|=": {}, "^=": {},
	"&&": {}, "||": {},
	"<<": {}, ">>": {}, ">>>": {}, "<<=": {}, ">>=": {}, ">>>=": {},
	"==": {}, "!=": {}, "===": {}, "!==": {}, "<": {}, ">": {}, "<=": {}, ">=": {},
	"(": {}, "[": {}, "{": {}, ",": {}, ";": {}, ":": {}, "?": {},
	"=>": {},
	"return": {}, "throw": {}, "typeof": {}, "new": {}, "in": {},
	"case": {}, "delete": {}, "void": {}, "instanceof": {},
}

// Detection is the outcome of require trigger detection. When Triggered is
// set, ReplaceStart and ReplaceLength describe the span a committed
// completion overwrites; with no existing quote the span is empty at the
// cursor and Quote is QuoteNone.
type Detection struct {
	Triggered     bool
	Quote         QuoteMode
	ReplaceStart  int
	ReplaceLength int
}

// ShouldTrigger reports whether the cursor sits in a require(...) completion
// position.
//
// When eatOpenParen is set, an open parenthesis must be consumed before the
// require token; when allowQuote is set, an already-typed leading quote token
// is skipped before matching. allowQuote=false serves eager pre-typing checks
// where no quote can exist yet.
func ShouldTrigger(
	snapshot *jstoken.Snapshot,
	stream jstoken.Stream,
	cursor int,
	eatOpenParen bool,
	allowQuote bool,
) bool {
	return detect(snapshot, stream, cursor, eatOpenParen, allowQuote).Triggered
}

// Detect runs trigger detection for the completion-assembly path: a leading
// quote is honored and, when present, the replacement span for the quoted
// argument is computed.
func Detect(
	snapshot *jstoken.Snapshot,
	stream jstoken.Stream,
	cursor int,
	eatOpenParen bool,
) Detection {
	return detect(snapshot, stream, cursor, eatOpenParen, true)
}

func detect(
	snapshot *jstoken.Snapshot,
	stream jstoken.Stream,
	cursor int,
	eatOpenParen bool,
	allowQuote bool,
) Detection {
	notTriggered := Detection{ReplaceStart: cursor}
	quote := QuoteNone
	replaceStart, replaceLength := cursor, 0
	scanner := newReverseScanner(snapshot, stream, cursor)
	if allowQuote {
		if token, ok := scanner.Next(); ok && isQuoteToken(token) {
			// The token is the partially-typed string argument. It stays
			// consumed, and determines the quote style and replacement span.
			quote = QuoteSingle
			if token.Text[0] == '"' {
				quote = QuoteDouble
			}
			replaceStart = cursor - (token.Len() - 1)
			replaceLength = quotedSpanLength(snapshot, stream, token)
		} else {
			// Not a quote: the peeked token must participate in matching, so
			// restart from the cursor.
			scanner = newReverseScanner(snapshot, stream, cursor)
		}
	}
	if eatOpenParen {
		token, ok := scanner.Next()
		if !ok || token.Text != "(" {
			return notTriggered
		}
	}
	token, ok := scanner.Next()
	if !ok || token.Text != "require" {
		return notTriggered
	}
	if !canStartRequire(snapshot, scanner, cursor) {
		return notTriggered
	}
	return Detection{
		Triggered:     true,
		Quote:         quote,
		ReplaceStart:  replaceStart,
		ReplaceLength: replaceLength,
	}
}

// canStartRequire inspects the token preceding "require" and decides whether
// a require call can begin there.
func canStartRequire(snapshot *jstoken.Snapshot, scanner *reverseScanner, cursor int) bool {
	previous, ok := scanner.Next()
	if !ok {
		// require at the very start of the document.
		return true
	}
	if snapshot.LineOf(previous.Start) != snapshot.LineOf(cursor) {
		// require starts a fresh statement after a newline.
		return true
	}
	if strings.HasSuffix(previous.Text, ";") {
		// Classifiers may fold a statement terminator into the trailing
		// token, as in f(x); coming back as a single token.
		return true
	}
	if _, ok := expressionPrefixes[previous.Text]; ok {
		return true
	}
	// Any plain identifier is allowed to precede require. This is permissive
	// on invalid code (two adjacent identifiers), which tolerates partially
	// typed statements like var x require(.
	return isIdentifierText(previous.Text) && !jstoken.IsKeyword(previous.Text)
}

// quotedSpanLength computes the replacement length for an existing quoted
// argument: the classified string span on the cursor's line, starting at the
// opening quote, minus the quote itself. The span covers any already-typed
// partial module path and, if present, the closing quote.
func quotedSpanLength(snapshot *jstoken.Snapshot, stream jstoken.Stream, quoteToken jstoken.Token) int {
	lineEnd := snapshot.LineEnd(snapshot.LineOf(quoteToken.Start))
	remaining := stream.Classify(quoteToken.Start, lineEnd)
	if len(remaining) == 0 {
		return 0
	}
	return remaining[0].Len() - 1
}

func isQuoteToken(token jstoken.Token) bool {
	return len(token.Text) > 0 && (token.Text[0] == '\'' || token.Text[0] == '"')
}

func isIdentifierText(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !isIdentifierRune(r) {
			return false
		}
	}
	return true
}

func isIdentifierRune(r rune) bool {
	return r == '_' || r == '$' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
