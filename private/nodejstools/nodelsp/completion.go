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

// This file implements code completion support for the LSP.

package nodelsp

import (
	"context"
	"fmt"
	"sort"

	"github.com/Lomheny/nodejstools/private/nodejstools/jstoken"
	"github.com/Lomheny/nodejstools/private/nodejstools/modulecatalog"
	"github.com/Lomheny/nodejstools/private/nodejstools/requirecomplete"
	"github.com/Lomheny/nodejstools/private/pkg/slicesext"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// Completion decides between the two completion paths: a require(...) module
// path when the cursor is in a require position, otherwise document-word
// completion over the applicable span.
func (s *server) Completion(
	ctx context.Context,
	params *protocol.CompletionParams,
) (*protocol.CompletionList, error) {
	file := s.fileManager.Get(params.TextDocument.URI)
	if file == nil {
		return nil, nil
	}
	snapshot := file.Snapshot()
	stream := jstoken.NewClassifier(snapshot)
	cursor := positionToOffset(snapshot, params.Position)

	detection := requirecomplete.Detect(snapshot, stream, cursor, true)
	s.logger.Debug(
		"completion request",
		zap.String("file", file.Path()),
		zap.Int("cursor", cursor),
		zap.Bool("require", detection.Triggered),
	)
	if detection.Triggered {
		return s.requireCompletions(file, snapshot, detection), nil
	}
	return s.wordCompletions(snapshot, stream, cursor), nil
}

// requireCompletions packages the assembled module candidates for the host,
// wrapping insertion text in quotes per the detection.
func (s *server) requireCompletions(
	file *file,
	snapshot *jstoken.Snapshot,
	detection requirecomplete.Detection,
) *protocol.CompletionList {
	candidates := s.catalog.Completions(file.Path())
	editRange := offsetRange(snapshot, detection.ReplaceStart, detection.ReplaceLength)
	items := make([]protocol.CompletionItem, len(candidates))
	for i, candidate := range candidates {
		var newText string
		if detection.Quote == requirecomplete.QuoteNone {
			// No opening quote typed yet: wrap in the workspace default.
			newText = s.config.DefaultQuote + candidate.DisplayText + s.config.DefaultQuote
		} else {
			// The replacement span runs from just after the opening quote to
			// the end of the quoted span, so re-adding the closing quote
			// leaves exactly one quote on each side.
			newText = candidate.DisplayText + detection.Quote.Char("")
		}
		items[i] = protocol.CompletionItem{
			Label:  candidate.DisplayText,
			Kind:   completionItemKind(candidate.Kind),
			Detail: candidate.Description,
			TextEdit: &protocol.TextEdit{
				Range:   editRange,
				NewText: newText,
			},
			// Keep the assembled order: non-relative candidates first, each
			// group lexicographic.
			SortText:   fmt.Sprintf("%04d", i),
			FilterText: candidate.DisplayText,
		}
	}
	return &protocol.CompletionList{Items: items}
}

// wordCompletions is the general completion path: resolve the replaceable
// span at the cursor and offer the document's identifiers over it.
func (s *server) wordCompletions(
	snapshot *jstoken.Snapshot,
	stream jstoken.Stream,
	cursor int,
) *protocol.CompletionList {
	span, ok := requirecomplete.ApplicableSpan(snapshot, stream, cursor)
	if !ok {
		// No applicable span: insert at the cursor.
		span = requirecomplete.Span{Start: cursor}
	}
	current := snapshot.Slice(span.Start, span.End())
	seen := make(map[string]struct{})
	var words []string
	for _, token := range stream.Classify(0, snapshot.Len()) {
		if token.Category != jstoken.CategoryIdentifier || token.Text == current {
			continue
		}
		if _, ok := seen[token.Text]; ok {
			continue
		}
		seen[token.Text] = struct{}{}
		words = append(words, token.Text)
	}
	sort.Strings(words)
	editRange := offsetRange(snapshot, span.Start, span.Length)
	return &protocol.CompletionList{
		Items: slicesext.Map(words, func(word string) protocol.CompletionItem {
			return protocol.CompletionItem{
				Label: word,
				Kind:  protocol.CompletionItemKindText,
				TextEdit: &protocol.TextEdit{
					Range:   editRange,
					NewText: word,
				},
			}
		}),
	}
}

func completionItemKind(kind modulecatalog.Kind) protocol.CompletionItemKind {
	switch kind {
	case modulecatalog.KindSourceFile:
		return protocol.CompletionItemKindFile
	default:
		return protocol.CompletionItemKindModule
	}
}
