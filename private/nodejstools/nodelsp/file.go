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

// This file defines the open-file table and per-file state.

package nodelsp

import (
	"sync"

	"github.com/Lomheny/nodejstools/private/nodejstools/jstoken"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// file is an open document. Its snapshot is immutable; every update installs
// a fresh one, so a completion request always works against a consistent
// view.
type file struct {
	lsp     *lsp
	uri     protocol.DocumentURI
	version int32

	mu       sync.Mutex
	snapshot *jstoken.Snapshot
}

// Path returns the filesystem path of the file.
func (f *file) Path() string {
	return f.uri.Filename()
}

// Snapshot returns the current text snapshot.
func (f *file) Snapshot() *jstoken.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot
}

// Update replaces the file's text.
func (f *file) Update(version int32, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.version = version
	f.snapshot = jstoken.NewSnapshot(text)
}

// fileManager tracks every open file.
type fileManager struct {
	lsp   *lsp
	mu    sync.Mutex
	files map[protocol.DocumentURI]*file
}

func newFileManager(lsp *lsp) *fileManager {
	return &fileManager{
		lsp:   lsp,
		files: make(map[protocol.DocumentURI]*file),
	}
}

// Open registers a file, replacing any previous entry for the URI.
func (fm *fileManager) Open(uri protocol.DocumentURI, version int32, text string) *file {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	f := &file{
		lsp:      fm.lsp,
		uri:      uri,
		version:  version,
		snapshot: jstoken.NewSnapshot(text),
	}
	fm.files[uri] = f
	fm.lsp.logger.Debug("opened file", zap.String("uri", string(uri)))
	return f
}

// Get returns the open file for the URI, or nil.
func (fm *fileManager) Get(uri protocol.DocumentURI) *file {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	return fm.files[uri]
}

// Close forgets the file and drops its cached candidates.
func (fm *fileManager) Close(uri protocol.DocumentURI) {
	fm.mu.Lock()
	f := fm.files[uri]
	delete(fm.files, uri)
	fm.mu.Unlock()
	if f != nil {
		fm.lsp.catalog.Invalidate(f.Path())
		fm.lsp.logger.Debug("closed file", zap.String("uri", string(uri)))
	}
}
