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

// Package nodelsp implements a language server for Node-style JavaScript
// whose centerpiece is require(...) module-path completion.
//
// The main entry-point of this package is the NewServer() function, which
// creates a new LSP server.
package nodelsp

import (
	"context"
	"sync/atomic"

	"github.com/Lomheny/nodejstools/private/nodejstools/modulecatalog"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// NewServer returns a new LSP server for the jsonrpc connection.
//
// The connection may be nil for a server that is driven directly, such as in
// tests.
func NewServer(
	ctx context.Context,
	logger *zap.Logger,
	conn jsonrpc2.Conn,
) (protocol.Server, error) {
	lsp := &lsp{
		conn:   conn,
		logger: logger,
		config: defaultConfig(),
	}
	lsp.fileManager = newFileManager(lsp)
	lsp.catalog = modulecatalog.NewCatalog(logger)
	watcher, err := newWatcher(lsp)
	if err != nil {
		return nil, err
	}
	lsp.watcher = watcher
	return newServer(lsp), nil
}

// *** PRIVATE ***

// lsp holds all of the LSP server's state.
type lsp struct {
	conn   jsonrpc2.Conn
	logger *zap.Logger

	config      *Config
	fileManager *fileManager
	catalog     *modulecatalog.Catalog
	watcher     *watcher

	traceValue atomic.Pointer[protocol.TraceValue]
}
