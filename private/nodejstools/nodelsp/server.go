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

package nodelsp

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/Lomheny/nodejstools/private/nodejstools/modulecatalog"
	"go.lsp.dev/protocol"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// server is an implementation of protocol.Server.
//
// This is a separate type from nodelsp.lsp so that the dozens of handler
// methods for this type are kept separate from the rest of the logic.
//
// See https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification.
type server struct {
	// This automatically implements all of protocol.Server for us. By default,
	// every method returns an error.
	nyi

	// We embed the LSP pointer as well, since it only has private members.
	*lsp
}

// newServer creates a protocol.Server implementation out of an lsp.
func newServer(lsp *lsp) protocol.Server {
	return &server{lsp: lsp}
}

// Methods for server are grouped according to the groups in the LSP protocol specification.

// -- Lifecycle Methods

// Initialize is the first message the LSP receives from the client. The
// workspace configuration is loaded here, and the module catalog rebuilt
// with it.
func (s *server) Initialize(
	ctx context.Context,
	params *protocol.InitializeParams,
) (*protocol.InitializeResult, error) {
	if rootPath := rootPathFromParams(params); rootPath != "" {
		config, err := loadConfig(rootPath)
		if err != nil {
			return nil, err
		}
		s.lsp.config = config
		s.lsp.catalog = modulecatalog.NewCatalog(
			s.lsp.logger,
			modulecatalog.WithExtraBuiltins(config.ExtraBuiltins),
			modulecatalog.WithExcludedDirs(config.ExcludedDirs),
			modulecatalog.WithMaxDepth(config.MaxWalkDepth),
		)
		s.lsp.logger.Info("loaded workspace config", zap.String("root", rootPath))
	}

	info := &protocol.ServerInfo{Name: "nodejstools-lsp"}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.Version = buildInfo.Main.Version
	}

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				// Request that whole files be sent to us. Source files the
				// size an editor keeps open reclassify in microseconds, so
				// this simplifies our logic without making the LSP slow.
				Change: protocol.TextDocumentSyncKindFull,
			},
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{"'", "\"", "(", "/"},
			},
		},
		ServerInfo: info,
	}, nil
}

// Initialized is sent by the client after it receives the Initialize response
// and has initialized itself. This is only a notification.
func (s *server) Initialized(
	ctx context.Context,
	params *protocol.InitializedParams,
) error {
	return nil
}

func (s *server) SetTrace(
	ctx context.Context,
	params *protocol.SetTraceParams,
) error {
	s.lsp.traceValue.Store(&params.Value)
	return nil
}

// Shutdown is sent by the client when it wants the server to shut down and
// exit. The client will wait until Shutdown returns, and then call Exit.
func (s *server) Shutdown(ctx context.Context) error {
	return nil
}

// Exit is a notification that the client has seen shutdown complete, and that
// the server should now exit.
func (s *server) Exit(ctx context.Context) error {
	err := s.lsp.watcher.Close()
	if s.lsp.conn != nil {
		// Close the connection. This will let the server shut down gracefully
		// once this notification is replied to.
		err = multierr.Append(err, s.lsp.conn.Close())
	}
	return err
}

// -- File synchronization methods.

// DidOpen is called whenever the client opens a document. This is our signal
// to snapshot it and start watching its dependency surface.
func (s *server) DidOpen(
	ctx context.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	file := s.fileManager.Open(
		params.TextDocument.URI,
		params.TextDocument.Version,
		params.TextDocument.Text,
	)
	s.watcher.WatchFileContext(file.Path())
	return nil
}

// DidChange is called whenever the client edits a document.
func (s *server) DidChange(
	ctx context.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	file := s.fileManager.Get(params.TextDocument.URI)
	if file == nil {
		// Update for a file we don't know about? Seems bad!
		return fmt.Errorf("received update for file that was not open: %q", params.TextDocument.URI)
	}
	if len(params.ContentChanges) == 0 {
		return nil
	}
	file.Update(params.TextDocument.Version, params.ContentChanges[0].Text)
	return nil
}

// DidClose is called whenever the client closes a document.
func (s *server) DidClose(
	ctx context.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	s.fileManager.Close(params.TextDocument.URI)
	return nil
}

func rootPathFromParams(params *protocol.InitializeParams) string {
	if params == nil {
		return ""
	}
	if params.RootURI != "" {
		return params.RootURI.Filename()
	}
	return params.RootPath
}
