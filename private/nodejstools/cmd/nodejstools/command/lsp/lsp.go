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

// Package lsp implements the lsp command, which starts the language server.
package lsp

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/Lomheny/nodejstools/private/nodejstools/nodelsp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	portFlagName     = "port"
	logLevelFlagName = "log-level"
)

// NewCommand returns a new lsp command.
func NewCommand(name string) *cobra.Command {
	flags := newFlags()
	command := &cobra.Command{
		Use:   name,
		Short: "Start the language server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}
	flags.Bind(command.Flags())
	return command
}

type flags struct {
	Port     uint32
	LogLevel string
}

func newFlags() *flags {
	return &flags{}
}

func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.Uint32Var(&f.Port, portFlagName, 0, "Connect to the client on this TCP port instead of stdio")
	flagSet.StringVar(&f.LogLevel, logLevelFlagName, "info", "Log level (debug, info, warn, error)")
}

func run(ctx context.Context, flags *flags) error {
	logger, err := newLogger(flags.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		// Stderr sync failures are expected on some platforms.
		_ = logger.Sync()
	}()

	var stream jsonrpc2.Stream
	if flags.Port > 0 {
		tcpConn, err := net.Dial("tcp", fmt.Sprintf(":%d", flags.Port))
		if err != nil {
			return err
		}
		stream = jsonrpc2.NewStream(tcpConn)
	} else {
		stream = jsonrpc2.NewStream(&readWriteCloser{
			reader: os.Stdin,
			writer: os.Stdout,
		})
	}
	conn := jsonrpc2.NewConn(stream)
	server, err := nodelsp.NewServer(ctx, logger, conn)
	if err != nil {
		return err
	}
	conn.Go(ctx, protocol.ServerHandler(server, nil))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-conn.Done():
		return nil
	}
}

// newLogger builds the server logger. Messages go to stderr, stdout belongs
// to the jsonrpc stream.
func newLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}

type readWriteCloser struct {
	reader io.Reader
	writer io.Writer
}

func (r *readWriteCloser) Read(b []byte) (int, error) {
	return r.reader.Read(b)
}

func (r *readWriteCloser) Write(b []byte) (int, error) {
	return r.writer.Write(b)
}

func (r *readWriteCloser) Close() error {
	var err error
	if closer, ok := r.writer.(io.Closer); ok {
		err = multierr.Append(err, closer.Close())
	}
	if closer, ok := r.reader.(io.Closer); ok {
		err = multierr.Append(err, closer.Close())
	}
	return err
}
