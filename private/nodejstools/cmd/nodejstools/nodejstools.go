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

// Package nodejstools builds the command tree for the nodejstools CLI.
package nodejstools

import (
	"context"
	"fmt"
	"os"

	"github.com/Lomheny/nodejstools/private/nodejstools/cmd/nodejstools/command/lsp"
	"github.com/Lomheny/nodejstools/private/pkg/interrupt"
	"github.com/spf13/cobra"
)

// Main runs the CLI and exits the process.
func Main(name string) {
	ctx := interrupt.Handle(context.Background())
	if err := NewRootCommand(name).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}

// NewRootCommand returns the root command.
func NewRootCommand(name string) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           name,
		Short:         "Editor tooling for Node-style JavaScript.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.AddCommand(lsp.NewCommand("lsp"))
	return rootCommand
}
