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

// Package requirecomplete decides whether a cursor position is a valid
// require(...) module-path completion position, and which span of text a
// committed completion should replace.
//
// The engine is heuristic: it reconstructs just enough syntactic context from
// a linear backward walk over classified tokens, with no AST and no lookahead
// past the cursor. Two fixed token sets (an operator allow-list and a keyword
// list) stand in for a grammar.
package requirecomplete
