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

// Package modulecatalog builds the list of offerable require(...) module
// paths for a file: built-in runtime modules, packages found by walking
// ancestor node_modules directories, and sibling or child source files.
//
// Project candidates are cached per file. Invalidation is the owner's call,
// typically driven by a filesystem watcher on the file's dependency surface.
package modulecatalog

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/Lomheny/nodejstools/private/pkg/cache"
	"go.uber.org/zap"
)

const (
	// nodeModulesDirName is the reserved directory name under which
	// dependency packages are stored.
	nodeModulesDirName = "node_modules"
	// packageJSONFileName is the package-descriptor file name.
	packageJSONFileName = "package.json"
	// indexFileName is the default main file name.
	indexFileName = "index.js"
	// sourceFileExt is the recognized source file extension.
	sourceFileExt = ".js"
)

// Kind distinguishes what a candidate resolves to, for icon selection.
type Kind int

const (
	KindBuiltinModule Kind = iota
	KindPackage
	KindSourceFile
)

// Candidate is a single offerable module path. DisplayText is the module
// specifier a commit inserts. Uniqueness is not enforced: a built-in and a
// project module of the same name may both appear.
type Candidate struct {
	DisplayText string
	Description string
	Kind        Kind
}

// Catalog produces module-path candidates, caching the project-sourced part
// per file. A Catalog is safe for concurrent use.
type Catalog struct {
	logger        *zap.Logger
	hierarchy     Hierarchy
	extraBuiltins []string
	excludedDirs  map[string]struct{}
	maxDepth      int
	cache         cache.Cache[string, []Candidate]
}

// CatalogOption is an option for NewCatalog.
type CatalogOption func(*Catalog)

// WithHierarchy overrides the project hierarchy. The default walks the
// operating system filesystem.
func WithHierarchy(hierarchy Hierarchy) CatalogOption {
	return func(c *Catalog) {
		c.hierarchy = hierarchy
	}
}

// WithExtraBuiltins adds additional names to the built-in module list.
func WithExtraBuiltins(names []string) CatalogOption {
	return func(c *Catalog) {
		c.extraBuiltins = names
	}
}

// WithExcludedDirs excludes directory names from the project walk.
func WithExcludedDirs(names []string) CatalogOption {
	return func(c *Catalog) {
		for _, name := range names {
			c.excludedDirs[strings.ToLower(name)] = struct{}{}
		}
	}
}

// WithMaxDepth bounds folder recursion during the project walk. Zero means
// unbounded.
func WithMaxDepth(depth int) CatalogOption {
	return func(c *Catalog) {
		c.maxDepth = depth
	}
}

// NewCatalog returns a new Catalog.
func NewCatalog(logger *zap.Logger, options ...CatalogOption) *Catalog {
	catalog := &Catalog{
		logger:       logger,
		hierarchy:    NewOSHierarchy(),
		excludedDirs: make(map[string]struct{}),
	}
	for _, option := range options {
		option(catalog)
	}
	return catalog
}

// Builtins returns the built-in runtime module candidates. The list is cheap
// and is recomputed on every call.
func (c *Catalog) Builtins() []Candidate {
	candidates := make([]Candidate, 0, len(builtinModuleNames)+len(c.extraBuiltins))
	for _, name := range builtinModuleNames {
		candidates = append(candidates, Candidate{
			DisplayText: name,
			Description: builtinDescription,
			Kind:        KindBuiltinModule,
		})
	}
	for _, name := range c.extraBuiltins {
		candidates = append(candidates, Candidate{
			DisplayText: name,
			Description: builtinDescription,
			Kind:        KindBuiltinModule,
		})
	}
	return candidates
}

// ProjectCandidates returns the project-sourced candidates for the file,
// walking the hierarchy on the first request and answering from the cache
// until invalidated. A file that resolves to no project yields no candidates,
// not an error.
func (c *Catalog) ProjectCandidates(filePath string) []Candidate {
	filePath = filepath.Clean(filePath)
	if candidates, ok := c.cache.TryGet(filePath); ok {
		c.logger.Debug("project candidates cache hit", zap.String("file", filePath))
		return candidates
	}
	candidates := c.walkProject(filePath)
	c.cache.Store(filePath, candidates)
	c.logger.Debug(
		"walked project candidates",
		zap.String("file", filePath),
		zap.Int("count", len(candidates)),
	)
	return candidates
}

// Completions returns the full assembled candidate list for the file.
func (c *Catalog) Completions(filePath string) []Candidate {
	return Assemble(c.Builtins(), c.ProjectCandidates(filePath))
}

// Invalidate drops the cached project candidates for the file.
func (c *Catalog) Invalidate(filePath string) {
	c.cache.Invalidate(filepath.Clean(filePath))
}

// InvalidateAll drops every cached candidate list.
func (c *Catalog) InvalidateAll() {
	c.cache.InvalidateAll()
}

func (c *Catalog) walkProject(filePath string) []Candidate {
	folder := c.hierarchy.Folder(filepath.Dir(filePath))
	if folder == nil {
		return nil
	}
	var candidates []Candidate
	for ancestor := folder; ancestor != nil; ancestor = ancestor.Parent() {
		if modules := ancestor.FindFolder(nodeModulesDirName); modules != nil {
			candidates = append(candidates, c.walkModulesDir(modules, "", 0)...)
		}
	}
	candidates = append(candidates, c.walkPeers(folder, filePath, "./", 0)...)
	return candidates
}

// walkModulesDir enumerates a node_modules directory. Package folders are
// terminal units: they become one candidate each and are not expanded.
// Non-package subfolders are recursed into to support namespaced layouts.
func (c *Catalog) walkModulesDir(folder Folder, prefix string, depth int) []Candidate {
	var candidates []Candidate
	for _, file := range folder.Files() {
		if !isSourceFile(file) {
			continue
		}
		candidates = append(candidates, Candidate{
			DisplayText: prefix + file.Name(),
			Description: file.Path(),
			Kind:        KindSourceFile,
		})
	}
	for _, sub := range folder.Folders() {
		name := folderName(sub)
		if strings.EqualFold(name, nodeModulesDirName) || c.isExcluded(name) {
			continue
		}
		if isPackage(sub) {
			candidates = append(candidates, Candidate{
				DisplayText: prefix + name,
				Description: sub.Path(),
				Kind:        KindPackage,
			})
			continue
		}
		if c.depthExceeded(depth + 1) {
			continue
		}
		candidates = append(candidates, c.walkModulesDir(sub, prefix+name+"/", depth+1)...)
	}
	return candidates
}

// walkPeers enumerates the current file's own folder: sibling source files
// (excluding the file itself) and child folders, with ./-relative names.
func (c *Catalog) walkPeers(folder Folder, selfPath string, prefix string, depth int) []Candidate {
	var candidates []Candidate
	for _, file := range folder.Files() {
		if !isSourceFile(file) || file.Path() == selfPath {
			continue
		}
		candidates = append(candidates, Candidate{
			DisplayText: prefix + file.Name(),
			Description: file.Path(),
			Kind:        KindSourceFile,
		})
	}
	for _, sub := range folder.Folders() {
		name := folderName(sub)
		if strings.EqualFold(name, nodeModulesDirName) || c.isExcluded(name) {
			continue
		}
		if isPackage(sub) {
			candidates = append(candidates, Candidate{
				DisplayText: prefix + name,
				Description: sub.Path(),
				Kind:        KindPackage,
			})
			continue
		}
		if c.depthExceeded(depth + 1) {
			continue
		}
		candidates = append(candidates, c.walkPeers(sub, selfPath, prefix+name+"/", depth+1)...)
	}
	return candidates
}

func (c *Catalog) isExcluded(name string) bool {
	_, ok := c.excludedDirs[strings.ToLower(name)]
	return ok
}

func (c *Catalog) depthExceeded(depth int) bool {
	return c.maxDepth > 0 && depth > c.maxDepth
}

// isPackage reports whether the folder is a self-contained package: it
// contains a package descriptor or a default main file.
func isPackage(folder Folder) bool {
	for _, file := range folder.Files() {
		if strings.EqualFold(file.Name(), packageJSONFileName) ||
			strings.EqualFold(file.Name(), indexFileName) {
			return true
		}
	}
	return false
}

func isSourceFile(file File) bool {
	return strings.EqualFold(file.Ext(), sourceFileExt)
}

func folderName(folder Folder) string {
	return filepath.Base(folder.Path())
}

// Assemble merges built-in and project candidates into the final ordered
// sequence: display texts beginning with a dot sort after all others, and
// each group is in plain lexicographic order. The sort is stable.
func Assemble(builtins []Candidate, project []Candidate) []Candidate {
	merged := make([]Candidate, 0, len(builtins)+len(project))
	merged = append(merged, builtins...)
	merged = append(merged, project...)
	sort.SliceStable(merged, func(i, j int) bool {
		iDot := strings.HasPrefix(merged[i].DisplayText, ".")
		jDot := strings.HasPrefix(merged[j].DisplayText, ".")
		if iDot != jDot {
			return jDot
		}
		return merged[i].DisplayText < merged[j].DisplayText
	})
	return merged
}
