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

// This file defines the project hierarchy the catalog walks, and its
// OS-filesystem implementation. Lookup failures degrade to empty results.

package modulecatalog

import (
	"os"
	"path/filepath"
	"strings"
)

// Folder is a folder node in the project hierarchy.
type Folder interface {
	// Path returns the full path of the folder.
	Path() string
	// Parent returns the parent folder, or nil at the hierarchy root.
	Parent() Folder
	// Folders returns the immediate child folders.
	Folders() []Folder
	// Files returns the immediate child files.
	Files() []File
	// FindFolder returns the immediate child folder with the given name,
	// matched case-insensitively, or nil.
	FindFolder(name string) Folder
}

// File is a file node in the project hierarchy.
type File interface {
	// Path returns the full path of the file.
	Path() string
	// Name returns the base name of the file.
	Name() string
	// Ext returns the file extension including the dot.
	Ext() string
}

// Hierarchy resolves folder paths into hierarchy nodes.
type Hierarchy interface {
	// Folder returns the folder node for the given path, or nil if the path
	// cannot be resolved.
	Folder(path string) Folder
}

// NewOSHierarchy returns a Hierarchy backed by the operating system
// filesystem.
func NewOSHierarchy() Hierarchy {
	return osHierarchy{}
}

type osHierarchy struct{}

func (osHierarchy) Folder(path string) Folder {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil
	}
	return osFolder{path: filepath.Clean(path)}
}

type osFolder struct {
	path string
}

func (f osFolder) Path() string {
	return f.path
}

func (f osFolder) Parent() Folder {
	parent := filepath.Dir(f.path)
	if parent == f.path {
		return nil
	}
	return osFolder{path: parent}
}

func (f osFolder) Folders() []Folder {
	entries, err := os.ReadDir(f.path)
	if err != nil {
		return nil
	}
	var folders []Folder
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, osFolder{path: filepath.Join(f.path, entry.Name())})
		}
	}
	return folders
}

func (f osFolder) Files() []File {
	entries, err := os.ReadDir(f.path)
	if err != nil {
		return nil
	}
	var files []File
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, osFile{path: filepath.Join(f.path, entry.Name())})
		}
	}
	return files
}

func (f osFolder) FindFolder(name string) Folder {
	entries, err := os.ReadDir(f.path)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if entry.IsDir() && strings.EqualFold(entry.Name(), name) {
			return osFolder{path: filepath.Join(f.path, entry.Name())}
		}
	}
	return nil
}

type osFile struct {
	path string
}

func (f osFile) Path() string {
	return f.path
}

func (f osFile) Name() string {
	return filepath.Base(f.path)
}

func (f osFile) Ext() string {
	return filepath.Ext(f.path)
}
