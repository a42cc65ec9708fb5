// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines FSInfo, which ties a definition loaded from a manifest
// back to the file it came from. Registration errors for manifest-loaded
// arguments quote this path so the user knows which file to edit.
package model

// FSInfo records where a definition was declared on disk.
type FSInfo struct {
	FilePath string
}

// NewFSInfo returns an FSInfo for filePath.
func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}

// String returns the file path, or "<code>" for definitions declared in Go.
func (f *FSInfo) String() string {
	if f == nil || f.FilePath == "" {
		return "<code>"
	}
	return f.FilePath
}
