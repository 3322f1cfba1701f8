// Windows path root handling based on (but modified from)
// https://github.com/golang/go/blob/da0d1a44bac379f5acedb1933f85400de08f4ac6/src/os/path_windows.go
//
// The original code license:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
//
// The original license header inside the code itself:
//
// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"strings"
)

const (
	// extendedPrefix is the prefix of extended-length paths.
	extendedPrefix = `\\?\`
	// extendedUNCPrefix is the prefix of extended-length UNC paths.
	extendedUNCPrefix = `\\?\UNC\`
)

// isSeparator reports whether c is a directory separator character.
func isSeparator(c uint8) bool {
	// NOTE: Windows accept / as path separator.
	return c == '\\' || c == '/'
}

// uncVolumeLength returns the length of the server\share portion of a UNC
// path whose leading separators have already been removed (so that path begins
// with the server name). It returns -1 if the path isn't a well-formed UNC
// path.
func uncVolumeLength(path string) int {
	l := len(path)
	if l < 3 || isSeparator(path[0]) || path[0] == '.' {
		return -1
	}
	// The server name runs until the next separator, which mustn't be
	// repeated, and is followed by the share name.
	for n := 1; n < l-1; n++ {
		if isSeparator(path[n]) {
			n++
			if isSeparator(path[n]) || path[n] == '.' {
				return -1
			}
			for ; n < l; n++ {
				if isSeparator(path[n]) {
					break
				}
			}
			return n
		}
	}
	return -1
}

// volumeName returns the leading volume name of a path, e.g. "C:",
// "\\server\share", "\\?\C:", or "\\?\UNC\server\share". It returns an empty
// string if the path has no volume name.
func volumeName(path string) string {
	// Handle extended-length paths.
	if strings.HasPrefix(path, extendedUNCPrefix) {
		if n := uncVolumeLength(path[len(extendedUNCPrefix):]); n > 0 {
			return path[:len(extendedUNCPrefix)+n]
		}
		return ""
	} else if strings.HasPrefix(path, extendedPrefix) {
		if v := volumeName(path[len(extendedPrefix):]); len(v) == 2 {
			return path[:len(extendedPrefix)+2]
		}
		return ""
	}

	if len(path) < 2 {
		return ""
	}
	// with drive letter
	c := path[0]
	if path[1] == ':' &&
		('0' <= c && c <= '9' || 'a' <= c && c <= 'z' ||
			'A' <= c && c <= 'Z') {
		return path[:2]
	}
	// is it UNC
	if isSeparator(path[0]) && isSeparator(path[1]) {
		if n := uncVolumeLength(path[2:]); n > 0 {
			return path[:2+n]
		}
	}
	return ""
}

// VolumeRoot strips a path to its root, e.g. "C:\" for "C:\Windows\win.ini"
// or "\\server\share\" for "\\server\share\file.txt". A path rooted on the
// current drive yields "\". A relative path has no root and yields an empty
// string, which native calls interpret as the root of the current directory.
func VolumeRoot(path string) string {
	if v := volumeName(path); v != "" {
		return v + `\`
	} else if len(path) > 0 && isSeparator(path[0]) {
		return `\`
	}
	return ""
}

// IsUNC determines whether or not a path refers to a network share, including
// extended-length UNC paths.
func IsUNC(path string) bool {
	if strings.HasPrefix(path, extendedUNCPrefix) {
		return true
	} else if strings.HasPrefix(path, extendedPrefix) {
		return false
	}
	return len(path) >= 2 && isSeparator(path[0]) && isSeparator(path[1])
}

// DriveNumber returns the drive number (0 through 25 for A through Z) of a
// path, or -1 if the path doesn't begin with a drive letter.
func DriveNumber(path string) int {
	v := volumeName(path)
	v = strings.TrimPrefix(v, extendedPrefix)
	if len(v) != 2 || v[1] != ':' {
		return -1
	}
	c := v[0]
	switch {
	case 'A' <= c && c <= 'Z':
		return int(c - 'A')
	case 'a' <= c && c <= 'z':
		return int(c - 'a')
	default:
		return -1
	}
}
