// Package stat produces immutable, POSIX-style file status snapshots on
// Windows. It decides between handle-based and directory-entry-based metadata
// acquisition, resolves ownership from security descriptors, decomposes native
// attribute bitmasks, and synthesizes a POSIX mode and file type.
//
// The native calls that the package relies upon are accessed through the
// Native interface, a Windows implementation of which is returned by
// DefaultNative.
package stat
