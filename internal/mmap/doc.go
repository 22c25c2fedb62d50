// Package mmap maps files read-only into memory.
//
// On unix the mapping uses golang.org/x/sys/unix. Other platforms fall back
// to reading the whole file, which keeps the same API.
package mmap
