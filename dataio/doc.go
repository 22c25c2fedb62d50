// Package dataio reads and writes plain-text numeric tables.
//
// A table file holds one row per line with columns separated by whitespace
// or commas. A comma separates exactly one pair of values, so "1,,2" is
// malformed. Blank lines and lines starting with '#' are ignored. Tables are
// column-major in memory: t[c][r] is row r of column c.
//
// Files ending in .zst or .lz4 are transparently compressed. Tables can be
// read from and written to any blobstore.Store (local disk, memory, S3,
// MinIO) with Load and Save; ReadData and WriteData are the local-file
// shorthands.
package dataio
