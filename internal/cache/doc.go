// Package cache provides a byte-budgeted LRU for encoded record blobs.
//
// Entries are keyed by blob name and charged against an optional
// resource.Controller so several caches can share one memory limit.
package cache
