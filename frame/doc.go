// Package frame provides the rectangular "rows x named columns" value that
// composite vectors use as their proxy.
//
// A Frame is itself a vector.Storage: taking rows takes the same positions
// from every column, so columns can never drift to different lengths.
// Frames may carry row labels; consumers that do not want them call
// WithoutRowNames.
package frame
