// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package inline

// largeFileLineThreshold is the line count above which a file is
// rendered via a cropped window instead of in full. Files at or below
// the threshold are small enough that echoing their whole content
// costs less than the information lost by cropping.
const largeFileLineThreshold = 250

// IsLargeFile reports whether a file with the given line count should
// be rendered via a cropped window rather than in full.
func IsLargeFile(lineCount int) bool {
	return lineCount > largeFileLineThreshold
}
