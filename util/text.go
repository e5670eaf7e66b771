// util/text.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"hash/fnv"
	"io"
	"strconv"
	"strings"
)

// Atof parses a floating point value, trimming surrounding whitespace
// first; used throughout the config package when splitting "value [unit]"
// tokens out of a persisted parameter file.
func Atof(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func IsAllNumbers(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// HashString64 returns a stable 64-bit hash of s, used by the coordinator
// to build the fingerprint it uses to invalidate its lazy cache.
func HashString64(s string) uint64 {
	hash := fnv.New64a()
	io.Copy(hash, strings.NewReader(s))
	return hash.Sum64()
}
