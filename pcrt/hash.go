package pcrt

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

func HashBool(v bool) uint64 {
	if v {
		return 1231
	}
	return 1237
}

func HashFloat32(v float32) uint64 {
	return uint64(math.Float32bits(v))
}

func HashFloat64(v float64) uint64 {
	return math.Float64bits(v)
}
