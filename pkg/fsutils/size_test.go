package fsutils

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size     uint64
		expected string
	}{
		{0, "0 Bytes"},
		{1, "1 Bytes"},
		{10, "10 Bytes"},
		{500, "500 Bytes"},
		{999, "999 Bytes"},
		{1023, "1023 Bytes"},
		{1024, "1 kB"},
		{1536, "1.5 kB"},
		{1126, "1.1 kB"},
		{1024*1024 - 1, "1024.0 kB"},
		{1024 * 1024, "1 MB"},
		{5 * 1024 * 1024, "5 MB"},
		{1073741824, "1 GB"},
		{1024 * 1024 * 1024 * 1024, "1 TB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1 PB"},
		{1024 * 1024 * 1024 * 1024 * 1024 * 1024, "1 EB"},
		{math.MaxUint64, "16 EB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			actual := FormatSize(tt.size)
			if actual != tt.expected {
				t.Errorf("FormatSize(%d) = %s; want %s", tt.size, actual, tt.expected)
			}
		})
	}
}

func TestFormatSize_Deterministic(t *testing.T) {
	for _, size := range []uint64{0, 1023, 1024, 1536, 123456789} {
		assert.Equal(t, FormatSize(size), FormatSize(size))
	}
}

func TestSizeUnitIndex_Monotonic(t *testing.T) {
	prev := 0
	for _, size := range []uint64{
		0, 1, 1023, 1024, 1025, 1536, 1024*1024 - 1, 1024 * 1024,
		1 << 30, 1<<30 + 1, 1 << 40, 1 << 50, 1 << 60, math.MaxUint64,
	} {
		unit := SizeUnitIndex(size)
		assert.True(t, unit >= prev, "unit index went down at %d", size)
		prev = unit
	}
	assert.Equal(t, 0, SizeUnitIndex(1023))
	assert.Equal(t, 1, SizeUnitIndex(1024))
	assert.Equal(t, 3, SizeUnitIndex(1<<30))
	assert.Equal(t, 6, SizeUnitIndex(math.MaxUint64))
}
