package repository

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat16Bits(t *testing.T) {
	cases := []struct {
		name string
		in   float32
		want uint16
	}{
		{"zero", 0, 0x0000},
		{"one", 1, 0x3c00},
		{"half", 0.5, 0x3800},
		{"negative two", -2, 0xc000},
		{"smallest normal", 6.103515625e-05, 0x0400},
		{"max half", 65504, 0x7bff},
		{"overflow to inf", 1e6, 0x7c00},
		{"negative overflow", -1e6, 0xfc00},
		{"underflow to zero", 1e-9, 0x0000},
		{"positive infinity", float32(math.Inf(1)), 0x7c00},
		{"nan", float32(math.NaN()), 0x7e00},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, float16Bits(tc.in))
		})
	}
}

func TestFloat16Bits_RoundsTiesToEven(t *testing.T) {
	cases := []struct {
		name string
		in   float32
		want uint16
	}{
		// 1 + 2^-11 is exactly halfway between 0x3c00 and 0x3c01;
		// the even neighbor wins, as in numpy's float16 cast.
		{"tie to even down", 1.0 + 1.0/2048.0, 0x3c00},
		// 1 + 2^-10 + 2^-11 is halfway between 0x3c01 and 0x3c02.
		{"tie to even up", 1.0 + 3.0/2048.0, 0x3c02},
		{"above the tie rounds up", 1.0 + 3.0/4096.0, 0x3c01},
		{"below the tie rounds down", 1.0 + 1.0/4096.0, 0x3c00},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, float16Bits(tc.in))
		})
	}
}

func TestFloat16LEBytes(t *testing.T) {
	buf := float16LEBytes([]float32{1, 0.5, -2})

	require.Len(t, buf, 6, "two bytes per component")
	assert.Equal(t, []byte{0x00, 0x3c, 0x00, 0x38, 0x00, 0xc0}, buf)
}
