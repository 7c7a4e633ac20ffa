package iis2dlpc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFs2ToMg(t *testing.T) {
	assert.InDelta(t, 24.4, FromFs2ToMg(100), 1e-4)
	assert.InDelta(t, -24.4, FromFs2ToMg(-100), 1e-4)
}

func TestFromLsbToMg(t *testing.T) {
	tests := []struct {
		fs       FullScale
		mode     Mode
		expected float32
	}{
		{FullScale2g, ModeHighPerformance, 24.4},
		{FullScale4g, ModeHighPerformance, 48.8},
		{FullScale8g, ModeContLowPwrLowNoise2, 97.6},
		{FullScale16g, ModeHighPerformanceLowNoise, 195.2},
		{FullScale2g, ModeContLowPwr12bit, 97.6},
		{FullScale4g, ModeSingleLowPwr12bit, 195.2},
		{FullScale8g, ModeContLowPwrLowNoise12bit, 390.4},
		{FullScale16g, ModeSingleLowPwrLowNoise12bit, 780.8},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%v_%v", test.fs, test.mode), func(t *testing.T) {
			assert.InDelta(t, test.expected, FromLsbToMg(test.fs, test.mode, 100), 1e-3)
		})
	}
}

func TestFromLsbToCelsius(t *testing.T) {
	assert.Equal(t, float32(25), FromLsbToCelsius(0))
	assert.Equal(t, float32(26), FromLsbToCelsius(16))
	assert.Equal(t, float32(24.5), FromLsbToCelsius(-8))
}
