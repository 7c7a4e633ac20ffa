package iis2dlpc

// Sensitivity in mg/LSB for 14 bit samples.
// FromFs4ToMg keeps 0.488; 0.122 is the figure for the raw 16 bit word.

func FromFs2ToMg(lsb int16) float32  { return float32(lsb) * 0.244 }
func FromFs4ToMg(lsb int16) float32  { return float32(lsb) * 0.488 }
func FromFs8ToMg(lsb int16) float32  { return float32(lsb) * 0.976 }
func FromFs16ToMg(lsb int16) float32 { return float32(lsb) * 1.952 }

// Low-power mode 1 variants, for 12 bit samples.

func FromFs2Lp1ToMg(lsb int16) float32  { return float32(lsb) * 0.976 }
func FromFs4Lp1ToMg(lsb int16) float32  { return float32(lsb) * 1.952 }
func FromFs8Lp1ToMg(lsb int16) float32  { return float32(lsb) * 3.904 }
func FromFs16Lp1ToMg(lsb int16) float32 { return float32(lsb) * 7.808 }

func FromLsbToCelsius(lsb int16) float32 {
	return float32(lsb)/16.0 + 25.0
}

// FromLsbToMg picks the multiplier for the full scale and power mode the caller configured.
// The device is not consulted.
func FromLsbToMg(fs FullScale, mode Mode, lsb int16) float32 {
	lp1 := mode.LowPower1()
	switch fs {
	case FullScale4g:
		if lp1 {
			return FromFs4Lp1ToMg(lsb)
		}
		return FromFs4ToMg(lsb)
	case FullScale8g:
		if lp1 {
			return FromFs8Lp1ToMg(lsb)
		}
		return FromFs8ToMg(lsb)
	case FullScale16g:
		if lp1 {
			return FromFs16Lp1ToMg(lsb)
		}
		return FromFs16ToMg(lsb)
	default:
		if lp1 {
			return FromFs2Lp1ToMg(lsb)
		}
		return FromFs2ToMg(lsb)
	}
}
