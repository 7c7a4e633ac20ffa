package iis2dlpc

import (
	"fmt"
	"sort"
)

// Every enumeration resolves unknown bit patterns to its zero-valued default instead of
// failing: the device may report reserved combinations.

func lookup[E comparable](names map[E]string, v E, def E) E {
	if _, ok := names[v]; ok {
		return v
	}
	return def
}

func name[E ~uint8](names map[E]string, v E) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("reserved(%#02x)", uint8(v))
}

func parse[E ~uint8](names map[E]string, kind, text string) (E, error) {
	for v, n := range names {
		if n == text {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (valid: %v)", kind, text, Names(names))
}

// Names lists the textual names of an enumeration, sorted.
func Names[E comparable](names map[E]string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Mode is the operating mode, packed as low_noise<<4 | mode<<2 | lp_mode.
// mode and lp_mode live in CTRL1, low_noise in CTRL6.
type Mode uint8

const (
	ModeContLowPwr12bit           Mode = 0x00
	ModeContLowPwr2               Mode = 0x01
	ModeContLowPwr3               Mode = 0x02
	ModeContLowPwr4               Mode = 0x03
	ModeHighPerformance           Mode = 0x04
	ModeSingleLowPwr12bit         Mode = 0x08
	ModeSingleLowPwr2             Mode = 0x09
	ModeSingleLowPwr3             Mode = 0x0A
	ModeSingleLowPwr4             Mode = 0x0B
	ModeContLowPwrLowNoise12bit   Mode = 0x10
	ModeContLowPwrLowNoise2       Mode = 0x11
	ModeContLowPwrLowNoise3       Mode = 0x12
	ModeContLowPwrLowNoise4       Mode = 0x13
	ModeHighPerformanceLowNoise   Mode = 0x14
	ModeSingleLowPwrLowNoise12bit Mode = 0x18
	ModeSingleLowPwrLowNoise2     Mode = 0x19
	ModeSingleLowPwrLowNoise3     Mode = 0x1A
	ModeSingleLowPwrLowNoise4     Mode = 0x1B
)

var ModeNames = map[Mode]string{
	ModeContLowPwr12bit:           "cont-low-power-12bit",
	ModeContLowPwr2:               "cont-low-power-2",
	ModeContLowPwr3:               "cont-low-power-3",
	ModeContLowPwr4:               "cont-low-power-4",
	ModeHighPerformance:           "high-performance",
	ModeSingleLowPwr12bit:         "single-low-power-12bit",
	ModeSingleLowPwr2:             "single-low-power-2",
	ModeSingleLowPwr3:             "single-low-power-3",
	ModeSingleLowPwr4:             "single-low-power-4",
	ModeContLowPwrLowNoise12bit:   "cont-low-power-low-noise-12bit",
	ModeContLowPwrLowNoise2:       "cont-low-power-low-noise-2",
	ModeContLowPwrLowNoise3:       "cont-low-power-low-noise-3",
	ModeContLowPwrLowNoise4:       "cont-low-power-low-noise-4",
	ModeHighPerformanceLowNoise:   "high-performance-low-noise",
	ModeSingleLowPwrLowNoise12bit: "single-low-power-low-noise-12bit",
	ModeSingleLowPwrLowNoise2:     "single-low-power-low-noise-2",
	ModeSingleLowPwrLowNoise3:     "single-low-power-low-noise-3",
	ModeSingleLowPwrLowNoise4:     "single-low-power-low-noise-4",
}

// NewMode packs the sub-fields; unknown combinations give ModeContLowPwr12bit.
func NewMode(mode, lpMode, lowNoise uint8) Mode {
	return lookup(ModeNames, Mode(lowNoise<<4|mode<<2|lpMode), ModeContLowPwr12bit)
}

func (m Mode) Mode() uint8 { return (uint8(m) & 0x0C) >> 2 }
func (m Mode) LpMode() uint8 { return uint8(m) & 0x03 }
func (m Mode) LowNoise() uint8 { return (uint8(m) & 0x10) >> 4 }
func (m Mode) String() string { return name(ModeNames, m) }

// LowPower1 reports whether samples are 12 bit (low-power mode 1).
func (m Mode) LowPower1() bool {
	return m.LpMode() == 0 && m.Mode() != ModeHighPerformance.Mode()
}

func ParseMode(text string) (Mode, error) { return parse(ModeNames, "power mode", text) }

// ODR is the output data rate, packed as slp_mode<<4 | odr.
// odr lives in CTRL1, slp_mode in CTRL3.
type ODR uint8

const (
	ODROff             ODR = 0x00
	ODR1Hz6LowPower    ODR = 0x01
	ODR12Hz5           ODR = 0x02
	ODR25Hz            ODR = 0x03
	ODR50Hz            ODR = 0x04
	ODR100Hz           ODR = 0x05
	ODR200Hz           ODR = 0x06
	ODR400Hz           ODR = 0x07
	ODR800Hz           ODR = 0x08
	ODR1kHz6           ODR = 0x09
	ODRSoftwareTrigger ODR = 0x12
	ODRPinTrigger      ODR = 0x22
)

var ODRNames = map[ODR]string{
	ODROff:             "off",
	ODR1Hz6LowPower:    "1.6hz",
	ODR12Hz5:           "12.5hz",
	ODR25Hz:            "25hz",
	ODR50Hz:            "50hz",
	ODR100Hz:           "100hz",
	ODR200Hz:           "200hz",
	ODR400Hz:           "400hz",
	ODR800Hz:           "800hz",
	ODR1kHz6:           "1.6khz",
	ODRSoftwareTrigger: "software-trigger",
	ODRPinTrigger:      "pin-trigger",
}

// NewODR packs the sub-fields; unknown combinations give ODROff.
func NewODR(odr, slpMode uint8) ODR {
	return lookup(ODRNames, ODR(slpMode<<4|odr), ODROff)
}

func (o ODR) Odr() uint8 { return uint8(o) & 0x0F }
func (o ODR) SlpMode() uint8 { return (uint8(o) & 0x30) >> 4 }
func (o ODR) String() string { return name(ODRNames, o) }

func ParseODR(text string) (ODR, error) { return parse(ODRNames, "data rate", text) }

// FilterPath selects the output path, packed as fds<<4 | usr_off_on_out.
// fds lives in CTRL6, usr_off_on_out in CTRL7.
type FilterPath uint8

const (
	FilterLowPassOnOut    FilterPath = 0x00
	FilterUserOffsetOnOut FilterPath = 0x01
	FilterHighPassOnOut   FilterPath = 0x10
)

var FilterPathNames = map[FilterPath]string{
	FilterLowPassOnOut:    "lpf",
	FilterUserOffsetOnOut: "user-offset",
	FilterHighPassOnOut:   "hpf",
}

// NewFilterPath packs the sub-fields; unknown combinations give FilterLowPassOnOut.
func NewFilterPath(fds, usrOffOnOut uint8) FilterPath {
	return lookup(FilterPathNames, FilterPath(fds<<4|usrOffOnOut), FilterLowPassOnOut)
}

func (f FilterPath) Fds() uint8 { return (uint8(f) & 0x10) >> 4 }
func (f FilterPath) UsrOffOnOut() uint8 { return uint8(f) & 0x01 }
func (f FilterPath) String() string { return name(FilterPathNames, f) }

func ParseFilterPath(text string) (FilterPath, error) {
	return parse(FilterPathNames, "filter path", text)
}

// ActivityMode selects activity/inactivity detection, packed as stationary<<1 | sleep_on.
// sleep_on lives in WAKE_UP_THS, stationary in WAKE_UP_DUR.
type ActivityMode uint8

const (
	ActivityNoDetection      ActivityMode = 0
	ActivityInactivity       ActivityMode = 1
	ActivityStationaryMotion ActivityMode = 3
)

var ActivityModeNames = map[ActivityMode]string{
	ActivityNoDetection:      "none",
	ActivityInactivity:       "activity-inactivity",
	ActivityStationaryMotion: "stationary-motion",
}

// NewActivityMode packs the sub-fields; unknown combinations give ActivityNoDetection.
func NewActivityMode(sleepOn, stationary uint8) ActivityMode {
	return lookup(ActivityModeNames, ActivityMode(stationary<<1|sleepOn), ActivityNoDetection)
}

func (a ActivityMode) SleepOn() uint8 { return uint8(a) & 0x01 }
func (a ActivityMode) Stationary() uint8 { return (uint8(a) & 0x02) >> 1 }
func (a ActivityMode) String() string { return name(ActivityModeNames, a) }

func ParseActivityMode(text string) (ActivityMode, error) {
	return parse(ActivityModeNames, "activity mode", text)
}

// FullScale is the measurement range, CTRL6.FS.
type FullScale uint8

const (
	FullScale2g FullScale = iota
	FullScale4g
	FullScale8g
	FullScale16g
)

var FullScaleNames = map[FullScale]string{
	FullScale2g:  "2g",
	FullScale4g:  "4g",
	FullScale8g:  "8g",
	FullScale16g: "16g",
}

func (f FullScale) String() string { return name(FullScaleNames, f) }

func ParseFullScale(text string) (FullScale, error) {
	return parse(FullScaleNames, "full scale", text)
}

// Bandwidth is the digital filter cut-off, CTRL6.BW_FILT.
type Bandwidth uint8

const (
	BandwidthODRDiv2 Bandwidth = iota
	BandwidthODRDiv4
	BandwidthODRDiv10
	BandwidthODRDiv20
)

var BandwidthNames = map[Bandwidth]string{
	BandwidthODRDiv2:  "odr/2",
	BandwidthODRDiv4:  "odr/4",
	BandwidthODRDiv10: "odr/10",
	BandwidthODRDiv20: "odr/20",
}

func (b Bandwidth) String() string { return name(BandwidthNames, b) }

func ParseBandwidth(text string) (Bandwidth, error) {
	return parse(BandwidthNames, "bandwidth", text)
}

// OffsetWeight is the user offset resolution, CTRL7.USR_OFF_W.
type OffsetWeight uint8

const (
	OffsetWeight977ug OffsetWeight = 0
	OffsetWeight15mg6 OffsetWeight = 1
)

var OffsetWeightNames = map[OffsetWeight]string{
	OffsetWeight977ug: "977ug",
	OffsetWeight15mg6: "15.6mg",
}

func (o OffsetWeight) String() string { return name(OffsetWeightNames, o) }

// SelfTestMode is CTRL3.ST.
type SelfTestMode uint8

const (
	SelfTestDisable SelfTestMode = iota
	SelfTestPositive
	SelfTestNegative
)

var SelfTestModeNames = map[SelfTestMode]string{
	SelfTestDisable:  "disable",
	SelfTestPositive: "positive",
	SelfTestNegative: "negative",
}

func (s SelfTestMode) String() string { return name(SelfTestModeNames, s) }

// DataReadyMode is CTRL7.DRDY_PULSED.
type DataReadyMode uint8

const (
	DataReadyLatched DataReadyMode = iota
	DataReadyPulsed
)

var DataReadyModeNames = map[DataReadyMode]string{
	DataReadyLatched: "latched",
	DataReadyPulsed:  "pulsed",
}

func (d DataReadyMode) String() string { return name(DataReadyModeNames, d) }

// SPIMode is CTRL2.SIM.
type SPIMode uint8

const (
	SPI4Wire SPIMode = iota
	SPI3Wire
)

var SPIModeNames = map[SPIMode]string{
	SPI4Wire: "4-wire",
	SPI3Wire: "3-wire",
}

func (s SPIMode) String() string { return name(SPIModeNames, s) }

// I2CInterface is CTRL2.I2C_DISABLE.
type I2CInterface uint8

const (
	I2CEnabled I2CInterface = iota
	I2CDisabled
)

var I2CInterfaceNames = map[I2CInterface]string{
	I2CEnabled:  "enabled",
	I2CDisabled: "disabled",
}

func (i I2CInterface) String() string { return name(I2CInterfaceNames, i) }

// CSPullUp is CTRL2.CS_PU_DISC.
type CSPullUp uint8

const (
	CSPullUpConnected CSPullUp = iota
	CSPullUpDisconnected
)

var CSPullUpNames = map[CSPullUp]string{
	CSPullUpConnected:    "connected",
	CSPullUpDisconnected: "disconnected",
}

func (c CSPullUp) String() string { return name(CSPullUpNames, c) }

// PinPolarity is CTRL3.H_LACTIVE.
type PinPolarity uint8

const (
	ActiveHigh PinPolarity = iota
	ActiveLow
)

var PinPolarityNames = map[PinPolarity]string{
	ActiveHigh: "active-high",
	ActiveLow:  "active-low",
}

func (p PinPolarity) String() string { return name(PinPolarityNames, p) }

// Notification is CTRL3.LIR.
type Notification uint8

const (
	NotificationPulsed Notification = iota
	NotificationLatched
)

var NotificationNames = map[Notification]string{
	NotificationPulsed:  "pulsed",
	NotificationLatched: "latched",
}

func (n Notification) String() string { return name(NotificationNames, n) }

// PinMode is CTRL3.PP_OD.
type PinMode uint8

const (
	PushPull PinMode = iota
	OpenDrain
)

var PinModeNames = map[PinMode]string{
	PushPull:  "push-pull",
	OpenDrain: "open-drain",
}

func (p PinMode) String() string { return name(PinModeNames, p) }

// WakeUpFeed is CTRL7.USR_OFF_ON_WU.
type WakeUpFeed uint8

const (
	WakeUpFeedHighPass WakeUpFeed = iota
	WakeUpFeedUserOffset
)

var WakeUpFeedNames = map[WakeUpFeed]string{
	WakeUpFeedHighPass:   "hpf",
	WakeUpFeedUserOffset: "user-offset",
}

func (w WakeUpFeed) String() string { return name(WakeUpFeedNames, w) }

// TapPriority is TAP_THS_Y.TAP_PRIOR.
type TapPriority uint8

const (
	TapPriorityXYZ TapPriority = 0
	TapPriorityYXZ TapPriority = 1
	TapPriorityXZY TapPriority = 2
	TapPriorityZYX TapPriority = 3
	TapPriorityYZX TapPriority = 5
	TapPriorityZXY TapPriority = 6
)

var TapPriorityNames = map[TapPriority]string{
	TapPriorityXYZ: "xyz",
	TapPriorityYXZ: "yxz",
	TapPriorityXZY: "xzy",
	TapPriorityZYX: "zyx",
	TapPriorityYZX: "yzx",
	TapPriorityZXY: "zxy",
}

func (t TapPriority) String() string { return name(TapPriorityNames, t) }

// TapMode is WAKE_UP_THS.SINGLE_DOUBLE_TAP.
type TapMode uint8

const (
	TapOnlySingle TapMode = iota
	TapSingleAndDouble
)

var TapModeNames = map[TapMode]string{
	TapOnlySingle:      "single",
	TapSingleAndDouble: "single-double",
}

func (t TapMode) String() string { return name(TapModeNames, t) }

// SixDFeed is CTRL7.LPASS_ON6D.
type SixDFeed uint8

const (
	SixDFeedODRDiv2 SixDFeed = iota
	SixDFeedLowPass2
)

var SixDFeedNames = map[SixDFeed]string{
	SixDFeedODRDiv2:  "odr/2",
	SixDFeedLowPass2: "lpf2",
}

func (s SixDFeed) String() string { return name(SixDFeedNames, s) }

// FreeFallThreshold is FREE_FALL.FF_THS, expressed in LSB at ±2g.
type FreeFallThreshold uint8

const (
	FreeFall5LSB FreeFallThreshold = iota
	FreeFall7LSB
	FreeFall8LSB
	FreeFall10LSB
	FreeFall11LSB
	FreeFall13LSB
	FreeFall15LSB
	FreeFall16LSB
)

var FreeFallThresholdNames = map[FreeFallThreshold]string{
	FreeFall5LSB:  "5lsb",
	FreeFall7LSB:  "7lsb",
	FreeFall8LSB:  "8lsb",
	FreeFall10LSB: "10lsb",
	FreeFall11LSB: "11lsb",
	FreeFall13LSB: "13lsb",
	FreeFall15LSB: "15lsb",
	FreeFall16LSB: "16lsb",
}

func (f FreeFallThreshold) String() string { return name(FreeFallThresholdNames, f) }

// FIFOMode is FIFO_CTRL.FMODE. Encodings 2, 5 and 7 are reserved.
type FIFOMode uint8

const (
	FIFOBypass         FIFOMode = 0
	FIFOFifo           FIFOMode = 1
	FIFOStreamToFifo   FIFOMode = 3
	FIFOBypassToStream FIFOMode = 4
	FIFOStream         FIFOMode = 6
)

var FIFOModeNames = map[FIFOMode]string{
	FIFOBypass:         "bypass",
	FIFOFifo:           "fifo",
	FIFOStreamToFifo:   "stream-to-fifo",
	FIFOBypassToStream: "bypass-to-stream",
	FIFOStream:         "stream",
}

func (f FIFOMode) String() string { return name(FIFOModeNames, f) }

func ParseFIFOMode(text string) (FIFOMode, error) { return parse(FIFOModeNames, "fifo mode", text) }
