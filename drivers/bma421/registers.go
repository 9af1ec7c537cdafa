// Package bma421 provides a register-level driver for the Bosch BMA421
// 3-axis accelerometer with on-chip step counter and feature engine.
package bma421

const (
	// 7-bit I2C address (SDO low).
	AddressDefault = 0x18

	ChipIDBMA421 = 0x11
	ChipIDBMA423 = 0x13

	// --- Register addresses ---
	regChipID         = 0x00 // R
	regErr            = 0x02 // R
	regStatus         = 0x03 // R
	regAccData        = 0x12 // R, 6 bytes X/Y/Z LSB first
	regIntStatus0     = 0x1C // R/Clear, feature interrupts
	regIntStatus1     = 0x1D // R/Clear, hardware interrupts
	regStepCounter    = 0x1E // R, 4 bytes LSB first
	regInternalStatus = 0x2A // R
	regAccConf        = 0x40 // R/W
	regAccRange       = 0x41 // R/W
	regInt1IOCtrl     = 0x53 // R/W
	regInt1Map        = 0x56 // R/W
	regInt2Map        = 0x57 // R/W
	regInitCtrl       = 0x59 // R/W
	regASICLsb        = 0x5B // W, feature window pointer (word address, low nibble)
	regASICMsb        = 0x5C // W, feature window pointer (word address >> 4)
	regFeatures       = 0x5E // R/W burst window
	regNVConf         = 0x70 // R/W
	regPwrConf        = 0x7C // R/W
	regPwrCtrl        = 0x7D // R/W
	regCmd            = 0x7E // W

	// --- Commands / bit values ---
	cmdSoftReset = 0xB6

	nvI2CWatchdog = 0x06 // i2c_wdt_sel | i2c_wdt_en

	pwrCtrlAccEn      = 0x04
	pwrConfAdvPwrSave = 0x01

	int1OutputPushPull = 0x0A // output enabled, active high, push-pull

	internalStatusMask = 0x0F
	internalStatusOK   = 0x01

	// --- Feature page layout (read/written as one burst) ---
	featureSize = 64

	featAnyMotion      = 0x00 // word0: threshold[10:0]; word1: duration[12:0], x/y/z enable [15:13]
	featStepCntrEnable = 0x3B // byte; step counter + activity enable bits
	stepCntrEnBit      = 0x10
	activityEnBit      = 0x20

	anyMotionThreshMask = 0x07FF
	anyMotionDurMask    = 0x1FFF

	// Maximum bytes per burst when streaming feature firmware.
	firmwareChunk = 32
)

// ODR selects the output data rate (ACC_CONF[3:0]).
type ODR uint8

const (
	ODR25Hz  ODR = 0x06
	ODR50Hz  ODR = 0x07
	ODR100Hz ODR = 0x08
	ODR200Hz ODR = 0x09
)

// Bandwidth selects the averaging/filter setting (ACC_CONF[6:4]).
type Bandwidth uint8

const (
	BandwidthOSR4    Bandwidth = 0x00
	BandwidthOSR2    Bandwidth = 0x01
	BandwidthNormAvg Bandwidth = 0x02 // NORMAL_AVG4
	BandwidthCIC     Bandwidth = 0x03
)

// PerfMode selects ACC_CONF[7].
type PerfMode uint8

const (
	PerfCICAvg     PerfMode = 0 // averaging (low power)
	PerfContinuous PerfMode = 1
)

// Range selects the measurement range (ACC_RANGE[1:0]).
type Range uint8

const (
	Range2G  Range = 0x00
	Range4G  Range = 0x01
	Range8G  Range = 0x02
	Range16G Range = 0x03
)

// Axes enable mask for motion features.
type Axes uint8

const (
	AxisX   Axes = 0x01
	AxisY   Axes = 0x02
	AxisZ   Axes = 0x04
	AxesAll      = AxisX | AxisY | AxisZ
)

// Feature enable mask.
type Feature uint8

const (
	FeatureStepCounter Feature = 0x01
	FeatureActivity    Feature = 0x02
)

// Interrupt bits in INT_STATUS_0 and INTx_MAP.
const (
	IntStepCounter = 0x02
	IntActivity    = 0x04
	IntWristWear   = 0x08
	IntAnyMotion   = 0x20
	IntNoMotion    = 0x40
	IntError       = 0x80
)

// IntPin selects the interrupt output.
type IntPin uint8

const (
	Int1 IntPin = 1
	Int2 IntPin = 2
)
