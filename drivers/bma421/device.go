package bma421

import (
	"errors"
	"time"

	"wristcore-go/hal"
	"wristcore-go/types"
)

var (
	// Sentinel errors (TinyGo-safe; no fmt)
	ErrWrongChip      = errors.New("bma421: unexpected chip id")
	ErrFirmwareFailed = errors.New("bma421: feature firmware not accepted")
	ErrThreshold      = errors.New("bma421: any-motion threshold out of range")
	ErrDuration       = errors.New("bma421: any-motion duration out of range")
)

// SoftResetSettle is the wait after the soft reset command before the part
// accepts configuration again.
const SoftResetSettle = 200 * time.Millisecond

// firmwareSettle is the wait after INIT_CTRL before checking the feature
// engine status.
const firmwareSettle = 150 * time.Millisecond

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x18 if zero.
	Address uint16
	// Delay defaults to hal.Sleep.
	Delay hal.Delay
}

// AccelConfig is written to ACC_CONF and ACC_RANGE.
type AccelConfig struct {
	ODR       ODR
	Bandwidth Bandwidth
	Perf      PerfMode
	Range     Range
}

// AnyMotionConfig describes the any-motion interrupt.
type AnyMotionConfig struct {
	Axes Axes
	// Threshold on the slope, 1 bit = 0.48 mg, 11 bits.
	Threshold uint16
	// Duration in consecutive samples over threshold, 1 bit = 20 ms, 13 bits.
	Duration uint16
}

// Device represents a BMA421 on an I²C bus.
type Device struct {
	i2c   hal.I2C
	addr  uint16
	delay hal.Delay

	// Fixed buffers to avoid per-call heap allocations.
	w [1 + featureSize]byte
	r [featureSize]byte
	f [featureSize]byte // feature page shadow
}

// New constructs a Device. It does not touch the hardware.
func New(i2c hal.I2C, cfgs ...Config) *Device {
	d := &Device{i2c: i2c, addr: AddressDefault, delay: hal.Sleep}
	if len(cfgs) > 0 {
		c := cfgs[0]
		if c.Address != 0 {
			d.addr = c.Address
		}
		if c.Delay != nil {
			d.delay = c.Delay
		}
	}
	return d
}

// ChipID reads the identification register.
func (d *Device) ChipID() (byte, error) { return d.readReg(regChipID) }

// Connected reports whether a BMA421 or BMA423 answers.
func (d *Device) Connected() error {
	id, err := d.ChipID()
	if err != nil {
		return err
	}
	if id != ChipIDBMA421 && id != ChipIDBMA423 {
		return ErrWrongChip
	}
	return nil
}

// SoftReset issues the reset command and waits SoftResetSettle. All
// configuration, including the step counter, is lost.
func (d *Device) SoftReset() error {
	err := d.writeReg(regCmd, cmdSoftReset)
	d.delay(SoftResetSettle)
	return err
}

// EnableI2CWatchdog arms the interface watchdog so a stuck transfer cannot
// hold SDA low.
func (d *Device) EnableI2CWatchdog() error { return d.writeReg(regNVConf, nvI2CWatchdog) }

// SetAdvancedPowerSave toggles PWR_CONF.adv_power_save. The feature window
// is only reliable with it off.
func (d *Device) SetAdvancedPowerSave(on bool) error {
	var v byte
	if on {
		v = pwrConfAdvPwrSave
	}
	return d.updateReg(regPwrConf, pwrConfAdvPwrSave, v)
}

// EnableAccel turns the accelerometer on or off.
func (d *Device) EnableAccel(on bool) error {
	var v byte
	if on {
		v = pwrCtrlAccEn
	}
	return d.updateReg(regPwrCtrl, pwrCtrlAccEn, v)
}

// SetAccelConfig writes data rate, filter and range.
func (d *Device) SetAccelConfig(c AccelConfig) error {
	conf := byte(c.ODR&0x0F) | byte(c.Bandwidth&0x07)<<4 | byte(c.Perf&0x01)<<7
	if err := d.writeReg(regAccConf, conf); err != nil {
		return err
	}
	return d.writeReg(regAccRange, byte(c.Range&0x03))
}

// LoadFirmware streams the feature engine configuration blob through the
// feature window and checks that the engine accepted it.
func (d *Device) LoadFirmware(blob []byte) error {
	if len(blob) == 0 {
		return nil
	}
	if err := d.SetAdvancedPowerSave(false); err != nil {
		return err
	}
	if err := d.writeReg(regInitCtrl, 0x00); err != nil {
		return err
	}
	for off := 0; off < len(blob); off += firmwareChunk {
		end := off + firmwareChunk
		if end > len(blob) {
			end = len(blob)
		}
		word := off / 2
		if err := d.writeReg(regASICLsb, byte(word&0x0F)); err != nil {
			return err
		}
		if err := d.writeReg(regASICMsb, byte(word>>4)); err != nil {
			return err
		}
		if err := d.writeBurst(regFeatures, blob[off:end]); err != nil {
			return err
		}
	}
	if err := d.writeReg(regInitCtrl, 0x01); err != nil {
		return err
	}
	d.delay(firmwareSettle)
	st, err := d.readReg(regInternalStatus)
	if err != nil {
		return err
	}
	if st&internalStatusMask != internalStatusOK {
		return ErrFirmwareFailed
	}
	return nil
}

// FeaturesReady reports whether the feature engine is running, i.e. a
// configuration file was accepted since the last reset.
func (d *Device) FeaturesReady() (bool, error) {
	st, err := d.readReg(regInternalStatus)
	if err != nil {
		return false, err
	}
	return st&internalStatusMask == internalStatusOK, nil
}

// ---- Feature page ----

func (d *Device) loadFeatures() error {
	p, err := d.readBlock(regFeatures, featureSize)
	if err != nil {
		return err
	}
	copy(d.f[:], p)
	return nil
}

func (d *Device) storeFeatures() error { return d.writeBurst(regFeatures, d.f[:]) }

// EnableFeatures sets or clears feature enable bits (read-modify-write of the
// feature page).
func (d *Device) EnableFeatures(mask Feature, on bool) error {
	if err := d.loadFeatures(); err != nil {
		return err
	}
	var bits byte
	if mask&FeatureStepCounter != 0 {
		bits |= stepCntrEnBit
	}
	if mask&FeatureActivity != 0 {
		bits |= activityEnBit
	}
	if on {
		d.f[featStepCntrEnable] |= bits
	} else {
		d.f[featStepCntrEnable] &^= bits
	}
	return d.storeFeatures()
}

// SetAnyMotion configures the any-motion detector.
func (d *Device) SetAnyMotion(c AnyMotionConfig) error {
	if c.Threshold > anyMotionThreshMask {
		return ErrThreshold
	}
	if c.Duration > anyMotionDurMask {
		return ErrDuration
	}
	if err := d.loadFeatures(); err != nil {
		return err
	}
	w0 := uint16(d.f[featAnyMotion]) | uint16(d.f[featAnyMotion+1])<<8
	w0 = (w0 &^ anyMotionThreshMask) | c.Threshold
	w1 := c.Duration | uint16(c.Axes&AxesAll)<<13
	d.f[featAnyMotion] = byte(w0)
	d.f[featAnyMotion+1] = byte(w0 >> 8)
	d.f[featAnyMotion+2] = byte(w1)
	d.f[featAnyMotion+3] = byte(w1 >> 8)
	return d.storeFeatures()
}

// MapInterrupt routes feature interrupts (Int* bits) to an output pin and
// enables that pin as a push-pull, active-high output.
func (d *Device) MapInterrupt(pin IntPin, mask byte, on bool) error {
	reg := byte(regInt1Map)
	if pin == Int2 {
		reg = regInt2Map
	}
	var v byte
	if on {
		v = mask
	}
	if err := d.updateReg(reg, mask, v); err != nil {
		return err
	}
	if pin == Int1 {
		return d.writeReg(regInt1IOCtrl, int1OutputPushPull)
	}
	return nil
}

// ---- Readouts ----

// IntStatus reads (and thereby clears) the feature interrupt status.
func (d *Device) IntStatus() (byte, error) { return d.readReg(regIntStatus0) }

// ReadAccel returns one sample. The part left-justifies 12-bit values in
// 16-bit little-endian registers.
func (d *Device) ReadAccel() (types.AccelSample, error) {
	p, err := d.readBlock(regAccData, 6)
	if err != nil {
		return types.AccelSample{}, err
	}
	return types.AccelSample{
		X: int32(int16(uint16(p[0])|uint16(p[1])<<8) >> 4),
		Y: int32(int16(uint16(p[2])|uint16(p[3])<<8) >> 4),
		Z: int32(int16(uint16(p[4])|uint16(p[5])<<8) >> 4),
	}, nil
}

// StepCount reads the hardware step counter.
func (d *Device) StepCount() (uint32, error) {
	p, err := d.readBlock(regStepCounter, 4)
	if err != nil {
		return 0, err
	}
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24, nil
}
