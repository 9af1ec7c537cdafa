package bma421

// I2C byte register operations. Multi-byte values are little-endian.

func (d *Device) readReg(reg byte) (byte, error) {
	d.w[0] = reg
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, err
	}
	return d.r[0], nil
}

func (d *Device) readBlock(reg byte, n int) ([]byte, error) {
	d.w[0] = reg
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:n]); err != nil {
		return nil, err
	}
	return d.r[:n], nil
}

func (d *Device) writeReg(reg, val byte) error {
	d.w[0] = reg
	d.w[1] = val
	return d.i2c.Tx(d.addr, d.w[:2], nil)
}

func (d *Device) updateReg(reg, mask, val byte) error {
	cur, err := d.readReg(reg)
	if err != nil {
		return err
	}
	return d.writeReg(reg, (cur&^mask)|(val&mask))
}

// writeBurst writes p starting at reg. len(p) must fit the write buffer.
func (d *Device) writeBurst(reg byte, p []byte) error {
	d.w[0] = reg
	n := copy(d.w[1:], p)
	return d.i2c.Tx(d.addr, d.w[:1+n], nil)
}
