package bma421

import _ "embed"

// configFile is the Bosch feature engine configuration for the BMA421 as
// shipped with the wasp-os BMA42x sensor API port. The first byte is the
// FEATURES_IN register address so the file can be written with one Tx.
//
//go:embed bma421-config.bin
var configFile []byte

// ConfigFileSize is the length of the feature engine configuration.
const ConfigFileSize = 6144

// ConfigFile returns the feature engine configuration for LoadFirmware,
// without the leading register address. The slice must not be modified.
func ConfigFile() []byte { return configFile[1:] }
