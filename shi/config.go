// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package shi implements the controller's smart-home Modbus-TCP interface:
// read-only "input" registers and read/write "holding" registers, both
// addressed with a fixed 10000 offset. The Modbus-TCP frame codec itself
// is provided by github.com/goburrow/modbus; this package only adds the
// batching, host-lock and settle-time discipline the controller expects.
// Grounded on luxtronik/shi/modbus.py, luxtronik/shi/interface.py and
// luxtronik/shi/constants.py.
package shi

import (
	"fmt"
	"time"
)

// DefaultPort is the controller's default Modbus-TCP listening port,
// grounded on luxtronik/shi/constants.py:LUXTRONIK_DEFAULT_MODBUS_PORT.
const DefaultPort = 502

// WaitAfterWrite is the settle delay observed after a holding-register
// write before the next read, grounded on
// luxtronik/shi/constants.py:LUXTRONIK_WAIT_TIME_AFTER_HOLDING_WRITE. Not
// exposed on Config: spec.md marks this delay non-tunable by the caller.
const WaitAfterWrite = 1 * time.Second

// RegisterBits is the Modbus register width this protocol packs values
// into, grounded on
// luxtronik/shi/constants.py:LUXTRONIK_SHI_REGISTER_BIT_SIZE.
const RegisterBits = 16

// Config bounds for Valid(), modeled on cs104/config.go.
const (
	TimeoutMin = 1 * time.Second
	TimeoutMax = 120 * time.Second
)

// Config holds Modbus-TCP connection parameters.
type Config struct {
	Host string
	Port int

	Timeout time.Duration
	SlaveID byte
}

// DefaultConfig returns a Config with the controller's default Modbus
// port and a 30s timeout, grounded on
// luxtronik/shi/constants.py:LUXTRONIK_DEFAULT_MODBUS_TIMEOUT.
func DefaultConfig(host string) Config {
	return Config{
		Host:    host,
		Port:    DefaultPort,
		Timeout: 30 * time.Second,
		SlaveID: 1,
	}
}

// Valid checks c's fields are within range, defaulting a zero Timeout.
func (c *Config) Valid() error {
	if c.Host == "" {
		return fmt.Errorf("shi: Config.Host must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("shi: Config.Port %d out of range", c.Port)
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Timeout < TimeoutMin || c.Timeout > TimeoutMax {
		return fmt.Errorf("shi: Config.Timeout %s out of range [%s, %s]", c.Timeout, TimeoutMin, TimeoutMax)
	}
	return nil
}
