// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package cfi implements the controller's length-prefixed TCP protocol
// (commands 3002-3005 over a raw big-endian int32 stream) used to read and
// write its "parameters", "calculations" and "visibilities" register
// classes. Grounded on luxtronik/cfi/interface.py and
// luxtronik/cfi/constants.py.
package cfi

import (
	"fmt"
	"time"
)

// DefaultPort is the controller's default CFI listening port, grounded on
// luxtronik/cfi/constants.py:LUXTRONIK_DEFAULT_PORT.
const DefaultPort = 8889

// Command codes for the four CFI request kinds, grounded on
// luxtronik/cfi/constants.py.
const (
	CmdParametersWrite   = 3002
	CmdParametersRead    = 3003
	CmdCalculationsRead  = 3004
	CmdVisibilitiesRead  = 3005
)

// WaitAfterWrite is the settle delay observed after the last queued write
// before any further telegram is sent, grounded on
// luxtronik/cfi/constants.py:WAIT_TIME_AFTER_PARAMETER_WRITE. Not exposed
// on Config: spec.md marks this delay non-tunable by the caller.
const WaitAfterWrite = 1 * time.Second

// Config bounds for Valid(), modeled on cs104/config.go's named Min/Max
// range constants.
const (
	ConnectTimeoutMin = 1 * time.Second
	ConnectTimeoutMax = 60 * time.Second
	ReadTimeoutMin    = 1 * time.Second
	ReadTimeoutMax    = 60 * time.Second
)

// Config holds CFI connection parameters, validated and defaulted the way
// cs104.Config is.
type Config struct {
	Host string
	Port int

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// DefaultConfig returns a Config with the controller's default port and
// generous timeouts.
func DefaultConfig(host string) Config {
	return Config{
		Host:           host,
		Port:           DefaultPort,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
	}
}

// Valid checks c's fields are within range, filling in any zero-valued
// duration with DefaultConfig's value. Grounded on cs104/config.go:Valid.
func (c *Config) Valid() error {
	if c.Host == "" {
		return fmt.Errorf("cfi: Config.Host must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("cfi: Config.Port %d out of range", c.Port)
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = 5 * time.Second
	}
	if c.ConnectTimeout < ConnectTimeoutMin || c.ConnectTimeout > ConnectTimeoutMax {
		return fmt.Errorf("cfi: Config.ConnectTimeout %s out of range [%s, %s]", c.ConnectTimeout, ConnectTimeoutMin, ConnectTimeoutMax)
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 5 * time.Second
	}
	if c.ReadTimeout < ReadTimeoutMin || c.ReadTimeout > ReadTimeoutMax {
		return fmt.Errorf("cfi: Config.ReadTimeout %s out of range [%s, %s]", c.ReadTimeout, ReadTimeoutMin, ReadTimeoutMax)
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 5 * time.Second
	}
	return nil
}
