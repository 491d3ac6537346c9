// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package shi

import (
	"encoding/binary"
	"fmt"

	"github.com/goburrow/modbus"
)

// Transport wraps a goburrow/modbus TCP client, translating between
// register addresses/int64 values and the byte-packed wire calls the
// library exposes. Grounded on
// luxtronik/shi/modbus.py:LuxtronikModbusTcpInterface's
// read_holdings/write_holdings/read_inputs.
type Transport struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

// Dial opens a Modbus-TCP connection to cfg.Host:cfg.Port.
func Dial(cfg Config) (*Transport, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	handler := modbus.NewTCPClientHandler(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port))
	handler.Timeout = cfg.Timeout
	handler.SlaveId = cfg.SlaveID
	if err := handler.Connect(); err != nil {
		return nil, fmt.Errorf("shi: connect to %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return &Transport{handler: handler, client: modbus.NewClient(handler)}, nil
}

// Close closes the underlying Modbus-TCP connection.
func (t *Transport) Close() error {
	return t.handler.Close()
}

// ReadHoldings reads count holding registers starting at addr.
func (t *Transport) ReadHoldings(addr, count int) ([]int64, error) {
	raw, err := t.client.ReadHoldingRegisters(uint16(addr), uint16(count))
	if err != nil {
		return nil, fmt.Errorf("shi: read holdings at %d: %w", addr, err)
	}
	return unpackRegisters(raw, count), nil
}

// ReadInputs reads count input registers starting at addr.
func (t *Transport) ReadInputs(addr, count int) ([]int64, error) {
	raw, err := t.client.ReadInputRegisters(uint16(addr), uint16(count))
	if err != nil {
		return nil, fmt.Errorf("shi: read inputs at %d: %w", addr, err)
	}
	return unpackRegisters(raw, count), nil
}

// WriteHoldings writes values to count consecutive holding registers
// starting at addr.
func (t *Transport) WriteHoldings(addr int, values []int64) error {
	buf := make([]byte, 2*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint16(buf[i*2:], uint16(v))
	}
	if _, err := t.client.WriteMultipleRegisters(uint16(addr), uint16(len(values)), buf); err != nil {
		return fmt.Errorf("shi: write holdings at %d: %w", addr, err)
	}
	return nil
}

func unpackRegisters(raw []byte, count int) []int64 {
	out := make([]int64, count)
	for i := range out {
		out[i] = int64(int16(binary.BigEndian.Uint16(raw[i*2:])))
	}
	return out
}
