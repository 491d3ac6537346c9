// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package cfi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrConnectionClosed is returned when the peer closes the connection
// mid-read, signaled on the wire by a zero-length read where more data was
// expected. Grounded on luxtronik/cfi/interface.py:_read_bytes, which
// raises ConnectionError in that case.
var ErrConnectionClosed = errors.New("cfi: connection closed by peer")

// Transport is the raw big-endian int32 stream used by all four CFI
// commands, grounded on luxtronik/cfi/interface.py's _send_ints/_read_int/
// _read_bytes primitives.
type Transport struct {
	conn net.Conn
	cfg  Config
}

// Dial opens a TCP connection to cfg.Host:cfg.Port.
func Dial(cfg Config) (*Transport, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	conn, err := net.DialTimeout("tcp", addr, cfg.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("cfi: dial %s: %w", addr, err)
	}
	return &Transport{conn: conn, cfg: cfg}, nil
}

// Close closes the underlying connection.
func (t *Transport) Close() error {
	return t.conn.Close()
}

// WriteInts sends each value as a big-endian 32-bit int, grounded on
// luxtronik/cfi/interface.py:_send_ints
// (struct.pack(">" + "i"*len(ints), ...)).
func (t *Transport) WriteInts(values []int64) error {
	if t.cfg.WriteTimeout > 0 {
		_ = t.conn.SetWriteDeadline(time.Now().Add(t.cfg.WriteTimeout))
	}
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint32(buf[i*4:], uint32(int32(v)))
	}
	if _, err := t.conn.Write(buf); err != nil {
		return fmt.Errorf("cfi: write: %w", err)
	}
	return nil
}

// ReadBytes reads exactly n bytes, looping over short reads, and returns
// ErrConnectionClosed if the peer closes before n bytes arrive. Grounded
// on luxtronik/cfi/interface.py:_read_bytes.
func (t *Transport) ReadBytes(n int) ([]byte, error) {
	if t.cfg.ReadTimeout > 0 {
		_ = t.conn.SetReadDeadline(time.Now().Add(t.cfg.ReadTimeout))
	}
	buf := make([]byte, n)
	read := 0
	for read < n {
		m, err := t.conn.Read(buf[read:])
		if m == 0 && err == nil {
			return nil, ErrConnectionClosed
		}
		if err != nil {
			return nil, fmt.Errorf("cfi: read: %w", err)
		}
		read += m
	}
	return buf, nil
}

// ReadInts reads n big-endian 32-bit ints, grounded on
// luxtronik/cfi/interface.py:_read_int.
func (t *Transport) ReadInts(n int) ([]int64, error) {
	buf, err := t.ReadBytes(4 * n)
	if err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(int32(binary.BigEndian.Uint32(buf[i*4:])))
	}
	return out, nil
}

// ReadInt8s reads n signed single-byte values, grounded on
// luxtronik/cfi/interface.py:_read_char
// (LUXTRONIK_SOCKET_READ_SIZE_CHAR, one byte per visibility flag).
func (t *Transport) ReadInt8s(n int) ([]int64, error) {
	buf, err := t.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(int8(buf[i]))
	}
	return out, nil
}
