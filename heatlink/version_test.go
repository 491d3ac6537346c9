// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package heatlink_test

import (
	"encoding/binary"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rob-gra/go-heatlink/heatlink"
	"github.com/rob-gra/go-heatlink/registry"
	"github.com/rob-gra/go-heatlink/shi"
	"github.com/rob-gra/go-heatlink/vector"
	"github.com/rob-gra/go-heatlink/xlog"
)

func TestResolveVersionNilIsTrialAndError(t *testing.T) {
	v, err := heatlink.ResolveVersion(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestResolveVersionExplicitVersionValue(t *testing.T) {
	in := registry.MustParseVersion("3.91.2.0")
	v, err := heatlink.ResolveVersion(in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, *v)
}

func TestResolveVersionExplicitArray(t *testing.T) {
	v, err := heatlink.ResolveVersion([4]int{3, 91, 2, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, registry.Version{3, 91, 2, 0}, *v)
}

func TestResolveVersionLatestString(t *testing.T) {
	v, err := heatlink.ResolveVersion("latest", nil)
	require.NoError(t, err)
	assert.Equal(t, heatlink.LatestVersion, *v)
}

func TestResolveVersionExplicitDottedString(t *testing.T) {
	v, err := heatlink.ResolveVersion("3.90.1.0", nil)
	require.NoError(t, err)
	assert.Equal(t, heatlink.FirstVersionWithSHI, *v)
}

func TestResolveVersionRejectsUnparsableString(t *testing.T) {
	_, err := heatlink.ResolveVersion("not-a-version", nil)
	assert.Error(t, err)
}

func TestResolveVersionRejectsUnsupportedType(t *testing.T) {
	_, err := heatlink.ResolveVersion(3.14, nil)
	assert.Error(t, err)
}

func TestResolveVersionDetectWithoutSessionErrors(t *testing.T) {
	_, err := heatlink.ResolveVersion("detect", nil)
	assert.Error(t, err)
}

// --- "detect" mode, against a fake Modbus-TCP controller ---

type modbusRequest struct {
	transactionID uint16
	unitID        byte
	functionCode  byte
	data          []byte
}

type modbusConn struct{ conn net.Conn }

func (m *modbusConn) readRequest() (modbusRequest, error) {
	header := make([]byte, 7)
	if _, err := readFull(m.conn, header); err != nil {
		return modbusRequest{}, err
	}
	length := binary.BigEndian.Uint16(header[4:6])
	rest := make([]byte, length-1)
	if _, err := readFull(m.conn, rest); err != nil {
		return modbusRequest{}, err
	}
	return modbusRequest{
		transactionID: binary.BigEndian.Uint16(header[0:2]),
		unitID:        header[6],
		functionCode:  rest[0],
		data:          rest[1:],
	}, nil
}

func (m *modbusConn) writeResponse(req modbusRequest, pdu []byte) error {
	header := make([]byte, 7)
	binary.BigEndian.PutUint16(header[0:2], req.transactionID)
	binary.BigEndian.PutUint16(header[2:4], 0)
	binary.BigEndian.PutUint16(header[4:6], uint16(len(pdu)+1))
	header[6] = req.unitID
	_, err := m.conn.Write(append(header, pdu...))
	return err
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	read := 0
	for read < len(buf) {
		n, err := conn.Read(buf[read:])
		if err != nil {
			return read, err
		}
		read += n
	}
	return read, nil
}

func registersPDU(functionCode byte, values []int64) []byte {
	pdu := []byte{functionCode, byte(len(values) * 2)}
	for _, v := range values {
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, uint16(v))
		pdu = append(pdu, b...)
	}
	return pdu
}

func listenModbus(t *testing.T, handler func(mc *modbusConn, req modbusRequest)) shi.Config {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		mc := &modbusConn{conn: conn}
		for {
			req, err := mc.readRequest()
			if err != nil {
				return
			}
			handler(mc, req)
		}
	}()

	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return shi.Config{
		Host:    "127.0.0.1",
		Port:    port,
		Timeout: 2 * time.Second,
		SlaveID: 1,
	}
}

// TestResolveVersionDetectReadsInputVersionField fakes a controller
// answering every contiguous block of registry.InputDefinitions, reporting
// firmware version 3.92.1 at the "version" field's three registers and
// zero everywhere else.
func TestResolveVersionDetectReadsInputVersionField(t *testing.T) {
	ref := vector.New(registry.InputDefinitions, nil, false)
	blocks := ref.Blocks().Blocks
	require.NotEmpty(t, blocks)

	const versionAddr = registry.InputsOffset + 400
	versionWords := []int64{3, 92, 1} // major, minor, patch: one register each

	idx := 0
	cfg := listenModbus(t, func(mc *modbusConn, req modbusRequest) {
		require.Less(t, idx, len(blocks))
		b := blocks[idx]
		idx++

		span := b.LastAddr() - b.FirstAddr() + 1
		data := make([]int64, span)
		if versionAddr >= b.FirstAddr() && versionAddr+2 <= b.LastAddr() {
			start := versionAddr - b.FirstAddr()
			copy(data[start:start+3], versionWords)
		}
		mc.writeResponse(req, registersPDU(0x04, data))
	})

	sess := shi.NewSession(cfg, xlog.NewNop())
	v, err := heatlink.ResolveVersion("detect", sess)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "3.92.1.0", v.String())
}
