// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package cfi_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rob-gra/go-heatlink/cfi"
	"github.com/rob-gra/go-heatlink/codec"
	"github.com/rob-gra/go-heatlink/registry"
	"github.com/rob-gra/go-heatlink/vector"
	"github.com/rob-gra/go-heatlink/xlog"
)

func TestSessionReadParametersScattersValuesInOrder(t *testing.T) {
	cfg := listen(t, func(conn net.Conn) {
		s := &serverHelper{conn: conn}
		// request: [cmd, 0]
		if _, err := s.readInts(2); err != nil {
			return
		}
		// response: [cmd-echo, count], then count values
		s.writeInts([]int64{cfi.CmdParametersRead, 2})
		s.writeInts([]int64{215, 1})
	})

	reg := registry.NewRegistry("parameter", 0, []registry.FieldDefinition{
		{Index: 0, Count: 1, Names: []string{"heating_setpoint"}, Type: codec.Celsius, DataType: "UINT16"},
		{Index: 1, Count: 1, Names: []string{"reset_error"}, Type: codec.Bool, DataType: "UINT16"},
	})
	dv := vector.New(reg, nil, false)

	sess := cfi.NewSession(cfg, xlog.NewNop())
	require.NoError(t, sess.ReadParameters(dv))

	f, _ := dv.Get("heating_setpoint")
	v, err := f.Value()
	require.NoError(t, err)
	assert.InDelta(t, 21.5, v.(float64), 1e-9)

	f, _ = dv.Get("reset_error")
	v, err = f.Value()
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestSessionReadCalculationsConsumesStatusWordBeforeLength(t *testing.T) {
	cfg := listen(t, func(conn net.Conn) {
		s := &serverHelper{conn: conn}
		// request: [cmd, 0]
		if _, err := s.readInts(2); err != nil {
			return
		}
		// response: [cmd-echo, status, count], then count values. The status
		// word must be skipped rather than mistaken for count.
		s.writeInts([]int64{cfi.CmdCalculationsRead, 0, 2})
		s.writeInts([]int64{180, 1})
	})

	reg := registry.NewRegistry("calculation", 0, []registry.FieldDefinition{
		{Index: 0, Count: 1, Names: []string{"flow_in_temp"}, Type: codec.Celsius, DataType: "INT16"},
		{Index: 1, Count: 1, Names: []string{"heatpump_running"}, Type: codec.Bool, DataType: "UINT16"},
	})
	dv := vector.New(reg, nil, false)

	sess := cfi.NewSession(cfg, xlog.NewNop())
	require.NoError(t, sess.ReadCalculations(dv))

	f, _ := dv.Get("flow_in_temp")
	v, err := f.Value()
	require.NoError(t, err)
	assert.InDelta(t, 18.0, v.(float64), 1e-9)

	f, _ = dv.Get("heatpump_running")
	v, err = f.Value()
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestSessionReadVisibilitiesReadsSingleByteValues(t *testing.T) {
	cfg := listen(t, func(conn net.Conn) {
		s := &serverHelper{conn: conn}
		// request: [cmd, 0]
		if _, err := s.readInts(2); err != nil {
			return
		}
		// response: [cmd-echo, count], then count single-byte values.
		s.writeInts([]int64{cfi.CmdVisibilitiesRead, 2})
		s.writeInt8s([]int64{1, -1})
	})

	reg := registry.NewRegistry("visibility", 0, []registry.FieldDefinition{
		{Index: 0, Count: 1, Names: []string{"v_heating"}, Type: codec.Bool, DataType: "UINT16"},
		{Index: 1, Count: 1, Names: []string{"v_cooling"}, Type: codec.Unknown, DataType: "INT16"},
	})
	dv := vector.New(reg, nil, false)

	sess := cfi.NewSession(cfg, xlog.NewNop())
	require.NoError(t, sess.ReadVisibilities(dv))

	f, _ := dv.Get("v_heating")
	v, err := f.Value()
	require.NoError(t, err)
	assert.Equal(t, true, v)

	f, _ = dv.Get("v_cooling")
	v, err = f.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)
}

func TestSessionWriteDrainsPendingFieldsAndSleepsOnce(t *testing.T) {
	reg := registry.NewRegistry("parameter", 0, []registry.FieldDefinition{
		{Index: 0, Count: 1, Names: []string{"heating_setpoint"}, Type: codec.Celsius, Writeable: true, DataType: "UINT16"},
	})
	dv := vector.New(reg, nil, false)
	require.NoError(t, dv.Set("heating_setpoint", 21.5))

	cfg := listen(t, func(conn net.Conn) {
		s := &serverHelper{conn: conn}
		// request: [CmdParametersWrite, index, rawValue]
		req, err := s.readInts(3)
		if err != nil {
			return
		}
		if req[0] != cfi.CmdParametersWrite || req[1] != 0 || req[2] != 215 {
			return
		}
		s.writeInts([]int64{cfi.CmdParametersWrite, 0})
	})

	sess := cfi.NewSession(cfg, xlog.NewNop())
	require.NoError(t, sess.Write(dv))

	f, _ := dv.Get("heating_setpoint")
	assert.False(t, f.WritePending)
}

func TestSessionWriteNoopWhenNothingPending(t *testing.T) {
	reg := registry.NewRegistry("parameter", 0, []registry.FieldDefinition{
		{Index: 0, Count: 1, Names: []string{"heating_setpoint"}, Type: codec.Celsius, Writeable: true, DataType: "UINT16"},
	})
	dv := vector.New(reg, nil, false)

	sess := cfi.NewSession(cfi.Config{Host: "127.0.0.1", Port: 1}, xlog.NewNop())
	// No listener at all; Write must return immediately without dialing.
	require.NoError(t, sess.Write(dv))
}
