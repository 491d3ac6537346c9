// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package cfi

import (
	"fmt"
	"time"

	"github.com/rob-gra/go-heatlink/codec"
	"github.com/rob-gra/go-heatlink/hostlock"
	"github.com/rob-gra/go-heatlink/vector"
	"github.com/rob-gra/go-heatlink/xlog"
)

// Session is the CFI read/write cycle over a single controller host,
// serialized against every other CFI or SHI session on the same host via
// hostlock. Grounded on
// luxtronik/cfi/interface.py:LuxtronikSocketInterface.
type Session struct {
	cfg Config
	log xlog.Log
}

// NewSession builds a Session for cfg, which must already be Valid.
func NewSession(cfg Config, log xlog.Log) *Session {
	return &Session{cfg: cfg, log: log}
}

func (s *Session) withConn(fn func(t *Transport) error) error {
	lock := hostlock.Get(s.cfg.Host)
	lock.Lock()
	defer lock.Unlock()

	t, err := Dial(s.cfg)
	if err != nil {
		s.log.Error("cfi: connect to %s failed: %v", s.cfg.Host, err)
		return err
	}
	defer t.Close()
	return fn(t)
}

// scatter copies values[Index:Index+Words()] into each of dv's fields,
// packing a multi-register field's chunks at 32 bits each. A field whose
// slice reaches past the end of values is left unchanged.
func scatter(dv *vector.DataVector, values []int64) {
	for _, f := range dv.Fields() {
		start := f.Definition.Index
		words := f.Definition.Words()
		if start < 0 || start+words > len(values) {
			continue
		}
		if words == 1 {
			f.SetRaw(values[start])
			continue
		}
		f.SetRaw(codec.PackValues(values[start:start+words], 32, true))
	}
}

// ReadParameters reads the full "parameters" register class into dv.
// Response shape is cmd/length/values, grounded on
// luxtronik/cfi/interface.py:_read_parameters.
func (s *Session) ReadParameters(dv *vector.DataVector) error {
	return s.withConn(func(t *Transport) error {
		if err := t.WriteInts([]int64{CmdParametersRead, 0}); err != nil {
			return err
		}
		header, err := t.ReadInts(2)
		if err != nil {
			return fmt.Errorf("cfi: read parameters header: %w", err)
		}
		count := int(header[1])
		values, err := t.ReadInts(count)
		if err != nil {
			return fmt.Errorf("cfi: read parameters %d values: %w", count, err)
		}
		scatter(dv, values)
		return nil
	})
}

// ReadCalculations reads the full "calculations" register class into dv.
// Response shape is cmd/status/length/values (an extra status word ahead
// of the length, unlike ReadParameters/ReadVisibilities), grounded on
// luxtronik/cfi/interface.py:_read_calculations.
func (s *Session) ReadCalculations(dv *vector.DataVector) error {
	return s.withConn(func(t *Transport) error {
		if err := t.WriteInts([]int64{CmdCalculationsRead, 0}); err != nil {
			return err
		}
		header, err := t.ReadInts(3)
		if err != nil {
			return fmt.Errorf("cfi: read calculations header: %w", err)
		}
		count := int(header[2])
		values, err := t.ReadInts(count)
		if err != nil {
			return fmt.Errorf("cfi: read calculations %d values: %w", count, err)
		}
		scatter(dv, values)
		return nil
	})
}

// ReadVisibilities reads the full "visibilities" register class into dv.
// Response shape is cmd/length/values, but unlike ReadParameters each
// value is a signed single byte rather than a 32-bit int, grounded on
// luxtronik/cfi/interface.py:_read_visibilities/_read_char.
func (s *Session) ReadVisibilities(dv *vector.DataVector) error {
	return s.withConn(func(t *Transport) error {
		if err := t.WriteInts([]int64{CmdVisibilitiesRead, 0}); err != nil {
			return err
		}
		header, err := t.ReadInts(2)
		if err != nil {
			return fmt.Errorf("cfi: read visibilities header: %w", err)
		}
		count := int(header[1])
		values, err := t.ReadInt8s(count)
		if err != nil {
			return fmt.Errorf("cfi: read visibilities %d values: %w", count, err)
		}
		scatter(dv, values)
		return nil
	})
}

// Write drains dv's write-pending fields one parameter at a time, each
// followed by its acknowledgement read, then sleeps WaitAfterWrite before
// returning. A failed write or acknowledgement read is logged, aborts the
// remaining writes and is returned without the settle sleep. Grounded on
// luxtronik/cfi/interface.py:LuxtronikSocketInterface._write.
func (s *Session) Write(dv *vector.DataVector) error {
	pending := dv.PendingFields()
	if len(pending) == 0 {
		return nil
	}
	err := s.withConn(func(t *Transport) error {
		for _, f := range pending {
			if err := t.WriteInts([]int64{CmdParametersWrite, int64(f.Definition.Index), f.PendingRaw}); err != nil {
				s.log.Error("cfi: write %q failed: %v", f.Definition.Name(), err)
				return err
			}
			if _, err := t.ReadInts(2); err != nil {
				s.log.Error("cfi: write ack for %q failed: %v", f.Definition.Name(), err)
				return fmt.Errorf("cfi: write ack: %w", err)
			}
			f.AcknowledgeWrite()
		}
		return nil
	})
	if err != nil {
		return err
	}
	time.Sleep(WaitAfterWrite)
	return nil
}
