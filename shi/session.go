// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package shi

import (
	"time"

	"github.com/rob-gra/go-heatlink/hostlock"
	"github.com/rob-gra/go-heatlink/registry"
	"github.com/rob-gra/go-heatlink/telegram"
	"github.com/rob-gra/go-heatlink/vector"
	"github.com/rob-gra/go-heatlink/xlog"
)

// Session is the SHI read/write cycle over a single controller host,
// serialized against every other CFI or SHI session on the same host via
// hostlock. Grounded on
// luxtronik/shi/interface.py:LuxtronikSmartHomeInterface combined with
// luxtronik/shi/modbus.py:LuxtronikModbusTcpInterface.
type Session struct {
	cfg Config
	log xlog.Log
}

// NewSession builds a Session for cfg, which must already be Valid.
func NewSession(cfg Config, log xlog.Log) *Session {
	return &Session{cfg: cfg, log: log}
}

// Send dispatches a batch of telegrams over one connection under the
// host's lock, sleeping WaitAfterWrite whenever a write telegram is
// followed by any other telegram (including the batch's end). It does not
// abort the batch on an individual telegram failure; see DESIGN.md Open
// Question 2. It returns true only if every telegram in the batch
// succeeded. Grounded on luxtronik/shi/modbus.py:send.
func (s *Session) Send(telegrams []telegram.Telegram) bool {
	if len(telegrams) == 0 {
		return true
	}

	lock := hostlock.Get(s.cfg.Host)
	lock.Lock()
	defer lock.Unlock()

	t, err := Dial(s.cfg)
	if err != nil {
		s.log.Error("shi: connect to %s failed: %v", s.cfg.Host, err)
		return false
	}
	defer t.Close()

	ok := true
	wasWrite := false
	for _, tg := range telegrams {
		if wasWrite {
			time.Sleep(WaitAfterWrite)
			wasWrite = false
		}

		switch tg.Kind {
		case telegram.SHIReadHoldings:
			raw, err := t.ReadHoldings(tg.Address(), tg.Count())
			if err != nil {
				s.log.Error("shi: read holdings: %v", err)
				ok = false
				continue
			}
			if err := tg.Block.IntegrateData(raw); err != nil {
				s.log.Error("shi: integrate holdings: %v", err)
				ok = false
			}
		case telegram.SHIReadInputs:
			raw, err := t.ReadInputs(tg.Address(), tg.Count())
			if err != nil {
				s.log.Error("shi: read inputs: %v", err)
				ok = false
				continue
			}
			if err := tg.Block.IntegrateData(raw); err != nil {
				s.log.Error("shi: integrate inputs: %v", err)
				ok = false
			}
		case telegram.SHIWriteHoldings:
			payload, good := tg.Block.GetDataArr()
			if !good {
				s.log.Warn("shi: write block at %d has insufficient data, skipping", tg.Address())
				ok = false
				continue
			}
			if err := t.WriteHoldings(tg.Address(), payload); err != nil {
				s.log.Error("shi: write holdings: %v", err)
				ok = false
				continue
			}
			for _, f := range tg.Block.Fields {
				f.AcknowledgeWrite()
			}
			wasWrite = true
		default:
			s.log.Error("shi: unsupported telegram kind %s", tg.Kind)
			ok = false
		}
	}
	if wasWrite {
		time.Sleep(WaitAfterWrite)
	}
	return ok
}

// CollectHoldingsForRead builds one read telegram per contiguous block in
// dv and sends them, populating dv's fields. Grounded on
// luxtronik/shi/interface.py:collect_holdings_for_read + send.
func (s *Session) CollectHoldingsForRead(dv *vector.DataVector) bool {
	return s.sendBlocks(dv.Blocks(), telegram.SHIReadHoldings)
}

// CollectInputsForRead builds one read telegram per contiguous block in dv
// and sends them. Grounded on
// luxtronik/shi/interface.py:collect_inputs_for_read.
func (s *Session) CollectInputsForRead(dv *vector.DataVector) bool {
	return s.sendBlocks(dv.Blocks(), telegram.SHIReadInputs)
}

// CollectHoldingsForWrite builds one write telegram per contiguous run of
// pending writes in dv and sends them. Grounded on
// luxtronik/shi/interface.py:collect_holdings_for_write.
func (s *Session) CollectHoldingsForWrite(dv *vector.DataVector) bool {
	wb := dv.WriteBlocks()
	if len(wb.Blocks) == 0 {
		return true
	}
	tgs := make([]telegram.Telegram, 0, len(wb.Blocks))
	for _, b := range wb.Blocks {
		tgs = append(tgs, telegram.Write(b))
	}
	return s.Send(tgs)
}

func (s *Session) sendBlocks(bl *vector.BlockList, kind telegram.Kind) bool {
	if len(bl.Blocks) == 0 {
		return true
	}
	tgs := make([]telegram.Telegram, 0, len(bl.Blocks))
	for _, b := range bl.Blocks {
		tgs = append(tgs, telegram.Read(kind, b))
	}
	return s.Send(tgs)
}

// ProbeUnknown grows dv with count synthesized "unknown_<class>_<i>"
// definitions starting at startIndex and reads each one as its own
// single-register telegram, used by trial-and-error mode when no fixed
// schema is assumed for the controller's firmware version. Grounded on
// luxtronik/shi/interface.py:_collect_field/_collect_fields, which issue
// one telegram per probed field rather than grouping them.
func (s *Session) ProbeUnknown(dv *vector.DataVector, class string, startIndex, count int, kind telegram.Kind) bool {
	bl := vector.NewBlockList(16)
	for i := 0; i < count; i++ {
		def := registry.Unknown(class, dv.Offset(), startIndex+i)
		if err := dv.Add(&def); err != nil {
			continue
		}
		f, ok := dv.Get(def.Address())
		if !ok {
			continue
		}
		bl.AppendSingle(f)
	}
	return s.sendBlocks(bl, kind)
}
