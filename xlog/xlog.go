// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package xlog provides the leveled logging facade used across the
// transports and sessions, backed by zap instead of the standard library
// logger.
package xlog

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Provider is the minimal leveled-logging surface every transport and
// session depends on. It mirrors clog.LogProvider one level down: Critical
// has no zap equivalent, so it is mapped onto zap's Error level with a
// distinguishing prefix.
type Provider interface {
	Critical(format string, v ...interface{})
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Log wraps a Provider behind an enable/disable gate, same shape as
// clog.Clog.
type Log struct {
	provider Provider
	has      uint32
}

// New builds a Log backed by a zap.SugaredLogger constructed from cfg.
// A nil cfg falls back to zap.NewProduction().
func New(cfg *zap.Config) (Log, error) {
	var zl *zap.Logger
	var err error
	if cfg != nil {
		zl, err = cfg.Build()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return Log{}, err
	}
	return Log{provider: zapProvider{zl.Sugar()}}, nil
}

// NewNop returns a Log whose provider discards everything, for tests and
// callers that have not configured logging.
func NewNop() Log {
	return Log{provider: zapProvider{zap.NewNop().Sugar()}}
}

// LogMode enables or disables log output.
func (l *Log) LogMode(enable bool) {
	if enable {
		atomic.StoreUint32(&l.has, 1)
	} else {
		atomic.StoreUint32(&l.has, 0)
	}
}

// SetProvider swaps the underlying provider.
func (l *Log) SetProvider(p Provider) {
	if p != nil {
		l.provider = p
	}
}

// Critical logs a CRITICAL level message.
func (l Log) Critical(format string, v ...interface{}) {
	if atomic.LoadUint32(&l.has) == 1 {
		l.provider.Critical(format, v...)
	}
}

// Error logs an ERROR level message.
func (l Log) Error(format string, v ...interface{}) {
	if atomic.LoadUint32(&l.has) == 1 {
		l.provider.Error(format, v...)
	}
}

// Warn logs a WARN level message.
func (l Log) Warn(format string, v ...interface{}) {
	if atomic.LoadUint32(&l.has) == 1 {
		l.provider.Warn(format, v...)
	}
}

// Debug logs a DEBUG level message.
func (l Log) Debug(format string, v ...interface{}) {
	if atomic.LoadUint32(&l.has) == 1 {
		l.provider.Debug(format, v...)
	}
}

type zapProvider struct {
	s *zap.SugaredLogger
}

var _ Provider = zapProvider{}

func (z zapProvider) Critical(format string, v ...interface{}) {
	z.s.Errorf("[C]: "+format, v...)
}

func (z zapProvider) Error(format string, v ...interface{}) {
	z.s.Errorf(format, v...)
}

func (z zapProvider) Warn(format string, v ...interface{}) {
	z.s.Warnf(format, v...)
}

func (z zapProvider) Debug(format string, v ...interface{}) {
	z.s.Debugf(format, v...)
}
