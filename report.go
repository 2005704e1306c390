/*
 * report.go, part of goSASA.
 *
 * Copyright 2024 The goSASA authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package sasa

import (
	"fmt"

	"go.uber.org/zap"
)

// Status is the outcome of a SASA calculation.
type Status int

const (
	Success Status = 0  //the calculation finished normally
	Failure Status = -1 //the calculation was not carried out, the output was not touched
	Warning Status = -2 //the calculation finished, but not as requested
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ZapReporter is a Reporter that sends the messages to a zap logger.
type ZapReporter struct {
	log *zap.SugaredLogger
}

// NewZapReporter returns a Reporter writing to a child of l named "sasa".
// If l is nil, the messages are discarded.
func NewZapReporter(l *zap.SugaredLogger) *ZapReporter {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	return &ZapReporter{log: l.Named("sasa")}
}

// Fail logs msg at the error level.
func (z *ZapReporter) Fail(msg string) {
	z.log.Error(msg)
}

// Warn logs msg at the warning level.
func (z *ZapReporter) Warn(msg string) {
	z.log.Warn(msg)
}

// recorder passes the messages on to another Reporter, and keeps the
// last failure so it can be turned into an error.
type recorder struct {
	Reporter
	failure string
}

func (r *recorder) Fail(msg string) {
	r.failure = msg
	r.Reporter.Fail(msg)
}

