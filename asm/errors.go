// This file is part of asm10 - https://github.com/hexword/asm10
//
// Copyright 2024 Miri Hexword <miri@hexword.dev>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"fmt"
	"strings"
)

// Severity distinguishes a hard failure from an advisory diagnostic. Only
// SeverityError diagnostics make a stage not-ok (§7: the immediate/data
// masking check is "recorded as a masking warning — the word is still
// emitted").
type Severity int

// Diagnostic severities.
const (
	SeverityError Severity = iota
	SeverityWarning
)

// Diagnostic is a single line-tagged assembler message. Line is 0 for
// diagnostics that are not attributable to a specific source line (e.g. an
// out-of-memory condition, §7).
type Diagnostic struct {
	Line     int
	Msg      string
	Severity Severity
}

func (d Diagnostic) String() string {
	tag := ""
	if d.Severity == SeverityWarning {
		tag = "warning: "
	}
	if d.Line <= 0 {
		return tag + d.Msg
	}
	return fmt.Sprintf("%d: %s%s", d.Line, tag, d.Msg)
}

// Diagnostics is a grow-on-demand, append-only collection of Diagnostic
// records. It implements error so that a stage can return it directly.
//
// Diagnostics deliberately has no way to remove an entry: once recorded, a
// diagnostic survives for the life of the stage that collected it, in
// keeping with the append-only error aggregator of §4.7.
type Diagnostics []Diagnostic

// Error implements the error interface, joining every recorded diagnostic in
// insertion order, one per line.
func (d Diagnostics) Error() string {
	l := make([]string, len(d))
	for i, e := range d {
		l[i] = e.String()
	}
	return strings.Join(l, "\n")
}

// Add appends an error-severity diagnostic at the given source line.
func (d *Diagnostics) Add(line int, format string, args ...interface{}) {
	*d = append(*d, Diagnostic{Line: line, Msg: fmt.Sprintf(format, args...), Severity: SeverityError})
}

// Warnf appends a warning-severity diagnostic: reported, but never by itself
// the reason a stage is considered not-ok.
func (d *Diagnostics) Warnf(line int, format string, args ...interface{}) {
	*d = append(*d, Diagnostic{Line: line, Msg: fmt.Sprintf(format, args...), Severity: SeverityWarning})
}

// Merge appends a copy of other's records to d.
func (d *Diagnostics) Merge(other Diagnostics) {
	*d = append(*d, other...)
}

// OK reports whether no error-severity diagnostics were recorded. Warnings
// do not affect OK.
func (d Diagnostics) OK() bool {
	for _, e := range d {
		if e.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Warnings returns the warning-severity records in d, in insertion order.
func (d Diagnostics) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, e := range d {
		if e.Severity == SeverityWarning {
			out = append(out, e)
		}
	}
	return out
}

// AsError returns d as an error if it contains at least one error-severity
// diagnostic, or nil otherwise (pure-warning Diagnostics are not an error).
// This is the result-or-errors idiom recommended in §9: a stage returns
// (value, AsError()) rather than mutating a shared aggregator across a stage
// boundary.
func (d Diagnostics) AsError() error {
	if d.OK() {
		return nil
	}
	return d
}
