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

import "io"

// Options controls the handful of knobs the assembler exposes beyond the
// source text itself (SPEC_FULL.md §2.3): both have machine-mandated
// defaults and exist only so a caller (or the mmn14 CLI's optional config
// file) can override them for testing or for a non-standard machine image.
type Options struct {
	// Origin is the address of the first code word (IC start, §3). Zero
	// selects the machine default of 100.
	Origin int
	// MaxLineLen is the maximum accepted source line length (§3, §6). Zero
	// selects DefaultMaxLineLen.
	MaxLineLen int
}

// Result is everything Assemble produces from one translation unit.
type Result struct {
	Code    []Word
	Data    []Word
	Symbols *SymbolTable
	Externs []ExternUse
	Entries []*Symbol
	ICF     int
	Origin  int
	// Warnings carries every warning-severity diagnostic recorded across
	// Pass 1 and Pass 2 — e.g. the masking warning of §7/§9 for an
	// out-of-8-bit-range immediate or resolved address. A non-nil error
	// from Assemble already means Warnings is empty: a stage with any
	// error-severity diagnostic never reaches this point (§3: diagnostics
	// are never silently discarded, warnings included).
	Warnings []Diagnostic
}

// Assemble runs the full pipeline — macro expansion, analysis, emission —
// over src, per the "abort downstream work only when upstream is not-ok"
// policy: a Preassembler failure is returned without running Pass 1, and a
// Pass 1 failure is returned without running Pass 2 (§4, §9).
func Assemble(src io.Reader, opts Options) (*Result, error) {
	origin := opts.Origin
	if origin <= 0 {
		origin = 100
	}

	ns := NewNamespace()

	pre := NewPreassembler(ns, opts.MaxLineLen)
	expanded, err := pre.Expand(src)
	if err != nil {
		return nil, err
	}

	an := NewAnalyzer(ns, origin)
	analysis, err := an.Analyze(expanded)
	if err != nil {
		return nil, err
	}

	em := NewEmitter(analysis.Symbols, origin)
	emission, err := em.Emit(expanded, analysis)
	if err != nil {
		return nil, err
	}

	var warnings []Diagnostic
	warnings = append(warnings, analysis.Diags.Warnings()...)
	warnings = append(warnings, emission.Diags.Warnings()...)

	return &Result{
		Code:     emission.Code,
		Data:     emission.Data,
		Symbols:  analysis.Symbols,
		Externs:  emission.Externs,
		Entries:  emission.Entries,
		ICF:      analysis.ICF,
		Origin:   origin,
		Warnings: warnings,
	}, nil
}
