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
	"bufio"
	"io"
	"strings"
)

const macroEnd = "mcroend"

// preassemblerState is the per-line state of the macro expansion state
// machine (§4.1).
type preassemblerState int

const (
	stateOutside preassemblerState = iota
	stateRecording
)

// Preassembler expands macro definitions out of a raw source, producing an
// expanded source with every invocation replaced in place by its body and
// every definition removed (§4.1). A Preassembler is single-use: construct a
// fresh one per translation unit via NewPreassembler.
type Preassembler struct {
	ns        *Namespace
	macros    *macroTable
	maxLineLen int
}

// NewPreassembler returns a Preassembler that registers macro names into ns
// (so that Pass 1 can later reject labels that collide with them, §4.2) and
// enforces maxLineLen as the source line-length limit. Pass 0 or a negative
// value for maxLineLen selects DefaultMaxLineLen.
func NewPreassembler(ns *Namespace, maxLineLen int) *Preassembler {
	if maxLineLen <= 0 {
		maxLineLen = DefaultMaxLineLen
	}
	return &Preassembler{ns: ns, macros: newMacroTable(), maxLineLen: maxLineLen}
}

// Expand reads raw source from r and returns the expanded lines. On any
// error it returns (nil, diagnostics): the preassembler never returns a
// partial expansion (§4.1).
func (p *Preassembler) Expand(r io.Reader) ([]string, error) {
	var diags Diagnostics
	var out []string

	state := stateOutside
	var curName string
	var curBody []string

	lineNo := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1024*1024)
	for sc.Scan() {
		lineNo++
		raw := sc.Text()

		if len(raw) > p.maxLineLen {
			diags.Add(lineNo, "source line exceeds %d characters", p.maxLineLen)
			continue
		}

		code := strings.TrimSpace(stripComment(raw))

		switch state {
		case stateRecording:
			if code == macroEnd {
				p.macros.define(curName, curBody)
				p.ns.RegisterMacro(curName)
				state = stateOutside
				curName, curBody = "", nil
				continue
			}
			if fields := strings.Fields(code); len(fields) > 0 && fields[0] == "mcro" {
				diags.Add(lineNo, "nested macro definition is not allowed")
				continue
			}
			curBody = append(curBody, raw)

		case stateOutside:
			if isBlank(raw) {
				out = append(out, raw)
				continue
			}
			if isBlank(code) {
				// pure comment line: pass through verbatim
				out = append(out, raw)
				continue
			}
			if code == macroEnd {
				diags.Add(lineNo, "stray %s outside a macro definition", macroEnd)
				continue
			}
			fields := strings.Fields(code)
			if fields[0] == "mcro" {
				name, err := p.parseMacroHeader(fields)
				if err != "" {
					diags.Add(lineNo, "%s", err)
					continue
				}
				if p.macros.defined(name) {
					diags.Add(lineNo, "macro %q already defined", name)
					continue
				}
				if p.ns.IsMacro(name) {
					diags.Add(lineNo, "macro %q already defined", name)
					continue
				}
				state = stateRecording
				curName = name
				curBody = nil
				continue
			}
			if m, ok := p.macros.lookup(code); ok {
				out = append(out, m.body...)
				continue
			}
			out = append(out, raw)
		}
	}
	if err := sc.Err(); err != nil {
		diags.Add(0, "read error: %v", err)
	}
	if state == stateRecording {
		diags.Add(lineNo, "macro %q has no closing %s", curName, macroEnd)
	}

	if !diags.OK() {
		return nil, diags
	}
	return out, nil
}

// parseMacroHeader validates a "mcro NAME" header, already split into
// whitespace-separated fields (fields[0] == "mcro"). It returns the macro
// name, or a non-empty error message.
func (p *Preassembler) parseMacroHeader(fields []string) (string, string) {
	if len(fields) != 2 {
		return "", "malformed macro header, expected \"mcro NAME\""
	}
	name := fields[1]
	if !ValidMacroName(name) {
		return "", "illegal or reserved macro name " + name
	}
	if p.ns.IsLabel(name) {
		return "", "macro name " + name + " collides with a label"
	}
	return name, ""
}
