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

import "strings"

// ExternUse records one use of an external symbol at a specific code
// address (§4.3, §6): the extern file lists one line per use, not per
// declaration.
type ExternUse struct {
	Name    string
	Address int
}

// Emission is the result of Pass 2 (§4.3).
type Emission struct {
	Code    []Word
	Data    []Word
	Externs []ExternUse
	Entries []*Symbol
	// Diags carries every diagnostic Pass 2 recorded, errors and warnings
	// alike (§3: "stages do not silently discard diagnostics"). Emit's
	// error return remains error-severity-only (AsError).
	Diags Diagnostics
}

// Emitter runs Pass 2 over an expanded source, given the symbol table and
// ICF produced by an Analyzer (§4.3). A fresh Emitter is single-use.
type Emitter struct {
	symtab *SymbolTable
	origin int
}

// NewEmitter returns an Emitter that resolves symbols against symtab and
// assumes code words begin at origin (the same value passed to NewAnalyzer).
func NewEmitter(symtab *SymbolTable, origin int) *Emitter {
	if origin <= 0 {
		origin = 100
	}
	return &Emitter{symtab: symtab, origin: origin}
}

// Emit performs Pass 2 over expanded (the same expanded source analyzed by
// Analyze) and the Analysis it produced, resolving every label reference to
// a final, fully-tagged word (§4.3, §4.6).
func (e *Emitter) Emit(expanded []string, analysis *Analysis) (*Emission, error) {
	var diags Diagnostics
	var code []Word
	var externs []ExternUse
	ic := e.origin

	for i, raw := range expanded {
		lineNo := i + 1
		content := stripComment(raw)
		if isBlank(content) {
			continue
		}

		_, rest, _ := splitLabel(content)
		body := strings.TrimSpace(rest)
		if strings.HasPrefix(body, ".") {
			continue
		}

		ins, errMsg := parseInstruction(body)
		if errMsg != "" {
			// Already reported by Pass 1; skip without emitting words so
			// code/IC stay in lock-step with Pass 1's placeholder count.
			continue
		}

		paired := ins.Src != nil && ins.Dst != nil && ins.Src.Mode == ModeRegister && ins.Dst.Mode == ModeRegister

		srcMode, dstMode := ModeImmediate, ModeImmediate
		if ins.Src != nil {
			srcMode = ins.Src.Mode
		}
		if ins.Dst != nil {
			dstMode = ins.Dst.Mode
		}
		code = append(code, FirstWord(ins.Op.Index, srcMode, dstMode, ins.Src != nil, ins.Dst != nil))
		ic++

		if paired {
			code = append(code, RegisterWord(ins.Src.Reg, ins.Dst.Reg, Absolute))
			ic++
			continue
		}

		if ins.Src != nil {
			words, uses := e.operandWords(ins.Src, true, ic, lineNo, &diags)
			code = append(code, words...)
			externs = append(externs, uses...)
			ic += len(words)
		}
		if ins.Dst != nil {
			words, uses := e.operandWords(ins.Dst, false, ic, lineNo, &diags)
			code = append(code, words...)
			externs = append(externs, uses...)
			ic += len(words)
		}
	}

	// Only a symbol that is both ENTRY-flagged and locally defined (CODE or
	// DATA) is a valid entry record (§4.3): an ENTRY symbol left undefined
	// or declared EXTERN is a diagnostic, not an output row, and is caught
	// by Pass 1's checkEntries before Pass 2 ever runs. This filter is
	// still explicit here, independent of that earlier check, so Entries
	// itself can never carry a KindNone/KindExtern placeholder.
	var entries []*Symbol
	analysis.Symbols.Foreach(func(s *Symbol) {
		if s.Entry && (s.Kind == KindCode || s.Kind == KindData) {
			entries = append(entries, s)
		}
	})

	em := &Emission{Code: code, Data: analysis.Data, Externs: externs, Entries: entries, Diags: diags}
	return em, diags.AsError()
}

// operandWords resolves one operand to its emitted word(s) (§4.3, §4.6).
// isSrc selects which register slot a bare Register operand occupies when it
// is not part of a collapsed register pair.
func (e *Emitter) operandWords(op *Operand, isSrc bool, ic, lineNo int, diags *Diagnostics) ([]Word, []ExternUse) {
	switch op.Mode {
	case ModeImmediate:
		return []Word{maskWord(op.Imm, Absolute, lineNo, diags)}, nil

	case ModeRegister:
		if isSrc {
			return []Word{RegisterWord(op.Reg, 0, Absolute)}, nil
		}
		return []Word{RegisterWord(0, op.Reg, Absolute)}, nil

	case ModeDirect:
		w, use := e.resolveLabel(op.Label, ic, lineNo, diags)
		if use != nil {
			return []Word{w}, []ExternUse{*use}
		}
		return []Word{w}, nil

	case ModeMatrix:
		w, use := e.resolveLabel(op.Label, ic, lineNo, diags)
		reg := RegisterWord(op.Row, op.Col, Absolute)
		if use != nil {
			return []Word{w, reg}, []ExternUse{*use}
		}
		return []Word{w, reg}, nil
	}
	return nil, nil
}

// resolveLabel resolves name to a single address word at the given code
// address ic, recording an extern use when the symbol is external (§4.3, §6)
// and a diagnostic when the symbol is never defined.
func (e *Emitter) resolveLabel(name string, ic, lineNo int, diags *Diagnostics) (Word, *ExternUse) {
	s, ok := e.symtab.Lookup(name)
	if !ok || s.Kind == KindNone {
		diags.Add(lineNo, "undefined symbol %q", name)
		return PayloadWord(0, External), nil
	}
	if s.Kind == KindExtern {
		return PayloadWord(0, External), &ExternUse{Name: name, Address: ic}
	}
	return maskWord(s.Value, Relocatable, lineNo, diags), nil
}
