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
	"regexp"
	"strconv"
	"strings"
)

// Operand is one resolved operand slot (§3): the Mode tag selects which of
// the remaining fields is meaningful.
type Operand struct {
	Mode  Mode
	Imm   int    // ModeImmediate
	Reg   int    // ModeRegister
	Label string // ModeDirect, ModeMatrix
	Row   int    // ModeMatrix: row register index
	Col   int    // ModeMatrix: column register index
}

// Instruction is a fully parsed instruction line (§3): an opcode, its arity,
// and up to two operands. Pass 1 only needs the word count this implies;
// Pass 2 additionally needs the operand payloads. Both stages call
// parseInstruction, per the "one parser, not two" design note.
type Instruction struct {
	Op  *Opcode
	Src *Operand // nil if not present
	Dst *Operand // nil if not present
}

// WordCount returns the number of code words this instruction occupies,
// applying the size rule of §4.5: one first word, plus one word per
// Immediate/Direct/Register operand, two per Matrix operand, collapsed to a
// single combined word when both operands are Register.
func (ins *Instruction) WordCount() int {
	n := 1
	if ins.Src != nil && ins.Dst != nil && ins.Src.Mode == ModeRegister && ins.Dst.Mode == ModeRegister {
		return n + 1
	}
	if ins.Src != nil {
		n += wordsForOperand(ins.Src.Mode)
	}
	if ins.Dst != nil {
		n += wordsForOperand(ins.Dst.Mode)
	}
	return n
}

var (
	regPattern    = regexp.MustCompile(`^r[0-7]$`)
	matrixPattern = regexp.MustCompile(`^\[\s*r([0-7])\s*\]\s*\[\s*r([0-7])\s*\]$`)
)

// parseInstruction parses the instruction portion of a line (mnemonic plus
// operands; no label, no leading/trailing whitespace requirements placed on
// the caller) and validates addressing-mode legality against the opcode
// table (§4.5). On success it returns the parsed instruction; on failure it
// returns a human-readable message describing the first problem found.
func parseInstruction(text string) (*Instruction, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, "missing instruction"
	}
	idx := strings.IndexAny(text, " \t")
	var mnemonic, rest string
	if idx < 0 {
		mnemonic, rest = text, ""
	} else {
		mnemonic, rest = text[:idx], strings.TrimSpace(text[idx+1:])
	}

	op, ok := LookupOpcode(mnemonic)
	if !ok {
		return nil, "unknown mnemonic " + mnemonic
	}

	parts, errMsg := splitOperandsForArity(rest, op.Arity)
	if errMsg != "" {
		return nil, errMsg
	}

	ins := &Instruction{Op: op}
	switch op.Arity {
	case 0:
		// nothing to parse
	case 1:
		dst, msg := parseOperandToken(parts[0])
		if msg != "" {
			return nil, msg
		}
		if !op.Dst.allows(dst.Mode) {
			return nil, "addressing mode not permitted for this operand"
		}
		ins.Dst = dst
	case 2:
		src, msg := parseOperandToken(parts[0])
		if msg != "" {
			return nil, msg
		}
		dst, msg2 := parseOperandToken(parts[1])
		if msg2 != "" {
			return nil, msg2
		}
		if !op.Src.allows(src.Mode) {
			return nil, "addressing mode not permitted for source operand"
		}
		if !op.Dst.allows(dst.Mode) {
			return nil, "addressing mode not permitted for destination operand"
		}
		ins.Src, ins.Dst = src, dst
	}
	return ins, ""
}

// splitOperandsForArity splits the operand text of an instruction into
// exactly arity trimmed tokens, or returns a descriptive error. It also
// catches the S6 case ("mov ,r1"): for a two-operand instruction, a leading
// or trailing comma leaves one of the two tokens empty and is reported
// against the slot it left empty; any further comma (a doubled comma, or any
// comma for a one-operand instruction) yields too many tokens and is
// reported as too many operands.
func splitOperandsForArity(text string, arity int) ([]string, string) {
	if arity == 0 {
		if strings.TrimSpace(text) != "" {
			return nil, "trailing junk after instruction"
		}
		return nil, ""
	}
	if strings.TrimSpace(text) == "" {
		if arity == 1 {
			return nil, "missing operand"
		}
		return nil, "missing source operand"
	}
	parts := strings.Split(text, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch arity {
	case 1:
		if len(parts) > 1 {
			return nil, "too many operands"
		}
		if parts[0] == "" {
			return nil, "missing operand"
		}
		return parts, ""
	default: // 2
		if len(parts) < 2 {
			return nil, "missing comma between operands"
		}
		if len(parts) > 2 {
			return nil, "too many operands"
		}
		if parts[0] == "" {
			return nil, "missing source operand"
		}
		if parts[1] == "" {
			return nil, "missing destination operand"
		}
		return parts, ""
	}
}

func parseOperandToken(tok string) (*Operand, string) {
	switch {
	case strings.HasPrefix(tok, "#"):
		rest := tok[1:]
		if rest == "" {
			return nil, "malformed immediate operand " + tok
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			return nil, "malformed immediate operand " + tok
		}
		return &Operand{Mode: ModeImmediate, Imm: n}, ""

	case regPattern.MatchString(tok):
		return &Operand{Mode: ModeRegister, Reg: int(tok[1] - '0')}, ""

	case strings.ContainsRune(tok, '['):
		i := strings.IndexByte(tok, '[')
		label, brackets := tok[:i], tok[i:]
		if !validOperandLabel(label) {
			return nil, "invalid label in matrix operand " + tok
		}
		m := matrixPattern.FindStringSubmatch(brackets)
		if m == nil {
			return nil, "malformed matrix operand " + tok
		}
		row := int(m[1][0] - '0')
		col := int(m[2][0] - '0')
		return &Operand{Mode: ModeMatrix, Label: label, Row: row, Col: col}, ""

	case validOperandLabel(tok):
		return &Operand{Mode: ModeDirect, Label: tok}, ""

	default:
		return nil, "invalid operand " + tok
	}
}

// validOperandLabel checks only the lexical shape of a label used as an
// operand (letter, then letters/digits, bounded length); whether the name
// actually resolves to a defined symbol is a Pass 2 concern (§4.3).
func validOperandLabel(s string) bool {
	if len(s) == 0 || len(s) > MaxIdentLen {
		return false
	}
	runes := []rune(s)
	if !isIdentStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !isIdentCont(r) {
			return false
		}
	}
	return true
}
