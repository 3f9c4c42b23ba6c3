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

// Mode is the addressing mode of an operand slot, as used in a first word's
// source/destination mode fields (§3, §4.6).
type Mode int

// Addressing modes and their encoding in the first instruction word (§3).
const (
	ModeImmediate Mode = iota // #<int>
	ModeDirect                // label
	ModeMatrix                // label[rX][rY]
	ModeRegister              // r0..r7
)

// modeSet is a bitmask over the four Mode values, used to describe which
// addressing modes an opcode's source/destination slot legally accepts.
type modeSet uint8

func modes(m ...Mode) modeSet {
	var s modeSet
	for _, v := range m {
		s |= 1 << uint(v)
	}
	return s
}

func (s modeSet) allows(m Mode) bool { return s&(1<<uint(m)) != 0 }

// Opcode describes one entry of the fixed 16-entry opcode table (§4.5).
type Opcode struct {
	Index   int
	Name    string
	Arity   int
	Src     modeSet
	Dst     modeSet
}

var (
	allOperand = modes(ModeImmediate, ModeDirect, ModeMatrix, ModeRegister)
	noImm      = modes(ModeDirect, ModeMatrix, ModeRegister)
	jumpDst    = modes(ModeDirect, ModeMatrix)
	leaSrc     = modes(ModeDirect, ModeMatrix)
)

// opcodeTable is the fixed ISA of §4.5, indexed by numeric opcode.
var opcodeTable = [16]Opcode{
	{0, "mov", 2, allOperand, noImm},
	{1, "cmp", 2, allOperand, allOperand},
	{2, "add", 2, allOperand, noImm},
	{3, "sub", 2, allOperand, noImm},
	{4, "lea", 2, leaSrc, noImm},
	{5, "clr", 1, 0, noImm},
	{6, "not", 1, 0, noImm},
	{7, "inc", 1, 0, noImm},
	{8, "dec", 1, 0, noImm},
	{9, "jmp", 1, 0, jumpDst},
	{10, "bne", 1, 0, jumpDst},
	{11, "red", 1, 0, noImm},
	{12, "prn", 1, 0, allOperand},
	{13, "jsr", 1, 0, jumpDst},
	{14, "rts", 0, 0, 0},
	{15, "stop", 0, 0, 0},
}

var opcodeByName = func() map[string]*Opcode {
	m := make(map[string]*Opcode, len(opcodeTable))
	for i := range opcodeTable {
		m[opcodeTable[i].Name] = &opcodeTable[i]
	}
	return m
}()

// LookupOpcode returns the Opcode for a mnemonic, or nil, false if name is
// not a recognized mnemonic.
func LookupOpcode(name string) (*Opcode, bool) {
	op, ok := opcodeByName[name]
	return op, ok
}

// wordsForOperand returns the number of code words an operand of mode m
// contributes, per the size rule of §4.5: Matrix costs two words (label +
// register pair), everything else costs one.
func wordsForOperand(m Mode) int {
	if m == ModeMatrix {
		return 2
	}
	return 1
}
