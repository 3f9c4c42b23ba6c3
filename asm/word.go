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

// Word is the raw 10-bit payload stored in the code or data image (§3). Only
// the low 10 bits are ever significant; every packer masks its result before
// returning.
type Word uint16

// wordMask clamps a value to the machine's 10-bit word width (§8, invariant 1).
const wordMask = 0x3FF

// ARE is the two-bit Absolute/Relocatable/External tag present in every
// emitted word (§3).
type ARE uint8

// A/R/E encodings (§3).
const (
	Absolute    ARE = 0 // 00
	External    ARE = 1 // 01
	Relocatable ARE = 2 // 10
)

// modeCode maps an addressing Mode to its 2-bit encoding in the first word
// (§4.6). Slots with no operand use code 0, which is also ModeImmediate's
// code; this is harmless because an absent slot never contributes a mode bit
// pattern that the emitter inspects.
func modeCode(m Mode) uint16 {
	switch m {
	case ModeImmediate:
		return 0
	case ModeDirect:
		return 1
	case ModeMatrix:
		return 2
	case ModeRegister:
		return 3
	}
	return 0
}

// FirstWord packs an instruction's opcode and addressing-mode fields into the
// first emitted word (§4.6): bits [9:6]=opcode, [5:4]=source mode,
// [3:2]=destination mode, [1:0]=A/R/E (always Absolute for the first word,
// §4.3 step 1).
func FirstWord(opcode int, srcMode, dstMode Mode, hasSrc, hasDst bool) Word {
	var sm, dm uint16
	if hasSrc {
		sm = modeCode(srcMode)
	}
	if hasDst {
		dm = modeCode(dstMode)
	}
	v := uint16(opcode&0xF)<<6 | (sm&0x3)<<4 | (dm&0x3)<<2 | uint16(Absolute)
	return Word(v & wordMask)
}

// PayloadWord packs an 8-bit payload (an immediate value or a resolved
// label address) into bits [9:2], with the given A/R/E tag in bits [1:0]
// (§4.6).
func PayloadWord(payload int, are ARE) Word {
	v := uint16(payload&0xFF)<<2 | uint16(are&0x3)
	return Word(v & wordMask)
}

// RegisterWord packs a source and/or destination register index into bits
// [9:6] and [5:2] respectively, with A/R/E in bits [1:0] (§4.6). Use 0 for a
// register slot that is not present; the caller is responsible for choosing
// the correct slot (source-only, destination-only, or both) per §4.3.
func RegisterWord(srcReg, dstReg int, are ARE) Word {
	v := uint16(srcReg&0xF)<<6 | uint16(dstReg&0xF)<<2 | uint16(are&0x3)
	return Word(v & wordMask)
}

// mask8 truncates an integer to its low 8 bits, the payload width used for
// immediates and addresses (§4.6, and the mask-and-warn policy of §9).
func mask8(v int) int {
	return v & 0xFF
}

// fitsSigned8 reports whether v lies in the accepted immediate range
// -128..255 documented as the chosen resolution of the open question in §9:
// the source's check is a mask-and-warn, not a hard rejection, so this is
// used only to decide whether to emit a range warning, never to block
// assembly.
func fitsSigned8(v int) bool {
	return v >= -128 && v <= 255
}

// maskWord masks v into a payload word tagged are, recording a warning
// (never an error, §7/§9) when v falls outside -128..255. Used for
// immediate operands and .data/.mat values (always Absolute) and for resolved
// local label addresses (Relocatable), since §7 applies the masking-warning
// policy to "immediate/address payload" alike. External label words carry a
// zero payload and are built with PayloadWord directly.
func maskWord(v int, are ARE, line int, diags *Diagnostics) Word {
	if !fitsSigned8(v) {
		diags.Warnf(line, "value %d out of 8-bit range, masked", v)
	}
	return PayloadWord(mask8(v), are)
}
