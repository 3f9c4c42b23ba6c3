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

import "fmt"

func (m Mode) String() string {
	switch m {
	case ModeImmediate:
		return "Immediate"
	case ModeDirect:
		return "Direct"
	case ModeMatrix:
		return "Matrix"
	case ModeRegister:
		return "Register"
	default:
		return "?"
	}
}

func (a ARE) String() string {
	switch a {
	case Absolute:
		return "Absolute"
	case External:
		return "External"
	case Relocatable:
		return "Relocatable"
	default:
		return "?"
	}
}

// DisassembleFirstWord renders a packed first word back into a human
// readable opcode/mode/tag description, purely as a diagnostic aid: it does
// not execute anything and takes no position in the assembled image. The
// caller is responsible for knowing that w is in fact a first word (as
// opposed to a payload or register word) — the word alone carries no marker
// saying which role it plays in the stream.
func DisassembleFirstWord(w Word) string {
	opIndex := int(w>>6) & 0xF
	srcMode := Mode((w >> 4) & 0x3)
	dstMode := Mode((w >> 2) & 0x3)
	are := ARE(w & 0x3)

	var name string
	if opIndex >= 0 && opIndex < len(opcodeTable) {
		name = opcodeTable[opIndex].Name
	} else {
		name = "???"
	}

	op := opcodeByName[name]
	switch {
	case op != nil && op.Arity == 2:
		return fmt.Sprintf("%s src=%s dst=%s are=%s", name, srcMode, dstMode, are)
	case op != nil && op.Arity == 1:
		return fmt.Sprintf("%s dst=%s are=%s", name, dstMode, are)
	default:
		return fmt.Sprintf("%s are=%s", name, are)
	}
}
