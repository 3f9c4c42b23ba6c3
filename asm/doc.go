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

// Package asm implements a two-pass assembler for a small 10-bit-word
// machine. A translation unit passes through three stages, each consuming
// the previous stage's output and each able to fail independently:
//
//	Preassembler.Expand  macro definition/invocation -> expanded source
//	Analyzer.Analyze     expanded source -> symbol table + sizing
//	Emitter.Emit          expanded source + analysis -> final words
//
// Assemble wires the three together and is the only entry point most
// callers need.
//
// # Source format
//
// A line is an optional "LABEL:" prefix, followed by either a directive or
// an instruction, followed by an optional ";"-prefixed comment. Labels start
// with a letter, contain only letters and digits, and are at most
// MaxIdentLen bytes.
//
// # Directives
//
//	.data  v1, v2, ...       reserve and initialize one word per value
//	.string "text"           reserve one word per byte plus a terminating 0
//	.mat [rows][cols] v, ...  reserve rows*cols words, row-major
//	.extern NAME             declare NAME as defined in another unit
//	.entry NAME              export NAME for the linker's entry file
//
// # Instructions
//
// Sixteen opcodes (mov, cmp, add, sub, lea, clr, not, inc, dec, jmp, bne,
// red, prn, jsr, rts, stop) each take 0, 1, or 2 operands. An operand is one
// of:
//
//	#<int>            immediate
//	LABEL              direct
//	LABEL[rX][rY]      matrix, indexed by two registers
//	rN                  register, 0 through 7
//
// Which modes a given opcode's source and destination slots accept is fixed
// by the ISA table in opcode.go.
package asm
