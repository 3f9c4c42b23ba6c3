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

package asm_test

import (
	"strings"
	"testing"

	"github.com/hexword/asm10/asm"
)

func TestAssemble_EndToEnd(t *testing.T) {
	src := `
; a small program exercising labels, data and an external reference
		.extern PRINTER
MAIN:	mov #5, r1
		add r1, r2
LOOP:	cmp r2, #10
		bne LOOP
		jsr PRINTER
		.entry MAIN
		stop
NUMS:	.data 1, 2, 3
`
	res, err := asm.Assemble(strings.NewReader(src), asm.Options{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if res.Origin != 100 {
		t.Errorf("Origin = %d, want 100", res.Origin)
	}
	if len(res.Externs) != 1 || res.Externs[0].Name != "PRINTER" {
		t.Errorf("Externs = %+v, want one use of PRINTER", res.Externs)
	}
	if len(res.Entries) != 1 || res.Entries[0].Name != "MAIN" {
		t.Errorf("Entries = %+v, want one entry MAIN", res.Entries)
	}
	if len(res.Data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(res.Data))
	}
	for _, w := range res.Code {
		if w > 1023 {
			t.Fatalf("code word %d exceeds 10 bits", w)
		}
	}
}

func TestAssemble_PreassemblerFailureSkipsLaterStages(t *testing.T) {
	// An unclosed macro should fail before any label or symbol work
	// happens; in particular it must not panic on a nil expanded source.
	src := "mcro M\nstop\n"
	_, err := asm.Assemble(strings.NewReader(src), asm.Options{})
	if err == nil {
		t.Fatal("expected assembly to fail on an unclosed macro")
	}
}

func TestAssemble_CustomOrigin(t *testing.T) {
	res, err := asm.Assemble(strings.NewReader("stop\n"), asm.Options{Origin: 200})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if res.Origin != 200 {
		t.Errorf("Origin = %d, want 200", res.Origin)
	}
}

func TestAssemble_ImmediateOutOfRangeIsWarningNotError(t *testing.T) {
	// 999 is outside -128..255 and should be masked with a warning, but
	// must not fail the assembly (§7, §9), and the warning must still
	// reach the caller rather than being silently dropped (§3).
	res, err := asm.Assemble(strings.NewReader("mov #999, r1\nstop\n"), asm.Options{})
	if err != nil {
		t.Fatalf("expected out-of-range immediate to be a warning only, got error: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(res.Warnings))
	}
}

func TestAssemble_MacroExpansionThenAssemble(t *testing.T) {
	src := "mcro SETUP\nmov #1, r1\nmov #2, r2\nmcroend\nSETUP\nstop\n"
	res, err := asm.Assemble(strings.NewReader(src), asm.Options{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	// 3 (first+imm+reg) + 3 (first+imm+reg) + 1 (stop) = 7 words.
	if len(res.Code) != 7 {
		t.Errorf("len(Code) = %d, want 7", len(res.Code))
	}
}
