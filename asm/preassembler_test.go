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

func expand(t *testing.T, src string) []string {
	t.Helper()
	ns := asm.NewNamespace()
	p := asm.NewPreassembler(ns, 0)
	out, err := p.Expand(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	return out
}

func TestPreassembler_SimpleExpansion(t *testing.T) {
	src := "mcro M\nadd r1, r2\nmcroend\nM\nstop\n"
	out := expand(t, src)
	joined := strings.Join(out, "|")
	if !strings.Contains(joined, "add r1, r2") || !strings.Contains(joined, "stop") {
		t.Fatalf("expansion missing body or trailing code: %v", out)
	}
	for _, l := range out {
		if strings.TrimSpace(l) == "M" {
			t.Errorf("invocation line should have been replaced, got %v", out)
		}
	}
}

func TestPreassembler_NestedMacroRejected(t *testing.T) {
	ns := asm.NewNamespace()
	p := asm.NewPreassembler(ns, 0)
	src := "mcro OUTER\nmcro INNER\nmcroend\nmcroend\n"
	if _, err := p.Expand(strings.NewReader(src)); err == nil {
		t.Fatal("expected nested macro definition to fail")
	}
}

func TestPreassembler_DuplicateMacroRejected(t *testing.T) {
	ns := asm.NewNamespace()
	p := asm.NewPreassembler(ns, 0)
	src := "mcro M\nstop\nmcroend\nmcro M\nstop\nmcroend\n"
	if _, err := p.Expand(strings.NewReader(src)); err == nil {
		t.Fatal("expected duplicate macro definition to fail")
	}
}

func TestPreassembler_UnterminatedMacro(t *testing.T) {
	ns := asm.NewNamespace()
	p := asm.NewPreassembler(ns, 0)
	src := "mcro M\nstop\n"
	if _, err := p.Expand(strings.NewReader(src)); err == nil {
		t.Fatal("expected unclosed macro to fail")
	}
}

func TestPreassembler_LineTooLong(t *testing.T) {
	ns := asm.NewNamespace()
	p := asm.NewPreassembler(ns, 10)
	src := "this line is definitely longer than ten characters\n"
	if _, err := p.Expand(strings.NewReader(src)); err == nil {
		t.Fatal("expected over-length line to fail")
	}
}

func TestPreassembler_StrayMcroendRejected(t *testing.T) {
	ns := asm.NewNamespace()
	p := asm.NewPreassembler(ns, 0)
	src := "stop\nmcroend\n"
	if _, err := p.Expand(strings.NewReader(src)); err == nil {
		t.Fatal("expected stray mcroend outside a macro definition to fail")
	}
}

func TestPreassembler_NoPartialOutputOnError(t *testing.T) {
	ns := asm.NewNamespace()
	p := asm.NewPreassembler(ns, 0)
	src := "stop\nmcro M\nstop\n"
	out, err := p.Expand(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected error from unclosed macro")
	}
	if out != nil {
		t.Fatalf("expected nil output on error, got %v", out)
	}
}
