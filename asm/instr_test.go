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

import "testing"

func TestParseInstruction_WordCount(t *testing.T) {
	cases := []struct {
		text string
		n    int
	}{
		{"stop", 1},
		{"rts", 1},
		{"clr r1", 2},
		{"inc LOOP", 2},
		{"mov r1, r2", 2}, // both Register: collapses to 1 combined word
		{"mov #5, r2", 3},
		{"mov LOOP, r2", 3},
		{"mov LOOP[r1][r2], r3", 4}, // Matrix costs 2 words
		{"prn #-17", 2},
	}
	for _, c := range cases {
		ins, errMsg := parseInstruction(c.text)
		if errMsg != "" {
			t.Fatalf("parseInstruction(%q) failed: %s", c.text, errMsg)
		}
		if got := ins.WordCount(); got != c.n {
			t.Errorf("WordCount(%q) = %d, want %d", c.text, got, c.n)
		}
	}
}

func TestParseInstruction_Errors(t *testing.T) {
	cases := []string{
		"frobnicate r1",  // unknown mnemonic
		"mov ,r1",        // missing source operand (S6)
		"mov r1",         // missing destination operand
		"clr r1, r2",     // too many operands for arity 1
		"jmp #5",         // immediate not permitted for jmp's destination
		"cmp r1 r2",      // missing comma
	}
	for _, text := range cases {
		if _, errMsg := parseInstruction(text); errMsg == "" {
			t.Errorf("parseInstruction(%q): expected error, got none", text)
		}
	}
}

func TestSplitOperandsForArity_MissingSource(t *testing.T) {
	_, errMsg := splitOperandsForArity(",r1", 2)
	if errMsg != "missing source operand" {
		t.Errorf("errMsg = %q, want %q", errMsg, "missing source operand")
	}
}
