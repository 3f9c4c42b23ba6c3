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

package obj_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hexword/asm10/asm"
	"github.com/hexword/asm10/internal/obj"
)

func TestWriteObject_Header(t *testing.T) {
	var buf bytes.Buffer
	code := []asm.Word{asm.PayloadWord(1, asm.Absolute)}
	data := []asm.Word{asm.PayloadWord(2, asm.Absolute), asm.PayloadWord(3, asm.Absolute)}
	if err := obj.WriteObject(&buf, 100, code, data); err != nil {
		t.Fatalf("WriteObject failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1+len(code)+len(data) {
		t.Fatalf("got %d lines, want %d", len(lines), 1+len(code)+len(data))
	}
	if lines[0] != "b c" {
		t.Errorf("header line = %q, want %q (1 code word, 2 data words)", lines[0], "b c")
	}
}

func TestWriteObject_Addresses(t *testing.T) {
	var buf bytes.Buffer
	code := []asm.Word{1, 2}
	if err := obj.WriteObject(&buf, 100, code, nil); err != nil {
		t.Fatalf("WriteObject failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// address 100 in base4 with no padding; just confirm the two addresses differ.
	fields0 := strings.Fields(lines[1])
	fields1 := strings.Fields(lines[2])
	if fields0[0] == fields1[0] {
		t.Errorf("expected distinct addresses, both rendered as %q", fields0[0])
	}
}

func TestWriteEntries(t *testing.T) {
	var buf bytes.Buffer
	entries := []*asm.Symbol{
		{Name: "MAIN", Value: 100, Kind: asm.KindCode, Entry: true},
	}
	if err := obj.WriteEntries(&buf, entries); err != nil {
		t.Fatalf("WriteEntries failed: %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "MAIN ") {
		t.Errorf("entry line = %q, want prefix %q", got, "MAIN ")
	}
}

func TestWriteExterns(t *testing.T) {
	var buf bytes.Buffer
	uses := []asm.ExternUse{{Name: "HELPER", Address: 101}}
	if err := obj.WriteExterns(&buf, uses); err != nil {
		t.Fatalf("WriteExterns failed: %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "HELPER ") {
		t.Errorf("extern line = %q, want prefix %q", got, "HELPER ")
	}
}
