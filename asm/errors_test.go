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
	"testing"

	"github.com/hexword/asm10/asm"
)

func TestDiagnostics_OK(t *testing.T) {
	var d asm.Diagnostics
	if !d.OK() {
		t.Fatal("empty Diagnostics should be OK")
	}
	d.Warnf(3, "just a warning")
	if !d.OK() {
		t.Fatal("warning-only Diagnostics should still be OK")
	}
	if d.AsError() != nil {
		t.Fatal("warning-only Diagnostics should not be an error")
	}
	d.Add(5, "a real error")
	if d.OK() {
		t.Fatal("Diagnostics with an Add'ed entry should not be OK")
	}
	if d.AsError() == nil {
		t.Fatal("Diagnostics with an error entry should be a non-nil error")
	}
}

func TestDiagnostics_Warnings(t *testing.T) {
	var d asm.Diagnostics
	d.Add(1, "a real error")
	d.Warnf(2, "first warning")
	d.Warnf(3, "second warning")
	w := d.Warnings()
	if len(w) != 2 {
		t.Fatalf("len(Warnings()) = %d, want 2", len(w))
	}
	if w[0].Line != 2 || w[1].Line != 3 {
		t.Errorf("Warnings() = %+v, want lines 2 then 3", w)
	}
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b asm.Diagnostics
	a.Add(1, "first")
	b.Add(2, "second")
	a.Merge(b)
	if len(a) != 2 {
		t.Fatalf("expected 2 merged diagnostics, got %d", len(a))
	}
}

func TestDiagnostic_String(t *testing.T) {
	d := asm.Diagnostic{Line: 7, Msg: "oops", Severity: asm.SeverityError}
	if got, want := d.String(), "7: oops"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	w := asm.Diagnostic{Line: 7, Msg: "careful", Severity: asm.SeverityWarning}
	if got, want := w.String(), "7: warning: careful"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
