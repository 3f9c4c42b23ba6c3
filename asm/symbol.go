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

import "github.com/pkg/errors"

// Kind is the sum type backing a Symbol's definition (§9: "tagged variants
// over flag-bitmasks"). Exactly one of KindCode/KindData/KindExtern/KindNone
// describes how (or whether) a symbol is locally defined; Entry is tracked
// as an orthogonal boolean on Symbol rather than folded into Kind.
type Kind int

// Symbol kinds (§3).
const (
	KindNone Kind = iota // placeholder: .entry'd but not yet defined
	KindCode
	KindData
	KindExtern
)

func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindData:
		return "data"
	case KindExtern:
		return "extern"
	default:
		return "none"
	}
}

// Symbol is one entry of the symbol table (§3).
type Symbol struct {
	Name  string
	Value int
	Kind  Kind
	Entry bool
	Line  int
}

// Defined reports whether the symbol has a concrete definition (CODE, DATA
// or EXTERN), as opposed to being a bare ENTRY placeholder awaiting one.
func (s *Symbol) Defined() bool { return s.Kind != KindNone }

// SymbolTable implements the operations of §4.4. Names are owned by the
// table: callers never need to retain a name string beyond the call that
// passed it in.
type SymbolTable struct {
	order []string
	byName map[string]*Symbol
}

// NewSymbolTable returns an empty, ready-to-use SymbolTable.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]*Symbol)}
}

// Lookup returns the record for name, or nil, false if it does not exist.
func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// Define registers name with the given value, kind and source line,
// following the merge rules of §4.4:
//
//   - a new name is inserted outright;
//   - an existing EXTERN record cannot be locally redefined (error);
//   - an existing CODE/DATA record is a duplicate (error), whatever kind
//     the new definition has;
//   - an existing record that carries only the ENTRY flag (kind == KindNone)
//     has its value/kind filled in, with Entry left set.
//
// kind must be one of KindCode, KindData or KindExtern.
func (t *SymbolTable) Define(name string, value int, kind Kind, line int) error {
	if existing, ok := t.byName[name]; ok {
		switch {
		case existing.Kind == KindExtern:
			return errors.Errorf("symbol %q already declared extern, cannot be defined locally", name)
		case existing.Kind != KindNone:
			return errors.Errorf("symbol %q already defined", name)
		default:
			existing.Value = value
			existing.Kind = kind
			existing.Line = line
			return nil
		}
	}
	s := &Symbol{Name: name, Value: value, Kind: kind, Line: line}
	t.byName[name] = s
	t.order = append(t.order, name)
	return nil
}

// MarkEntry flags name as ENTRY (§4.4). If the record is already EXTERN this
// is an error; if no record exists yet, a placeholder carrying only ENTRY is
// created so that a later .data/.extern/label definition (or none at all,
// which Pass 1 finalization will flag) can fill it in.
func (t *SymbolTable) MarkEntry(name string, line int) error {
	s, ok := t.byName[name]
	if !ok {
		s = &Symbol{Name: name, Kind: KindNone, Line: line}
		t.byName[name] = s
		t.order = append(t.order, name)
	}
	if s.Kind == KindExtern {
		return errors.Errorf("symbol %q is extern, cannot be flagged entry", name)
	}
	s.Entry = true
	return nil
}

// RelocateData adds icf to the value of every DATA-flagged record (§3, §4.2).
// Calling this more than once is not idempotent and is the caller's
// responsibility to avoid (§4.4).
func (t *SymbolTable) RelocateData(icf int) {
	for _, name := range t.order {
		s := t.byName[name]
		if s.Kind == KindData {
			s.Value += icf
		}
	}
}

// Foreach calls fn once per symbol in insertion order.
func (t *SymbolTable) Foreach(fn func(*Symbol)) {
	for _, name := range t.order {
		fn(t.byName[name])
	}
}
