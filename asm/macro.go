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

// macro is a registered (name, body) pair (§3). Bodies are stored verbatim,
// comments included, as a slice of lines; expansion is a single textual
// substitution with no parameters and no nesting.
type macro struct {
	name string
	body []string
}

// macroTable owns the set of macros defined in one translation unit.
type macroTable struct {
	byName map[string]*macro
}

func newMacroTable() *macroTable {
	return &macroTable{byName: make(map[string]*macro)}
}

func (t *macroTable) lookup(name string) (*macro, bool) {
	m, ok := t.byName[name]
	return m, ok
}

func (t *macroTable) defined(name string) bool {
	_, ok := t.byName[name]
	return ok
}

func (t *macroTable) define(name string, body []string) {
	t.byName[name] = &macro{name: name, body: body}
}
