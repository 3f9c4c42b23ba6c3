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

import "unicode"

// MaxIdentLen is the maximum length, in bytes, of a label or macro name (§3, §6).
const MaxIdentLen = 31

// directiveNames lists every dot-directive recognized by Pass 1. Reserved
// alongside the mnemonic table for the purposes of identifier validation.
var directiveNames = map[string]bool{
	".data":   true,
	".string": true,
	".mat":    true,
	".entry":  true,
	".extern": true,
}

// Reserved reports whether name collides with a mnemonic or a directive name
// (without its leading dot) and is therefore forbidden as a label or macro
// name.
func Reserved(name string) bool {
	if _, ok := opcodeByName[name]; ok {
		return true
	}
	return directiveNames["."+name]
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) && r < unicode.MaxASCII
}

func isIdentCont(r rune) bool {
	return (unicode.IsLetter(r) || unicode.IsDigit(r)) && r < unicode.MaxASCII
}

// ValidLabel reports whether name is syntactically legal as a label: starts
// with a letter, contains only letters and digits (no underscore), length
// 1..MaxIdentLen, and is not a reserved word.
func ValidLabel(name string) bool {
	return validIdent(name, false) && !Reserved(name)
}

// ValidMacroName reports whether name is syntactically legal as a macro
// name: starts with a letter, may contain underscores after the first
// character, length 1..MaxIdentLen, and is not a reserved word.
func ValidMacroName(name string) bool {
	return validIdent(name, true) && !Reserved(name)
}

func validIdent(name string, allowUnderscore bool) bool {
	if len(name) == 0 || len(name) > MaxIdentLen {
		return false
	}
	runes := []rune(name)
	if !isIdentStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if allowUnderscore && r == '_' {
			continue
		}
		if !isIdentCont(r) {
			return false
		}
	}
	return true
}

// Namespace is the shared identifier set threaded through the preassembler
// and Pass 1 (§3, §9): it is the single place where "is this name already a
// macro" and "is this name already a label" are checked, so that the two
// families never collide. Unlike the reference implementation's process-wide
// set, a Namespace is a per-assembly value owned by the caller.
type Namespace struct {
	macros map[string]bool
	labels map[string]bool
}

// NewNamespace returns an empty, ready-to-use Namespace.
func NewNamespace() *Namespace {
	return &Namespace{
		macros: make(map[string]bool),
		labels: make(map[string]bool),
	}
}

// IsMacro reports whether name is already registered as a macro name.
func (n *Namespace) IsMacro(name string) bool { return n.macros[name] }

// IsLabel reports whether name is already registered as a label name.
func (n *Namespace) IsLabel(name string) bool { return n.labels[name] }

// RegisterMacro registers name as a macro name. The caller is expected to
// have already checked IsMacro/IsLabel as appropriate.
func (n *Namespace) RegisterMacro(name string) { n.macros[name] = true }

// RegisterLabel registers name as a label name.
func (n *Namespace) RegisterLabel(name string) { n.labels[name] = true }
