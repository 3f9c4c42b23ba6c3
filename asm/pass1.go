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

import (
	"regexp"
	"strings"
)

// CodeWord is one placeholder (Pass 1) or resolved (Pass 2) code-image
// entry, tagged with the expanded-source line that produced it (§3).
type CodeWord struct {
	Value Word
	Line  int
}

// Analysis is the result of Pass 1 (§4.2).
type Analysis struct {
	Symbols *SymbolTable
	Code    []CodeWord // one placeholder entry per eventual code word
	Data    []Word     // final, already-packed data words
	ICF     int
	DC      int
	// Diags carries every diagnostic Pass 1 recorded, errors and warnings
	// alike (§3: "stages do not silently discard diagnostics"). Analyze's
	// error return remains error-severity-only (AsError); a caller that
	// also wants the masking warnings of §7/§9 reads Diags directly.
	Diags Diagnostics
}

var labelPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*):`)

// Analyzer runs Pass 1 over an expanded source (§4.2). A fresh Analyzer is
// single-use; construct one per translation unit via NewAnalyzer.
type Analyzer struct {
	ns     *Namespace
	origin int
}

// NewAnalyzer returns an Analyzer that places the first code word at origin
// (the IC start address, default 100, §3) and uses ns for the shared
// macro/label namespace check (§4.2).
func NewAnalyzer(ns *Namespace, origin int) *Analyzer {
	if origin <= 0 {
		origin = 100
	}
	return &Analyzer{ns: ns, origin: origin}
}

// Analyze performs Pass 1 over expanded, the already macro-expanded source
// produced by Preassembler.Expand (§4.2).
func (a *Analyzer) Analyze(expanded []string) (*Analysis, error) {
	var diags Diagnostics
	symtab := NewSymbolTable()
	var code []CodeWord
	var data []Word
	ic := a.origin
	dc := 0

	for i, raw := range expanded {
		lineNo := i + 1
		content := stripComment(raw)
		if isBlank(content) {
			continue
		}

		label, rest, hasLabel := splitLabel(content)
		body := strings.TrimSpace(rest)

		defineLabel := func(value int, kind Kind) {
			if !hasLabel {
				return
			}
			if !ValidLabel(label) {
				diags.Add(lineNo, "illegal label %q", label)
				return
			}
			if a.ns.IsMacro(label) {
				diags.Add(lineNo, "label %q collides with a macro name", label)
				return
			}
			if err := symtab.Define(label, value, kind, lineNo); err != nil {
				diags.Add(lineNo, "%s", err)
				return
			}
			a.ns.RegisterLabel(label)
		}

		if strings.HasPrefix(body, ".") {
			dc = a.directive(body, lineNo, hasLabel, label, symtab, &data, dc, &diags)
			continue
		}

		defineLabel(ic, KindCode)

		ins, errMsg := parseInstruction(body)
		if errMsg != "" {
			diags.Add(lineNo, errMsg)
			continue
		}
		n := ins.WordCount()
		for k := 0; k < n; k++ {
			code = append(code, CodeWord{Value: 0, Line: lineNo})
		}
		ic += n
	}

	icf := ic
	symtab.RelocateData(icf)
	a.checkEntries(symtab, &diags)

	return &Analysis{Symbols: symtab, Code: code, Data: data, ICF: icf, DC: dc, Diags: diags}, diags.AsError()
}

// splitLabel splits a leading "LABEL:" off content, per §3/§4.2. The match
// is purely lexical (a letter, then letters and digits); validity (reserved
// words, length) is checked by the caller so that an illegal label can still
// be reported without losing the rest of the line. A prefix containing any
// other character, such as an underscore, does not match, and the line is
// then treated as having no label.
func splitLabel(content string) (label, rest string, ok bool) {
	m := labelPattern.FindStringSubmatchIndex(content)
	if m == nil {
		return "", content, false
	}
	return content[m[2]:m[3]], content[m[1]:], true
}

// directive dispatches a single "."-prefixed directive line (§4.2). It
// returns the (possibly advanced) data counter.
func (a *Analyzer) directive(body string, lineNo int, hasLabel bool, label string, symtab *SymbolTable, data *[]Word, dc int, diags *Diagnostics) int {
	sp := strings.IndexAny(body, " \t")
	var name, arg string
	if sp < 0 {
		name, arg = body, ""
	} else {
		name, arg = body[:sp], strings.TrimSpace(body[sp+1:])
	}

	defineData := func() {
		if !hasLabel {
			return
		}
		if !ValidLabel(label) {
			diags.Add(lineNo, "illegal label %q", label)
			return
		}
		if a.ns.IsMacro(label) {
			diags.Add(lineNo, "label %q collides with a macro name", label)
			return
		}
		if err := symtab.Define(label, dc, KindData, lineNo); err != nil {
			diags.Add(lineNo, "%s", err)
			return
		}
		a.ns.RegisterLabel(label)
	}

	switch name {
	case ".data":
		vals, errMsg := parseIntList(arg)
		if errMsg != "" {
			diags.Add(lineNo, "malformed .data: %s", errMsg)
			return dc
		}
		defineData()
		for _, v := range vals {
			*data = append(*data, maskWord(v, Absolute, lineNo, diags))
			dc++
		}
		return dc

	case ".string":
		bytes, errMsg := parseQuotedString(arg)
		if errMsg != "" {
			diags.Add(lineNo, "malformed .string: %s", errMsg)
			return dc
		}
		defineData()
		for _, c := range bytes {
			*data = append(*data, PayloadWord(int(c), Absolute))
			dc++
		}
		*data = append(*data, PayloadWord(0, Absolute))
		dc++
		return dc

	case ".mat":
		rows, cols, initText, errMsg := parseMatrixHeader(arg)
		if errMsg != "" {
			diags.Add(lineNo, "malformed .mat: %s", errMsg)
			return dc
		}
		var inits []int
		if initText != "" {
			inits, errMsg = parseIntList(initText)
			if errMsg != "" {
				diags.Add(lineNo, "malformed .mat initializers: %s", errMsg)
				return dc
			}
		}
		n := rows * cols
		if len(inits) > n {
			diags.Add(lineNo, "too many .mat initializers: got %d, matrix holds %d", len(inits), n)
			inits = inits[:n]
		}
		defineData()
		for i := 0; i < n; i++ {
			v := 0
			if i < len(inits) {
				v = inits[i]
			}
			*data = append(*data, maskWord(v, Absolute, lineNo, diags))
			dc++
		}
		return dc

	case ".extern":
		if arg == "" {
			diags.Add(lineNo, "missing operand for .extern")
			return dc
		}
		if !ValidLabel(arg) {
			diags.Add(lineNo, "illegal extern name %q", arg)
			return dc
		}
		if a.ns.IsMacro(arg) {
			diags.Add(lineNo, "extern name %q collides with a macro name", arg)
			return dc
		}
		if err := symtab.Define(arg, 0, KindExtern, lineNo); err != nil {
			diags.Add(lineNo, "%s", err)
		}
		return dc

	case ".entry":
		if arg == "" {
			diags.Add(lineNo, "missing operand for .entry")
			return dc
		}
		if err := symtab.MarkEntry(arg, lineNo); err != nil {
			diags.Add(lineNo, "%s", err)
		}
		return dc

	default:
		diags.Add(lineNo, "unknown directive %s", name)
		return dc
	}
}

// checkEntries validates, once (§9's "implement in exactly one place"), that
// every ENTRY-flagged symbol ends up CODE- or DATA-defined (§4.2, §4.4).
func (a *Analyzer) checkEntries(symtab *SymbolTable, diags *Diagnostics) {
	symtab.Foreach(func(s *Symbol) {
		if !s.Entry {
			return
		}
		switch s.Kind {
		case KindNone:
			diags.Add(s.Line, "entry symbol %q is never defined", s.Name)
		case KindExtern:
			diags.Add(s.Line, "entry symbol %q is declared extern", s.Name)
		}
	})
}
