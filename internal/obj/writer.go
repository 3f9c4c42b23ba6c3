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

package obj

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/hexword/asm10/asm"
)

// wordDigits is the fixed rendered width of a 10-bit word in base-4 (§6):
// 4^5 = 1024, exactly covering 0..1023.
const wordDigits = 5

// errWriter wraps an io.Writer to track the first error across a sequence
// of writes, so that a writer function can ignore error returns on every
// individual Fprintf and check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.w, format, args...); err != nil {
		w.err = errors.Wrap(err, "write failed")
	}
}

// WriteObject renders the object file (§6): a header line with the code and
// data lengths in trimmed base-4, followed by one "<address> <word>" line
// per word, code first then data, addresses continuing in sequence from
// origin.
func WriteObject(w io.Writer, origin int, code, data []asm.Word) error {
	ew := &errWriter{w: w}
	ew.Printf("%s %s\n", encodeBase4(len(code), 0), encodeBase4(len(data), 0))
	addr := origin
	for _, word := range code {
		ew.Printf("%s %s\n", encodeBase4(addr, 0), encodeBase4(int(word), wordDigits))
		addr++
	}
	for _, word := range data {
		ew.Printf("%s %s\n", encodeBase4(addr, 0), encodeBase4(int(word), wordDigits))
		addr++
	}
	return ew.err
}

// WriteEntries renders the entry file (§6): one "<name> <address>" line per
// ENTRY-flagged symbol, in the order given.
func WriteEntries(w io.Writer, entries []*asm.Symbol) error {
	ew := &errWriter{w: w}
	for _, s := range entries {
		ew.Printf("%s %s\n", s.Name, encodeBase4(s.Value, 0))
	}
	return ew.err
}

// WriteExterns renders the extern file (§6): one "<name> <address>" line per
// recorded use of an external symbol, in the order the uses occurred.
func WriteExterns(w io.Writer, uses []asm.ExternUse) error {
	ew := &errWriter{w: w}
	for _, u := range uses {
		ew.Printf("%s %s\n", u.Name, encodeBase4(u.Address, 0))
	}
	return ew.err
}
