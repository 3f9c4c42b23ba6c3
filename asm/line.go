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

import "strings"

// DefaultMaxLineLen is the default source line-length limit (§3, §6),
// overridable via Options (see asm.go) for the configuration surface
// described in SPEC_FULL.md §2.3.
const DefaultMaxLineLen = 80

// stripComment removes a trailing comment from a source line. A semicolon
// starts a comment unless it occurs inside a double-quoted string literal
// (§3); \" and \\ are recognized as escapes while scanning the string so
// that an escaped quote does not end it early.
func stripComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inString && c == '\\' && i+1 < len(line):
			i++
		case c == '"':
			inString = !inString
		case c == ';' && !inString:
			return line[:i]
		}
	}
	return line
}

// isBlank reports whether s, once trimmed, has no content at all.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
