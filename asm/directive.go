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
	"strconv"
	"strings"
)

// parseIntList parses a comma-separated list of decimal integers, as used by
// .data and .mat initializers (§4.2). A leading/trailing/doubled comma
// (producing an empty token) is reported as a malformed list.
func parseIntList(s string) ([]int, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, "missing operand list"
	}
	parts := strings.Split(s, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, "malformed integer list"
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, "malformed integer " + p
		}
		vals = append(vals, n)
	}
	return vals, ""
}

// parseQuotedString parses a .string directive's operand: a double-quoted
// literal supporting \" and \\ escapes (§4.2). It returns the decoded byte
// sequence (without the terminating 0, which the caller appends), or an
// error message.
func parseQuotedString(s string) ([]byte, string) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '"' {
		return nil, "missing opening quote in .string operand"
	}
	var buf []byte
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\'):
			buf = append(buf, s[i+1])
			i++
		case c == '"':
			if rest := strings.TrimSpace(s[i+1:]); rest != "" {
				return nil, "trailing junk after string literal"
			}
			return buf, ""
		default:
			buf = append(buf, c)
		}
	}
	return nil, "unterminated string literal"
}

var matHeaderPattern = regexp.MustCompile(`^\[\s*(-?\d+)\s*\]\[\s*(-?\d+)\s*\]\s*(.*)$`)

// parseMatrixHeader parses the "[rows][cols] <inits>" portion of a .mat
// directive (§4.2). rows/cols must be positive; initText is whatever
// trailing text follows the dimensions, untouched.
func parseMatrixHeader(s string) (rows, cols int, initText, errMsg string) {
	m := matHeaderPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, "", "malformed .mat dimensions"
	}
	rows, _ = strconv.Atoi(m[1])
	cols, _ = strconv.Atoi(m[2])
	if rows <= 0 || cols <= 0 {
		return 0, 0, "", "matrix dimensions must be positive"
	}
	return rows, cols, strings.TrimSpace(m[3]), ""
}
