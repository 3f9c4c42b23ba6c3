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

// Package obj renders an assembled translation unit to the three textual
// output files (object, entry, extern). It is deliberately the only place
// that knows about the base-4 alphabet; the core asm package works in plain
// integers throughout.
package obj

const base4Alphabet = "abcd"

// encodeBase4 renders n (n >= 0) in base 4 using the alphabet a=0,b=1,c=2,
// d=3, left-padded with 'a' to at least width digits. width 0 means no
// padding: the shortest representation, with at least one digit.
func encodeBase4(n, width int) string {
	if n == 0 {
		return padLeft("a", width)
	}
	var digits []byte
	for n > 0 {
		digits = append(digits, base4Alphabet[n%4])
		n /= 4
	}
	// digits were collected least-significant first; reverse.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return padLeft(string(digits), width)
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = "a" + s
	}
	return s
}
