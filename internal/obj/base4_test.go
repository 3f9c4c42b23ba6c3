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

import "testing"

func TestEncodeBase4(t *testing.T) {
	cases := []struct {
		n, width int
		want     string
	}{
		{0, 0, "a"},
		{1, 0, "b"},
		{4, 0, "ba"},
		{1023, 0, "ddddd"},
		{0, 5, "aaaaa"},
		{1, 5, "aaaab"},
	}
	for _, c := range cases {
		if got := encodeBase4(c.n, c.width); got != c.want {
			t.Errorf("encodeBase4(%d, %d) = %q, want %q", c.n, c.width, got, c.want)
		}
	}
}

func TestEncodeBase4_WordWidthCoversFullRange(t *testing.T) {
	// wordDigits base-4 characters can represent 0..4^5-1 = 0..1023, exactly
	// the 10-bit word range.
	if got := encodeBase4(1023, wordDigits); got != "ddddd" {
		t.Errorf("encodeBase4(1023, %d) = %q, want %q", wordDigits, got, "ddddd")
	}
	if got := encodeBase4(0, wordDigits); got != "aaaaa" {
		t.Errorf("encodeBase4(0, %d) = %q, want %q", wordDigits, got, "aaaaa")
	}
}
