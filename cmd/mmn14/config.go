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

package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/hexword/asm10/asm"
)

// fileConfig is the optional TOML configuration file accepted via -config
// (SPEC_FULL.md §2.3). Every field has a machine-mandated default and is
// only ever useful for testing against a non-standard machine image.
type fileConfig struct {
	Origin     int `toml:"origin"`
	MaxLineLen int `toml:"max_line_len"`
}

// loadConfig reads and parses a TOML configuration file at path, returning
// asm.Options built from it. An empty path returns the zero Options (the
// assembler's own defaults apply).
func loadConfig(path string) (asm.Options, error) {
	if path == "" {
		return asm.Options{}, nil
	}
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return asm.Options{}, errors.Wrap(err, "reading config file")
	}
	return asm.Options{Origin: fc.Origin, MaxLineLen: fc.MaxLineLen}, nil
}
