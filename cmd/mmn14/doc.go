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

// The mmn14 command assembles one or more sources for the asm10 toy
// machine, writing the object, entry, and extern files for each.
//
// Usage:
//
//	mmn14 [-config file] source...
//
// Each source argument is a base file name, with or without a .as suffix.
// For each, mmn14 reads <base>.as, and on successful assembly writes
// <base>.ob (always), <base>.ent (only if any symbol was declared .entry),
// and <base>.ext (only if any external symbol was referenced).
//
// A source that fails to assemble has its diagnostics printed to stderr and
// leaves no output file behind; mmn14 continues with the remaining sources
// and exits with a non-zero status if any of them failed.
//
// -config: path to an optional TOML file overriding the machine's origin
// address and maximum source line length. Neither setting affects the
// instruction set or word format; both exist for testing.
package main
