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

import "path/filepath"

// sourceExt, objectExt, entryExt, externExt are the fixed file extensions
// of §6: source .as, object .ob, entry list .ent, extern list .ext. The
// expanded-source extension .am is an intermediate artifact; this driver
// does not write it to disk since the pipeline keeps it in memory.
const (
	sourceExt = ".as"
	objectExt = ".ob"
	entryExt  = ".ent"
	externExt = ".ext"
)

// baseName strips a trailing .as suffix, if present, from a command-line
// argument (§6: "with or without a .as suffix").
func baseName(arg string) string {
	if filepath.Ext(arg) == sourceExt {
		return arg[:len(arg)-len(sourceExt)]
	}
	return arg
}

type filePaths struct {
	Source string
	Object string
	Entry  string
	Extern string
}

func pathsFor(base string) filePaths {
	return filePaths{
		Source: base + sourceExt,
		Object: base + objectExt,
		Entry:  base + entryExt,
		Extern: base + externExt,
	}
}
