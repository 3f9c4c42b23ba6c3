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
	"flag"
	"fmt"
	"os"

	"github.com/hexword/asm10/asm"
	"github.com/hexword/asm10/internal/obj"
)

func main() {
	configPath := flag.String("config", "", "optional TOML `file` overriding origin/max-line-length defaults")
	flag.Parse()

	opts, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: mmn14 [-config file] source...")
		os.Exit(1)
	}

	exitCode := 0
	for _, arg := range flag.Args() {
		if !assembleOne(arg, opts) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// assembleOne assembles one translation unit named by arg (a base name, with
// or without a .as suffix), writing its object/entry/extern files on
// success. It reports false without leaving any output file behind on
// failure (§6, §7).
func assembleOne(arg string, opts asm.Options) bool {
	base := baseName(arg)
	paths := pathsFor(base)

	f, err := os.Open(paths.Source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", paths.Source, err)
		return false
	}
	defer f.Close()

	result, err := asm.Assemble(f, opts)
	if err != nil {
		if diags, ok := err.(asm.Diagnostics); ok {
			for _, d := range diags {
				fmt.Fprintf(os.Stderr, "%s:%s\n", paths.Source, d)
			}
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", paths.Source, err)
		}
		return false
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "%s:%s\n", paths.Source, w)
	}

	if err := writeObjectFile(paths.Object, result); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", paths.Object, err)
		os.Remove(paths.Object)
		return false
	}
	if len(result.Entries) > 0 {
		if err := writeEntryFile(paths.Entry, result); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", paths.Entry, err)
			os.Remove(paths.Entry)
			os.Remove(paths.Object)
			return false
		}
	}
	if len(result.Externs) > 0 {
		if err := writeExternFile(paths.Extern, result); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", paths.Extern, err)
			os.Remove(paths.Extern)
			os.Remove(paths.Entry)
			os.Remove(paths.Object)
			return false
		}
	}
	return true
}

func writeObjectFile(path string, r *asm.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return obj.WriteObject(f, r.Origin, r.Code, r.Data)
}

func writeEntryFile(path string, r *asm.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return obj.WriteEntries(f, r.Entries)
}

func writeExternFile(path string, r *asm.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return obj.WriteExterns(f, r.Externs)
}
