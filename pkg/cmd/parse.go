// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vcl-lang/go-vcl/pkg/vcl"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] source_file",
	Short: "parse a specification file.",
	Long: `Parse a given specification file, reporting either its declarations or the
	 first syntax error arising.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		canonical := GetFlag(cmd, "print")
		//
		run := func() bool { return parseAndReport(args[0], canonical) }
		// Parse once up front
		ok := run()
		// Continue parsing on file changes (if requested)
		if GetFlag(cmd, "watch") {
			watchAndRerun(args[0], func() { run() })
		} else if !ok {
			os.Exit(2)
		}
	},
}

// Parse a given file, reporting either a summary of its declarations (or the
// whole program in canonical form) or the first syntax error arising.
func parseAndReport(filename string, canonical bool) bool {
	srcfile := ReadSourceFile(filename)
	//
	parsed, errs := vcl.Parse(srcfile)
	//
	if len(errs) > 0 {
		printSyntaxError(&errs[0])
		return false
	}
	//
	log.Debugf("parsed %s without errors", filename)
	//
	if canonical {
		fmt.Print(vcl.PrintProgram(parsed.Program))
	} else {
		fmt.Printf("%s: %d declaration(s)\n", filename, len(parsed.Program.Decls))
	}
	//
	return true
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolP("print", "p", false, "print the program in canonical form")
}
