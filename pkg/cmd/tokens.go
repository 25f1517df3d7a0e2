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

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] source_file",
	Short: "dump the classified token stream of a specification file.",
	Long: `Lex a given specification file and dump its classified token stream, as a
	 syntax highlighter would consume it.  No layout or parsing is performed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		all := GetFlag(cmd, "all")
		//
		run := func() bool { return dumpTokens(args[0], all) }
		// Lex once up front
		ok := run()
		// Continue lexing on file changes (if requested)
		if GetFlag(cmd, "watch") {
			watchAndRerun(args[0], func() { run() })
		} else if !ok {
			os.Exit(2)
		}
	},
}

// Dump the classified token stream for a given file.  Whitespace is omitted
// unless all is set; comments are always retained, as a highlighter needs
// them.
func dumpTokens(filename string, all bool) bool {
	srcfile := ReadSourceFile(filename)
	highlighter := vcl.NewHighlighter(srcfile)
	//
	for highlighter.HasNext() {
		token := highlighter.Next()
		//
		if !all && token.Class == vcl.ClassWhitespace {
			continue
		}
		//
		line, col := srcfile.Position(token.Span.Start())
		text := string(srcfile.Contents()[token.Span.Start():token.Span.End()])
		//
		fmt.Printf("%d:%d\t%s\t%q\n", line, col, token.Class, text)
	}
	// A truncated stream means the file failed to lex; rerun the checked lexer
	// for the structured error.
	if highlighter.Remaining() != 0 {
		if _, errs := vcl.LexAll(srcfile); len(errs) > 0 {
			printSyntaxError(&errs[0])
		}
		//
		return false
	}
	//
	return true
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().Bool("all", false, "include whitespace tokens")
}
