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
package source

import (
	"os"
	"sort"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		files[i] = *NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// Line provides information about a given line within the original string.
// This includes the line number (counting from 1), and the span of the line
// within the original string.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	// Extract runes representing line
	runes := p.text[p.span.start:p.span.end]
	// Convert into string
	return string(runes)
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original string.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File represents a given source file (typically stored on disk).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
	// Starting offsets of each line, in ascending order.  The first entry is
	// always zero.
	lines []int
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	// Convert bytes into runes for easier parsing
	contents := []rune(string(bytes))
	// Index the starting offset of each line, so that positions can be
	// computed without rescanning the file.
	lines := []int{0}
	//
	for i, c := range contents {
		if c == '\n' {
			lines = append(lines, i+1)
		}
	}
	//
	return &File{filename, contents, lines}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Position converts an index within this source file into a line and column
// number (both counting from 1).  Indices beyond the end of the file report a
// position on the last line.
func (s *File) Position(index int) (line int, column int) {
	// Find first line starting after the index.
	n := sort.SearchInts(s.lines, index+1)
	// Index lies on the line before it.
	return n, 1 + index - s.lines[n-1]
}

// EnclosingLine returns the line on which a given index falls.  Indices beyond
// the end of the file report the last physical line.
func (s *File) EnclosingLine(index int) Line {
	num, _ := s.Position(index)
	start := s.lines[num-1]
	end := len(s.contents)
	//
	if num < len(s.lines) {
		// Exclude the newline itself.
		end = s.lines[num] - 1
	}
	//
	return Line{s.contents, Span{start, end}, num}
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message, tagged with the phase of the pipeline which raised it.
func (s *File) SyntaxError(phase Phase, span Span, msg string) *SyntaxError {
	return &SyntaxError{s, phase, span, msg}
}
