// SPDX-License-Identifier: MIT
// Package: partbench/parts
//
// load.go - file-mode data source.
//
// Line grammar (strict end anchor):
//
//	^<digits><delim><digits>$      delim ∈ {',', '\t', ' ', '|'}
//
//   • group 1 is the node id, group 2 the part id.
//   • Any trailing text after the part id makes the line non-matching.
//   • A single trailing '\r' is removed first, so CRLF files behave like LF.
//   • Ids that do not fit in int64 make the line non-matching.
//   • Non-matching lines are skipped; they never produce an error.
//
// Failure classes (all wrap ErrDataLoad):
//   • open/read failures of the underlying file or reader;
//   • lines that are not valid UTF-8 (undecodable input).
//
// Complexity: O(L) over the input length; one append per matching line.

package parts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// linePattern matches "<node><delim><part>" anchored at both ends.
var linePattern = regexp.MustCompile(`^(\d+)[,\t |](\d+)$`)

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (PartMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %v: %w", path, err, ErrDataLoad)
	}
	defer f.Close()

	pm, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}

	return pm, nil
}

// Load reads lines from r and appends each matching node id to the
// sequence of its part, creating the part on first occurrence.
func Load(r io.Reader) (PartMap, error) {
	pm := make(PartMap)
	br := bufio.NewReader(r)

	var lineNo int
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("line %d: %v: %w", lineNo+1, readErr, ErrDataLoad)
		}
		if line == "" && readErr != nil {
			break
		}
		lineNo++

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: invalid utf-8: %w", lineNo, ErrDataLoad)
		}

		if node, part, ok := parseLine(line); ok {
			pm[part] = append(pm[part], node)
		}

		if readErr != nil {
			break
		}
	}

	return pm, nil
}

// parseLine applies linePattern and converts both groups.
func parseLine(line string) (NodeID, PartID, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	node, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	part, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, 0, false
	}

	return NodeID(node), PartID(part), true
}
