// This file is part of FF6MusEd.
//
// FF6MusEd is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// FF6MusEd is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with FF6MusEd.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi builds the ANSI escape sequences used to colour transcripts
// when they are written to a terminal.
package ansi

import (
	"fmt"
	"strings"
)

const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

const (
	targetPen       = 3
	targetBrightPen = 9
)

const (
	attrBold      = 1
	attrDim       = 2
	attrUnderline = 4
)

// Pens are bright coloured pens indexed by lower case colour name.
var Pens map[string]string

// DimPens are the normal intensity equivalents of Pens.
var DimPens map[string]string

// PenStyles are bold, dim and underline.
var PenStyles map[string]string

// NormalPen resets all colours and styles.
var NormalPen string

var colours = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen = "\033[0m"

	for _, c := range colours {
		Pens[c] = mustBuild(c, true, "")
		DimPens[c] = mustBuild(c, false, "")
	}

	for _, a := range []string{"bold", "dim", "underline"} {
		PenStyles[a] = mustBuild("", false, a)
	}
}

func mustBuild(pen string, bright bool, attribute string) string {
	s, err := ColorBuild(pen, bright, attribute)
	if err != nil {
		panic(err)
	}
	return s
}

// ColorBuild creates the ANSI sequence for the pen colour and attribute. An
// empty string for either argument means that part of the sequence is
// omitted.
func ColorBuild(pen string, bright bool, attribute string) (string, error) {
	s := strings.Builder{}
	s.Grow(16)
	s.WriteString("\033[")

	parts := make([]string, 0, 2)

	if pen != "" {
		penType := targetPen
		if bright {
			penType = targetBrightPen
		}

		var col int
		switch strings.ToUpper(pen) {
		case "BLACK":
			col = colBlack
		case "RED":
			col = colRed
		case "GREEN":
			col = colGreen
		case "YELLOW":
			col = colYellow
		case "BLUE":
			col = colBlue
		case "MAGENTA":
			col = colMagenta
		case "CYAN":
			col = colCyan
		case "WHITE":
			col = colWhite
		case "NORMAL":
			col = colDefault
		default:
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		parts = append(parts, fmt.Sprintf("%d%d", penType, col))
	}

	if attribute != "" {
		switch strings.ToUpper(attribute) {
		case "BOLD":
			parts = append(parts, fmt.Sprintf("%d", attrBold))
		case "DIM":
			parts = append(parts, fmt.Sprintf("%d", attrDim))
		case "UNDERLINE":
			parts = append(parts, fmt.Sprintf("%d", attrUnderline))
		default:
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
	}

	s.WriteString(strings.Join(parts, ";"))
	s.WriteString("m")

	return s.String(), nil
}
