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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/ff6mused/memorymap"
)

// OpcodeBase is the lowest control opcode.
const OpcodeBase = NoteLimit + 1

// NumOpcodes is the number of control opcodes.
const NumOpcodes = 0x100 - OpcodeBase

// MaxOperands is the largest number of operand bytes taken by any opcode.
const MaxOperands = 3

// decoder holds the information about the track that some opcodes need to
// describe themselves.
type decoder struct {
	trackAddress    uint32
	lastByteAddress uint32
	instruments     *[NumSlots]string
}

func (dec *decoder) pointer(raw []uint8) string {
	return Hex(memorymap.ResolvePointer(raw, dec.trackAddress, dec.lastByteAddress))
}

func (dec *decoder) instrument(v uint8) string {
	if v < slotBase {
		return fmt.Sprintf("sound effect $%s", Hex(uint32(v)))
	}
	slot := int(v - slotBase)
	if slot >= NumSlots {
		return fmt.Sprintf("unassigned slot $%s", Hex(uint32(v)))
	}
	return dec.instruments[slot]
}

// operation defines a single control opcode.
type operation struct {
	// the number of bytes following the opcode that belong to it
	operands int

	// change to the repeat nesting level
	nesting int

	// describe is called with exactly the number of operand bytes specified
	// by the operands field
	describe func(dec *decoder, op []uint8) string
}

func fixed(s string) func(*decoder, []uint8) string {
	return func(_ *decoder, _ []uint8) string {
		return s
	}
}

func single(pattern string) func(*decoder, []uint8) string {
	return func(_ *decoder, op []uint8) string {
		return fmt.Sprintf(pattern, op[0])
	}
}

const endScript = "End script"

// operations is indexed by opcode minus OpcodeBase.
var operations = [NumOpcodes]operation{
	0xc4 - OpcodeBase: {operands: 1, describe: single("Set volume to %d")},
	0xc5 - OpcodeBase: {operands: 2, describe: func(_ *decoder, op []uint8) string {
		return fmt.Sprintf("Set volume to %d over [%s]", op[1], LengthName(op[0]))
	}},
	0xc6 - OpcodeBase: {operands: 1, describe: single("Set pan to %d")},
	0xc7 - OpcodeBase: {operands: 2, describe: func(_ *decoder, op []uint8) string {
		return fmt.Sprintf("Set pan to %d over [%s]", op[1], LengthName(op[0]))
	}},
	0xc8 - OpcodeBase: {operands: 2, describe: func(_ *decoder, op []uint8) string {
		return fmt.Sprintf("Change pitch by %d over [%s]", op[1], LengthName(op[0]))
	}},
	0xc9 - OpcodeBase: {operands: 3, describe: func(_ *decoder, op []uint8) string {
		return fmt.Sprintf("Enable vibrato (delay: %d, duration: %d amplitude: %d)", op[0], op[1], op[2])
	}},
	0xca - OpcodeBase: {describe: fixed("Disable vibrato")},
	0xcb - OpcodeBase: {operands: 3, describe: func(_ *decoder, op []uint8) string {
		return fmt.Sprintf("Enable tremolo (delay: %d, cycle duration: %d amplitude: %d)", op[0], op[1], op[2])
	}},
	0xcc - OpcodeBase: {describe: fixed("Disable tremolo")},
	0xcd - OpcodeBase: {operands: 2, describe: func(_ *decoder, op []uint8) string {
		return fmt.Sprintf("Enable pansweep (delay: %d, cycle duration: %d)", op[0], op[1])
	}},
	0xce - OpcodeBase: {describe: fixed("Disable pansweep")},
	0xcf - OpcodeBase: {operands: 1, describe: single("Set noise clock to %d")},

	0xd0 - OpcodeBase: {describe: fixed("Enable noise")},
	0xd1 - OpcodeBase: {describe: fixed("Disable noise")},
	0xd2 - OpcodeBase: {describe: fixed("Enable pitch modulation")},
	0xd3 - OpcodeBase: {describe: fixed("Disable pitch modulation")},
	0xd4 - OpcodeBase: {describe: fixed("Enable echo")},
	0xd5 - OpcodeBase: {describe: fixed("Disable echo")},
	0xd6 - OpcodeBase: {operands: 1, describe: single("Set octave to %d")},
	0xd7 - OpcodeBase: {describe: fixed("Increment octave")},
	0xd8 - OpcodeBase: {describe: fixed("Decrease octave")},
	0xd9 - OpcodeBase: {operands: 1, describe: single("Set transposition to %d")},
	0xda - OpcodeBase: {operands: 1, describe: single("Add transposition by %d")},
	0xdb - OpcodeBase: {operands: 1, describe: single("Set detuning to %d")},
	0xdc - OpcodeBase: {operands: 1, describe: func(dec *decoder, op []uint8) string {
		return fmt.Sprintf("Set instrument to %s", dec.instrument(op[0]))
	}},
	0xdd - OpcodeBase: {operands: 1, describe: single("Set ADSR attack to %d (0-15)")},
	0xde - OpcodeBase: {operands: 1, describe: single("Set ADSR decay to %d (0-7)")},
	0xdf - OpcodeBase: {operands: 1, describe: single("Set ADSR sustain to %d (0-7)")},

	0xe0 - OpcodeBase: {operands: 1, describe: single("Set ADSR release to %d (0-31)")},
	0xe1 - OpcodeBase: {describe: fixed("Set ADSR values to default")},
	0xe2 - OpcodeBase: {operands: 1, nesting: 1, describe: func(_ *decoder, op []uint8) string {
		return fmt.Sprintf("Repeat %d times", int(op[0])+1)
	}},
	0xe3 - OpcodeBase: {nesting: -1, describe: fixed("End block of repetition")},
	0xe4 - OpcodeBase: {describe: fixed("Enable slur")},
	0xe5 - OpcodeBase: {describe: fixed("Disable slur")},
	0xe6 - OpcodeBase: {describe: fixed("Enable drum roll")},
	0xe7 - OpcodeBase: {describe: fixed("Disable drum roll")},
	0xe8 - OpcodeBase: {operands: 1, describe: single("Add %d to note duration")},
	0xe9 - OpcodeBase: {operands: 1, describe: single("Play sound effect %d (voice A)")},
	0xea - OpcodeBase: {operands: 1, describe: single("Play sound effect %d (voice B)")},
	0xeb - OpcodeBase: {describe: fixed(endScript)},
	0xec - OpcodeBase: {describe: fixed(endScript)},
	0xed - OpcodeBase: {describe: fixed(endScript)},
	0xee - OpcodeBase: {describe: fixed(endScript)},
	0xef - OpcodeBase: {describe: fixed(endScript)},

	0xf0 - OpcodeBase: {operands: 1, describe: single("Set tempo to %d")},
	0xf1 - OpcodeBase: {operands: 2, describe: func(_ *decoder, op []uint8) string {
		return fmt.Sprintf("Set tempo to %d over %d", op[0], op[1])
	}},
	0xf2 - OpcodeBase: {operands: 1, describe: single("Set echo volume to %d")},
	0xf3 - OpcodeBase: {operands: 2, describe: func(_ *decoder, op []uint8) string {
		return fmt.Sprintf("Set echo volume to %d over %d", op[0], op[1])
	}},
	0xf4 - OpcodeBase: {operands: 1, describe: single("Set song volume to %d")},
	0xf5 - OpcodeBase: {operands: 3, describe: func(dec *decoder, op []uint8) string {
		return fmt.Sprintf("Branches to %s after %d repetitions", dec.pointer(op[1:3]), op[0])
	}},
	0xf6 - OpcodeBase: {operands: 2, describe: func(dec *decoder, op []uint8) string {
		return fmt.Sprintf("Branches to %s", dec.pointer(op[0:2]))
	}},
	// operands are printed in the reverse of the order they are stored
	0xf7 - OpcodeBase: {operands: 2, describe: func(_ *decoder, op []uint8) string {
		return fmt.Sprintf("Set echo feedback to %d over %d frames", op[1], op[0])
	}},
	// the meaning of the filter parameters is unknown
	0xf8 - OpcodeBase: {operands: 2, describe: func(_ *decoder, op []uint8) string {
		return fmt.Sprintf("Set filter's (??) to %d and (??) to %d", op[1], op[0])
	}},
	0xf9 - OpcodeBase: {describe: fixed("Increment output code")},
	0xfa - OpcodeBase: {describe: fixed("Clear output code")},
	0xfb - OpcodeBase: {describe: fixed("Ignore song volume")},
	0xfc - OpcodeBase: {operands: 2, describe: func(dec *decoder, op []uint8) string {
		return fmt.Sprintf("Conditionally branches to %s", dec.pointer(op[0:2]))
	}},
	0xfd - OpcodeBase: {describe: fixed(endScript)},
	0xfe - OpcodeBase: {describe: fixed(endScript)},
	0xff - OpcodeBase: {describe: fixed(endScript)},
}

// IsOpcode returns true if the byte is a control opcode rather than a note.
func IsOpcode(b uint8) bool {
	return b >= OpcodeBase
}

// OperandCount returns the number of operand bytes that follow the byte in
// the track. Notes never have operands.
func OperandCount(b uint8) int {
	if !IsOpcode(b) {
		return 0
	}
	return operations[b-OpcodeBase].operands
}

// NestingChange returns the change in repeat nesting caused by the byte.
func NestingChange(b uint8) int {
	if !IsOpcode(b) {
		return 0
	}
	return operations[b-OpcodeBase].nesting
}

// IsEndScript returns true if the byte is one of the end script opcodes.
func IsEndScript(b uint8) bool {
	return (b >= 0xeb && b <= 0xef) || b >= 0xfd
}
