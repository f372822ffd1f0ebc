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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/ff6mused/disassembly"
	"github.com/jetsetilly/ff6mused/instruments"
	"github.com/jetsetilly/ff6mused/logger"
	"github.com/jetsetilly/ff6mused/modalflag"
	"github.com/jetsetilly/ff6mused/paths"
	"github.com/jetsetilly/ff6mused/romloader"
	"github.com/jetsetilly/ff6mused/songtable"
	"github.com/jetsetilly/ff6mused/statsview"
	"github.com/jetsetilly/ff6mused/version"
)

// the name of the instrument names file in the resource directory
const instrumentsFile = "instruments.json"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch is separate from main() so that it can be tested. the return value
// is the exit status for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("LIST", "DISASM", "REPLACE", "VERSION")

	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stderr)
		} else {
			fmt.Fprintln(output, "* statsview not available in this build")
		}
	}

	switch md.Mode() {
	case "LIST":
		err = list(md, output)

	case "DISASM":
		err = disasm(md, output)

	case "REPLACE":
		err = replace(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// loadNames returns the instrument names table. if no filename is given the
// table in the resource directory is used, if it exists.
func loadNames(filename string) (*instruments.Table, error) {
	if filename != "" {
		return instruments.LoadFile(filename)
	}

	fn := paths.ResourcePath(instrumentsFile)
	if _, err := os.Stat(fn); err != nil {
		logger.Logf(logger.Allow, "ff6mused", "no instrument names found at %s", fn)
		return instruments.Default(), nil
	}

	return instruments.LoadFile(fn)
}

// loadTable loads the ROM image and parses its song table.
func loadTable(filename string) (*romloader.Loader, *songtable.Table, error) {
	rl := romloader.NewLoader(filename)
	err := rl.Load()
	if err != nil {
		return nil, nil, err
	}

	if !rl.HasROMExtension() {
		logger.Logf(logger.Allow, "ff6mused", "%s: unusual file extension for a ROM image", rl.ShortName())
	}

	tbl, err := songtable.NewTable(rl.Data, songtable.DefaultLayout)
	if err != nil {
		return nil, nil, err
	}

	return &rl, tbl, nil
}

func list(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	namesFile := md.AddString("instruments", "", "instrument names file")
	memvizFile := md.AddString("memviz", "", "write song table as a graphviz dot file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM image required for %s mode", md)
	case 1:
		names, err := loadNames(*namesFile)
		if err != nil {
			return err
		}

		_, tbl, err := loadTable(md.GetArg(0))
		if err != nil {
			return err
		}

		err = tbl.List(output, names)
		if err != nil {
			return err
		}

		if *memvizFile != "" {
			f, err := os.Create(*memvizFile)
			if err != nil {
				return err
			}
			songs := tbl.Songs()
			memviz.Map(f, &songs)
			if err := f.Close(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) (rerr error) {
	md.NewMode()
	md.AdditionalHelp("arguments: rom [song]\n\nall songs are disassembled if no song is specified")

	namesFile := md.AddString("instruments", "", "instrument names file")
	name := md.AddString("name", "", "song name to use in transcript (single song only)")
	outFile := md.AddString("out", "", "write transcript to file")
	operands := md.AddBool("operands", false, "include operand bytes in transcript")
	color := md.AddBool("color", false, "colour transcript (default true for terminal output)")
	channel := md.AddString("channel", "", "write only the header and the numbered channel (1 to 8)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var songs []int

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM image required for %s mode", md)
	case 1:
	case 2:
		s, err := modalflag.ParseID(md.GetArg(1))
		if err != nil {
			return err
		}
		songs = append(songs, s)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var ch int
	if *channel != "" {
		ch, err = modalflag.ParseID(*channel)
		if err != nil {
			return err
		}
		if ch < 1 || ch > disassembly.NumChannels {
			return fmt.Errorf("channel must be between 1 and %d", disassembly.NumChannels)
		}
	}

	names, err := loadNames(*namesFile)
	if err != nil {
		return err
	}

	_, tbl, err := loadTable(md.GetArg(0))
	if err != nil {
		return err
	}

	if len(songs) == 0 {
		for i := 0; i < tbl.NumSongs(); i++ {
			songs = append(songs, i)
		}
	} else if err := tbl.ValidateIndex(songs[0]); err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		Operands: *operands,
		Color:    *color,
	}

	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return err
		}
		w := bufio.NewWriter(f)
		defer func() {
			err := w.Flush()
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if rerr == nil {
				rerr = err
			}
		}()
		output = w
	} else if f, ok := output.(*os.File); ok {
		// colour is on by default for terminal output unless the flag has
		// been set explicitly
		explicit := false
		md.Visit(func(flg string) {
			explicit = explicit || flg == "color"
		})
		if !explicit {
			attr.Color = term.IsTerminal(int(f.Fd()))
		}
	}

	// truncated songs are summarised rather than listed individually when
	// disassembling every song
	perm := logger.Allow
	if len(songs) > 1 {
		perm = logger.Quiet
	}

	var truncated int

	for _, s := range songs {
		n := ""
		if len(songs) == 1 {
			n = strings.TrimSpace(*name)
		}

		dsm, err := tbl.Disassemble(s, n, names)
		if err != nil {
			return err
		}

		if ch == 0 {
			err = dsm.Write(output, attr)
		} else {
			err = writeChannel(output, attr, dsm, ch)
		}
		if err != nil {
			return err
		}

		if dsm.Truncated {
			truncated++
			logger.Logf(perm, "ff6mused", "song $%02X is truncated", s)
		}
	}

	if truncated > 0 && len(songs) > 1 {
		logger.Logf(logger.Allow, "ff6mused", "%d of %d songs are truncated", truncated, len(songs))
	}

	return nil
}

// writeChannel writes the header block and the entries of a single channel.
func writeChannel(output io.Writer, attr disassembly.WriteAttr, dsm *disassembly.Disassembly, ch int) error {
	err := dsm.WriteHeader(output, attr)
	if err != nil {
		return err
	}

	for _, e := range dsm.ChannelEntries(ch) {
		err = dsm.WriteEntry(output, attr, e)
		if err != nil {
			return err
		}
	}

	return nil
}

func replace(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("arguments: rom song old new\n\ninstruments can be specified by name or by id ($1B or 0x1B)")

	namesFile := md.AddString("instruments", "", "instrument names file")
	outFile := md.AddString("out", "", "filename for modified ROM image (default: <rom>_modified)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) < 4 {
		return fmt.Errorf("ROM image, song and two instruments required for %s mode", md)
	}
	if len(md.RemainingArgs()) > 4 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	names, err := loadNames(*namesFile)
	if err != nil {
		return err
	}

	song, err := modalflag.ParseID(md.GetArg(1))
	if err != nil {
		return err
	}

	oldID, err := names.ID(md.GetArg(2))
	if err != nil {
		return err
	}

	newID, err := names.ID(md.GetArg(3))
	if err != nil {
		return err
	}

	rl, tbl, err := loadTable(md.GetArg(0))
	if err != nil {
		return err
	}

	err = tbl.ReplaceInstrument(song, oldID, newID, names)
	if err != nil {
		return err
	}

	fn := *outFile
	if fn == "" {
		fn = paths.ModifiedFilename(rl.Filename)
	}

	err = rl.Save(fn)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "! %s replaced by %s in song $%02X. saved to %s\n", names.Name(oldID), names.Name(newID), song, fn)
	if rl.HasHeader() {
		fmt.Fprintf(output, "! copier header retained\n")
	}

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(output, "%s %s\n%s\n", version.ApplicationName, v, r)
	} else {
		fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	}

	return nil
}
