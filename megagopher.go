// This file is part of Megagopher.
//
// Megagopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Megagopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Megagopher.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/megagopher/megagopher/cartridgeloader"
	"github.com/megagopher/megagopher/hardware"
	"github.com/megagopher/megagopher/hardware/cpu/z80/regcore"
	"github.com/megagopher/megagopher/hardware/preferences"
	"github.com/megagopher/megagopher/logger"
	"github.com/megagopher/megagopher/modalflag"
	"github.com/megagopher/megagopher/notifications"
	"github.com/megagopher/megagopher/paths"
	"github.com/megagopher/megagopher/prefs"
	"github.com/megagopher/megagopher/savestate"
	"github.com/megagopher/megagopher/statsview"
	"github.com/megagopher/megagopher/version"
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// options that apply to every mode.
type globals struct {
	// preferences file. the empty string means the default file
	config string
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("INFO", "STATE", "MEMVIZ", "VERSION")

	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsOverride := md.AddString("prefs", "", "preferences to override the preferences file")
	config := md.AddString("config", "", "preferences file to use instead of the default")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "* statsview not available in this build")
		}
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	g := globals{config: *config}

	switch md.Mode() {
	case "INFO":
		err = info(md, g, output)
	case "STATE":
		err = state(md, g, output)
	case "MEMVIZ":
		err = memvizMode(md, g, output)
	case "VERSION":
		v, rev, _ := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, rev)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitMode
	}

	return exitOK
}

func (g globals) preferences() (*preferences.Preferences, error) {
	if g.config == "" {
		return preferences.NewPreferences()
	}
	return preferences.NewPreferencesFromFile(g.config)
}

// loadRom opens the image named by the single remaining argument.
func loadRom(md *modalflag.Modes, p *preferences.Preferences) (*cartridgeloader.Rom, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	rom := cartridgeloader.NewRom(md.GetArg(0), cartridgeloader.SysAuto, cartridgeloader.FmtAuto)
	rom.MaxArchiveSize = p.MaxArchiveSize.Get().(int)
	if err := rom.Load(); err != nil {
		return nil, err
	}

	return rom, nil
}

func info(md *modalflag.Modes, g globals, output io.Writer) error {
	md.NewMode()
	rdbPath := md.AddString("rdb", "", "libretro database (overrides preferences)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := g.preferences()
	if err != nil {
		return err
	}

	rom, err := loadRom(md, pref)
	if err != nil {
		return err
	}
	defer rom.Close()

	fmt.Fprintf(output, "cartridge: %s\n", rom)
	if rom.ArchiveEntry != "" {
		fmt.Fprintf(output, "archive entry: %s\n", rom.ArchiveEntry)
	}
	fmt.Fprintf(output, "header: %s\n", rom.Header())
	fmt.Fprintf(output, "name (jp): %s\n", rom.RomNameJP())
	fmt.Fprintf(output, "name (us): %s\n", rom.RomNameUS())
	fmt.Fprintf(output, "crc32: %08x\n", rom.CRC32())
	fmt.Fprintf(output, "sha1: %s\n", rom.Hash)

	var sram cartridgeloader.SRamConfig
	if err := rom.InitSRam(&sram); err != nil {
		return err
	}
	fmt.Fprintf(output, "sram: %s\n", sram)

	var eeprom cartridgeloader.EEPRom
	if err := rom.InitEEPRom(&eeprom); err != nil {
		return err
	}
	fmt.Fprintf(output, "eeprom: %d\n", eeprom.Type)

	if *rdbPath == "" {
		*rdbPath = pref.RomDatabase.Get().(string)
	}
	if *rdbPath != "" {
		db, err := cartridgeloader.LoadDatabase(*rdbPath)
		if err != nil {
			return err
		}
		if id, ok := rom.Identify(db); ok {
			fmt.Fprintf(output, "identity: %s\n", id)
		} else {
			fmt.Fprintln(output, "identity: not in database")
		}
	}

	return nil
}

// noticePrinter writes every notification to an io.Writer.
type noticePrinter struct {
	output io.Writer
}

func (n noticePrinter) Notify(notice notifications.Notice, param int) error {
	_, err := fmt.Fprintf(n.output, "%s (%d)\n", notice, param)
	return err
}

func state(md *modalflag.Modes, g globals, output io.Writer) error {
	md.NewMode()
	list := md.AddBool("list", false, "list the blocks in a ZOMG file")
	in := md.AddString("i", "", "ZOMG file to load before running")
	out := md.AddString("o", "", "ZOMG file to save (default is a unique filename)")
	frames := md.AddInt("frames", 0, "number of frames to run before saving")
	md.AdditionalHelp("The argument is a cartridge, or a ZOMG file when -list is used.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *list {
		if len(md.RemainingArgs()) != 1 {
			return fmt.Errorf("one ZOMG file required for %s mode", md)
		}
		return listState(md.GetArg(0), output)
	}

	pref, err := g.preferences()
	if err != nil {
		return err
	}

	rom, err := loadRom(md, pref)
	if err != nil {
		return err
	}

	s, err := hardware.NewSession(pref, regcore.Factory, noticePrinter{output: output})
	if err != nil {
		rom.Close()
		return err
	}
	defer s.Close()

	if err := s.Insert(rom); err != nil {
		rom.Close()
		return err
	}

	if *in != "" {
		store, err := savestate.OpenZip(*in, savestate.ModeLoad)
		if err != nil {
			return err
		}
		_, err = s.LoadState(store)
		store.Close()
		if err != nil {
			return err
		}
	}

	if err := s.RunForFrameCount(*frames, nil); err != nil {
		return err
	}

	if *out == "" {
		*out = paths.UniqueFilename("state", rom.ShortName(), ".zomg")
	}

	store, err := savestate.OpenZip(*out, savestate.ModeSave)
	if err != nil {
		return err
	}
	if _, err := s.SaveState(store); err != nil {
		store.Close()
		return err
	}
	if err := store.Close(); err != nil {
		return err
	}

	fmt.Fprintf(output, "saved %s\n", *out)

	return nil
}

func listState(filename string, output io.Writer) error {
	store, err := savestate.OpenZip(filename, savestate.ModeLoad)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Fprintf(output, "%s: %s %s\n", filename, store.System, store.Format["Version"])
	if c, ok := store.Format["Creator"]; ok {
		fmt.Fprintf(output, "creator: %s\n", c)
	}
	for _, k := range store.Blocks() {
		fmt.Fprintf(output, "  %s\n", k.Entry())
	}

	return nil
}

func memvizMode(md *modalflag.Modes, g globals, output io.Writer) error {
	md.NewMode()
	out := md.AddString("o", "megagopher.dot", "graphviz output file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := g.preferences()
	if err != nil {
		return err
	}

	rom, err := loadRom(md, pref)
	if err != nil {
		return err
	}

	s, err := hardware.NewInspector(pref, regcore.Factory)
	if err != nil {
		rom.Close()
		return err
	}
	defer s.Close()

	if err := s.Insert(rom); err != nil {
		rom.Close()
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	// the buses are left out. they are mostly RAM
	memviz.Map(f, s.Ports, s.Z80.Control(), s.Rom, &s.SRamConfig, &s.EEPRom)

	fmt.Fprintf(output, "session structure written to %s\n", *out)

	return nil
}
