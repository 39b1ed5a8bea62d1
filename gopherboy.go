// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/digest"
	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/input"
	"github.com/jetsetilly/gopherboy/hardware/preferences"
	"github.com/jetsetilly/gopherboy/input/keyboard"
	"github.com/jetsetilly/gopherboy/input/script"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/modalflag"
	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/performance"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/statsview"
	"github.com/jetsetilly/gopherboy/version"
)

func main() {
	// ctrl-c ends the RUN mode gracefully. the channel is checked
	// periodically by the run loop
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	os.Exit(launch(os.Args[1:], os.Stdout, intChan))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program.
func launch(args []string, output io.Writer, intChan chan os.Signal) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "DISASM")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, intChan)

	case "PERFORMANCE":
		err = perform(md)

	case "DISASM":
		err = disasm(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// the cartridge and optional boot image named on the command line
func loadFiles(md *modalflag.Modes, bootFile string) (cartridgeloader.Loader, []uint8, error) {
	var cartload cartridgeloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		return cartload, nil, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return cartload, nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	cartload = cartridgeloader.NewLoader(md.GetArg(0))
	if err := cartload.Load(); err != nil {
		return cartload, nil, err
	}
	if !cartload.IsCartridgeFile() {
		logger.Logf(logger.Allow, "gopherboy", "%s: unrecognised file extension", cartload.ShortName())
	}

	if bootFile == "" {
		return cartload, nil, nil
	}

	bootload := cartridgeloader.NewLoader(bootFile)
	if err := bootload.Load(); err != nil {
		return cartload, nil, err
	}

	return cartload, bootload.Data, nil
}

// create a console using the preferences file and any preferences specified
// on the command line. the hardware.bootrom preference is used if no boot
// image has been loaded
func newConsole(cartload cartridgeloader.Loader, boot []uint8, cmdlinePrefs string) (*hardware.Console, error) {
	prefs.PushCommandLineStack(cmdlinePrefs)
	p, err := preferences.NewPreferences(paths.ResourcePath("preferences"))
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "gopherboy", "unused preferences: %s", unused)
	}
	if err != nil {
		return nil, err
	}

	if boot == nil && p.BootROM.String() != "" {
		bootload := cartridgeloader.NewLoader(p.BootROM.String())
		if err := bootload.Load(); err != nil {
			return nil, err
		}
		boot = bootload.Data
	}

	return hardware.NewConsole(p, cartload.Data, boot)
}

func run(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()

	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")
	bootFile := md.AddString("boot", "", "boot image to run before the cartridge")
	scriptFile := md.AddString("script", "", "Lua script to drive the joypad")
	useKeyboard := md.AddBool("keyboard", false, "use the terminal keyboard for joypad input")
	ticks := md.AddInt("ticks", 0, "stop after the number of machine cycles (0 to run until interrupted)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	viz := md.AddBool("memviz", false, "write a graphviz description of any fault")
	log := md.AddBool("log", false, "echo log to stdout")
	showDigest := md.AddBool("digest", false, "print a digest of the video state when the run ends")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "! stats server not available in this build")
		}
	}

	if *scriptFile != "" && *useKeyboard {
		return fmt.Errorf("-script and -keyboard can not be used together")
	}

	cartload, boot, err := loadFiles(md, *bootFile)
	if err != nil {
		return err
	}

	con, err := newConsole(cartload, boot, *cmdlinePrefs)
	if err != nil {
		return err
	}

	var dev input.Device
	var quit <-chan struct{}

	if *scriptFile != "" {
		scr, err := script.LoadScript(*scriptFile, con.Mem)
		if err != nil {
			return err
		}
		defer scr.Close()
		dev = scr
	}

	if *useKeyboard {
		kb, err := keyboard.NewKeyboard(keyboard.DefaultHold)
		if err != nil {
			return err
		}
		defer kb.Close()
		dev = kb
		quit = kb.Quit()
	}

	if dev != nil {
		con.Plug(dev)
	}

	dig := digest.NewVideo(con.Mem)
	if *showDigest {
		con.Display.AddRenderer(dig)
	}

	var brake int
	err = con.Run(func() (bool, error) {
		if *ticks > 0 && con.Clock >= uint64(*ticks) {
			return false, nil
		}

		brake++
		if brake < hardware.PerformanceBrake {
			return true, nil
		}
		brake = 0

		select {
		case <-intChan:
			return false, nil
		case <-quit:
			return false, nil
		default:
		}

		return true, nil
	})

	var fault *hardware.Fault
	if errors.As(err, &fault) {
		fault.Report(md.Output)
		if *viz {
			if vizErr := visualise(fault, cartload); vizErr != nil {
				logger.Log(logger.Allow, "gopherboy", vizErr)
			}
		}
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d ticks, %d frames\n", con.Clock, con.Display.Frame())
	fmt.Fprintln(md.Output, con.CPU)
	if *showDigest {
		fmt.Fprintln(md.Output, dig)
	}

	return nil
}

func visualise(fault *hardware.Fault, cartload cartridgeloader.Loader) error {
	fn := paths.UniqueFilename("fault", cartload.ShortName(), "dot")
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	fault.Visualise(f)
	logger.Logf(logger.Allow, "gopherboy", "fault visualisation written to %s", fn)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")
	bootFile := md.AddString("boot", "", "boot image to run before the cartridge")
	duration := md.AddDuration("duration", 5*time.Second, "run duration (note: there is a 1s overhead)")
	profile := md.AddString("profile", "NONE", "produce profiling reports: CPU, MEM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	cartload, boot, err := loadFiles(md, *bootFile)
	if err != nil {
		return err
	}

	con, err := newConsole(cartload, boot, *cmdlinePrefs)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, con, *duration)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	bank := md.AddInt("bank", -1, "show disassembly for a specific bank")
	grep := md.AddString("grep", "", "only show lines containing the string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, _, err := loadFiles(md, "")
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cartload.Data)
	if err != nil {
		return err
	}

	if *grep != "" {
		dsm.Grep(md.Output, disassembly.GrepAll, *grep, false)
		return nil
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
	}

	if *bank < 0 {
		return dsm.Write(md.Output, attr)
	}
	return dsm.WriteBank(md.Output, attr, *bank)
}
