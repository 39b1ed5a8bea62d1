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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/test"
)

func writeCartridge(t *testing.T, program ...uint8) string {
	t.Helper()
	data := make([]uint8, 0x8000)
	copy(data[0x100:], program)
	fn := filepath.Join(t.TempDir(), "test.gb")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0644))
	return fn
}

func TestDisasmMode(t *testing.T) {
	fn := writeCartridge(t, 0x01, 0x34, 0x12)

	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"DISASM", "-bank", "0", fn}, &out, nil), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "LD    BC,$1234"))
}

func TestRunMode(t *testing.T) {
	// XDG_CONFIG_HOME keeps the preferences file away from the user's
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	// JR -2. three cycles per instruction
	fn := writeCartridge(t, 0x18, 0xfe)

	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"RUN", "-ticks", "999", fn}, &out, nil), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "999 ticks"))
}

func TestRunModeFault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	fn := writeCartridge(t, 0xd3)

	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"RUN", fn}, &out, nil), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "unknown opcode"))
}

func TestBootROMPreference(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	fn := writeCartridge(t, 0x18, 0xfe)
	missing := filepath.Join(t.TempDir(), "missing.bin")

	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"RUN", "-ticks", "3", "-prefs", "hardware.bootrom::" + missing, fn}, &out, nil), 20)
}

func TestVersionFlag(t *testing.T) {
	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"-version"}, &out, nil), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "Gopherboy"))
}

func TestRunModeDigest(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	// LD A,$80 ; LDH ($40),A ; JR -2
	fn := writeCartridge(t, 0x3e, 0x80, 0xe0, 0x40, 0x18, 0xfe)

	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"RUN", "-digest", "-ticks", "40000", fn}, &out, nil), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "\nframe "))
}

func TestMissingCartridge(t *testing.T) {
	var out bytes.Buffer
	test.ExpectEquality(t, launch([]string{"DISASM"}, &out, nil), 20)
	test.ExpectEquality(t, launch([]string{"RUN", "-nosuchflag"}, &out, nil), 20)
}

// chdir changes the working directory for the duration of the test. it is
// equivalent to testing.T.Chdir, which is not available in all supported
// toolchains
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}
