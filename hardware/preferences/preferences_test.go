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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/preferences"
	"github.com/jetsetilly/gopherboy/prefs"
	"github.com/jetsetilly/gopherboy/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.Live.LegacyAck.Load())
	test.ExpectSuccess(t, p.Live.DoubleSpeed.Load())

	test.ExpectSuccess(t, p.LegacyAck.Set(true))
	test.ExpectSuccess(t, p.Live.LegacyAck.Load())
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("hardware.legacyack::true; hardware.trace::true")
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectSuccess(t, p.Live.LegacyAck.Load())
	test.ExpectSuccess(t, p.Live.Trace.Load())
	test.ExpectFailure(t, p.Live.CallStack.Load())
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.ForceDMG.Set(true))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.ForceDMG.Get(), prefs.Value(true))
}

func TestCallStackDepth(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Live.CallStackDepth.Load(), int64(256))

	test.ExpectSuccess(t, p.CallStackDepth.Set("16"))
	test.ExpectEquality(t, p.Live.CallStackDepth.Load(), int64(16))

	test.ExpectFailure(t, p.CallStackDepth.Set(0))
	test.ExpectEquality(t, p.CallStackDepth.Get(), prefs.Value(16))
}

func TestBootROM(t *testing.T) {
	prefs.PushCommandLineStack("hardware.bootrom::dmg_boot.bin")
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, p.BootROM.String(), "dmg_boot.bin")
}
