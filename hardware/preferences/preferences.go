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

package preferences

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/gopherboy/hardware/cpu/callstack"
	"github.com/jetsetilly/gopherboy/prefs"
)

// Live copies of preference values. Read by the emulation on every cycle and
// updated automatically when the corresponding preference changes.
type Live struct {
	Trace       atomic.Bool
	CallStack   atomic.Bool
	LegacyAck   atomic.Bool
	DoubleSpeed atomic.Bool

	CallStackDepth atomic.Int64
}

// Preferences for the hardware emulation.
type Preferences struct {
	dsk *prefs.Disk

	// prefer live values in performance critical code
	Live Live

	// log every instruction executed by the CPU
	Trace prefs.Bool

	// track CALL and RET instructions
	CallStack prefs.Bool

	// the number of unreturned calls before the call stack tracker gives up
	CallStackDepth prefs.Int

	// clear the interrupt enable bit as well as the request bit when an
	// interrupt is serviced. not how the hardware behaves but some software
	// may have been written against emulators that do this
	LegacyAck prefs.Bool

	// run cartridges in monochrome mode even if they support colour
	ForceDMG prefs.Bool

	// allow the STOP instruction to switch to double speed mode
	DoubleSpeed prefs.Bool

	// boot image to use when one is not specified on the command line. an
	// empty value means the console starts in the post-boot state
	BootROM prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means that the preferences are never saved
// to disk.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.Trace.SetHookPost(func(v prefs.Value) error {
		p.Live.Trace.Store(v.(bool))
		return nil
	})
	p.CallStack.SetHookPost(func(v prefs.Value) error {
		p.Live.CallStack.Store(v.(bool))
		return nil
	})
	p.CallStackDepth.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("preferences: call stack depth must be at least one")
		}
		return nil
	})
	p.CallStackDepth.SetHookPost(func(v prefs.Value) error {
		p.Live.CallStackDepth.Store(int64(v.(int)))
		return nil
	})
	p.LegacyAck.SetHookPost(func(v prefs.Value) error {
		p.Live.LegacyAck.Store(v.(bool))
		return nil
	})
	p.DoubleSpeed.SetHookPost(func(v prefs.Value) error {
		p.Live.DoubleSpeed.Store(v.(bool))
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	for _, e := range []struct {
		key string
		v   prefs.Pref
	}{
		{"hardware.trace", &p.Trace},
		{"hardware.callstack", &p.CallStack},
		{"hardware.callstack.depth", &p.CallStackDepth},
		{"hardware.legacyack", &p.LegacyAck},
		{"hardware.forcedmg", &p.ForceDMG},
		{"hardware.doublespeed.allowed", &p.DoubleSpeed},
		{"hardware.bootrom", &p.BootROM},
	} {
		if err := p.dsk.Add(e.key, e.v); err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	p.SetDefaults()

	err = p.dsk.Load(false)
	if err != nil && !errors.Is(err, prefs.NoPrefsFile) {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Trace.Set(false)
	p.CallStack.Set(false)
	p.CallStackDepth.Set(callstack.DefaultMaxDepth)
	p.LegacyAck.Set(false)
	p.ForceDMG.Set(false)
	p.DoubleSpeed.Set(true)
	p.BootROM.Set("")
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
