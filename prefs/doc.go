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

// Package prefs facilitates the storage of preferential values in the
// Gopherboy system. Preference values are typed (Bool, Int and String) and
// can be associated with a Disk instance for persistence.
//
// Values can also be specified on the command line with a "key::value;"
// string. Command line values are pushed onto a stack and are consumed by
// the next call to Disk.Load() that mentions the key.
//
// Hooks can be attached to each value. The pre hook is called before a new
// value is stored and can veto the change by returning an error. The post
// hook is called after the value has been stored.
package prefs
