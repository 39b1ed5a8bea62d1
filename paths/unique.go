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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// the layout used for the timestamp part of a unique filename
const timestampLayout = "20060102_150405"

// UniqueFilename returns a filename made from the kind of file, the short
// name of the cartridge and the current time, with the extension appended.
// Fault dumps are named this way:
//
//	fault_tetris_20261019_142501.dot
//
// An empty cartridge name is left out. The extension can be empty. The
// existence of the file is not checked.
func UniqueFilename(kind string, shortCartName string, ext string) string {
	parts := []string{kind}
	if c := strings.TrimSpace(shortCartName); c != "" {
		parts = append(parts, c)
	}
	parts = append(parts, time.Now().Format(timestampLayout))

	fn := strings.Join(parts, "_")
	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(ext, "."))
	}
	return fn
}
