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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/test"
)

func TestPaths(t *testing.T) {
	// base path is found in the current directory
	chdir(t, t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopherboy", 0700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), ".gopherboy/foo/bar/baz")
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), ".gopherboy/foo/bar")
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), ".gopherboy/baz")
	test.ExpectEquality(t, paths.ResourcePath(), ".gopherboy")
}

func TestConfigDir(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "/tmp/config")
	test.ExpectEquality(t, paths.ResourcePath("preferences"), filepath.Join("/tmp/config", "gopherboy", "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("fault", "tetris", "dot")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "fault_tetris_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".dot"))

	// fault_tetris_YYYYMMDD_HHMMSS.dot
	test.ExpectEquality(t, len(fn), len("fault_tetris_")+15+len(".dot"))

	fn = paths.UniqueFilename("fault", " ", ".dot")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "fault_"))
	test.ExpectFailure(t, strings.HasPrefix(fn, "fault__"))
	test.ExpectFailure(t, strings.Contains(fn, ".."))

	fn = paths.UniqueFilename("fault", "", "")
	test.ExpectFailure(t, strings.Contains(fn, "."))
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
