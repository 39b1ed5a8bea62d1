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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileExtensions is the list of file extensions that are recognised as
// cartridge images.
var FileExtensions = [...]string{".GB", ".GBC", ".CGB", ".SGB", ".BIN"}

// Loader is used to specify the data to be attached to the emulated console.
type Loader struct {
	// filename of the data to load
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the file
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the filename.
func (cl Loader) ShortName() string {
	return strings.TrimSuffix(filepath.Base(cl.Filename), filepath.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// IsCartridgeFile returns true if the filename extension is one of the
// recognised cartridge extensions.
func (cl Loader) IsCartridgeFile() bool {
	ext := strings.ToUpper(filepath.Ext(cl.Filename))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load the file specified by the Filename field.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	f, err := os.Open(cl.Filename)
	if err != nil {
		return errors.Wrapf(err, "cartridgeloader")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return errors.Wrapf(err, "cartridgeloader: %s", cl.ShortName())
	}
	if len(data) == 0 {
		return errors.Errorf("cartridgeloader: %s: empty file", cl.ShortName())
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return errors.Errorf("cartridgeloader: %s: unexpected hash value", cl.ShortName())
	}

	cl.Data = data
	cl.Hash = hash

	return nil
}
