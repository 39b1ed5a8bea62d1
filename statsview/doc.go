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

// Package statsview provides a live view of the Go runtime statistics while
// the emulator is running. The view is served as a web page.
//
// The package is only functional when the program has been built with the
// statsview build tag. Otherwise Available() returns false and Launch() does
// nothing.
package statsview

// Address of the statsview server.
const Address = "localhost:12600"
