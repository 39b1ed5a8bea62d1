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

// Package logger is the central log repository for Gopherboy. There is a
// single central log which is accessed through the package level functions.
// Separate logs can be created with NewLogger() but this is only really
// useful for testing.
//
// Entries are tagged, usually with the name of the package or sub-system
// doing the logging. Repeated entries are collapsed into a single entry with
// a repeat count.
//
// Logging can be gated with the Permission interface. Allow and Deny are
// fixed. PermissionFunc ties logging to a switch that can change at any
// time, such as the CPU's instruction trace following a preference.
package logger
