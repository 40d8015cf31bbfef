// This file is part of Lantern.
//
// Lantern is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Lantern is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Lantern.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"strings"
	"testing"

	"github.com/lanternengine/lantern/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(100)

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "")

	l.log("test", "this is a test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test\n")

	// repeated entries fold rather than accumulate
	l.log("test", "this is a test")
	l.log("test", "this is a test")
	b.Reset()
	l.write(b)
	test.Equate(t, b.String(), "test: this is a test (repeat x3)\n")

	l.log("test2", "this is another test")
	b.Reset()
	l.tail(b, 1)
	test.Equate(t, b.String(), "test2: this is another test\n")

	b.Reset()
	l.tail(b, 2)
	test.Equate(t, b.String(), "test: this is a test (repeat x3)\ntest2: this is another test\n")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)
	l.log("a", "1")
	l.log("b", "2")
	l.log("c", "3")

	b := &strings.Builder{}
	l.write(b)
	test.Equate(t, b.String(), "b: 2\nc: 3\n")
}
