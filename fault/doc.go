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

// Package fault is a helper package for the plain Go language error type.
// Fault errors implement the error interface.
//
// Errors are created with the Errorf() function, which takes a formatting
// pattern and placeholder values, just like Errorf() in the fmt package. The
// difference is that the pattern string is retained and acts as the identity
// of the error:
//
//	e := fault.Errorf("atlas: unknown sprite: %s", name)
//
//	if fault.Is(e, "atlas: unknown sprite: %s") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar to Is() but checks whether the pattern occurs
// anywhere in the error chain, not just at the head.
//
// Construction functions in this project return fault errors for conditions
// the caller can report sensibly (a missing resource, a bad atlas). Contract
// violations in per-frame code panic instead; they are programmer errors and
// not recoverable.
package fault
