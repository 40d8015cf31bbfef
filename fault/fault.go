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

package fault

import (
	"fmt"
	"strings"
)

// fault is an implementation of the go language error interface.
type fault struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new fault error. The first argument is named "pattern"
// rather than "format" because the unformatted string doubles as the identity
// of the error for the purposes of the Is() and Has() functions.
//
// Formatting does not happen here. The pattern and values are stored and the
// message is built on demand by the Error() function.
func Errorf(pattern string, values ...interface{}) error {
	return fault{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the formatted error message. Adjacent duplicate message parts
// in the error chain are folded into one.
//
// Implements the go language error interface.
func (er fault) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// IsAny checks if the error was created by this package.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(fault)
	return ok
}

// Is checks if the error was created by this package with the specified
// pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(fault); ok {
		return er.pattern == pattern
	}

	return false
}

// Has checks if the specified pattern appears anywhere in the error chain.
func Has(err error, pattern string) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, v := range err.(fault).values {
		if e, ok := v.(fault); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
