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

package test

import (
	"testing"
)

// Equate is used to test equality between one value and another. Generally,
// both values must be of the same type but if a is of type float32 or uint64,
// b can also be an int. The reason for this is that a literal number value is
// of type int and it is convenient to write something like this, without
// having to cast the expected value:
//
//	var v float32
//	v = someFunction()
//	test.Equate(t, v, 10)
//
// This is by no means a comprehensive comparison function. It is however,
// good enough for the types used in this project.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	default:
		t.Fatalf("unhandled type for Equate() function (%T)", v)

	case nil:
		if expectedValue != nil {
			t.Errorf("equation of type %T failed (%v  - wanted nil)", v, v)
		}

	case int:
		switch ev := expectedValue.(type) {
		case int:
			if v != ev {
				t.Errorf("equation of type %T failed (%d  - wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case uint64:
		switch ev := expectedValue.(type) {
		case int:
			if v != uint64(ev) {
				t.Errorf("equation of type %T failed (%d  - wanted %d)", v, v, ev)
			}
		case uint64:
			if v != ev {
				t.Errorf("equation of type %T failed (%d  - wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not compatible (%T and %T)", v, ev)
		}

	case float32:
		switch ev := expectedValue.(type) {
		case int:
			if v != float32(ev) {
				t.Errorf("equation of type %T failed (%f  - wanted %d)", v, v, ev)
			}
		case float32:
			if v != ev {
				t.Errorf("equation of type %T failed (%f  - wanted %f)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not compatible (%T and %T)", v, ev)
		}

	case string:
		switch ev := expectedValue.(type) {
		case string:
			if v != ev {
				t.Errorf("equation of type %T failed (%s  - wanted %s)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case bool:
		switch ev := expectedValue.(type) {
		case bool:
			if v != ev {
				t.Errorf("equation of type %T failed (%v  - wanted %v)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}
	}
}

// ApproxEquate tests whether a float32 value is within epsilon of the
// expected value. Most geometry and audio values in this project accumulate
// floating point error so exact equality is rarely the right test.
func ApproxEquate(t *testing.T, value float32, expectedValue float32, epsilon float32) {
	t.Helper()

	d := value - expectedValue
	if d < 0 {
		d = -d
	}
	if d > epsilon {
		t.Errorf("approximate equation failed (%f  - wanted %f ± %f)", value, expectedValue, epsilon)
	}
}
