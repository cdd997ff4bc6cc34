// This file is part of Megagopher.
//
// Megagopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Megagopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Megagopher.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. Packages export the patterns they use so that callers can test
// for expected conditions without string comparisons:
//
//	const NotOpened = "cartridgeloader: rom not opened"
//
//	err := curated.Errorf(NotOpened)
//	if curated.Is(err, NotOpened) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("session: %v", err)
//	if curated.Has(f, NotOpened) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'expected' and false if it is 'unexpected'.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. A package can wrap an error with its own prefix
// without worrying whether the wrapped error already carries that prefix:
//
//	"z80: z80: engine not initialised"
//
// is printed as
//
//	"z80: engine not initialised"
//
// Curated errors also implement Unwrap() so that any non-curated error passed
// as a value can be found with errors.Is() and errors.As() from the standard
// library.
package curated
