package vector3d

import (
	"fmt"
	"unicode"
)

// String renders the vector as "x, y, z". No newline is appended,
// leaving line termination to the caller.
func (v Vector3D[T]) String() string {
	return fmt.Sprintf("%v, %v, %v", v.x, v.y, v.z)
}

// Scan implements fmt.Scanner. It reads three values of T in x, y, z
// order, separated by whitespace, a comma, or both, so the output of
// String scans back to an equal vector. On failure the error from the
// underlying reader or parser is returned and v is left unmodified.
func (v *Vector3D[T]) Scan(state fmt.ScanState, verb rune) error {
	var c [3]T
	for i := range c {
		if i > 0 {
			if err := skipComma(state); err != nil {
				return err
			}
		}
		tok, err := state.Token(true, func(r rune) bool {
			return r != ',' && !unicode.IsSpace(r)
		})
		if err != nil {
			return err
		}
		if _, err := fmt.Sscan(string(tok), &c[i]); err != nil {
			return err
		}
	}
	v.x, v.y, v.z = c[0], c[1], c[2]
	return nil
}

// skipComma consumes one comma, if present, and the space before it.
func skipComma(state fmt.ScanState) error {
	state.SkipSpace()
	r, _, err := state.ReadRune()
	if err != nil {
		return err
	}
	if r != ',' {
		return state.UnreadRune()
	}
	return nil
}
