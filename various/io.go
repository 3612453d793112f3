package various

import (
	"encoding/binary"
	"fmt"
	"io"
)

var byteorder = binary.LittleEndian

// maxFloatSliceLen caps the length prefix accepted by ReadFloatSlice so
// a corrupt or hostile stream cannot trigger an arbitrarily large
// allocation before the reads start failing.
const maxFloatSliceLen = 1 << 24

// WriteFloatSlice writes the length of the slice followed by its values.
func WriteFloatSlice(w io.Writer, s []float64) error {
	if err := binary.Write(w, byteorder, int64(len(s))); err != nil {
		return err
	}
	for _, v := range s {
		if err := binary.Write(w, byteorder, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadFloatSlice reads a slice written by WriteFloatSlice.
func ReadFloatSlice(r io.Reader) ([]float64, error) {
	var num int64
	if err := binary.Read(r, byteorder, &num); err != nil {
		return nil, err
	}
	if num < 0 || num > maxFloatSliceLen {
		return nil, fmt.Errorf("invalid float slice length %d", num)
	}
	s := make([]float64, num)
	for i := range s {
		if err := binary.Read(r, byteorder, &s[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}
