package remath

import (
	"encoding/binary"
	"io"

	"github.com/EntertainmentRoyal/ReMath/various"
)

var byteorder = binary.LittleEndian

// WriteTo writes the field parameters to the given writer. From this,
// we can reconstruct the field.
func (f *Field) WriteTo(w io.Writer) error {
	if err := binary.Write(w, byteorder, f.Seed); err != nil {
		return err
	}
	if err := binary.Write(w, byteorder, int64(f.Algorithm)); err != nil {
		return err
	}
	if err := binary.Write(w, byteorder, int64(f.Fractal)); err != nil {
		return err
	}
	if err := binary.Write(w, byteorder, int64(f.Octaves)); err != nil {
		return err
	}
	if err := binary.Write(w, byteorder, f.Lacunarity); err != nil {
		return err
	}
	if err := binary.Write(w, byteorder, f.Gain); err != nil {
		return err
	}
	if err := binary.Write(w, byteorder, f.RidgeOffset); err != nil {
		return err
	}
	if err := binary.Write(w, byteorder, f.Frequency); err != nil {
		return err
	}

	// Write the amplitudes. Strictly redundant with octaves and gain,
	// but it keeps snapshots self-describing for external tooling.
	return various.WriteFloatSlice(w, f.Amplitudes)
}

// ReadField reads field parameters written by WriteTo and reconstructs
// the field.
func ReadField(r io.Reader) (*Field, error) {
	var seed, algo, fractal, octaves int64
	cfg := &FieldConfig{}

	if err := binary.Read(r, byteorder, &seed); err != nil {
		return nil, err
	}
	if err := binary.Read(r, byteorder, &algo); err != nil {
		return nil, err
	}
	if err := binary.Read(r, byteorder, &fractal); err != nil {
		return nil, err
	}
	if err := binary.Read(r, byteorder, &octaves); err != nil {
		return nil, err
	}
	if err := binary.Read(r, byteorder, &cfg.Lacunarity); err != nil {
		return nil, err
	}
	if err := binary.Read(r, byteorder, &cfg.Gain); err != nil {
		return nil, err
	}
	if err := binary.Read(r, byteorder, &cfg.RidgeOffset); err != nil {
		return nil, err
	}
	if err := binary.Read(r, byteorder, &cfg.Frequency); err != nil {
		return nil, err
	}
	cfg.Algorithm = Algorithm(algo)
	cfg.Fractal = FractalMode(fractal)
	cfg.Octaves = int(octaves)

	// Read (and discard) the amplitudes; NewField rebuilds them from
	// octaves and gain.
	if _, err := various.ReadFloatSlice(r); err != nil {
		return nil, err
	}

	return NewField(seed, cfg)
}
