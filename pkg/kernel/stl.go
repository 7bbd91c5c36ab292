package kernel

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// stlHeaderSize is the fixed binary STL header length.
const stlHeaderSize = 80

// WriteSTL writes the mesh to w in binary STL format: an 80-byte header,
// a uint32 triangle count, then per triangle a normal, three vertices and
// a zero attribute word, all little-endian.
func (m *Mesh) WriteSTL(w io.Writer) error {
	var header [stlHeaderSize]byte
	copy(header[:], "volgrid union-of-spheres surface")
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing STL header: %w", err)
	}

	triCount := m.TriangleCount()
	if err := binary.Write(w, binary.LittleEndian, uint32(triCount)); err != nil {
		return fmt.Errorf("writing STL triangle count: %w", err)
	}

	// 12 floats (normal + 3 vertices) plus the attribute word.
	var rec [12]float32
	for t := 0; t < triCount; t++ {
		i0, i1, i2 := m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]

		// Per-face normal from the first vertex of the triangle.
		copy(rec[0:3], m.Normals[3*i0:3*i0+3])
		copy(rec[3:6], m.Vertices[3*i0:3*i0+3])
		copy(rec[6:9], m.Vertices[3*i1:3*i1+3])
		copy(rec[9:12], m.Vertices[3*i2:3*i2+3])

		if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("writing STL triangle %d: %w", t, err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("writing STL attribute %d: %w", t, err)
		}
	}
	return nil
}

// SaveSTL writes the mesh to a binary STL file at path.
func (m *Mesh) SaveSTL(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating STL file: %w", err)
	}
	defer f.Close()

	if err := m.WriteSTL(f); err != nil {
		return err
	}
	return f.Close()
}
