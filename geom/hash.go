package geom

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

type hashed interface {
	Hash() uint64
}

func hashPoint(p *Point) uint64 {
	buf := make([]byte, 0, 34)
	buf = append(buf, byte(TypePoint), byte(p.dim))
	if p.empty {
		return xxhash.Sum64(append(buf, 'E'))
	}
	buf = appendCoord(buf, p.x)
	buf = appendCoord(buf, p.y)
	if p.dim == 3 {
		buf = appendCoord(buf, p.z)
	}
	return xxhash.Sum64(buf)
}

// hashChildren combines the type tag, dimension and child hashes in order.
func hashChildren[T hashed](t Type, dim int, children []T) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 10)
	buf = append(buf, byte(t), byte(dim))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(children)))
	_, _ = d.Write(buf)
	for _, c := range children {
		buf = binary.LittleEndian.AppendUint64(buf[:0], c.Hash())
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

func appendCoord(buf []byte, v float64) []byte {
	if v == 0 {
		// -0 == 0, keep the hash consistent with Equal.
		v = 0
	}
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
}
