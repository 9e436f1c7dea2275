package stark

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// hashBitsPerInput is the number of bits of each hash input consumed by the
// Pedersen hash; one constant point is needed per bit
const hashBitsPerInput = 252

//go:embed constant_points.json
var constantPointsJSON []byte

// PointTable is the ordered constant point dataset used by the Pedersen hash.
// Entry 0 is the shift point, entry 1 the generator, and entry 2 + i*252 + j
// is added for bit j of input i.
type PointTable struct {
	points []GroupElementAffine
}

var (
	defaultTable     *PointTable
	defaultTableErr  error
	defaultTableOnce sync.Once
)

// DefaultPointTable returns the embedded table sized for two-input hashes.
// It is decoded once and shared; callers must not modify it.
func DefaultPointTable() (*PointTable, error) {
	defaultTableOnce.Do(func() {
		defaultTable, defaultTableErr = LoadPointTable(bytes.NewReader(constantPointsJSON))
	})
	return defaultTable, defaultTableErr
}

// LoadPointTable decodes a JSON array of [x, y] hex pairs and checks that
// every point is on the curve, that entry 1 is the generator and that the
// table holds whole 252-point blocks after the two leading entries.
func LoadPointTable(r io.Reader) (*PointTable, error) {
	var raw [][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, makeError(ErrInvalidPointTable, "decode: "+err.Error())
	}
	if len(raw) < 2+hashBitsPerInput || (len(raw)-2)%hashBitsPerInput != 0 {
		str := fmt.Sprintf("table has %d points, want 2 + k*%d",
			len(raw), hashBitsPerInput)
		return nil, makeError(ErrInvalidPointTable, str)
	}

	t := &PointTable{points: make([]GroupElementAffine, len(raw))}
	for i, pair := range raw {
		if len(pair) != 2 {
			str := fmt.Sprintf("point %d has %d coordinates", i, len(pair))
			return nil, makeError(ErrInvalidPointTable, str)
		}
		var x, y FieldElement
		xv, okx := parseHexInt(pair[0])
		yv, oky := parseHexInt(pair[1])
		if !okx || !oky || x.setBig(xv) != nil || y.setBig(yv) != nil {
			str := fmt.Sprintf("point %d has invalid coordinates", i)
			return nil, makeError(ErrInvalidPointTable, str)
		}
		t.points[i].setXY(&x, &y)
		if !t.points[i].isValid() {
			str := fmt.Sprintf("point %d is not on the curve", i)
			return nil, makeError(ErrInvalidPointTable, str)
		}
	}
	if !t.points[1].equal(&Generator) {
		return nil, makeError(ErrInvalidPointTable, "point 1 is not the generator")
	}
	return t, nil
}

// Len returns the number of points in the table
func (t *PointTable) Len() int {
	return len(t.points)
}

// MaxInputs returns the largest number of field elements a single hash over
// this table may take
func (t *PointTable) MaxInputs() int {
	return (len(t.points) - 2) / hashBitsPerInput
}

// ShiftPoint returns the hash accumulator's starting point
func (t *PointTable) ShiftPoint() (x, y string) {
	return t.Point(0)
}

// Point returns the coordinates of entry i as 0x-prefixed hex
func (t *PointTable) Point(i int) (x, y string) {
	p := &t.points[i]
	return "0x" + bigToHex(p.x.toBig()), "0x" + bigToHex(p.y.toBig())
}
