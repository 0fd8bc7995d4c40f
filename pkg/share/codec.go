package share

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math/big"

	"github.com/duskfall-labs/threshold/pkg/field"
	"github.com/pkg/errors"
)

// MarshalBinary implements the canonical wire form suggested in spec.md §6:
//
//	id (1 byte) || L (4-byte big-endian) || for each byte-column: a
//	fixed-width big-endian encoding of y, field.ByteWidth bytes long.
//
// This is the authoritative on-wire form; MarshalJSON below is a
// convenience encoding layered on top of the same data.
func (s Share) MarshalBinary() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "marshal share")
	}

	width := field.ByteWidth
	buf := make([]byte, 0, 1+4+len(s.Points)*width)
	buf = append(buf, s.ID)

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(s.Points)))
	buf = append(buf, lenBuf[:]...)

	for _, y := range s.Points {
		buf = append(buf, paddedBytes(y, width)...)
	}
	return buf, nil
}

// UnmarshalBinary parses the wire form produced by MarshalBinary.
func (s *Share) UnmarshalBinary(data []byte) error {
	const headerLen = 1 + 4
	if len(data) < headerLen {
		return errors.New("share: truncated header")
	}

	id := data[0]
	l := binary.BigEndian.Uint32(data[1:headerLen])

	width := field.ByteWidth
	rest := data[headerLen:]
	if uint64(len(rest)) != uint64(l)*uint64(width) {
		return errors.Errorf("share: expected %d bytes of points, got %d", uint64(l)*uint64(width), len(rest))
	}

	points := make([]*big.Int, l)
	for i := range points {
		chunk := rest[i*width : (i+1)*width]
		points[i] = new(big.Int).SetBytes(chunk)
	}

	*s = Share{ID: id, Points: points}
	return s.Validate()
}

// paddedBytes returns x's big-endian byte representation, left-padded with
// zeros to exactly width bytes.
func paddedBytes(x *big.Int, width int) []byte {
	b := x.Bytes()
	if len(b) == width {
		return b
	}
	padded := make([]byte, width)
	copy(padded[width-len(b):], b)
	return padded
}

// wireShare is the JSON-friendly representation of a Share: big.Int points
// become base64-encoded big-endian byte strings, the way the teacher library
// encodes its wire structures, rather than JSON's decimal-string default.
type wireShare struct {
	ID     uint8    `json:"id"`
	Points []string `json:"points"`
}

// MarshalJSON returns the JSON encoding of the share.
func (s Share) MarshalJSON() ([]byte, error) {
	w := wireShare{ID: s.ID, Points: make([]string, len(s.Points))}
	for i, y := range s.Points {
		w.Points[i] = base64.StdEncoding.EncodeToString(y.Bytes())
	}
	return json.Marshal(w)
}

// UnmarshalJSON fills the share from the JSON encoding produced by
// MarshalJSON.
func (s *Share) UnmarshalJSON(data []byte) error {
	var w wireShare
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.Wrap(err, "unmarshal share")
	}

	points := make([]*big.Int, len(w.Points))
	for i, encoded := range w.Points {
		b, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return errors.Wrapf(err, "decode point %d", i)
		}
		points[i] = new(big.Int).SetBytes(b)
	}

	*s = Share{ID: w.ID, Points: points}
	return nil
}
