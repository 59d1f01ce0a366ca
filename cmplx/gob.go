// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements gob encoding/decoding of Complex values.

package cmplx

import (
	"encoding/binary"

	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const complexGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. Both components are
// encoded exactly.
func (z Complex) GobEncode() ([]byte, error) {
	buf := make([]byte, 1, 1+2*(1+4+4))
	buf[0] = complexGobVersion
	buf = appendDecimal(buf, z.r())
	buf = appendDecimal(buf, z.i())
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Complex) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Complex{}
		return nil
	}
	if buf[0] != complexGobVersion {
		return errors.Errorf("Complex.GobDecode: encoding version %d not supported", buf[0])
	}
	buf = buf[1:]
	re, buf, err := decodeDecimal(buf)
	if err != nil {
		return err
	}
	im, buf, err := decodeDecimal(buf)
	if err != nil {
		return err
	}
	if len(buf) != 0 {
		return errors.Errorf("Complex.GobDecode: %d trailing bytes", len(buf))
	}
	*z = Complex{re: re, im: im}
	return nil
}

// appendDecimal appends the encoding of x to buf: one byte holding the form
// and sign, the exponent and the length of the coefficient as big endian
// uint32 values, then the coefficient bytes.
func appendDecimal(buf []byte, x *apd.Decimal) []byte {
	b := byte(x.Form&3) << 1
	if x.Negative {
		b |= 1
	}
	mant := x.Coeff.Bytes()
	var hdr [9]byte
	hdr[0] = b
	binary.BigEndian.PutUint32(hdr[1:], uint32(x.Exponent))
	binary.BigEndian.PutUint32(hdr[5:], uint32(len(mant)))
	buf = append(buf, hdr[:]...)
	return append(buf, mant...)
}

func decodeDecimal(buf []byte) (*apd.Decimal, []byte, error) {
	if len(buf) < 9 {
		return nil, nil, errors.New("Complex.GobDecode: buffer too short")
	}
	x := new(apd.Decimal)
	x.Form = apd.Form((buf[0] >> 1) & 3)
	x.Negative = buf[0]&1 != 0
	x.Exponent = int32(binary.BigEndian.Uint32(buf[1:]))
	n := binary.BigEndian.Uint32(buf[5:])
	buf = buf[9:]
	if uint32(len(buf)) < n {
		return nil, nil, errors.New("Complex.GobDecode: buffer too short")
	}
	x.Coeff.SetBytes(buf[:n])
	return x, buf[n:], nil
}
