package formats

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Placeholder texture geometry: a 4x4 solid white RGBA8888 image, one
// frame, one mip level, no low-res thumbnail. Every generated material
// tints this same texture.
const (
	vtfWidth  = 4
	vtfHeight = 4

	vtfFlagNoMip = 0x00000100
	vtfFlagNoLOD = 0x00000200

	vtfFormatRGBA8888 = 0
	vtfFormatNone     = 0xFFFFFFFF

	// 7.2 header size on disk, including trailing alignment padding.
	vtfHeaderSize = 80
)

// WriteVTF writes the fixed placeholder texture as a version 7.2 VTF.
// The payload is fully deterministic: generating it twice yields
// identical bytes.
func WriteVTF(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("VTF\x00")

	le := binary.LittleEndian
	write := func(v interface{}) {
		binary.Write(&buf, le, v)
	}
	write([2]uint32{7, 2})
	write(uint32(vtfHeaderSize))
	write(uint16(vtfWidth))
	write(uint16(vtfHeight))
	write(uint32(vtfFlagNoMip | vtfFlagNoLOD))
	write(uint16(1)) // frames
	write(uint16(0)) // first frame
	write([4]byte{})
	write([3]float32{1, 1, 1}) // reflectivity of a white surface
	write([4]byte{})
	write(float32(1)) // bumpmap scale
	write(uint32(vtfFormatRGBA8888))
	write(uint8(1)) // mipmap count
	write(uint32(vtfFormatNone))
	write(uint8(0)) // low-res width
	write(uint8(0)) // low-res height
	write(uint16(1)) // depth

	// Pad the header out to its declared size.
	buf.Write(make([]byte, vtfHeaderSize-buf.Len()))

	// High-res image data: solid white.
	buf.Write(bytes.Repeat([]byte{0xFF}, vtfWidth*vtfHeight*4))

	_, err := w.Write(buf.Bytes())
	return err
}
