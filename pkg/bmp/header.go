package bmp

import (
	"bytes"
	"encoding/binary"
)

const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeaderSize     = FileHeaderSize + InfoHeaderSize

	BytesPerPixel = 3

	// PixelsPerMeter is roughly 72 DPI.
	PixelsPerMeter = 2835
)

// fileHeader is BITMAPFILEHEADER.
type fileHeader struct {
	Type      [2]byte
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32
}

// infoHeader is BITMAPINFOHEADER.
type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// Padding is the number of zero bytes that end each scanline.
func Padding(width int) int {
	return (4 - width*BytesPerPixel%4) % 4
}

// Stride is the length of a padded scanline in bytes.
func Stride(width int) int {
	return width*BytesPerPixel + Padding(width)
}

// BitmapSize is the length of the pixel array in bytes.
func BitmapSize(width, height int) int {
	return height * Stride(width)
}

// FileSize is the length of the whole file in bytes.
func FileSize(width, height int) int {
	return HeaderSize + BitmapSize(width, height)
}

// Header returns the file and info headers for a width x height image.
func Header(width, height int) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize))

	fh := fileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(FileSize(width, height)),
		OffBits: HeaderSize,
	}
	ih := infoHeader{
		Size:        InfoHeaderSize,
		Width:       int32(width),
		Height:      int32(height),
		Planes:      1,
		BitCount:    8 * BytesPerPixel,
		SizeImage:   uint32(BitmapSize(width, height)),
		XPixelsPerM: PixelsPerMeter,
		YPixelsPerM: PixelsPerMeter,
	}

	// Writes to a bytes.Buffer of fixed-size values cannot fail.
	_ = binary.Write(buf, binary.LittleEndian, fh)
	_ = binary.Write(buf, binary.LittleEndian, ih)

	return buf.Bytes()
}
