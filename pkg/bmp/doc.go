// Package bmp writes uncompressed 24-bit Windows bitmaps.
//
// A file is a 14 byte BITMAPFILEHEADER, a 40 byte BITMAPINFOHEADER, and the
// pixel array. Each pixel is stored as a blue, green, red byte triple and each
// scanline is padded with zero bytes to a multiple of four bytes.
//
// Scanlines are stored in exactly the order the caller produces them. Readers
// treat the first stored scanline as the bottom of the image, so a caller that
// wants row 0 at the top must supply rows last to first.
package bmp
