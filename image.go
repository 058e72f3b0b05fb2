// seehuhn.de/go/png - a library for writing PNG files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package png

import (
	"image"
	"image/color"
	"io"

	xdraw "golang.org/x/image/draw"
)

// EncodeImage writes img as a PNG file to w, using the default options.
// See [Encoder.EncodeImage] for details.
func EncodeImage(w io.Writer, img image.Image, f ColorFormat) error {
	return defaultEncoder.EncodeImage(w, img, f)
}

// EncodeImage writes img as a PNG file to w.  The image is first converted
// to pixel format f, using [PixelsFromImage].
func (e *Encoder) EncodeImage(w io.Writer, img image.Image, f ColorFormat) error {
	pixels, err := PixelsFromImage(img, f)
	if err != nil {
		return err
	}
	b := img.Bounds()
	return e.Write(w, pixels, b.Dx(), b.Dy(), f)
}

// PixelsFromImage converts img to packed pixels in format f.
//
// Colors are taken without alpha-premultiplication.  For formats without
// an alpha channel the alpha values are discarded.  Gray levels are
// computed using the luminance weights of the [color.Gray16Model].
func PixelsFromImage(img image.Image, f ColorFormat) ([]uint32, error) {
	info, ok := formats[f]
	if !ok {
		return nil, invalidInput("unknown pixel format %d", int(f))
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, invalidInput("empty image")
	}
	n := b.Dx() * b.Dy()
	res := make([]uint32, 0, n*info.intsPerPixel)

	switch f {
	case Grayscale:
		if gray, ok := img.(*image.Gray16); ok {
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					res = append(res, uint32(gray.Gray16At(x, y).Y))
				}
			}
			break
		}
		nrgba := toNRGBA64(img)
		for i := 0; i < len(nrgba.Pix); i += 8 {
			p := nrgba.Pix[i : i+8]
			res = append(res, uint32(gray16(p)))
		}

	case RGB16, ARGB16, RGBA16, GrayAlpha16:
		nrgba := toNRGBA64(img)
		for i := 0; i < len(nrgba.Pix); i += 8 {
			p := nrgba.Pix[i : i+8]
			r := uint32(p[0])<<8 | uint32(p[1])
			g := uint32(p[2])<<8 | uint32(p[3])
			bl := uint32(p[4])<<8 | uint32(p[5])
			a := uint32(p[6])<<8 | uint32(p[7])
			switch f {
			case RGB16:
				res = append(res, r, g, bl)
			case ARGB16:
				res = append(res, a, r, g, bl)
			case RGBA16:
				res = append(res, r, g, bl, a)
			case GrayAlpha16:
				res = append(res, uint32(gray16(p)), a)
			}
		}

	default:
		nrgba := toNRGBA(img)
		for i := 0; i < len(nrgba.Pix); i += 4 {
			r := uint32(nrgba.Pix[i])
			g := uint32(nrgba.Pix[i+1])
			bl := uint32(nrgba.Pix[i+2])
			a := uint32(nrgba.Pix[i+3])
			switch f {
			case RGB888:
				res = append(res, r<<16|g<<8|bl)
			case ARGB8888:
				res = append(res, a<<24|r<<16|g<<8|bl)
			case RGBA8888:
				res = append(res, r<<24|g<<16|bl<<8|a)
			case GrayAlpha88:
				y := color.GrayModel.Convert(color.RGBA{
					R: uint8(r), G: uint8(g), B: uint8(bl), A: 0xFF,
				}).(color.Gray).Y
				res = append(res, uint32(y)<<8|a)
			}
		}
	}

	return res, nil
}

// gray16 returns the gray level of the NRGBA64 pixel p, ignoring its alpha
// value.
func gray16(p []byte) uint16 {
	c := color.RGBA64{
		R: uint16(p[0])<<8 | uint16(p[1]),
		G: uint16(p[2])<<8 | uint16(p[3]),
		B: uint16(p[4])<<8 | uint16(p[5]),
		A: 0xFFFF,
	}
	return color.Gray16Model.Convert(c).(color.Gray16).Y
}

// toNRGBA returns a copy of img with origin (0, 0).  Images which are
// already non-premultiplied are copied directly, so that the color of
// transparent pixels is preserved.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		for y := range b.Dy() {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], src.Pix[i:i+4*b.Dx()])
		}
		return dst
	}
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// toNRGBA64 is like toNRGBA, but with 16 bits per sample.
func toNRGBA64(img image.Image) *image.NRGBA64 {
	b := img.Bounds()
	dst := image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src := img.(type) {
	case *image.NRGBA64:
		for y := range b.Dy() {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], src.Pix[i:i+8*b.Dx()])
		}
	case *image.NRGBA:
		for y := range b.Dy() {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			row := dst.Pix[y*dst.Stride:]
			for k, v := range src.Pix[i : i+4*b.Dx()] {
				row[2*k] = v
				row[2*k+1] = v
			}
		}
	default:
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	}
	return dst
}
