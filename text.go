package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontTitle   font.Face
	fontRegular font.Face
	fontSmall   font.Face
)

// initFonts builds the UI faces from the bundled Go Regular font.
func initFonts() error {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	faces := []struct {
		dst  *font.Face
		size float64
	}{
		{&fontTitle, 26},
		{&fontRegular, 16},
		{&fontSmall, 13},
	}
	for _, f := range faces {
		*f.dst, err = opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("failed to build %gpt face: %w", f.size, err)
		}
	}
	return nil
}

// drawText draws s with its baseline at (x, y).
func drawText(dst *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(dst, s, face, x, y, clr)
}

// drawTextCentered draws s horizontally centered on cx.
func drawTextCentered(dst *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	text.Draw(dst, s, face, cx-textWidth(face, s)/2, y, clr)
}

// drawTextRight draws s with its right edge at x.
func drawTextRight(dst *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(dst, s, face, x-textWidth(face, s), y, clr)
}

func textWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx()
}
