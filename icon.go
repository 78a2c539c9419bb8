package main

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/icon.svg
var iconSVGData []byte

const iconSize = 64

// initWindowIcon rasterizes the embedded SVG and installs it as the window
// icon. A broken icon is logged, not fatal.
func initWindowIcon() {
	img, err := svgToImage(iconSVGData, iconSize, iconSize)
	if err != nil {
		log.Printf("Failed to rasterize window icon: %v", err)
		return
	}
	ebiten.SetWindowIcon([]image.Image{img})

	// Optionally save PNG for debugging
	if os.Getenv("DEBUG_ICON") == "1" {
		saveDebugPNG(img, "debug_icon.png")
	}
}

// svgToImage rasterizes SVG data at the given pixel size
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	// Parse SVG
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	// Set the target size
	icon.SetTarget(0, 0, float64(width), float64(height))

	// Create RGBA image
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Create scanner and rasterize
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	// Render SVG to image
	icon.Draw(raster, 1.0)

	return img, nil
}

// saveDebugPNG saves a PNG image for debugging purposes
func saveDebugPNG(img image.Image, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("Failed to create debug PNG: %v", err)
		return
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		log.Printf("Failed to encode debug PNG: %v", err)
	}
}
