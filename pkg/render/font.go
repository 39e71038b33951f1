// pkg/render/font.go
package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace создаёт шрифт заданного размера из встроенного Go Regular.
func LoadFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// FaceOrDefault — LoadFace с запасным растровым шрифтом вместо ошибки.
func FaceOrDefault(size float64) font.Face {
	face, err := LoadFace(size)
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
