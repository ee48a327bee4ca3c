package core

import (
	"fmt"
	"strconv"
	"strings"
)

type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignRight
	AlignCenter
)

// Surface is the 2D drawing context the renderer paints on.
type Surface interface {
	SetFillStyle(color string)
	FillRect(x, y, width, height float64)
	SetFont(font string)
	SetTextAlign(align TextAlign)
	// FillText draws text with its baseline at y.
	FillText(text string, x, y float64)
	Show()
}

type Font struct {
	Size   float64
	Family string
}

// ParseFont reads a "<size>px <family>" font string.
func ParseFont(font string) (Font, error) {
	fields := strings.Fields(font)
	if len(fields) == 0 {
		return Font{}, fmt.Errorf("empty font")
	}

	size, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "px"), 64)
	if err != nil || size <= 0 {
		return Font{}, fmt.Errorf("invalid font size in %q", font)
	}

	return Font{Size: size, Family: strings.Join(fields[1:], " ")}, nil
}
