package assets

import (
	"errors"
	"fmt"
	"image"
)

// ErrBadGrid — сетка не помещается в изображение или имеет нулевой размер.
var ErrBadGrid = errors.New("bad sprite grid")

// Atlas режет лист спрайтов на одинаковые клетки, слева направо и сверху
// вниз. Кадр i лежит в столбце i%Columns и строке i/Columns.
type Atlas struct {
	CellW, CellH  int
	Columns, Rows int
}

// NewAtlas проверяет размеры сетки.
func NewAtlas(cellW, cellH, columns, rows int) (Atlas, error) {
	if cellW <= 0 || cellH <= 0 || columns <= 0 || rows <= 0 {
		return Atlas{}, fmt.Errorf("%w: cell %dx%d, grid %dx%d", ErrBadGrid, cellW, cellH, columns, rows)
	}
	return Atlas{CellW: cellW, CellH: cellH, Columns: columns, Rows: rows}, nil
}

// Len — количество кадров.
func (a Atlas) Len() int {
	return a.Columns * a.Rows
}

// Size — минимальный размер листа под эту сетку.
func (a Atlas) Size() image.Point {
	return image.Pt(a.CellW*a.Columns, a.CellH*a.Rows)
}

// Frame возвращает прямоугольник кадра index.
func (a Atlas) Frame(index int) (image.Rectangle, bool) {
	if index < 0 || index >= a.Len() {
		return image.Rectangle{}, false
	}
	x := (index % a.Columns) * a.CellW
	y := (index / a.Columns) * a.CellH
	return image.Rect(x, y, x+a.CellW, y+a.CellH), true
}

// Fits проверяет, что сетка помещается в границы изображения.
func (a Atlas) Fits(bounds image.Rectangle) bool {
	size := a.Size()
	return bounds.Dx() >= size.X && bounds.Dy() >= size.Y
}
