package assets

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PlaceholderPalette задаёт цвета заглушки: fills[i] красит кадры группы i
// (группы по три кадра), последний цвет — все остальные.
type PlaceholderPalette struct {
	Fills []color.RGBA
	Ink   color.RGBA
}

// Placeholder рисует лист спрайтов, если файла нет: цветные клетки с
// номером кадра и меткой "носа" сверху, чтобы был виден поворот.
func Placeholder(a Atlas, palette PlaceholderPalette) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: a.Size()})
	ink := image.NewUniform(palette.Ink)
	face := basicfont.Face7x13

	for i := 0; i < a.Len(); i++ {
		frame, _ := a.Frame(i)
		fill := fillFor(i, palette.Fills)
		inset := frame.Inset(2)
		draw.Draw(img, inset, image.NewUniform(fill), image.Point{}, draw.Src)

		nose := image.Rect(frame.Min.X+frame.Dx()/2-2, frame.Min.Y, frame.Min.X+frame.Dx()/2+2, frame.Min.Y+5)
		draw.Draw(img, nose, ink, image.Point{}, draw.Src)

		label := strconv.Itoa(i)
		width := font.MeasureString(face, label).Ceil()
		d := &font.Drawer{
			Dst:  img,
			Src:  ink,
			Face: face,
			Dot: fixed.P(
				frame.Min.X+(frame.Dx()-width)/2,
				frame.Min.Y+(frame.Dy()+face.Ascent)/2,
			),
		}
		d.DrawString(label)
	}
	return img
}

func fillFor(index int, fills []color.RGBA) color.RGBA {
	if len(fills) == 0 {
		return color.RGBA{128, 128, 128, 255}
	}
	group := index / 3
	if group >= len(fills)-1 {
		return fills[len(fills)-1]
	}
	return fills[group]
}
