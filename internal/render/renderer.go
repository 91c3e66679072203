// Package render рисует мир средствами Ebiten. Мир живёт в координатах
// с осью y вверх и центром экрана в нуле, поэтому y здесь переворачивается.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-swarm-shooter/internal/assets"
	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/utils"
)

// Renderer рисует спрайты, границы уровня и линии выстрелов.
type Renderer struct {
	sheet       *ebiten.Image
	atlas       assets.Atlas
	frames      map[int]*ebiten.Image
	screenW     int
	screenH     int
	bounds      mgl64.Vec2
	clear       color.Color
	traceColor  color.RGBA
	boundsColor color.Color
	traceWidth  float32
	placeholder bool
}

func NewRenderer(sheet *assets.Sheet, screenW, screenH int, bounds mgl64.Vec2) *Renderer {
	return &Renderer{
		sheet:       ebiten.NewImageFromImage(sheet.Image),
		atlas:       sheet.Atlas,
		frames:      make(map[int]*ebiten.Image),
		screenW:     screenW,
		screenH:     screenH,
		bounds:      bounds,
		clear:       config.ClearColor,
		traceColor:  config.TraceColor,
		boundsColor: config.BoundsColor,
		traceWidth:  config.TraceWidth,
		placeholder: sheet.Placeholder,
	}
}

// Placeholder сообщает, что вместо листа спрайтов рисуется заглушка.
func (r *Renderer) Placeholder() bool {
	return r.placeholder
}

// ToScreen переводит мировые координаты в экранные.
func (r *Renderer) ToScreen(p mgl64.Vec3) (float32, float32) {
	return float32(float64(r.screenW)/2 + p.X()), float32(float64(r.screenH)/2 - p.Y())
}

func (r *Renderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(r.clear)
	r.drawBounds(screen)

	for rec := range ecs.Query(entity.WithSprite, entity.WithPose) {
		frame := r.frame(rec.Sprite.Index)
		if frame == nil {
			continue
		}
		x, y := r.ToScreen(rec.Pose.Position)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(r.atlas.CellW)/2, -float64(r.atlas.CellH)/2)
		// Поворот против часовой в мире — по часовой на экране с y вниз.
		op.GeoM.Rotate(-rec.Pose.Heading())
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(frame, op)
	}

	for rec := range ecs.Query(entity.WithTrace) {
		tr := rec.Trace
		c := color.NRGBA(r.traceColor) // альфа без предумножения
		if d := tr.Timer.Duration(); d > 0 {
			c.A = uint8(utils.Lerp(255, 0, utils.Clamp(tr.Timer.Elapsed()/d, 0, 1)))
		}
		x0, y0 := r.ToScreen(tr.From)
		x1, y1 := r.ToScreen(tr.To)
		vector.StrokeLine(screen, x0, y0, x1, y1, r.traceWidth, c, true)
	}
}

func (r *Renderer) drawBounds(screen *ebiten.Image) {
	half := r.bounds.Mul(0.5)
	x, y := r.ToScreen(mgl64.Vec3{-half.X(), half.Y(), 0})
	vector.StrokeRect(screen, x, y, float32(r.bounds.X()), float32(r.bounds.Y()), 1, r.boundsColor, false)
}

// frame кэширует подызображения кадров.
func (r *Renderer) frame(index int) *ebiten.Image {
	if img, ok := r.frames[index]; ok {
		return img
	}
	rect, ok := r.atlas.Frame(index)
	if !ok {
		return nil
	}
	img := r.sheet.SubImage(rect).(*ebiten.Image)
	r.frames[index] = img
	return img
}
