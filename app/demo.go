package app

import (
	"glint/gui/anim"
	"glint/gui/color"
	"glint/gui/draw"
	"glint/gui/fonts/font6x8"
	"glint/gui/geom"
	"glint/gui/glog"
	"glint/gui/pixmap"
	"glint/gui/scene"
	"glint/gui/task"
	"glint/gui/widget"
	"glint/hal"
	"glint/internal/buildinfo"

	"github.com/tanema/gween/ease"
)

const (
	bounceMS   = 2400
	ballRadius = 10
	margin     = 8
)

// Flash asset names looked up in the pixmap index at the start of flash.
const (
	photoAsset = "photo"
	iconAsset  = "icon"
)

// demo is the screen shown after the boot logo.
type demo struct {
	title  *widget.Label
	panel  *widget.Box
	image  *widget.Image
	bars   *widget.Canvas
	line   *widget.Line
	ball   *widget.Ball
	bounce *anim.Animation
	dialog *widget.MsgBox
	answer *widget.Label

	photo pixmap.Pixmap
	icon  pixmap.Pixmap
}

func newDemo(l *task.Loop, fl hal.Flash, interp pixmap.Interp) (*demo, error) {
	sc := l.Scene()
	b := sc.Bounds()
	w, h := b.Width(), b.Height()
	d := &demo{
		photo: loadPixmap(fl, photoAsset, gradient),
		icon:  loadPixmap(fl, iconAsset, checker),
	}
	var err error

	if d.title, err = widget.NewLabel(sc, nil, font6x8.Font); err != nil {
		return nil, err
	}
	d.title.SetCoords(geom.Rect(margin, margin, w-2*margin, font6x8.Height+4))
	d.title.SetText("glint " + buildinfo.Short())
	d.title.SetColor(color.White)
	d.title.SetAlign(geom.AlignLeftMid)

	top := margin*2 + font6x8.Height + 4
	if d.panel, err = widget.NewBox(sc, nil); err != nil {
		return nil, err
	}
	d.panel.SetCoords(geom.Rect(margin, top, w/2-margin*2, h/3))
	d.panel.SetBorderColor(color.ThemeAccent)
	d.panel.SetPixmap(&d.photo, interp)

	if d.image, err = widget.NewImage(sc, nil); err != nil {
		return nil, err
	}
	d.image.SetPos(w/2+margin, top)
	if err := d.image.SetPixmap(&d.icon); err != nil {
		return nil, err
	}

	barsY := top + h/3 + margin
	if d.bars, err = widget.NewCanvas(sc, nil, paintBars); err != nil {
		return nil, err
	}
	d.bars.SetCoords(geom.Rect(margin, barsY, w-2*margin, 16))

	lineY := barsY + 16 + margin
	if d.line, err = widget.NewLine(sc, nil); err != nil {
		return nil, err
	}
	d.line.SetColor(color.ThemeAccent)
	d.line.SetWidth(3)
	d.line.SetPoints(geom.Pos{X: margin, Y: lineY}, geom.Pos{X: w - margin, Y: lineY})

	ballY := lineY + margin
	if d.ball, err = widget.NewBall(sc, nil); err != nil {
		return nil, err
	}
	d.ball.SetCoords(geom.Rect(margin, ballY, 2*ballRadius+1, 2*ballRadius+1))
	d.ball.SetRadius(ballRadius)
	d.ball.SetColor(color.White)
	d.ball.SetBackground(color.ThemeAccent)
	d.bounce = &anim.Animation{
		Start:    margin,
		End:      int32(w - margin - 2*ballRadius - 1),
		Duration: bounceMS,
		Repeat:   anim.RepeatForever,
		Path:     anim.PingPong(anim.Ease(ease.InOutQuad)),
		Data:     d.ball,
		Callback: func(a *anim.Animation, v int32) {
			a.Data.(*widget.Ball).SetPos(int(v), ballY)
		},
	}
	l.Animations().Start(d.bounce)

	if err := d.newDialog(sc, w, h); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *demo) newDialog(sc *scene.Scene, w, h int) error {
	var err error
	if d.answer, err = widget.NewLabel(sc, nil, font6x8.Font); err != nil {
		return err
	}
	d.answer.SetCoords(geom.Rect(margin, h-margin-font6x8.Height-4, w-2*margin, font6x8.Height+4))
	d.answer.SetColor(color.White)
	d.answer.SetAlign(geom.AlignLeftMid)

	if d.dialog, err = widget.NewMsgBox(sc, nil, font6x8.Font); err != nil {
		return err
	}
	dh := min(h/3, 96)
	d.dialog.SetCoords(geom.Rect(w/6, h-dh-margin*3-font6x8.Height, w-w/3, dh))
	d.dialog.SetTitle("glint")
	d.dialog.SetMessage("Walk with Tab or arrows,\ntap with Enter,\nor use the pointer.")
	d.dialog.SetButtons("OK", "Cancel")
	d.dialog.OnExit = func(answer string) {
		glog.Logger().Info("dialog closed", "answer", answer)
		d.answer.SetText("answer: " + answer)
		d.dialog = nil
	}
	sc.SetFocus(d.dialog.Node())
	return nil
}

// paintBars draws a row of colour steps from red to blue.
func paintBars(s *draw.Surface, area geom.Area, n *scene.Node) {
	const steps = 8
	c := n.Coords()
	for i := 0; i < steps; i++ {
		x1 := c.X1 + c.Width()*i/steps
		x2 := c.X1 + c.Width()*(i+1)/steps - 1
		a := uint8(255 * i / (steps - 1))
		draw.FillRect(s, area, geom.Area{X1: x1, Y1: c.Y1, X2: x2, Y2: c.Y2}, 0, color.Mix(color.Blue, color.Red, a), color.AlphaMax)
	}
}

// loadPixmap opens name from the flash pixmap index, falling back to a
// generated image when the flash carries none.
func loadPixmap(fl hal.Flash, name string, gen func() pixmap.Pixmap) pixmap.Pixmap {
	if fl != nil && fl.SizeBytes() > 0 {
		pm, err := pixmap.Lookup(hal.FlashReader{Flash: fl}, 0, name)
		if err == nil {
			return pm
		}
		glog.Logger().Debug("pixmap not in flash", "name", name, "err", err)
	}
	return gen()
}

// gradient is a 32x32 direct RGB565 pixmap blending the theme accent into
// white along the diagonal.
func gradient() pixmap.Pixmap {
	const size = 32
	px := make([]color.Color, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px[y*size+x] = color.Mix(color.White, color.ThemeAccent, uint8((x+y)*255/(2*size-2)))
		}
	}
	return mustEncode(pixmap.RGB565, size, size, px)
}

// checker is a 24x24 run-length encoded RGB332 checkerboard.
func checker() pixmap.Pixmap {
	const size, cell = 24, 6
	px := make([]color.Color, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				px[y*size+x] = color.White
			} else {
				px[y*size+x] = color.Red
			}
		}
	}
	return mustEncode(pixmap.RLERGB332, size, size, px)
}

func mustEncode(f pixmap.Format, w, h int, px []color.Color) pixmap.Pixmap {
	b, err := pixmap.Encode(f, w, h, px)
	if err != nil {
		panic("app: encode built-in pixmap: " + err.Error())
	}
	return pixmap.Pixmap{Width: w, Height: h, Format: f, Bitmap: b}
}
