package widget

import (
	"unsafe"

	"glint/gui/anim"
	"glint/gui/color"
	"glint/gui/draw"
	"glint/gui/geom"
	"glint/gui/scene"
	"glint/gui/task"
)

// The logo is laid out on a logoW×logoH grid and scaled by whole steps
// into the node.
const (
	logoW = 26
	logoH = 14

	// BootFadeMS is how long the boot logo takes to fade out.
	BootFadeMS = 1000
)

type logoRect struct{ x1, y1, x2, y2 int }

var logoLetters = [...]struct {
	fill  color.Color
	rects []logoRect
}{
	{color.Red, []logoRect{{0, 0, 8, 2}, {0, 2, 2, 8}, {2, 6, 8, 8}, {6, 8, 8, 14}, {0, 12, 6, 14}}},
	{color.Green, []logoRect{{9, 0, 17, 2}, {9, 2, 11, 14}, {11, 12, 17, 14}, {15, 6, 17, 12}, {13, 6, 15, 8}}},
	{color.Blue, []logoRect{{18, 0, 20, 14}, {20, 12, 26, 14}}},
}

// Logo draws the block-letter product mark.
type Logo struct {
	base
	alpha uint8
}

func NewLogo(sc *scene.Scene, parent *scene.Node) (*Logo, error) {
	l := &Logo{alpha: color.AlphaMax}
	if err := l.attach(sc, parent, l, int(unsafe.Sizeof(*l)), "logo"); err != nil {
		return nil, err
	}
	l.node.SetBorderWidth(0)
	return l, nil
}

func (l *Logo) Construct(s *draw.Surface, n *scene.Node, e *scene.Event) {
	if e.Type != scene.DrawMain {
		return
	}
	c := n.Coords()
	sx, sy := c.Width()/logoW, c.Height()/logoH
	for _, letter := range logoLetters {
		for _, r := range letter.rects {
			rect := geom.Area{
				X1: c.X1 + r.x1*sx, Y1: c.Y1 + r.y1*sy,
				X2: c.X1 + r.x2*sx - 1, Y2: c.Y1 + r.y2*sy - 1,
			}
			draw.FillRectBorder(s, n.Area(), rect, n.Radius(), letter.fill, color.Blue, 0, l.alpha)
		}
	}
}

func (l *Logo) Alpha() uint8 { return l.alpha }

func (l *Logo) SetAlpha(a uint8) {
	l.alpha = a
	l.node.SetDirty()
}

// BootLogo is a centred logo fading out over BootFadeMS.
type BootLogo struct {
	Logo *Logo
	Anim *anim.Animation

	sched *anim.Scheduler
}

// StartBootLogo places a logo a third of the screen in size at the centre
// and starts its fade.
func StartBootLogo(sc *scene.Scene, sched *anim.Scheduler) (*BootLogo, error) {
	logo, err := NewLogo(sc, nil)
	if err != nil {
		return nil, err
	}
	b := sc.Bounds()
	logo.SetSize(b.Width()/3, b.Height()/3)
	logo.SetPosAlign(geom.AlignCenter)
	logo.node.SetRadius(0)

	a := &anim.Animation{
		Start:    int32(color.AlphaMax),
		End:      int32(color.AlphaMin),
		Duration: BootFadeMS,
		Path:     anim.Linear,
		Data:     logo,
		Callback: func(a *anim.Animation, v int32) {
			a.Data.(*Logo).SetAlpha(uint8(v))
		},
	}
	sched.Start(a)
	return &BootLogo{Logo: logo, Anim: a, sched: sched}, nil
}

// Done reports whether the fade has finished.
func (b *BootLogo) Done() bool { return b.Anim.IsFinished() }

// Close frees the animation and removes the logo.
func (b *BootLogo) Close() {
	b.sched.Free(b.Anim)
	b.Logo.Delete()
}

// RunBootLogo shows the boot logo and ticks l until it has faded out.
func RunBootLogo(l *task.Loop, next func() uint32) error {
	b, err := StartBootLogo(l.Scene(), l.Animations())
	if err != nil {
		return err
	}
	defer b.Close()
	return l.RunUntil(b.Done, next)
}
