package widget

import (
	"unsafe"

	"glint/gui/color"
	"glint/gui/draw"
	"glint/gui/geom"
	"glint/gui/glog"
	"glint/gui/pixmap"
	"glint/gui/scene"
)

// Image blits a pixmap 1:1 at the node's top-left corner. RLE pixmaps and
// pixmaps streamed from flash are decoded while drawing.
type Image struct {
	base
	pm    *pixmap.Pixmap
	alpha uint8
	err   error
}

func NewImage(sc *scene.Scene, parent *scene.Node) (*Image, error) {
	im := &Image{alpha: color.AlphaMax}
	if err := im.attach(sc, parent, im, int(unsafe.Sizeof(*im)), "image"); err != nil {
		return nil, err
	}
	return im, nil
}

func (im *Image) Construct(s *draw.Surface, n *scene.Node, e *scene.Event) {
	if e.Type != scene.DrawMain || im.pm == nil {
		return
	}
	c := n.Coords()
	err := draw.Image(s, n.Area(), geom.Pos{X: c.X1, Y: c.Y1}, im.pm, im.alpha)
	if err != nil && im.err == nil {
		glog.Logger().Warn("image decode", "node", n.Name, "err", err)
	}
	im.err = err
}

// Err is the error of the last draw, if any.
func (im *Image) Err() error { return im.err }

// SetPixmap shows pm and resizes the node to fit it.
func (im *Image) SetPixmap(pm *pixmap.Pixmap) error {
	if err := pm.Validate(); err != nil {
		return err
	}
	im.pm = pm
	im.err = nil
	c := im.node.Coords()
	im.node.SetCoords(geom.Rect(c.X1, c.Y1, pm.Width, pm.Height))
	return nil
}

func (im *Image) SetAlpha(a uint8) {
	im.alpha = a
	im.node.SetDirty()
}
