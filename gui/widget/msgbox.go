package widget

import (
	"unsafe"

	"glint/gui/color"
	"glint/gui/draw"
	"glint/gui/geom"
	"glint/gui/glog"
	"glint/gui/scene"

	"tinygo.org/x/tinyfont"
)

// Message box status bits.
const (
	msgLeft uint8 = 1 << iota
	msgRight
	msgExit
)

// MsgBox is a modal dialog with a title, a multi-line message and two
// buttons along the bottom. Pressing a button selects it, releasing it
// closes the box; OptionWalk moves the selection and OptionTap closes the
// box with the current selection.
type MsgBox struct {
	base
	font tinyfont.Fonter
	body draw.RectDesc

	title      string
	titleColor color.Color
	msg        string
	msgColor   color.Color
	lineMargin int

	titleHeight int
	msgOffset   geom.Pos

	btnText      [2]string
	btnColor     [2]color.Color
	btnTextColor [2]color.Color

	status uint8
	// OnExit is called once with the chosen button text when the box closes.
	OnExit func(answer string)
}

func NewMsgBox(sc *scene.Scene, parent *scene.Node, f tinyfont.Fonter) (*MsgBox, error) {
	btn := color.Mix(color.ThemeColor, color.ThemeText, 200)
	m := &MsgBox{
		font: f,
		body: draw.RectDesc{
			Color:       color.ThemeColor,
			BorderColor: color.ThemeBorder,
			Border:      ThemeBorderWidth,
			Radius:      ThemeRadius,
			Alpha:       color.ThemeAlpha,
		},
		title:        "Message Box",
		msg:          "",
		msgColor:     color.ThemeText,
		lineMargin:   1,
		btnText:      [2]string{"YES", "NO"},
		btnColor:     [2]color.Color{btn, btn},
		btnTextColor: [2]color.Color{color.ThemeText, color.ThemeText},
	}
	if err := m.attach(sc, parent, m, int(unsafe.Sizeof(*m)), "msgbox"); err != nil {
		return nil, err
	}
	m.node.SetRadius(ThemeRadius)
	m.node.SetBorderWidth(ThemeBorderWidth)
	m.node.SetClickable(true)
	return m, nil
}

// msgLayout holds the regions of a message box derived from its coords.
type msgLayout struct {
	lineH   int
	titleH  int
	strip   geom.Area
	buttons [2]geom.Area
	title   geom.Area
	text    geom.Area
	mid     int
}

func (m *MsgBox) layout(c geom.Area) msgLayout {
	lineH := draw.FontHeight(m.font) + 8
	bw := m.body.Border
	titleH := m.titleHeight
	if titleH == 0 {
		titleH = lineH
	}
	mid := (c.X1 + c.X2) / 2
	return msgLayout{
		lineH:  lineH,
		titleH: titleH,
		mid:    mid,
		strip:  geom.Area{X1: c.X1, Y1: c.Y2 - lineH, X2: c.X2, Y2: c.Y2},
		buttons: [2]geom.Area{
			{X1: c.X1 + bw, Y1: c.Y2 - 2*lineH, X2: mid - bw/2, Y2: c.Y2 - bw},
			{X1: mid + bw/2, Y1: c.Y2 - 2*lineH, X2: c.X2 - bw, Y2: c.Y2 - bw},
		},
		title: geom.Area{X1: c.X1 + bw + 2, Y1: c.Y1 + 1, X2: c.X2 - bw - 2, Y2: c.Y1 + titleH + bw},
		text: geom.Area{
			X1: c.X1 + bw + 2 + m.msgOffset.X, Y1: c.Y1 + titleH + bw + m.msgOffset.Y,
			X2: c.X2 - bw - 2, Y2: c.Y2 - (lineH + bw),
		},
	}
}

// button returns the index of the button under p, or -1. Only the bottom
// row of each button rect is live; the gap at mid belongs to neither.
func (l *msgLayout) button(c geom.Area, p geom.Pos) int {
	if p.Y <= c.Y2-l.lineH-2 || p.X == l.mid {
		return -1
	}
	for i, b := range l.buttons {
		if b.Contains(p) {
			return i
		}
	}
	return -1
}

func (m *MsgBox) Construct(s *draw.Surface, n *scene.Node, e *scene.Event) {
	if m.font == nil {
		panic("widget: message box " + n.Name + " has no font")
	}
	c := n.Coords()
	l := m.layout(c)

	switch e.Type {
	case scene.DrawMain:
		m.draw(s, n, &l)
	case scene.Pressed:
		i := l.button(c, e.Pos)
		if i < 0 {
			n.ClearDirty()
			return
		}
		m.selectButton(i)
		n.ClearDirty()
		n.Invalidate(l.buttons[i])
	case scene.Released:
		if l.button(c, e.Pos) < 0 {
			n.ClearDirty()
			return
		}
		m.close(n)
	case scene.OptionWalk:
		if m.status&msgLeft != 0 {
			m.selectButton(1)
		} else {
			m.selectButton(0)
		}
		n.ClearDirty()
		n.Invalidate(l.strip)
	case scene.OptionTap:
		m.close(n)
	default:
		n.ClearDirty()
	}
}

func (m *MsgBox) draw(s *draw.Surface, n *scene.Node, l *msgLayout) {
	area, c := n.Area(), n.Coords()
	body := m.body
	body.Radius = n.Radius()
	if err := draw.Rect(s, area, c, &body); err != nil {
		glog.Logger().Warn("message box background", "node", n.Name, "err", err)
	}

	alpha := body.Alpha
	m.centered(s, area, l.title, m.title, m.titleColor, alpha, 0)
	draw.HLine(s, area, c.Y1+l.titleH+4, c.X1+body.Border, c.X2-body.Border, body.Border, body.BorderColor, alpha)
	if text, ok := geom.Clip(l.text, area); ok {
		draw.Lines(s, text, l.text.X1, l.text.Y1, m.msg, m.msgColor, alpha, m.font, m.lineMargin)
	}

	strip, ok := geom.Clip(l.strip, area)
	if !ok {
		return
	}
	for i, b := range l.buttons {
		fill := m.btnColor[i]
		if m.selected() == i {
			fill = color.Mix(m.btnTextColor[i], body.Color, 128)
		}
		draw.FillRect(s, strip, b, n.Radius(), fill, alpha)
		m.centered(s, area, b, m.btnText[i], m.btnTextColor[i], alpha, l.lineH/2)
	}
}

func (m *MsgBox) centered(s *draw.Surface, area, rect geom.Area, text string, c color.Color, alpha uint8, dy int) {
	p := draw.TextPos(rect, m.font, text, 0, geom.AlignCenter)
	draw.String(s, area, p.X, p.Y+dy, text, c, alpha, m.font)
}

func (m *MsgBox) selectButton(i int) {
	m.status &^= msgLeft | msgRight
	if i == 0 {
		m.status |= msgLeft
	} else {
		m.status |= msgRight
	}
}

func (m *MsgBox) selected() int {
	switch {
	case m.status&msgLeft != 0:
		return 0
	case m.status&msgRight != 0:
		return 1
	}
	return -1
}

func (m *MsgBox) close(n *scene.Node) {
	if m.status&msgExit != 0 {
		return
	}
	m.status |= msgExit
	n.SetDestroyed()
	if m.OnExit != nil {
		m.OnExit(m.Answer())
	}
}

// Answer is the text of the selected button, or "" when none is selected.
func (m *MsgBox) Answer() string {
	if i := m.selected(); i >= 0 {
		return m.btnText[i]
	}
	return ""
}

// Closed reports whether the box was dismissed.
func (m *MsgBox) Closed() bool { return m.status&msgExit != 0 }

func (m *MsgBox) SetTitle(text string) {
	m.title = text
	m.node.SetDirty()
}

func (m *MsgBox) SetTitleColor(c color.Color) {
	m.titleColor = c
	m.node.SetDirty()
}

// SetTitleHeight overrides the title band height. Zero uses the font.
func (m *MsgBox) SetTitleHeight(h int) {
	m.titleHeight = max(h, 0)
	m.node.SetDirty()
}

func (m *MsgBox) SetMessage(text string) {
	m.msg = text
	m.node.SetDirty()
}

func (m *MsgBox) SetMessageColor(c color.Color) {
	m.msgColor = c
	m.node.SetDirty()
}

// SetMessageOffset shifts the message text inside its region.
func (m *MsgBox) SetMessageOffset(dx, dy int) {
	m.msgOffset = geom.Pos{X: dx, Y: dy}
	m.node.SetDirty()
}

func (m *MsgBox) SetLineMargin(px int) {
	m.lineMargin = px
	m.node.SetDirty()
}

// SetButtons sets the left and right button labels.
func (m *MsgBox) SetButtons(left, right string) {
	m.btnText = [2]string{left, right}
	m.node.SetDirty()
}

func (m *MsgBox) SetButtonColors(left, right color.Color) {
	m.btnColor = [2]color.Color{left, right}
	m.node.SetDirty()
}

func (m *MsgBox) SetButtonTextColors(left, right color.Color) {
	m.btnTextColor = [2]color.Color{left, right}
	m.node.SetDirty()
}

func (m *MsgBox) SetFont(f tinyfont.Fonter) {
	m.font = f
	m.node.SetDirty()
}

func (m *MsgBox) SetColor(c color.Color) {
	m.body.Color = c
	m.node.SetDirty()
}

func (m *MsgBox) SetAlpha(a uint8) {
	m.body.Alpha = a
	m.node.SetDirty()
}

func (m *MsgBox) SetBorderColor(c color.Color) {
	m.body.BorderColor = c
	m.node.SetDirty()
}

func (m *MsgBox) SetBorderWidth(w int) {
	m.node.SetBorderWidth(w)
	m.body.Border = m.node.BorderWidth()
}

func (m *MsgBox) SetRadius(r int) { m.node.SetRadius(r) }
