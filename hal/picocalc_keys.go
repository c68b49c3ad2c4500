package hal

// Report states sent by the PicoCalc keyboard controller ahead of each key
// code. Hold reports (0x02) are ignored.
const (
	picoCalcPressed  byte = 0x01
	picoCalcReleased byte = 0x03
)

// picoCalcKeys maps controller key codes to HAL key codes. Alt, Ctrl and
// Shift have no entry and are dropped.
var picoCalcKeys = map[byte]KeyCode{
	0xB5: KeyUp,
	0xB6: KeyDown,
	0xB4: KeyLeft,
	0xB7: KeyRight,
	'\r': KeyEnter,
	'\n': KeyEnter,
	' ':  KeyEnter,
	'\t': KeyTab,
	0xB1: KeyEscape,
	0x08: KeyBackspace,
	0xD4: KeyDelete,
	0xD2: KeyHome,
	0xD5: KeyEnd,
	0x81: KeyF1,
	0x82: KeyF2,
	0x83: KeyF3,
}

// decodePicoCalcReport turns one controller FIFO report into a key event.
// Printable keys arrive as runes on press only, like the host keyboard.
func decodePicoCalcReport(state, code byte) (KeyEvent, bool) {
	var press bool
	switch state {
	case picoCalcPressed:
		press = true
	case picoCalcReleased:
	default:
		return KeyEvent{}, false
	}
	if kc, ok := picoCalcKeys[code]; ok {
		return KeyEvent{Code: kc, Press: press}, true
	}
	if press && code >= 0x20 && code < 0x7F {
		return KeyEvent{Press: true, Rune: rune(code)}, true
	}
	return KeyEvent{}, false
}
