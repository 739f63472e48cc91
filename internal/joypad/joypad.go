// Package joypad implements the Game Boy's 2x4 button matrix register
// (0xFF00): P14 selects direction keys, P15 selects action keys, and both
// select lines and button states are active low.
package joypad

// Button identifies one of the eight physical buttons.
type Button int

const (
	ButtonRight Button = iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

// Joypad holds button state and the two select lines of register P1.
type Joypad struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	A      bool
	B      bool
	Select bool
	Start  bool

	P14 bool // direction-key select line; false = selected
	P15 bool // action-key select line; false = selected

	joypadInterrupt bool
}

const JoypadAddr uint16 = 0xFF00

const (
	bitRightA    = 0x01
	bitLeftB     = 0x02
	bitUpSelect  = 0x04
	bitDownStart = 0x08

	bitP14 = 0x10
	bitP15 = 0x20

	bitUnused = 0xC0
)

func NewJoypad() *Joypad {
	return &Joypad{P14: true, P15: true}
}

func (j *Joypad) Reset() {
	*j = Joypad{P14: true, P15: true}
}

func (j *Joypad) HasJoypadInterrupt() bool { return j.joypadInterrupt }
func (j *Joypad) ClearJoypadInterrupt()    { j.joypadInterrupt = false }

func (j *Joypad) stateFor(button Button) *bool {
	switch button {
	case ButtonUp:
		return &j.Up
	case ButtonDown:
		return &j.Down
	case ButtonLeft:
		return &j.Left
	case ButtonRight:
		return &j.Right
	case ButtonA:
		return &j.A
	case ButtonB:
		return &j.B
	case ButtonSelect:
		return &j.Select
	case ButtonStart:
		return &j.Start
	default:
		return nil
	}
}

// SetButton records button's new state, raising the joypad interrupt on a
// released-to-pressed transition.
func (j *Joypad) SetButton(button Button, pressed bool) {
	state := j.stateFor(button)
	if state == nil {
		return
	}

	wasPressed := *state
	*state = pressed

	if !wasPressed && pressed {
		j.joypadInterrupt = true
	}
}

func (j *Joypad) IsPressed(button Button) bool {
	state := j.stateFor(button)
	if state == nil {
		return false
	}
	return *state
}

// ReadJoypad returns register P1: selected lines reflected in bits 5-4,
// selected group's button states in bits 3-0, both active low.
func (j *Joypad) ReadJoypad() uint8 {
	var result uint8 = 0xFF

	if !j.P14 {
		result &^= bitP14
	}
	if !j.P15 {
		result &^= bitP15
	}

	if !j.P14 {
		if j.Right {
			result &^= bitRightA
		}
		if j.Left {
			result &^= bitLeftB
		}
		if j.Up {
			result &^= bitUpSelect
		}
		if j.Down {
			result &^= bitDownStart
		}
	}

	if !j.P15 {
		if j.A {
			result &^= bitRightA
		}
		if j.B {
			result &^= bitLeftB
		}
		if j.Select {
			result &^= bitUpSelect
		}
		if j.Start {
			result &^= bitDownStart
		}
	}

	return result | bitUnused
}

// WriteJoypad updates the P14/P15 select lines. Button-state bits are
// read-only from software; they only change via SetButton.
func (j *Joypad) WriteJoypad(value uint8) {
	j.P14 = value&bitP14 != 0
	j.P15 = value&bitP15 != 0
}

func (j *Joypad) ReadRegister(address uint16) uint8 {
	if address == JoypadAddr {
		return j.ReadJoypad()
	}
	return 0xFF
}

func (j *Joypad) WriteRegister(address uint16, value uint8) {
	if address == JoypadAddr {
		j.WriteJoypad(value)
	}
}

func IsJoypadRegister(address uint16) bool {
	return address == JoypadAddr
}

// GetDirectionButtonsByte packs Right/Left/Up/Down into bits 0-3, 1 = pressed.
func (j *Joypad) GetDirectionButtonsByte() uint8 {
	var result uint8
	if j.Right {
		result |= 0x01
	}
	if j.Left {
		result |= 0x02
	}
	if j.Up {
		result |= 0x04
	}
	if j.Down {
		result |= 0x08
	}
	return result
}

// GetActionButtonsByte packs A/B/Select/Start into bits 0-3, 1 = pressed.
func (j *Joypad) GetActionButtonsByte() uint8 {
	var result uint8
	if j.A {
		result |= 0x01
	}
	if j.B {
		result |= 0x02
	}
	if j.Select {
		result |= 0x04
	}
	if j.Start {
		result |= 0x08
	}
	return result
}

func (j *Joypad) SetDirectionButtons(buttons uint8) {
	j.SetButton(ButtonRight, buttons&0x01 != 0)
	j.SetButton(ButtonLeft, buttons&0x02 != 0)
	j.SetButton(ButtonUp, buttons&0x04 != 0)
	j.SetButton(ButtonDown, buttons&0x08 != 0)
}

func (j *Joypad) SetActionButtons(buttons uint8) {
	j.SetButton(ButtonA, buttons&0x01 != 0)
	j.SetButton(ButtonB, buttons&0x02 != 0)
	j.SetButton(ButtonSelect, buttons&0x04 != 0)
	j.SetButton(ButtonStart, buttons&0x08 != 0)
}
