package joypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewJoypad(t *testing.T) {
	joypad := NewJoypad()

	assert.False(t, joypad.Up)
	assert.False(t, joypad.Down)
	assert.False(t, joypad.Left)
	assert.False(t, joypad.Right)
	assert.False(t, joypad.A)
	assert.False(t, joypad.B)
	assert.False(t, joypad.Select)
	assert.False(t, joypad.Start)

	assert.True(t, joypad.P14)
	assert.True(t, joypad.P15)

	assert.False(t, joypad.HasJoypadInterrupt())
}

func TestJoypadReset(t *testing.T) {
	joypad := NewJoypad()

	joypad.SetButton(ButtonA, true)
	joypad.SetButton(ButtonUp, true)
	joypad.P14 = false
	joypad.joypadInterrupt = true

	joypad.Reset()

	assert.False(t, joypad.A)
	assert.False(t, joypad.Up)
	assert.True(t, joypad.P14)
	assert.True(t, joypad.P15)
	assert.False(t, joypad.HasJoypadInterrupt())
}

func TestButtonStateSetting(t *testing.T) {
	joypad := NewJoypad()

	buttons := []Button{ButtonUp, ButtonDown, ButtonLeft, ButtonRight, ButtonA, ButtonB, ButtonSelect, ButtonStart}

	for _, button := range buttons {
		joypad.SetButton(button, true)
		assert.True(t, joypad.IsPressed(button), "button %v should be pressed", button)

		joypad.SetButton(button, false)
		assert.False(t, joypad.IsPressed(button), "button %v should be released", button)
	}
}

func TestInvalidButtonIsIgnored(t *testing.T) {
	joypad := NewJoypad()

	invalid := Button(99)
	joypad.SetButton(invalid, true)
	assert.False(t, joypad.IsPressed(invalid))
}

func TestJoypadInterrupt(t *testing.T) {
	joypad := NewJoypad()

	assert.False(t, joypad.HasJoypadInterrupt())

	joypad.SetButton(ButtonA, true)
	assert.True(t, joypad.HasJoypadInterrupt())

	joypad.ClearJoypadInterrupt()
	assert.False(t, joypad.HasJoypadInterrupt())

	joypad.SetButton(ButtonA, false)
	assert.False(t, joypad.HasJoypadInterrupt())

	joypad.SetButton(ButtonA, false)
	assert.False(t, joypad.HasJoypadInterrupt())
}

func TestReadJoypadNoSelection(t *testing.T) {
	joypad := NewJoypad()

	joypad.P14 = true
	joypad.P15 = true

	assert.Equal(t, uint8(0xFF), joypad.ReadJoypad())
}

func TestReadJoypadDirectionButtons(t *testing.T) {
	joypad := NewJoypad()

	joypad.P14 = false
	joypad.P15 = true

	assert.Equal(t, uint8(0xEF), joypad.ReadJoypad())

	joypad.SetButton(ButtonRight, true)
	assert.Equal(t, uint8(0xEE), joypad.ReadJoypad())

	joypad.SetButton(ButtonLeft, true)
	assert.Equal(t, uint8(0xEC), joypad.ReadJoypad())

	joypad.SetButton(ButtonUp, true)
	assert.Equal(t, uint8(0xE8), joypad.ReadJoypad())

	joypad.SetButton(ButtonDown, true)
	assert.Equal(t, uint8(0xE0), joypad.ReadJoypad())
}

func TestReadJoypadActionButtons(t *testing.T) {
	joypad := NewJoypad()

	joypad.P14 = true
	joypad.P15 = false

	assert.Equal(t, uint8(0xDF), joypad.ReadJoypad())

	joypad.SetButton(ButtonA, true)
	assert.Equal(t, uint8(0xDE), joypad.ReadJoypad())

	joypad.SetButton(ButtonB, true)
	assert.Equal(t, uint8(0xDC), joypad.ReadJoypad())

	joypad.SetButton(ButtonSelect, true)
	assert.Equal(t, uint8(0xD8), joypad.ReadJoypad())

	joypad.SetButton(ButtonStart, true)
	assert.Equal(t, uint8(0xD0), joypad.ReadJoypad())
}

func TestReadJoypadBothLinesSelected(t *testing.T) {
	joypad := NewJoypad()

	joypad.P14 = false
	joypad.P15 = false

	joypad.SetButton(ButtonUp, true)
	joypad.SetButton(ButtonA, true)

	assert.Equal(t, uint8(0xCA), joypad.ReadJoypad())
}

func TestWriteJoypad(t *testing.T) {
	joypad := NewJoypad()

	assert.True(t, joypad.P14)
	assert.True(t, joypad.P15)

	joypad.WriteJoypad(0x20)
	assert.False(t, joypad.P14)
	assert.True(t, joypad.P15)

	joypad.WriteJoypad(0x10)
	assert.True(t, joypad.P14)
	assert.False(t, joypad.P15)

	joypad.WriteJoypad(0x00)
	assert.False(t, joypad.P14)
	assert.False(t, joypad.P15)

	joypad.WriteJoypad(0x30)
	assert.True(t, joypad.P14)
	assert.True(t, joypad.P15)
}

func TestWriteJoypadDoesNotAffectButtons(t *testing.T) {
	joypad := NewJoypad()

	joypad.SetButton(ButtonA, true)
	joypad.SetButton(ButtonUp, true)

	joypad.WriteJoypad(0x0F)

	assert.True(t, joypad.A)
	assert.True(t, joypad.Up)
}

func TestMemoryInterface(t *testing.T) {
	joypad := NewJoypad()

	assert.True(t, IsJoypadRegister(JoypadAddr))
	assert.False(t, IsJoypadRegister(0xFF01))
	assert.False(t, IsJoypadRegister(0xFEFF))

	joypad.P14 = false
	assert.Equal(t, joypad.ReadJoypad(), joypad.ReadRegister(JoypadAddr))

	assert.Equal(t, uint8(0xFF), joypad.ReadRegister(0xFF01))

	joypad.WriteRegister(JoypadAddr, 0x20)
	assert.False(t, joypad.P14)
	assert.True(t, joypad.P15)

	originalP14, originalP15 := joypad.P14, joypad.P15
	joypad.WriteRegister(0xFF01, 0x00)
	assert.Equal(t, originalP14, joypad.P14)
	assert.Equal(t, originalP15, joypad.P15)
}

func TestDirectionButtonHelpers(t *testing.T) {
	joypad := NewJoypad()

	assert.Equal(t, uint8(0x00), joypad.GetDirectionButtonsByte())

	joypad.SetButton(ButtonRight, true)
	joypad.SetButton(ButtonUp, true)

	assert.Equal(t, uint8(0x05), joypad.GetDirectionButtonsByte())

	joypad.SetDirectionButtons(0x0A)

	assert.False(t, joypad.Right)
	assert.True(t, joypad.Left)
	assert.False(t, joypad.Up)
	assert.True(t, joypad.Down)
}

func TestActionButtonHelpers(t *testing.T) {
	joypad := NewJoypad()

	assert.Equal(t, uint8(0x00), joypad.GetActionButtonsByte())

	joypad.SetButton(ButtonA, true)
	joypad.SetButton(ButtonSelect, true)

	assert.Equal(t, uint8(0x05), joypad.GetActionButtonsByte())

	joypad.SetActionButtons(0x0A)

	assert.False(t, joypad.A)
	assert.True(t, joypad.B)
	assert.False(t, joypad.Select)
	assert.True(t, joypad.Start)
}

func TestButtonMatrix(t *testing.T) {
	joypad := NewJoypad()

	joypad.SetButton(ButtonUp, true)
	joypad.SetButton(ButtonRight, true)
	joypad.SetButton(ButtonA, true)
	joypad.SetButton(ButtonStart, true)

	joypad.P14 = false
	joypad.P15 = true
	assert.Equal(t, uint8(0xEA), joypad.ReadJoypad())

	joypad.P14 = true
	joypad.P15 = false
	assert.Equal(t, uint8(0xD6), joypad.ReadJoypad())

	joypad.P14 = true
	joypad.P15 = true
	assert.Equal(t, uint8(0xFF), joypad.ReadJoypad())
}

func TestEdgeCases(t *testing.T) {
	joypad := NewJoypad()

	joypad.SetButton(ButtonA, true)
	assert.True(t, joypad.HasJoypadInterrupt())

	joypad.SetButton(ButtonB, true)
	assert.True(t, joypad.HasJoypadInterrupt())

	joypad.ClearJoypadInterrupt()
	assert.False(t, joypad.HasJoypadInterrupt())

	joypad.SetButton(ButtonA, false)
	joypad.SetButton(ButtonB, false)
	assert.False(t, joypad.HasJoypadInterrupt())
}
