//go:build windows

// Package wininput injects relative mouse and keyboard input into the local desktop.
package wininput

import (
	"fmt"
	"unicode/utf16"

	"github.com/lxn/win"
)

// virtualKeys maps single special keys to virtual key codes.
var virtualKeys = map[Key]uint16{
	KeyEnter:     win.VK_RETURN,
	KeyBackspace: win.VK_BACK,
	KeyDelete:    win.VK_DELETE,
	KeyTab:       win.VK_TAB,
	KeyEscape:    win.VK_ESCAPE,
	KeyLeft:      win.VK_LEFT,
	KeyRight:     win.VK_RIGHT,
	KeyUp:        win.VK_UP,
	KeyDown:      win.VK_DOWN,
	KeyHome:      win.VK_HOME,
	KeyEnd:       win.VK_END,
}

// TypeUnicode types Unicode text into the focused window.
func (w *WinInjector) TypeUnicode(text string) error {
	if text == "" {
		return nil
	}
	for _, code := range utf16.Encode([]rune(text)) {
		if err := sendKeyboardInput(win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE}); err != nil {
			return err
		}
		if err := sendKeyboardInput(win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE | win.KEYEVENTF_KEYUP}); err != nil {
			return err
		}
	}
	return nil
}

// PressKey presses and releases a special key.
func (w *WinInjector) PressKey(k Key) error {
	if k == KeySelectAll {
		return selectAll()
	}
	vk, ok := virtualKeys[k]
	if !ok {
		return fmt.Errorf("unknown key %d", k)
	}
	if err := sendKeyboardInput(win.KEYBDINPUT{WVk: vk}); err != nil {
		return err
	}
	return sendKeyboardInput(win.KEYBDINPUT{WVk: vk, DwFlags: win.KEYEVENTF_KEYUP})
}

// selectAll sends Ctrl+A, releasing Ctrl even when the A press fails.
func selectAll() error {
	if err := sendKeyboardInput(win.KEYBDINPUT{WVk: win.VK_CONTROL}); err != nil {
		return err
	}
	if err := sendKeyboardInput(win.KEYBDINPUT{WVk: uint16('A')}); err != nil {
		_ = sendKeyboardInput(win.KEYBDINPUT{WVk: win.VK_CONTROL, DwFlags: win.KEYEVENTF_KEYUP})
		return err
	}
	if err := sendKeyboardInput(win.KEYBDINPUT{WVk: uint16('A'), DwFlags: win.KEYEVENTF_KEYUP}); err != nil {
		_ = sendKeyboardInput(win.KEYBDINPUT{WVk: win.VK_CONTROL, DwFlags: win.KEYEVENTF_KEYUP})
		return err
	}
	return sendKeyboardInput(win.KEYBDINPUT{WVk: win.VK_CONTROL, DwFlags: win.KEYEVENTF_KEYUP})
}
