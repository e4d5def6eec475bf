//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (k *hostKeyboard) poll() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		k.push(KeyEvent{Press: true, Rune: 0x03})
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		k.push(KeyEvent{Press: true, Rune: r})
	}

	for _, key := range []struct {
		ek   ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeyEnter, KeyEnter},
	} {
		if inpututil.IsKeyJustPressed(key.ek) {
			k.push(KeyEvent{Code: key.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(key.ek) {
			k.push(KeyEvent{Code: key.code, Press: false})
		}
	}
}
