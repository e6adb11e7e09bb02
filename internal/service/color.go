package service

import (
	"crypto/sha256"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// emptyNameColor is the fixed grey for a blank group name.
const emptyNameColor = "#BDBDBDB4"

// CategoryColor derives a stable RGBA hex color from a category group
// name. The low 24 bits of the name's SHA-256 digest pick a hue; the
// saturation, value and alpha are fixed so the palette stays muted and
// consistent across machines.
func CategoryColor(group string) string {
	if group == "" {
		return emptyNameColor
	}

	digest := sha256.Sum256([]byte(group))
	hue := float64((int(digest[29])<<16 | int(digest[30])<<8 | int(digest[31])) % 360)

	r, g, b := colorful.Hsv(hue, 0.6, 0.8).RGB255()
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, 0xCC)
}
