package qr

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/muurk/netstatus/internal/logging"
)

// Placeholder is encoded whenever the real payload cannot be.
const Placeholder = `{"status": "waiting"}`

// librarySideQuiet is the border go-qrcode adds around a symbol, in modules.
const librarySideQuiet = 4

// ErrEncodingUnavailable is logged when a payload cannot be turned into a
// symbol (empty or over capacity).
var ErrEncodingUnavailable = errors.New("qr encoding unavailable")

// Encoder produces module matrices.
type Encoder struct {
	Level qrcode.RecoveryLevel
}

// NewEncoder returns an encoder at Medium recovery, the level the payload
// sizes were chosen for.
func NewEncoder() *Encoder {
	return &Encoder{Level: qrcode.Medium}
}

// Encode returns the symbol for text, or the placeholder symbol when text
// cannot be encoded. It never returns nil.
func (e *Encoder) Encode(text string) *Matrix {
	m, err := e.encode(text)
	if err == nil {
		return m
	}
	logging.Warn("QR payload not encodable, using placeholder",
		zap.Error(err),
		zap.Int("payload_length", len(text)),
	)

	if m, err := e.encode(Placeholder); err == nil {
		return m
	}
	return blankMatrix()
}

func (e *Encoder) encode(text string) (*Matrix, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrEncodingUnavailable)
	}
	code, err := qrcode.New(text, e.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingUnavailable, err)
	}
	code.DisableBorder = true
	return NewMatrix(stripBorder(code.Bitmap(), code.VersionNumber)), nil
}

// stripBorder removes the library quiet zone if it is still present.
func stripBorder(bitmap [][]bool, version int) [][]bool {
	n := 17 + 4*version
	if len(bitmap) != n+2*librarySideQuiet {
		return bitmap
	}
	inner := bitmap[librarySideQuiet : librarySideQuiet+n]
	out := make([][]bool, n)
	for y, row := range inner {
		out[y] = row[librarySideQuiet : librarySideQuiet+n]
	}
	return out
}
