// Package gif renders the games played in an arena as an animated GIF, one frame per move.
package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/menace/game"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi        = 144.0
	fontsize   = 12.0
	lineheight = 1.2

	cell = 48 // side of a cell, in pixels
	pad  = 10

	moveDelay = 50  // hundredths of a second
	endDelay  = 300 // hundredths of a second
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var palette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

// Encoder collects frames of games. Nothing is written until Flush is called.
type Encoder struct {
	io.Writer
	font.Drawer

	out        *gif.GIF
	w, h       int
	lineHeight int
}

// NewEncoder creates an Encoder that writes to w when flushed.
func NewEncoder(w io.Writer) *Encoder {
	face := truetype.NewFace(regular, &truetype.Options{
		Size:    fontsize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	lh := int(math.Ceil(fontsize * lineheight * dpi / 72))
	return &Encoder{
		Writer: w,
		Drawer: font.Drawer{
			Src:  image.Black,
			Face: face,
		},
		out:        &gif.GIF{LoopCount: -1},
		lineHeight: lh,
	}
}

// Encode draws the current board of the meta state, with the name of the game, its number and, once it is over,
// the winner.
func (enc *Encoder) Encode(ms game.MetaState) error {
	s := ms.State()
	if s == nil {
		return errors.New("Cannot encode a nil state")
	}
	rows, cols := s.BoardSize()
	if enc.w == 0 {
		header := fmt.Sprintf("%s #%d", ms.Name(), ms.GameNumber())
		enc.w = maxInt(cols*cell, font.MeasureString(enc.Face, header).Ceil()) + 2*pad
		enc.h = rows*cell + 3*enc.lineHeight + 2*pad
	}

	im := image.NewPaletted(image.Rect(0, 0, enc.w, enc.h), palette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	enc.Dst = im

	y := pad + enc.lineHeight
	enc.text(pad, y, fmt.Sprintf("%s #%d", ms.Name(), ms.GameNumber()))

	top := y + pad
	enc.grid(im, rows, cols, top)
	for i, c := range s.Board() {
		if c == game.None {
			continue
		}
		r, col := i/cols, i%cols
		glyph := fmt.Sprintf("%s", c)
		gw := font.MeasureString(enc.Face, glyph).Ceil()
		x := pad + col*cell + (cell-gw)/2
		enc.text(x, top+r*cell+(cell+enc.lineHeight/2)/2, glyph)
	}

	delay := moveDelay
	if ended, winner := s.Ended(); ended {
		delay = endDelay
		result := "Tie"
		if winner != game.Player(game.None) {
			result = fmt.Sprintf("Winner: %s", winner)
		}
		enc.text(pad, top+rows*cell+enc.lineHeight, result)
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Flush writes every frame collected so far.
func (enc *Encoder) Flush() error {
	if len(enc.out.Image) == 0 {
		return errors.New("No frames to write")
	}
	return errors.WithStack(gif.EncodeAll(enc.Writer, enc.out))
}

// Frames is the number of frames collected.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

func (enc *Encoder) text(x, y int, s string) {
	enc.Dot = fixed.P(x, y)
	enc.DrawString(s)
}

// grid draws the inner lines of a rows×cols board whose top edge is at top.
func (enc *Encoder) grid(im *image.Paletted, rows, cols, top int) {
	black := palette[0]
	for c := 1; c < cols; c++ {
		x := pad + c*cell
		for y := top; y < top+rows*cell; y++ {
			im.Set(x, y, black)
		}
	}
	for r := 1; r < rows; r++ {
		y := top + r*cell
		for x := pad; x < pad+cols*cell; x++ {
			im.Set(x, y, black)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
