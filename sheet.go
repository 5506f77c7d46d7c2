package bgstrip

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/wbrown/bgstrip/imageutil"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	sheetCell     = 160
	sheetLabel    = 20
	sheetPad      = 8
	sheetColumns  = 3
	sheetFontSize = 12.0
	checkerSize   = 8
)

var (
	checkerLight = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	checkerDark  = color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
)

var loadLabelFont = sync.OnceValues(func() (*truetype.Font, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("error parsing font: %w", err)
	}
	return f, nil
})

// ContactSheet lays out a thumbnail of every candidate on a checker
// background, labelled with its tolerance and hole count. The selected
// tolerance is marked with an asterisk.
func ContactSheet(cands []Candidate, selected Candidate) (*image.NRGBA, error) {
	sorted := SortCandidates(cands)
	if len(sorted) == 0 {
		return nil, ErrNoSelection
	}
	f, err := loadLabelFont()
	if err != nil {
		return nil, err
	}

	cols := min(sheetColumns, len(sorted))
	rows := (len(sorted) + cols - 1) / cols
	tileW := sheetCell + sheetPad
	tileH := sheetCell + sheetLabel + sheetPad
	sheet := image.NewNRGBA(image.Rect(0, 0, cols*tileW+sheetPad, rows*tileH+sheetPad))
	draw.Draw(sheet, sheet.Bounds(), image.White, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(sheetFontSize)
	ctx.SetClip(sheet.Bounds())
	ctx.SetDst(sheet)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)

	for i, c := range sorted {
		x0 := sheetPad + (i%cols)*tileW
		y0 := sheetPad + (i/cols)*tileH
		cell := image.Rect(x0, y0, x0+sheetCell, y0+sheetCell)
		drawChecker(sheet, cell)

		if c.Image != nil {
			thumb := imageutil.Fit(c.Image, sheetCell, sheetCell, imageutil.InterpolationNearest)
			tb := thumb.Bounds()
			off := image.Pt(x0+(sheetCell-tb.Dx())/2, y0+(sheetCell-tb.Dy())/2)
			draw.Draw(sheet, tb.Sub(tb.Min).Add(off), thumb, tb.Min, draw.Over)
		}

		label := fmt.Sprintf("%g%%  holes=%d", c.Tolerance, c.Holes)
		if c.Tolerance == selected.Tolerance {
			label += " *"
		}
		pt := freetype.Pt(x0, y0+sheetCell+sheetLabel-5)
		if _, err := ctx.DrawString(label, pt); err != nil {
			return nil, fmt.Errorf("drawing label: %w", err)
		}
	}
	return sheet, nil
}

func drawChecker(dst *image.NRGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := checkerLight
			if ((x-r.Min.X)/checkerSize+(y-r.Min.Y)/checkerSize)%2 == 1 {
				c = checkerDark
			}
			dst.SetNRGBA(x, y, c)
		}
	}
}
