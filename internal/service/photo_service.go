package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"io"

	"file-converter/internal/domain"
	apperrors "file-converter/pkg/errors"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Print sheet geometry: A4 at 300 DPI holding 35x45 mm passport tiles
// with a fixed gap between them.
const (
	tileWidth   = 295
	tileHeight  = 413
	tileGap     = 5
	sheetWidth  = 2480
	sheetHeight = 3508

	maxSheetCopies   = 30
	sheetJPEGQuality = 95
)

// SheetBuilder tiles copies of one photo onto a white A4 print sheet
// and persists the result. The photo is center-cropped to passport
// aspect before scaling so faces are never distorted.
type SheetBuilder struct {
	storage domain.SheetStorage
	logger  domain.Logger
}

// NewSheetBuilder creates a new passport sheet service
func NewSheetBuilder(storage domain.SheetStorage, logger domain.Logger) *SheetBuilder {
	return &SheetBuilder{
		storage: storage,
		logger:  logger,
	}
}

// BuildSheet generates the sheet and returns its public URL along with
// the number of tiles actually placed. Copies beyond the sheet's
// capacity are dropped rather than spilling onto a second page.
func (s *SheetBuilder) BuildSheet(ctx context.Context, photo io.Reader, copies int) (*domain.SheetResult, error) {
	if copies < 1 || copies > maxSheetCopies {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("copies must be between 1 and %d", maxSheetCopies))
	}

	src, _, err := image.Decode(photo)
	if err != nil {
		return nil, apperrors.NewValidationError("uploaded file is not a decodable image", err.Error())
	}

	tile := makeTile(src)

	cols := sheetWidth / (tileWidth + tileGap)
	rows := sheetHeight / (tileHeight + tileGap)
	placed := copies
	if capacity := cols * rows; placed > capacity {
		placed = capacity
	}

	sheet := image.NewRGBA(image.Rect(0, 0, sheetWidth, sheetHeight))
	xdraw.Draw(sheet, sheet.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	// Rows touch disjoint regions of the sheet, so they can be drawn
	// concurrently.
	g, _ := errgroup.WithContext(ctx)
	for row := 0; row*cols < placed; row++ {
		row := row
		g.Go(func() error {
			for col := 0; col < cols; col++ {
				idx := row*cols + col
				if idx >= placed {
					return nil
				}
				x := col * (tileWidth + tileGap)
				y := row * (tileHeight + tileGap)
				rect := image.Rect(x, y, x+tileWidth, y+tileHeight)
				xdraw.Draw(sheet, rect, tile, image.Point{}, xdraw.Src)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.NewInternalError("failed to compose sheet", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, sheet, &jpeg.Options{Quality: sheetJPEGQuality}); err != nil {
		return nil, apperrors.NewInternalError("failed to encode sheet", err)
	}

	name := fmt.Sprintf("sheet_%s.jpg", uuid.New().String())
	url, err := s.storage.Save(ctx, name, buf.Bytes())
	if err != nil {
		return nil, apperrors.NewInternalError("failed to store sheet", err)
	}

	s.logger.Info("passport sheet generated", "name", name, "placed", placed)

	return &domain.SheetResult{URL: url, Placed: placed}, nil
}

// makeTile center-crops the source to passport aspect and scales it to
// the tile dimensions.
func makeTile(src image.Image) *image.RGBA {
	crop := centerCrop(src.Bounds(), tileWidth, tileHeight)
	tile := image.NewRGBA(image.Rect(0, 0, tileWidth, tileHeight))
	xdraw.CatmullRom.Scale(tile, tile.Bounds(), src, crop, xdraw.Src, nil)
	return tile
}

// centerCrop returns the largest sub-rectangle of bounds with the given
// aspect ratio, centered.
func centerCrop(bounds image.Rectangle, aspectW, aspectH int) image.Rectangle {
	w := bounds.Dx()
	h := bounds.Dy()

	cropW := w
	cropH := w * aspectH / aspectW
	if cropH > h {
		cropH = h
		cropW = h * aspectW / aspectH
	}

	x0 := bounds.Min.X + (w-cropW)/2
	y0 := bounds.Min.Y + (h-cropH)/2
	return image.Rect(x0, y0, x0+cropW, y0+cropH)
}
