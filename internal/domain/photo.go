package domain

import (
	"context"
	"io"
)

// SheetResult describes a generated passport sheet.
type SheetResult struct {
	URL    string `json:"sheet_url"`
	Placed int    `json:"placed"`
}

// PhotoSheetService lays out copies of one photo onto a print sheet.
type PhotoSheetService interface {
	BuildSheet(ctx context.Context, photo io.Reader, copies int) (*SheetResult, error)
}

// SheetStorage persists a generated sheet and returns its public URL.
type SheetStorage interface {
	Save(ctx context.Context, name string, content []byte) (string, error)
}
