package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConversionError_StatusCode(t *testing.T) {
	cases := []struct {
		err  *ConversionError
		want int
	}{
		{NewFormatUnrecognizedError("file.png"), http.StatusBadRequest},
		{NewTargetUnsupportedError("html"), http.StatusBadRequest},
		{NewIdenticalFormatsError(FormatPDF), http.StatusBadRequest},
		{NewPathNotImplementedError(FormatPDF, FormatWord), http.StatusBadRequest},
		{NewExtractionError(FormatPDF, errors.New("boom")), http.StatusInternalServerError},
		{NewRenderError(FormatWord, errors.New("boom")), http.StatusInternalServerError},
		{NewStagingError(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := c.err.StatusCode(); got != c.want {
			t.Errorf("%s: expected status %d, got %d", c.err.Kind, c.want, got)
		}
	}
}

func TestConversionError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewStagingError(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the cause")
	}
}

func TestIdenticalFormatsError_CarriesFormats(t *testing.T) {
	err := NewIdenticalFormatsError(FormatCSV)
	if err.Source != FormatCSV || err.Target != FormatCSV {
		t.Fatalf("expected both formats to be csv, got %s -> %s", err.Source, err.Target)
	}
}
