package domain

import "testing"

func TestLookupFormat_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"pdf", "PDF", " Pdf "} {
		info, ok := LookupFormat(name)
		if !ok {
			t.Fatalf("expected %q to resolve", name)
		}
		if info.Name != FormatPDF {
			t.Fatalf("expected pdf, got %s", info.Name)
		}
	}
}

func TestLookupFormat_Unknown(t *testing.T) {
	if _, ok := LookupFormat("html"); ok {
		t.Fatalf("expected html to be unknown")
	}
}

func TestLookupExtension(t *testing.T) {
	cases := []struct {
		ext  string
		want Format
	}{
		{".pdf", FormatPDF},
		{".xlsx", FormatExcel},
		{".xls", FormatExcel},
		{".csv", FormatCSV},
		{".docx", FormatWord},
		{".doc", FormatWord},
		{".txt", FormatTXT},
		{".XLSX", FormatExcel},
	}
	for _, c := range cases {
		info, ok := LookupExtension(c.ext)
		if !ok {
			t.Errorf("expected %q to resolve", c.ext)
			continue
		}
		if info.Name != c.want {
			t.Errorf("extension %q: expected %s, got %s", c.ext, c.want, info.Name)
		}
	}

	if _, ok := LookupExtension(".png"); ok {
		t.Errorf("expected .png to be unknown")
	}
}

func TestFormatTable_ExtensionsDisjoint(t *testing.T) {
	seen := make(map[string]Format)
	for _, info := range AllFormats() {
		if len(info.Extensions) == 0 {
			t.Errorf("format %s has no extensions", info.Name)
		}
		for _, ext := range info.Extensions {
			if prev, ok := seen[ext]; ok {
				t.Errorf("extension %q claimed by both %s and %s", ext, prev, info.Name)
			}
			seen[ext] = info.Name
		}
	}
}

func TestFormat_MediaType(t *testing.T) {
	if got := FormatCSV.MediaType(); got != "text/csv" {
		t.Errorf("expected text/csv, got %s", got)
	}
	if got := Format("nope").MediaType(); got != "" {
		t.Errorf("expected empty media type for unknown format, got %s", got)
	}
}
