// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reads and rewrites existing PDF files. Inspection
// (page count, page dimensions, validation) is delegated to pdfcpu; the
// overlay rewrite imports each source page as a template and draws the
// planned images on top of it.
package document

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdfstamp/internal/images"
	"github.com/pdiddy/pdfstamp/internal/placement"
)

// A4 dimensions in points, used when a page carries no MediaBox.
const (
	a4Width  = 595.28
	a4Height = 841.89
)

// Info describes an input document.
type Info struct {
	Pages int
	Dims  []placement.PageSize
}

// Inspect returns the page count and per-page dimensions of a PDF. A
// missing file surfaces the fs.ErrNotExist from the stat.
func Inspect(path string) (Info, error) {
	if _, err := os.Stat(path); err != nil {
		return Info{}, fmt.Errorf("opening document: %w", err)
	}

	count, err := api.PageCountFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("reading %s: %w", path, err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("reading page dimensions of %s: %w", path, err)
	}

	sizes := make([]placement.PageSize, len(dims))
	for i, d := range dims {
		sizes[i] = placement.PageSize{W: d.Width, H: d.Height}
	}
	if len(sizes) != count {
		return Info{}, fmt.Errorf("reading %s: %d pages but %d page dimensions", path, count, len(sizes))
	}
	return Info{Pages: count, Dims: sizes}, nil
}

// Validate runs pdfcpu validation against a PDF file.
func Validate(path string) error {
	return api.ValidateFile(path, model.NewDefaultConfiguration())
}

// Stamp rebuilds src with the planned placements drawn over the original
// page content and writes the result to dst. Pages are processed strictly
// in ascending order; nothing is written if any page fails.
func Stamp(src, dst string, logos map[string]*images.Logo, placements []placement.Placement, pageCount int, progress io.Writer) (err error) {
	// gofpdi reports malformed input by panicking.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("importing pages from %s: %v", src, r)
		}
	}()

	byPage := make(map[int][]placement.Placement, pageCount)
	for _, pl := range placements {
		byPage[pl.Page] = append(byPage[pl.Page], pl)
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	imp := gofpdi.NewImporter()

	for i := 1; i <= pageCount; i++ {
		tplID, pw, ph := importPage(pdf, imp, src, i)
		if pw == 0 || ph == 0 {
			pw, ph = a4Width, a4Height
		}

		pdf.AddPageFormat("P", fpdf.SizeType{Wd: pw, Ht: ph})
		imp.UseImportedTemplate(pdf, tplID, 0, 0, pw, ph)

		for _, pl := range byPage[i] {
			logo, ok := logos[pl.Logo]
			if !ok {
				return fmt.Errorf("page %d references unloaded image %q", i, pl.Logo)
			}
			drawLogo(pdf, logo, pl.Rect)
		}

		fmt.Fprintf(progress, "  page %d/%d\n", i, pageCount)
	}

	if pdf.Err() {
		return fmt.Errorf("stamping %s: %w", src, pdf.Error())
	}
	return writeFile(pdf, dst)
}

// importPage imports a single source page and returns its template ID and
// MediaBox dimensions.
func importPage(pdf *fpdf.Fpdf, imp *gofpdi.Importer, sourceFile string, pageNum int) (tplID int, w, h float64) {
	tplID = imp.ImportPage(pdf, sourceFile, pageNum, "/MediaBox")
	sizes := imp.GetPageSizes()
	if dims, ok := sizes[pageNum]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w = mb["w"]
			h = mb["h"]
		}
	}
	return
}

// drawLogo draws the image into the rectangle on the current page,
// compositing over the imported page content.
func drawLogo(pdf *fpdf.Fpdf, logo *images.Logo, r placement.Rect) {
	opt := fpdf.ImageOptions{ImageType: logo.Type}
	pdf.RegisterImageOptionsReader(logo.Path, opt, bytes.NewReader(logo.Data))
	pdf.ImageOptions(logo.Path, r.X, r.Y, r.W, r.H, false, opt, 0, "")
}

func writeFile(pdf *fpdf.Fpdf, path string) error {
	// OutputFileAndClose propagates the close error, so a failed flush
	// (full disk) surfaces instead of leaving a truncated file behind a
	// nil return.
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
