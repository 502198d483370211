package reader

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	_ "golang.org/x/image/tiff"

	"github.com/tsawler/structura/providers"
)

// Images implements providers.ImageProvider. Raster images on the page
// are extracted via pdfcpu, measured, and filtered to those whose pixel
// area exceeds providers.MinChartArea so decorative icons are excluded.
// When no image directory is configured the extracted files are
// discarded after measurement and no path is reported.
func (r *Reader) Images(ctx context.Context, pageNum int) ([]providers.ImageRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if pageNum < 1 || pageNum > r.pageCount {
		return nil, fmt.Errorf("page %d out of range 1..%d", pageNum, r.pageCount)
	}

	dir := r.imageDir
	persist := dir != ""
	if !persist {
		tmp, err := os.MkdirTemp("", "structura-images-")
		if err != nil {
			return nil, fmt.Errorf("failed to create scratch dir: %w", err)
		}
		dir = tmp
		defer os.RemoveAll(tmp)
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}

	if err := api.ExtractImagesFile(r.path, dir, []string{strconv.Itoa(pageNum)}, nil); err != nil {
		return nil, fmt.Errorf("image extraction failed for page %d: %w", pageNum, err)
	}

	paths, err := imageFilesForPage(dir, pageNum)
	if err != nil {
		return nil, err
	}

	var refs []providers.ImageRef
	for _, path := range paths {
		width, height, err := measureImage(path)
		if err != nil {
			// Unreadable formats are skipped, not fatal.
			continue
		}
		area := width * height
		if area <= providers.MinChartArea {
			if persist {
				os.Remove(path)
			}
			continue
		}

		ref := providers.ImageRef{Width: width, Height: height}
		if pageArea := r.pageArea(pageNum); pageArea > 0 {
			ref.AreaPercent = float64(area) / pageArea * 100
		}
		if persist {
			ref.Path = path
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

// imageFilesForPage lists the files pdfcpu wrote for the given page.
// pdfcpu names extracted images "<base>_<page>_<id>.<ext>".
func imageFilesForPage(dir string, pageNum int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list extracted images: %w", err)
	}

	marker := fmt.Sprintf("_%d_", pageNum)
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.Contains(entry.Name(), marker) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// measureImage decodes just the image header to get pixel dimensions.
func measureImage(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
