//go:build ocr

package extractor

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/otiai10/gosseract/v2"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"outliner/internal/outline"
	"outliner/internal/pipeline"
)

// ocrSource recognizes text on the page images of a scanned PDF. Images are
// pulled out per page with pdfcpu so each recognized line keeps an exact page
// number, then fed through Tesseract. Requires the "ocr" build tag and a
// system Tesseract install; without the tag the stub in ocr_stub.go is used.
type ocrSource struct {
	path string
	lang string
	log  *slog.Logger
}

func newOCRSource(path, lang string, log *slog.Logger) pipeline.Source {
	return &ocrSource{path: path, lang: lang, log: log}
}

func (s *ocrSource) Observations(ctx context.Context) ([]outline.Observation, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	pageCount, err := api.PageCount(f, nil)
	f.Close()
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()
	if s.lang != "" {
		if err := client.SetLanguage(s.lang); err != nil {
			return nil, err
		}
	}

	tmpDir, err := os.MkdirTemp("", "outliner-ocr-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	var obs []outline.Observation
	order := 0
	for pageNr := 1; pageNr <= pageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// One page at a time keeps the image-to-page mapping exact.
		if err := api.ExtractImagesFile(s.path, tmpDir, []string{strconv.Itoa(pageNr)}, nil); err != nil {
			if s.log != nil {
				s.log.Warn("image extraction failed", "page", pageNr, "error", err)
			}
			continue
		}

		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			imgPath := filepath.Join(tmpDir, entry.Name())
			text, err := s.recognize(ctx, client, imgPath)
			os.Remove(imgPath)
			if err != nil {
				if s.log != nil {
					s.log.Warn("ocr failed", "page", pageNr, "image", entry.Name(), "error", err)
				}
				continue
			}
			for _, line := range strings.Split(text, "\n") {
				line = outline.NormalizeText(line)
				if len([]rune(line)) < 3 {
					continue
				}
				order++
				obs = append(obs, outline.Observation{
					Text:  line,
					Page:  pageNr,
					Order: order,
				})
			}
		}
	}
	return obs, nil
}

// recognize runs Tesseract on one image with bounded retries. The engine
// occasionally fails transiently on large images; retrying here keeps the
// retry policy at the collaborator boundary, outside classification logic.
func (s *ocrSource) recognize(ctx context.Context, client *gosseract.Client, imgPath string) (string, error) {
	var text string
	err := retry.Do(
		func() error {
			if err := client.SetImage(imgPath); err != nil {
				return err
			}
			t, err := client.Text()
			if err != nil {
				return err
			}
			text = t
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
	)
	return strings.TrimSpace(text), err
}
