package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"cafe/internal/core/util"
)

// UploadStore keeps uploaded menu images on local disk. Stored files are
// addressed by their relative path "uploads/<name>", which is also the URL
// path they are served under.
type UploadStore struct {
	dir      string
	maxWidth uint
}

// NewUploadStore creates dir if needed. PNG and JPEG images wider than
// maxWidth are scaled down on save; maxWidth 0 disables scaling.
func NewUploadStore(dir string, maxWidth uint) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload dir")
	}
	return &UploadStore{dir: dir, maxWidth: maxWidth}, nil
}

func (s *UploadStore) Dir() string {
	return s.dir
}

// Save writes content under a unique name derived from originalName and
// returns the relative path to store on the menu item.
func (s *UploadStore) Save(originalName string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", errors.Wrap(err, "read upload")
	}

	data = s.shrink(data)

	name := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], cleanName(originalName))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", errors.Wrap(err, "write upload")
	}
	return util.UploadPrefix + name, nil
}

// Remove deletes the file behind a relative upload path. A file that is
// already gone is not an error.
func (s *UploadStore) Remove(relPath string) error {
	if !util.IsLocalUpload(relPath) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove upload")
	}
	return nil
}

// shrink re-encodes oversized PNG/JPEG images at maxWidth. Anything it cannot
// decode is kept byte for byte.
func (s *UploadStore) shrink(data []byte) []byte {
	if s.maxWidth == 0 {
		return data
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || uint(cfg.Width) <= s.maxWidth {
		return data
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	resized := resize.Resize(s.maxWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, resized)
	case "jpeg":
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85})
	default:
		return data
	}
	if err != nil {
		zap.L().Warn("failed to re-encode upload, keeping original", zap.String("format", format), zap.Error(err))
		return data
	}
	return buf.Bytes()
}

func cleanName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Join(strings.Fields(name), "-")
	if name == "" || name == "." || name == "/" {
		return "image"
	}
	return name
}
