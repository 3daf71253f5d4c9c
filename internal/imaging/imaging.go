// Package imaging enforces the rules an uploaded content image must meet.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
)

// MaxSizeKB is the upload cap in kilobytes.
const MaxSizeKB = 5048

var allowed = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

var (
	ErrTooLarge   = fmt.Errorf("The image field must not be greater than %d kilobytes.", MaxSizeKB)
	ErrType       = errors.New("The image field must be a file of type: jpeg, png, jpg, gif, webp.")
	ErrNotAnImage = errors.New("The image field must be an image.")
	ErrUnreadable = errors.New("The image failed to upload.")
)

// Info describes an accepted image.
type Info struct {
	MIME   string
	Ext    string
	Width  int
	Height int
	Size   int64
}

// Filename swaps the extension of name for the one matching the detected
// format, so a PNG uploaded as "photo.jpg" is stored as "photo.png".
func (i Info) Filename(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" || base == "." {
		base = "image"
	}
	return base + i.Ext
}

// Check validates fh and returns what it found. The returned errors carry
// client facing messages.
func Check(fh *multipart.FileHeader) (Info, error) {
	if fh.Size > MaxSizeKB*1024 {
		return Info{}, ErrTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return Info{}, ErrUnreadable
	}
	defer f.Close()

	return check(f, fh.Size)
}

func check(r io.Reader, size int64) (Info, error) {
	// a little over the cap so oversize bodies with a lying header are caught
	data, err := io.ReadAll(io.LimitReader(r, MaxSizeKB*1024+1))
	if err != nil {
		return Info{}, ErrUnreadable
	}
	if int64(len(data)) > MaxSizeKB*1024 {
		return Info{}, ErrTooLarge
	}

	mt := mimetype.Detect(data)
	if _, ok := allowed[mt.String()]; !ok {
		if strings.HasPrefix(mt.String(), "image/") {
			return Info{}, ErrType
		}
		return Info{}, ErrNotAnImage
	}

	// a valid header is not enough, the whole body has to decode
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Info{}, ErrNotAnImage
	}
	bounds := img.Bounds()

	if size <= 0 {
		size = int64(len(data))
	}
	return Info{
		MIME:   mt.String(),
		Ext:    mt.Extension(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Size:   size,
	}, nil
}
