package cli

import (
	"context"
	"mime"
	"os"
	"path/filepath"

	"gaadi/contexts/marketplace/listing-engine/ports"
)

// fileSource adapts a filesystem path to the image source port. The declared
// media type comes from the file extension, mirroring how a picked browser
// file carries its MIME type.
type fileSource struct {
	path string
}

func (f fileSource) Name() string {
	return filepath.Base(f.path)
}

func (f fileSource) ContentType() string {
	return mime.TypeByExtension(filepath.Ext(f.path))
}

func (f fileSource) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(f.path)
}

// FileSources normalizes a set of paths into image sources, the same shape a
// picker or drop event would produce.
func FileSources(paths []string) []ports.ImageSource {
	sources := make([]ports.ImageSource, 0, len(paths))
	for _, path := range paths {
		sources = append(sources, fileSource{path: path})
	}
	return sources
}
