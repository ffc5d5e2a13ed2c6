// Package storage provides the image upload gateway. A configured
// backend (S3-compatible object store or Cloudinary) accepts image
// bytes and returns a publicly fetchable URL.
package storage

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Uploader stores a single image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error)
}

// File is one pending upload.
type File struct {
	Name        string
	ContentType string
	Body        io.Reader
	Size        int64
}

// UploadAll pushes all files to the backend concurrently, mirroring the
// dashboard's save flow where every newly attached image uploads in
// parallel. Individual failures are logged and dropped — the record
// simply ends up with fewer images than were selected. Surviving URLs
// are returned in input order.
func UploadAll(ctx context.Context, up Uploader, files []File) []string {
	urls := make([]string, len(files))

	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f := files[i]
			url, err := up.Upload(ctx, f.Name, f.ContentType, f.Body, f.Size)
			if err != nil {
				slog.Warn("image upload failed", "file", f.Name, "error", err)
				return
			}
			urls[i] = url
		}(i)
	}
	wg.Wait()

	out := make([]string, 0, len(files))
	for _, u := range urls {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}
