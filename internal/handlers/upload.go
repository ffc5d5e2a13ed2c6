package handlers

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/BlackZ36/Meibeichi/internal/storage"
)

// maxUploadBytes caps a single upload request. Product photos are phone
// camera shots, well under this.
const maxUploadBytes = 50 << 20

// allowedImageTypes are the content types accepted for product photos,
// keyed by what http.DetectContentType reports.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Upload accepts one or more image files as multipart form data under
// the "file" field, stores them on the configured backend, and returns
// the public URLs. Files that fail type sniffing or upload are skipped;
// the response only lists the URLs that made it.
func (a *API) Upload(w http.ResponseWriter, r *http.Request) {
	if a.uploader == nil {
		writeError(w, http.StatusServiceUnavailable, "image storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid upload request")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}

	var files []storage.File
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			slog.Warn("open upload", "filename", fh.Filename, "error", err)
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			slog.Warn("read upload", "filename", fh.Filename, "error", err)
			continue
		}

		contentType := http.DetectContentType(data)
		if !allowedImageTypes[contentType] {
			slog.Warn("rejected upload", "filename", fh.Filename, "content_type", contentType)
			continue
		}

		files = append(files, storage.File{
			Name:        fh.Filename,
			ContentType: contentType,
			Body:        bytes.NewReader(data),
			Size:        int64(len(data)),
		})
	}

	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "no usable image in upload")
		return
	}

	urls := storage.UploadAll(r.Context(), a.uploader, files)
	if urls == nil {
		urls = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"urls": urls})
}
