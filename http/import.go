package http

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"kbase"

	"github.com/google/uuid"
)

// MaxUploadBytes caps the in-memory portion of multipart parsing.
const MaxUploadBytes = 32 << 20

// handleImport handles POST /api/import.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req kbase.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, kbase.Errorf(kbase.EINVALID, "invalid JSON body"))
		return
	}

	result, err := s.Importer.ImportText(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleUpload handles POST /api/upload. The request is multipart form
// data with the document under "file"; remaining form fields mirror the
// import request. The upload is staged as a temp artifact that is removed
// whether or not extraction succeeds.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		s.writeError(w, r, kbase.Errorf(kbase.EINVALID, "invalid multipart request"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, kbase.Errorf(kbase.EINVALID, "file field is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, kbase.Errorf(kbase.EINTERNAL, "failed to read upload: %v", err))
		return
	}

	artifact, err := stageArtifact(header.Filename, data)
	if err != nil {
		s.writeError(w, r, kbase.Errorf(kbase.EINTERNAL, "failed to stage upload: %v", err))
		return
	}
	defer os.Remove(artifact)

	mode := r.FormValue("mode")
	if mode == "" {
		mode = kbase.ModeSingle
	}

	req, err := importRequestFromForm(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.Importer.ImportFile(r.Context(), header.Filename, data, mode, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// stageArtifact writes the upload to a uniquely named temp file and
// returns its path. The caller removes it.
func stageArtifact(filename string, data []byte) (string, error) {
	name := uuid.NewString() + filepath.Ext(filename)
	path := filepath.Join(os.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// importRequestFromForm reads import settings from multipart form values.
func importRequestFromForm(r *http.Request) (kbase.ImportRequest, error) {
	req := kbase.ImportRequest{
		Format:   kbase.SplitFormat(r.FormValue("format")),
		Marker:   r.FormValue("marker"),
		Prefix:   r.FormValue("prefix"),
		Category: r.FormValue("category"),
		Status:   r.FormValue("status"),
	}

	if raw := r.FormValue("start"); raw != "" {
		start, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || start < 1 {
			return req, kbase.Errorf(kbase.EINVALID, "invalid start %q", raw)
		}
		req.Start = start
	}

	if raw := r.FormValue("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				req.Tags = append(req.Tags, tag)
			}
		}
	}

	return req, nil
}
