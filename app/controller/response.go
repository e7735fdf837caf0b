package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"linedori-web/repository"
	"linedori-web/service"
)

// maxFormMemory is the multipart size kept in memory before spilling to disk
const maxFormMemory = 32 << 20

// writeJSON encodes v with status
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

// writeError maps service and repository errors to an HTTP status
func writeError(w http.ResponseWriter, action string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrEmailTaken):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	}
	if status == http.StatusInternalServerError {
		log.Printf("❌ Failed to %s: %v", action, err)
	} else {
		log.Printf("⚠️  Failed to %s: %v", action, err)
	}
	http.Error(w, fmt.Sprintf("Failed to %s: %v", action, err), status)
}

// parseForm parses a multipart or urlencoded form
func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}

// formBool reads a checkbox-like field; empty means false
func formBool(r *http.Request, key string) (bool, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", service.ErrInvalidInput, key)
	}
	return b, nil
}

// formOptionalInt reads an optional integer field
func formOptionalInt(r *http.Request, key string) (*int, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" || v == "null" || v == "undefined" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", service.ErrInvalidInput, key)
	}
	return &n, nil
}

// formFiles reads every file sent under key
func formFiles(r *http.Request, key string) ([]service.FileUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	var uploads []service.FileUpload
	for _, fh := range r.MultipartForm.File[key] {
		up, err := readFileHeader(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, up)
	}
	return uploads, nil
}

// formFile reads the first file sent under key, nil when absent
func formFile(r *http.Request, key string) (*service.FileUpload, error) {
	files, err := formFiles(r, key)
	if err != nil || len(files) == 0 {
		return nil, err
	}
	return &files[0], nil
}

func readFileHeader(fh *multipart.FileHeader) (service.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return service.FileUpload{}, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return service.FileUpload{}, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err)
	}
	return service.FileUpload{Filename: fh.Filename, Data: data}, nil
}

// formList reads a repeated field sent as key[] or key, or as one JSON array.
// Returns nil when the field is absent.
func formList(r *http.Request, key string) ([]string, error) {
	var values []string
	var present bool
	for _, k := range []string{key + "[]", key} {
		if v, ok := r.Form[k]; ok {
			values = append(values, v...)
			present = true
		}
	}
	if !present {
		return nil, nil
	}
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var list []string
		if err := json.Unmarshal([]byte(values[0]), &list); err != nil {
			return nil, fmt.Errorf("%w: %s is not a JSON array", service.ErrInvalidInput, key)
		}
		return list, nil
	}
	list := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list, nil
}
