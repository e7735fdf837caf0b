package controller

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linedori-web/repository"
	"linedori-web/service"
)

func TestWriteError_Status(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("project x: %w", repository.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: title is required", service.ErrInvalidInput), http.StatusBadRequest},
		{service.ErrEmailTaken, http.StatusBadRequest},
		{service.ErrUnauthorized, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		writeError(rec, "do things", tt.err)
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
		assert.Contains(t, rec.Body.String(), "Failed to do things")
	}
}

func TestFormList(t *testing.T) {
	form := url.Values{"existingImages[]": {"/uploads/b.jpg", "/uploads/a.jpg"}}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, parseForm(r))
	list, err := formList(r, "existingImages")
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/b.jpg", "/uploads/a.jpg"}, list)

	form = url.Values{"existingImages": {`["/uploads/x.jpg"]`}}
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, parseForm(r))
	list, err = formList(r, "existingImages")
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/x.jpg"}, list)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, parseForm(r))
	list, err = formList(r, "existingImages")
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestDecodeProjectForm(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("title", "House")
	mw.WriteField("category", "Architecture")
	mw.WriteField("toHomePage", "true")
	mw.WriteField("homePageOrder", "3")
	mw.WriteField("existingImages[]", "/uploads/a.jpg")
	fw, _ := mw.CreateFormFile("images", "one.png")
	fw.Write([]byte("png"))
	fw, _ = mw.CreateFormFile("pdfFile", "specs.pdf")
	fw.Write([]byte("%PDF"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	in, uploads, err := decodeProjectForm(r)
	require.NoError(t, err)
	assert.Equal(t, "House", in.Title)
	assert.True(t, in.ToHomePage)
	assert.False(t, in.IsPrior)
	require.NotNil(t, in.HomePageOrder)
	assert.Equal(t, 3, *in.HomePageOrder)
	assert.Equal(t, []string{"/uploads/a.jpg"}, in.ExistingImages)
	require.Len(t, uploads.Images, 1)
	assert.Equal(t, "one.png", uploads.Images[0].Filename)
	require.NotNil(t, uploads.PDF)
	assert.Nil(t, uploads.Video)
}

func TestDecodeProjectForm_BadOrder(t *testing.T) {
	form := url.Values{"title": {"x"}, "homePageOrder": {"first"}}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	_, _, err := decodeProjectForm(r)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
