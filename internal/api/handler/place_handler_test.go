package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yourplaces/places-api/internal/core/domain"
	"github.com/yourplaces/places-api/internal/core/ports"
)

// stubPlaceService returns canned results and records the inputs it received.
type stubPlaceService struct {
	place     *domain.Place
	places    []domain.Place
	err       error
	createdIn ports.CreatePlaceInput
	updatedIn ports.UpdatePlaceInput
	deletedID string
}

func (s *stubPlaceService) GetPlace(_ context.Context, _ string) (*domain.Place, error) {
	return s.place, s.err
}

func (s *stubPlaceService) ListByOwner(_ context.Context, _ string) ([]domain.Place, error) {
	return s.places, s.err
}

func (s *stubPlaceService) CreatePlace(_ context.Context, in ports.CreatePlaceInput) (*domain.Place, error) {
	s.createdIn = in
	return s.place, s.err
}

func (s *stubPlaceService) UpdatePlace(_ context.Context, in ports.UpdatePlaceInput) (*domain.Place, error) {
	s.updatedIn = in
	return s.place, s.err
}

func (s *stubPlaceService) DeletePlace(_ context.Context, placeID, _ string) error {
	s.deletedID = placeID
	return s.err
}

// stubFileStore records saves and removals without touching the filesystem.
type stubFileStore struct {
	saved   []string
	removed []string
	saveErr error
}

func (s *stubFileStore) Save(_ io.Reader, filename string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	path := "uploads/images/" + filename
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *stubFileStore) Remove(path string) error {
	s.removed = append(s.removed, path)
	return nil
}

func newTestContext(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// multipartBody builds a multipart form with the given fields and an optional
// "image" file part.
func multipartBody(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if withImage {
		part, err := w.CreateFormFile("image", "photo.png")
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write([]byte("png-bytes")); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func samplePlace() *domain.Place {
	return &domain.Place{
		ID:          "place_1",
		Title:       "Empire State Building",
		Description: "Famous skyscraper",
		Address:     "20 W 34th St, New York",
		Location:    domain.Location{Lat: 40.748, Lng: -73.985},
		Image:       "uploads/images/photo.png",
		OwnerID:     "user_1",
	}
}

func TestPlaceHandler_Get_Success(t *testing.T) {
	svc := &stubPlaceService{place: samplePlace()}
	h := NewPlaceHandler(svc, &stubFileStore{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(t, req)
	c.SetParamNames("placeId")
	c.SetParamValues("place_1")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got placeEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Place.ID != "place_1" || got.Place.Creator != "user_1" {
		t.Fatalf("unexpected body: %+v", got.Place)
	}
}

func TestPlaceHandler_Get_NotFoundPropagates(t *testing.T) {
	svc := &stubPlaceService{err: domain.ErrPlaceNotFound}
	h := NewPlaceHandler(svc, &stubFileStore{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, _ := newTestContext(t, req)
	c.SetParamNames("placeId")
	c.SetParamValues("missing")

	err := h.Get(c)
	if !errors.Is(err, domain.ErrPlaceNotFound) {
		t.Fatalf("err = %v, want ErrPlaceNotFound", err)
	}
}

func TestPlaceHandler_ListByUser_EmptyList(t *testing.T) {
	svc := &stubPlaceService{places: nil}
	h := NewPlaceHandler(svc, &stubFileStore{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(t, req)
	c.SetParamNames("userId")
	c.SetParamValues("user_1")

	if err := h.ListByUser(c); err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"places":[]`) {
		t.Fatalf("empty list must serialize as [], got %s", rec.Body.String())
	}
}

func TestPlaceHandler_Create_Success(t *testing.T) {
	svc := &stubPlaceService{place: samplePlace()}
	store := &stubFileStore{}
	h := NewPlaceHandler(svc, store)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Empire State Building",
		"description": "Famous skyscraper",
		"address":     "20 W 34th St, New York",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, rec := newTestContext(t, req)
	c.Set("userID", "user_1")

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.createdIn.OwnerID != "user_1" {
		t.Fatalf("owner from token not forwarded, got %q", svc.createdIn.OwnerID)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one stored upload, got %d", len(store.saved))
	}
	if svc.createdIn.Image != store.saved[0] {
		t.Fatalf("stored path %q not passed to service (got %q)", store.saved[0], svc.createdIn.Image)
	}
}

func TestPlaceHandler_Create_Unauthenticated(t *testing.T) {
	h := NewPlaceHandler(&stubPlaceService{}, &stubFileStore{})

	body, contentType := multipartBody(t, map[string]string{
		"title":       "t",
		"description": "valid description",
		"address":     "a",
	}, true)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, _ := newTestContext(t, req)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401 HTTPError", err)
	}
}

func TestPlaceHandler_Create_InvalidInputs(t *testing.T) {
	store := &stubFileStore{}
	h := NewPlaceHandler(&stubPlaceService{}, store)

	// Description shorter than five characters must be rejected before the
	// upload is touched.
	body, contentType := multipartBody(t, map[string]string{
		"title":       "Empire State Building",
		"description": "tiny",
		"address":     "20 W 34th St",
	}, true)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, _ := newTestContext(t, req)
	c.Set("userID", "user_1")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("err = %v, want 422 HTTPError", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("upload must not be stored on validation failure")
	}
}

func TestPlaceHandler_Create_MissingImage(t *testing.T) {
	h := NewPlaceHandler(&stubPlaceService{}, &stubFileStore{})

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Empire State Building",
		"description": "Famous skyscraper",
		"address":     "20 W 34th St",
	}, false)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, _ := newTestContext(t, req)
	c.Set("userID", "user_1")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("err = %v, want 422 HTTPError", err)
	}
}

func TestPlaceHandler_Create_ServiceFailureRemovesUpload(t *testing.T) {
	svc := &stubPlaceService{err: domain.ErrLocationNotFound}
	store := &stubFileStore{}
	h := NewPlaceHandler(svc, store)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Nowhere",
		"description": "An address that resolves to nothing",
		"address":     "no such street",
	}, true)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, _ := newTestContext(t, req)
	c.Set("userID", "user_1")

	err := h.Create(c)
	if !errors.Is(err, domain.ErrLocationNotFound) {
		t.Fatalf("err = %v, want ErrLocationNotFound", err)
	}
	if len(store.removed) != 1 || store.removed[0] != store.saved[0] {
		t.Fatalf("stored upload must be removed when the request fails, removed=%v", store.removed)
	}
}

func TestPlaceHandler_Update_Success(t *testing.T) {
	svc := &stubPlaceService{place: samplePlace()}
	h := NewPlaceHandler(svc, &stubFileStore{})

	payload := `{"title":"New title","description":"New description"}`
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTestContext(t, req)
	c.SetParamNames("placeId")
	c.SetParamValues("place_1")
	c.Set("userID", "user_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.updatedIn.PlaceID != "place_1" || svc.updatedIn.RequesterID != "user_1" {
		t.Fatalf("ids not forwarded: %+v", svc.updatedIn)
	}
	if svc.updatedIn.Title != "New title" {
		t.Fatalf("title not forwarded: %q", svc.updatedIn.Title)
	}
}

func TestPlaceHandler_Update_NotOwnerPropagates(t *testing.T) {
	svc := &stubPlaceService{err: domain.ErrNotOwner}
	h := NewPlaceHandler(svc, &stubFileStore{})

	payload := `{"title":"New title","description":"New description"}`
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newTestContext(t, req)
	c.SetParamNames("placeId")
	c.SetParamValues("place_1")
	c.Set("userID", "intruder")

	if err := h.Update(c); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}
}

func TestPlaceHandler_Delete_Success(t *testing.T) {
	svc := &stubPlaceService{}
	h := NewPlaceHandler(svc, &stubFileStore{})

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	c, rec := newTestContext(t, req)
	c.SetParamNames("placeId")
	c.SetParamValues("place_1")
	c.Set("userID", "user_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.deletedID != "place_1" {
		t.Fatalf("deletedID = %q, want place_1", svc.deletedID)
	}
	if !strings.Contains(rec.Body.String(), "Deleted place.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
