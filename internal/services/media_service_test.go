package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"event_admin/internal/models"
	"event_admin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore keeps objects in memory and serves deterministic URLs.
type stubStore struct {
	objects map[string][]byte
	failPut bool
}

func newStubStore() *stubStore {
	return &stubStore{objects: map[string][]byte{}}
}

func (s *stubStore) Put(key string, body []byte, contentType string) error {
	if s.failPut {
		return assert.AnError
	}
	s.objects[key] = body
	return nil
}

func (s *stubStore) PresignURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}
	return "https://media.test/" + key, nil
}

func (s *stubStore) Delete(key string) error {
	delete(s.objects, key)
	return nil
}

func newMediaTestEnv(t *testing.T) (MediaService, *stubStore) {
	t.Helper()
	db := newTestDB(t)
	store := newStubStore()
	return NewMediaService(repository.NewMediaRepository(db), store), store
}

func multipartFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestUploadStoresObjectAndRecord(t *testing.T) {
	svc, store := newMediaTestEnv(t)

	header := multipartFile(t, "venue.jpg", []byte("image-bytes"))
	item, err := svc.Upload(header, "gallery", 1)
	require.NoError(t, err)

	assert.Contains(t, item.Key, "venue.jpg")
	assert.Equal(t, "gallery", item.Category)
	assert.Equal(t, "https://media.test/"+item.Key, item.URL)
	assert.Equal(t, []byte("image-bytes"), store.objects[item.Key])

	fetched, err := svc.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Key, fetched.Key)
	assert.NotEmpty(t, fetched.URL)
}

func TestUploadKeysAreUnique(t *testing.T) {
	svc, _ := newMediaTestEnv(t)

	first, err := svc.Upload(multipartFile(t, "same.jpg", []byte("a")), "gallery", 1)
	require.NoError(t, err)
	second, err := svc.Upload(multipartFile(t, "same.jpg", []byte("b")), "gallery", 1)
	require.NoError(t, err)
	assert.NotEqual(t, first.Key, second.Key)
}

func TestUploadStoreFailureIsRemote(t *testing.T) {
	svc, store := newMediaTestEnv(t)
	store.failPut = true

	_, err := svc.Upload(multipartFile(t, "x.jpg", []byte("a")), "gallery", 1)
	require.ErrorIs(t, err, ErrRemote)

	_, err = svc.Upload(nil, "gallery", 1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeleteRemovesObjectAndRecord(t *testing.T) {
	svc, store := newMediaTestEnv(t)

	item, err := svc.Upload(multipartFile(t, "gone.jpg", []byte("a")), "gallery", 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(item.ID))
	assert.NotContains(t, store.objects, item.Key)

	_, err = svc.Get(item.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetByCategory(t *testing.T) {
	svc, _ := newMediaTestEnv(t)

	_, err := svc.Upload(multipartFile(t, "a.jpg", []byte("a")), "gallery", 1)
	require.NoError(t, err)
	_, err = svc.Upload(multipartFile(t, "b.jpg", []byte("b")), "staff", 1)
	require.NoError(t, err)

	items, err := svc.GetByCategory("gallery")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].URL)
}

func TestStaffPhotoURL(t *testing.T) {
	db := newTestDB(t)
	store := newStubStore()
	mediaService := NewMediaService(repository.NewMediaRepository(db), store)
	staffService := NewStaffService(repository.NewStaffRepository(db), mediaService)

	staff := &models.Staff{Name: "Ngozi", Role: "planner"}
	require.NoError(t, staffService.CreateStaff(staff))

	updated, err := staffService.SetPhoto(staff.ID, "uploads/ngozi.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://media.test/uploads/ngozi.jpg", updated.PhotoURL)
}
