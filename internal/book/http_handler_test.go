package book

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"catalogapi/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) (*HTTPHandler, *MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := NewMockRepository(ctrl)
	return NewHTTPHandler(NewService(repo)), repo
}

func TestHTTPHandler_Create(t *testing.T) {
	payload := map[string]string{"title": "As aventuras", "author": "Artur", "isbn": "001"}

	t.Run("created", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().ExistsByISBN(gomock.Any(), "001").Return(false, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(Book{ID: 10, Title: "As aventuras", Author: "Artur", ISBN: "001"}, nil)

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/v1/books", payload))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusCreated, resp.Code)
		data, ok := resp.Body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(10), data["id"])
		assert.Equal(t, "001", data["isbn"])
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().ExistsByISBN(gomock.Any(), "001").Return(true, nil)

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/v1/books", payload))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		errBody, ok := resp.Body["error"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "DUPLICATE_ISBN", errBody["code"])
		assert.Equal(t, "isbn already registered", errBody["message"])
	})

	t.Run("missing required fields", func(t *testing.T) {
		handler, _ := newHandler(t)

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/v1/books", map[string]string{"title": "only a title"}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		errBody, ok := resp.Body["error"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", errBody["code"])
		details, ok := errBody["details"].([]interface{})
		require.True(t, ok)
		assert.Len(t, details, 2) // isbn and author
	})

	t.Run("invalid json", func(t *testing.T) {
		handler, _ := newHandler(t)

		w := httptest.NewRecorder()
		handler.Create(w, httptest.NewRequest(http.MethodPost, "/v1/books", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(Book{ID: 10, Title: "As aventuras"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/10", nil)
		r.SetPathValue("id", "10")
		handler.GetByID(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/10", nil)
		r.SetPathValue("id", "10")
		handler.GetByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		handler, _ := newHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/abc", nil)
		r.SetPathValue("id", "abc")
		handler.GetByID(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	payload := map[string]string{"title": "Updated", "author": "Artur", "isbn": "001"}

	t.Run("updated", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().Save(gomock.Any(), Book{ID: 10, Title: "Updated", Author: "Artur", ISBN: "001"}).
			Return(Book{ID: 10, Title: "Updated", Author: "Artur", ISBN: "001"}, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/v1/books/10", payload)
		r.SetPathValue("id", "10")
		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/v1/books/10", payload)
		r.SetPathValue("id", "10")
		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/v1/books/10", nil)
		r.SetPathValue("id", "10")
		handler.Delete(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().Delete(gomock.Any(), int64(10)).Return(ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/v1/books/10", nil)
		r.SetPathValue("id", "10")
		handler.Delete(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Find(t *testing.T) {
	t.Run("filters and paginates", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().
			FindByExample(gomock.Any(), Filter{Title: "avent"}, PageRequest{Page: 0, Size: 10}).
			Return([]Book{{ID: 1, Title: "As aventuras"}}, 1, nil)

		w := httptest.NewRecorder()
		handler.Find(w, httptest.NewRequest(http.MethodGet, "/v1/books?title=avent&page=1&page_size=10", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		meta, ok := resp.Body["meta"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(1), meta["total"])
		assert.Equal(t, float64(1), meta["page"])
		assert.Equal(t, float64(10), meta["page_size"])
	})

	t.Run("empty result is a page, not an error", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().FindByExample(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, 0, nil)

		w := httptest.NewRecorder()
		handler.Find(w, httptest.NewRequest(http.MethodGet, "/v1/books?isbn=none", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		data, ok := resp.Body["data"].([]interface{})
		require.True(t, ok, "data should be an empty list, not null")
		assert.Empty(t, data)
	})

	t.Run("storage error", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().FindByExample(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, 0, assert.AnError)

		w := httptest.NewRecorder()
		handler.Find(w, httptest.NewRequest(http.MethodGet, "/v1/books", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
