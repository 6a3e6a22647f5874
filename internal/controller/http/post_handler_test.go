package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fanbase/internal/entity"
	"fanbase/internal/repo/persistent"
	"fanbase/internal/usecase"
	"fanbase/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of usecase.PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) Create(post *entity.Post) (*entity.Post, error) {
	args := m.Called(post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetByID(viewerID, id string) (*entity.FeedItem, error) {
	args := m.Called(viewerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeedItem), args.Error(1)
}

func (m *MockPostUseCase) List(filter persistent.PostListFilter, page, limit int) ([]*entity.Post, int64, error) {
	args := m.Called(filter, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostUseCase) Update(userID string, post *entity.Post) (*entity.Post, error) {
	args := m.Called(userID, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdateStatus(userID, postID string, status entity.PostStatus) error {
	args := m.Called(userID, postID, status)
	return args.Error(0)
}

func (m *MockPostUseCase) Delete(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockPostUseCase) ToggleLike(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostUseCase) ToggleBookmark(userID, itemID string, kind entity.FeedItemKind) (bool, error) {
	args := m.Called(userID, itemID, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostUseCase) Purchase(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockPostUseCase) Tip(userID, postID string, amount float64) error {
	args := m.Called(userID, postID, amount)
	return args.Error(0)
}

func (m *MockPostUseCase) MarkNotInterested(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockPostUseCase) UploadMedia(userID, filename string, file io.Reader, contentType string) (string, error) {
	args := m.Called(userID, filename, file, contentType)
	return args.String(0), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func authAs(userID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		handler(c)
	}
}

func TestLikePost_Like(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", authAs("user-123", handler.LikePost))

	mockUseCase.On("ToggleLike", "user-123", "post-123").Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post liked", response["message"])
	assert.Equal(t, true, response["liked"])

	mockUseCase.AssertExpectations(t)
}

func TestLikePost_Unlike(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", authAs("user-123", handler.LikePost))

	mockUseCase.On("ToggleLike", "user-123", "post-123").Return(false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-123/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post unliked", response["message"])
	assert.Equal(t, false, response["liked"])

	mockUseCase.AssertExpectations(t)
}

func TestLikePost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", authAs("user-123", handler.LikePost))

	mockUseCase.On("ToggleLike", "user-123", "post-gone").Return(false, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-gone/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_InvalidType(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", authAs("creator-123", handler.CreatePost))

	body := `{"title":"Hello","type":"HOLOGRAM"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Create")
}

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", authAs("creator-123", handler.CreatePost))

	created := &entity.Post{
		ID:               "post-1",
		UserID:           "creator-123",
		Title:            "Hello",
		Type:             entity.PostTypeText,
		Status:           entity.PostStatusActive,
		AccessIdentifier: entity.AccessFree,
	}
	mockUseCase.On("Create", mock.MatchedBy(func(p *entity.Post) bool {
		return p.UserID == "creator-123" && p.Title == "Hello" && p.Type == entity.PostTypeText
	})).Return(created, nil)

	body := `{"title":"Hello","type":"TEXT"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response entity.Post
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "post-1", response.ID)
	mockUseCase.AssertExpectations(t)
}

func TestGetPost_WithViewerFlags(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id", authAs("viewer-1", handler.GetPost))

	item := &entity.FeedItem{
		Kind:    entity.FeedItemPost,
		Post:    &entity.Post{ID: "post-1", UserID: "creator-1"},
		IsLiked: true,
	}
	mockUseCase.On("GetByID", "viewer-1", "post-1").Return(item, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["is_liked"])
	mockUseCase.AssertExpectations(t)
}

func TestDeletePost_Forbidden(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", authAs("intruder", handler.DeletePost))

	mockUseCase.On("Delete", "intruder", "post-1").Return(usecase.ErrForbidden)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/posts/post-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPurchasePost_InsufficientFunds(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/purchase", authAs("user-123", handler.PurchasePost))

	mockUseCase.On("Purchase", "user-123", "post-1").Return(usecase.ErrInsufficientFunds)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/purchase", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPurchasePost_AlreadyPurchased(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/purchase", authAs("user-123", handler.PurchasePost))

	mockUseCase.On("Purchase", "user-123", "post-1").Return(usecase.ErrAlreadyPurchased)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/purchase", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestBookmarkItem_DefaultsToPostKind(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/bookmark", authAs("user-123", handler.BookmarkItem))

	mockUseCase.On("ToggleBookmark", "user-123", "post-1", entity.FeedItemPost).Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/bookmark", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Bookmarked", response["message"])
	mockUseCase.AssertExpectations(t)
}

func TestTipPost_RequiresPositiveAmount(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/tip", authAs("user-123", handler.TipPost))

	body := `{"amount":0}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/tip", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Tip")
}

func TestNewPostHandler(t *testing.T) {
	handler := NewPostHandler(new(MockPostUseCase), logger.New())
	assert.NotNil(t, handler)
}
