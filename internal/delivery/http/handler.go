package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopsage/backend/internal/domain"
	"github.com/shopsage/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	shopping *usecase.ShoppingService
	sessions *usecase.SessionStore
}

// NewHandler creates a new HTTP handler
func NewHandler(shopping *usecase.ShoppingService, sessions *usecase.SessionStore) *Handler {
	return &Handler{
		shopping: shopping,
		sessions: sessions,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopsage-backend",
		"version": "1.0.0",
	})
}

// createSessionRequest is the body for CreateSession
type createSessionRequest struct {
	UserName string `json:"userName"`
}

// CreateSession opens a new interaction session and returns a personalized greeting.
func (h *Handler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	// Body is optional; a missing or empty body creates an anonymous session
	_ = c.ShouldBindJSON(&req)

	session := h.sessions.Create(req.UserName)

	c.JSON(http.StatusCreated, newSessionResponse(session))
}

// GetSession returns the current state of a session.
func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(session))
}

// GetQuestions returns the follow-up preference questions for a product category.
func (h *Handler) GetQuestions(c *gin.Context) {
	product := c.Query("product")
	if product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":   product,
		"questions": usecase.FollowUpQuestions(product),
	})
}

// searchRequest is the body for Search. Preferences arrive either as answered
// follow-up questions or as a free-text blob; answers take precedence.
type searchRequest struct {
	BaseProduct    string                   `json:"baseProduct" binding:"required"`
	Answers        []usecase.QuestionAnswer `json:"answers,omitempty"`
	PreferenceText string                   `json:"preferenceText,omitempty"`
}

// Search runs the full shopping flow for a session and stores the outcome on it.
func (h *Handler) Search(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "baseProduct is required"})
		return
	}

	preferenceText := req.PreferenceText
	if len(req.Answers) > 0 {
		preferenceText = usecase.JoinPreferences(req.Answers, session.UserName)
	}

	session.StartSearch(req.BaseProduct, preferenceText)

	result, err := h.shopping.PerformSearch(c.Request.Context(), &domain.SearchRequest{
		BaseProduct:    req.BaseProduct,
		PreferenceText: preferenceText,
		UserName:       session.UserName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	session.CompleteSearch(result)

	c.JSON(http.StatusOK, newSearchResponse(session, result))
}

// GetResults re-renders the stored result of the last search in a session.
func (h *Handler) GetResults(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	if !session.SearchPerformed || session.Result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no search performed yet"})
		return
	}

	c.JSON(http.StatusOK, newSearchResponse(session, session.Result))
}

// ResetSession clears a session back to its pre-search state.
func (h *Handler) ResetSession(c *gin.Context) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	session.Reset()

	c.JSON(http.StatusOK, newSessionResponse(session))
}
