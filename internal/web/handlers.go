package web

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/yatrakit/yatrakit/internal/normalize"
	"github.com/yatrakit/yatrakit/internal/trip"
)

const (
	maxPromptSize  = 10 << 10 // 10KB
	maxPayloadSize = 1 << 20  // 1MB
	defaultLimit   = 10
	maxLimit       = 50
)

type generateRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "prompt required",
		})
		return
	}
	if len(prompt) > maxPromptSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "prompt exceeds maximum size of 10KB",
		})
		return
	}

	if cached, ok := s.cache.Get(prompt); ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "trip": cached.(trip.Trip)})
		return
	}

	t, err := s.gen.Generate(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	s.store.Persist(t)
	s.cache.Set(prompt, t, cache.DefaultExpiration)

	c.JSON(http.StatusOK, gin.H{"success": true, "trip": t})
}

// handleNormalize coerces an arbitrary JSON payload into a valid trip.
// Malformed bodies are not an error: they normalize to the minimal empty
// trip, same as any other untrusted input.
func (s *Server) handleNormalize(c *gin.Context) {
	prompt := c.Query("prompt")

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPayloadSize))
	if err != nil {
		body = nil
	}

	var raw any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			raw = nil
		}
	}

	t := normalize.Normalize(raw, prompt)
	s.store.Persist(t)

	c.JSON(http.StatusOK, gin.H{"success": true, "trip": t})
}

// handleList serves cursor pagination. The response body is the Page wire
// shape {trips, nextCursor} with no envelope; backends must keep it
// bit-compatible.
func (s *Server) handleList(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var cursor *string
	if v := c.Query("cursor"); v != "" {
		cursor = &v
	}

	c.JSON(http.StatusOK, s.store.Paginate(cursor, limit))
}

func (s *Server) handleLatest(c *gin.Context) {
	t, ok := s.store.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "no trips yet",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trip": t})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
