// Package fanboytest provides fakes of the fanboy service for tests: an
// HTTP server speaking the service's JSON API and a scripted transport.
package fanboytest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type cannedResponse struct {
	status int
	body   string
}

// Server is an httptest server imitating the fanboy service.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	terms    []string
	canned   map[string]cannedResponse
	delay    time.Duration
	requests []string
}

// NewServer starts a fake service. Close it when done.
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{canned: make(map[string]cannedResponse)}

	engine := gin.New()
	engine.Use(s.track(), s.cannedResponses(), s.slowDown())
	engine.GET("/", s.version)
	engine.GET("/search/:term", s.search)
	engine.GET("/lookup/:guids", s.lookup)
	engine.GET("/suggest/:term", s.suggest)

	s.Server = httptest.NewServer(engine)
	return s
}

// Respond makes the server answer requests for path with status and a raw
// body, bypassing the regular handlers.
func (s *Server) Respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canned[path] = cannedResponse{status: status, body: body}
}

// SetDelay makes every response wait for d, or until the client goes away.
func (s *Server) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Requests returns the request URIs received so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) track() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.requests = append(s.requests, c.Request.RequestURI)
		s.mu.Unlock()
		c.Next()
	}
}

func (s *Server) cannedResponses() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		r, ok := s.canned[c.Request.URL.Path]
		s.mu.Unlock()
		if !ok {
			c.Next()
			return
		}
		c.Data(r.status, "application/json; charset=utf-8", []byte(r.body))
		c.Abort()
	}
}

func (s *Server) slowDown() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		d := s.delay
		s.mu.Unlock()
		if d <= 0 {
			c.Next()
			return
		}
		select {
		case <-time.After(d):
			c.Next()
		case <-c.Request.Context().Done():
			c.Abort()
		}
	}
}

func (s *Server) version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "fanboy",
		"version": Version,
	})
}

func (s *Server) search(c *gin.Context) {
	term := unquote(c.Param("term"))

	s.mu.Lock()
	s.terms = append(s.terms, strings.ToLower(term))
	s.mu.Unlock()

	needle := strings.ToLower(term)
	results := make([]map[string]any, 0)
	for _, feed := range Feeds {
		title := strings.ToLower(feed["title"].(string))
		author := strings.ToLower(feed["author"].(string))
		if strings.Contains(title, needle) || strings.Contains(author, needle) {
			results = append(results, feed)
		}
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) lookup(c *gin.Context) {
	results := make([]map[string]any, 0)
	for _, guid := range strings.Split(c.Param("guids"), ",") {
		for _, feed := range Feeds {
			if feed["guid"] == guid {
				results = append(results, feed)
			}
		}
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) suggest(c *gin.Context) {
	prefix := strings.ToLower(unquote(c.Param("term")))
	limit, err := strconv.Atoi(c.DefaultQuery("max", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	results := make([]string, 0)
	for i := len(s.terms) - 1; i >= 0 && len(results) < limit; i-- {
		t := s.terms[i]
		if strings.HasPrefix(t, prefix) && !seen[t] {
			seen[t] = true
			results = append(results, t)
		}
	}
	c.JSON(http.StatusOK, results)
}

func unquote(term string) string {
	return strings.ReplaceAll(term, `\"`, `"`)
}
