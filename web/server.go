// Copyright 2025 Raglab Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package web

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/raglab/docqa"
)

// Server exposes the answer pipeline over HTTP: a localized form page and a
// single ask endpoint. Pipeline executions are bounded by a worker pool of
// the configured concurrency; a submission blocks until a worker is free.
type Server struct {
	engine *docqa.Engine
	bundle Bundle
	pool   *ants.Pool
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates the HTTP layer around an engine.
func NewServer(engine *docqa.Engine) (*Server, error) {
	pool, err := ants.NewPool(engine.Config().Concurrency)
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		engine: engine,
		bundle: BundleFor(engine.Config().Lang),
		pool:   pool,
		router: router,
		logger: slog.Default().With("component", "web"),
	}

	router.GET("/", s.indexHandler)
	router.POST("/ask", s.askHandler)
	router.GET("/healthz", s.healthHandler)

	return s, nil
}

// Router returns the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves HTTP on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("serving", "addr", addr, "concurrency", s.engine.Config().Concurrency)
	return s.router.Run(addr)
}

// Release shuts down the worker pool.
// The server should not be used after calling Release.
func (s *Server) Release() {
	s.pool.Release()
}

type askRequest struct {
	Question string `form:"question" json:"question"`
}

type askResponse struct {
	Answer   string `json:"answer"`
	Document string `json:"document"`
}

func (s *Server) indexHandler(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(c.Writer, s.bundle); err != nil {
		s.logger.Error("error rendering index page", "err", err)
	}
}

// askHandler is the outermost request boundary: it is the only place where
// pipeline failures are caught broadly and converted into the localized
// fallback answer. The process keeps serving after a failed request.
func (s *Server) askHandler(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	ctx := c.Request.Context()
	type outcome struct {
		answer      string
		highlighted string
		err         error
	}

	done := make(chan outcome, 1)
	if err := s.pool.Submit(func() {
		answer, highlighted, err := s.engine.Answer(ctx, req.Question)
		done <- outcome{answer: answer, highlighted: highlighted, err: err}
	}); err != nil {
		s.logger.Error("error submitting request to worker pool", "err", err)
		c.JSON(http.StatusOK, askResponse{Answer: s.bundle.Fallback})
		return
	}

	result := <-done
	if result.err != nil {
		s.logger.Error("error answering question",
			"question_length", len(req.Question),
			"err", result.err)
		c.JSON(http.StatusOK, askResponse{Answer: s.bundle.Fallback})
		return
	}

	c.JSON(http.StatusOK, askResponse{
		Answer:   result.answer,
		Document: result.highlighted,
	})
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
textarea { width: 100%; min-height: 4rem; }
mark { background: #fde047; }
#document { white-space: pre-wrap; border-top: 1px solid #ccc; margin-top: 1.5rem; padding-top: 1rem; }
</style>
</head>
<body>
<h2>{{.Title}}</h2>
<p>{{.Intro}}</p>
<form id="ask">
<label>{{.QuestionLabel}}</label><br>
<textarea name="question" placeholder="{{.Placeholder}}"></textarea><br>
<button type="submit">{{.Submit}}</button>
</form>
<h3>{{.AnswerLabel}}</h3>
<div id="answer"></div>
<h3>{{.ContextLabel}}</h3>
<div id="document"></div>
<script>
document.getElementById('ask').addEventListener('submit', async (e) => {
  e.preventDefault();
  const body = new FormData(e.target);
  const res = await fetch('/ask', { method: 'POST', body: body });
  const data = await res.json();
  document.getElementById('answer').textContent = data.answer;
  document.getElementById('document').innerHTML = data.document;
});
</script>
</body>
</html>
`))
