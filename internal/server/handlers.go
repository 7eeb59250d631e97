package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/resume-layout/internal/layout"
	"github.com/jonathan/resume-layout/internal/rendering"
	"github.com/jonathan/resume-layout/internal/schemas"
	"github.com/jonathan/resume-layout/internal/templates"
	"github.com/jonathan/resume-layout/internal/types"
)

// maxDocumentBytes caps the request body for /render.
const maxDocumentBytes = 4 << 20

// RenderRequest is the request body for /render. The document is the host
// editor's resume JSON; template and format are optional.
type RenderRequest struct {
	Document   json.RawMessage `json:"document"`
	TemplateID string          `json:"templateId,omitempty"`
	Format     string          `json:"format,omitempty"`
}

// TemplateSummary is one entry in the /templates listing.
type TemplateSummary struct {
	ID     string                    `json:"id"`
	Label  string                    `json:"label"`
	Layout templates.LayoutArchetype `json:"layout"`
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListTemplates lists the registered templates.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	var summaries []TemplateSummary
	for _, cfg := range templates.All() {
		summaries = append(summaries, TemplateSummary{
			ID:     cfg.ID,
			Label:  cfg.Label,
			Layout: cfg.Layout,
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": summaries})
}

// handleGetTemplate returns one template's full configuration. Unknown ids
// resolve to the default template, mirroring the library behavior.
func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	cfg := templates.Get(r.PathValue("id"))
	s.jsonResponse(w, http.StatusOK, cfg)
}

// handleRender runs the full layout pipeline on the posted document and
// returns the result in the requested format: the page tree as JSON
// (default), rendered HTML, or printed PDF bytes.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	var req RenderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Document) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "document is required")
		return
	}

	if err := schemas.ValidateResumeDocument(req.Document); err != nil {
		var valErr *schemas.ValidationError
		if errors.As(err, &valErr) {
			s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "document failed schema validation",
				"fields": valErr.Errors,
			})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Schema validation failed: "+err.Error())
		return
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(req.Document, &doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+err.Error())
		return
	}
	doc.EnsureItemIDs()

	tree := layout.Render(&doc, req.TemplateID)

	switch req.Format {
	case "", "tree":
		s.jsonResponse(w, http.StatusOK, map[string]any{"tree": tree})

	case "html":
		htmlDoc, err := s.htmlRenderer.Render(tree)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "HTML rendering failed: "+err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, htmlDoc)

	case "pdf":
		htmlDoc, err := s.htmlRenderer.Render(tree)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "HTML rendering failed: "+err.Error())
			return
		}
		pdf, err := rendering.PrintPDF(r.Context(), htmlDoc, rendering.PrintOptions{Timeout: s.printTimeout})
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "PDF printing failed: "+err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", rendering.OutputBaseName(&doc)+".pdf"))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdf); err != nil {
			return
		}

	default:
		s.errorResponse(w, http.StatusBadRequest, "Unknown format: "+req.Format)
	}
}
