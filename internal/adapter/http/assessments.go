package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/couchcryptid/quake-impact-service/internal/domain"
	"github.com/couchcryptid/quake-impact-service/internal/export"
)

const maxRequestBytes = 1 << 20

// assessmentRequest is the POST /v1/assessments body. Omitting buildings
// selects the service roster.
type assessmentRequest struct {
	Scenario  domain.Scenario   `json:"scenario"`
	Buildings []domain.Building `json:"buildings,omitempty"`
}

func (s *Server) handleAssessments(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req assessmentRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	for i := range req.Buildings {
		if t, err := domain.ParseStructuralType(string(req.Buildings[i].Type)); err == nil {
			req.Buildings[i].Type = t
		}
	}

	report, err := s.assessor.Assess(r.Context(), req.Scenario, req.Buildings)
	switch {
	case errors.Is(err, domain.ErrInvalidScenario), errors.Is(err, domain.ErrInvalidBuilding):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		s.logger.Error("assessment failed", "error", err, "scenario_id", req.Scenario.ID)
		writeError(w, http.StatusInternalServerError, "assessment failed")
		return
	}

	var body bytes.Buffer
	if err := export.Write(&body, format, report); err != nil {
		s.logger.Error("render report failed", "error", err, "format", format)
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(body.Bytes()) //nolint:errcheck // client may have gone away
}
