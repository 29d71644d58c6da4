package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/viewalign/pkg/buildinfo"
	"github.com/matzehuels/viewalign/pkg/errors"
	"github.com/matzehuels/viewalign/pkg/layout"
	"github.com/matzehuels/viewalign/pkg/pipeline"
	"github.com/matzehuels/viewalign/pkg/scene"
)

type baseRequest struct {
	Scene json.RawMessage `json:"scene"`
	Apply bool            `json:"apply,omitempty"`
}

type alignRequest struct {
	baseRequest
	Mode     string   `json:"mode"`
	MinGapMM *float64 `json:"min_gap_mm,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"`
}

type orientRequest struct {
	baseRequest
	BaseID    string   `json:"base_id"`
	TargetIDs []string `json:"target_ids,omitempty"`
	Refresh   bool     `json:"refresh,omitempty"`
}

type tagsRequest struct {
	baseRequest
	Vertical bool `json:"vertical,omitempty"`
}

type planResponse struct {
	Plan      scene.Plan   `json:"plan"`
	SceneHash string       `json:"scene_hash"`
	CacheHit  bool         `json:"cache_hit"`
	Scene     *scene.Scene `json:"scene,omitempty"`
}

type modeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MinObjects  int    `json:"min_objects"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleModes(w http.ResponseWriter, _ *http.Request) {
	var out []modeInfo
	for _, m := range layout.Modes() {
		out = append(out, modeInfo{Name: m.String(), Description: m.Description(), MinObjects: m.MinObjects()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAlign(w http.ResponseWriter, r *http.Request) {
	var req alignRequest
	sc, ok := s.decode(w, r, &req, &req.baseRequest)
	if !ok {
		return
	}
	gap := s.cfg.Defaults.Align.MinGapMM
	if req.MinGapMM != nil {
		gap = *req.MinGapMM
	}
	res, err := s.runner.Align(r.Context(), sc, pipeline.Options{
		Mode:    req.Mode,
		MinGap:  gap,
		Unit:    s.cfg.Defaults.Align.Unit,
		Refresh: req.Refresh,
		Logger:  s.logger.With("id", RequestID(r.Context())),
	})
	s.respond(w, sc, req.Apply, res, err)
}

func (s *Server) handleOrient(w http.ResponseWriter, r *http.Request) {
	var req orientRequest
	sc, ok := s.decode(w, r, &req, &req.baseRequest)
	if !ok {
		return
	}
	res, err := s.runner.Orient(r.Context(), sc, pipeline.OrientOptions{
		BaseID:    req.BaseID,
		TargetIDs: req.TargetIDs,
		Refresh:   req.Refresh,
		Logger:    s.logger.With("id", RequestID(r.Context())),
	})
	s.respond(w, sc, req.Apply, res, err)
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	var req tagsRequest
	sc, ok := s.decode(w, r, &req, &req.baseRequest)
	if !ok {
		return
	}
	res, err := s.runner.AlignTags(r.Context(), sc, pipeline.TagOptions{
		Vertical: req.Vertical,
		Refresh:  req.Refresh,
		Logger:   s.logger.With("id", RequestID(r.Context())),
	})
	s.respond(w, sc, req.Apply, res, err)
}

// decode reads the body into req and parses the embedded scene.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, req any, base *baseRequest) (scene.Scene, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request"))
		return scene.Scene{}, false
	}
	if len(base.Scene) == 0 {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "request has no scene"))
		return scene.Scene{}, false
	}
	sc, err := scene.Unmarshal(base.Scene)
	if err != nil {
		writeError(w, err)
		return scene.Scene{}, false
	}
	return sc, true
}

func (s *Server) respond(w http.ResponseWriter, sc scene.Scene, apply bool, res *pipeline.Result, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	out := planResponse{Plan: res.Plan, SceneHash: res.SceneHash, CacheHit: res.CacheHit}
	if apply {
		applied, err := scene.ApplyPlan(sc, res.Plan)
		if err != nil {
			writeError(w, err)
			return
		}
		out.Scene = &applied
	}
	writeJSON(w, http.StatusOK, out)
}
