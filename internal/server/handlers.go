package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/opencnc/intake/internal/format"
	"github.com/opencnc/intake/internal/interfaces"
	"github.com/opencnc/intake/internal/material"
	"github.com/opencnc/intake/internal/model"
	"github.com/opencnc/intake/internal/scoring"
)

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// --- HTTP handlers ---

// handleAnalyze godoc
//
//	@Summary	Analyze an uploaded CAD file
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file		formData	file	true	"CAD file to analyze"
//	@Param		material	formData	string	false	"Material slug or label"
//	@Success	200	{object}	model.AnalysisReport
//	@Failure	400	{object}	ErrorResponse
//	@Failure	413	{object}	ErrorResponse
//	@Router		/analyze [post]
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		s.logger.Warn("reading upload", interfaces.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		s.logger.Warn("reading upload body", interfaces.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadRequest, "reading upload failed")
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "file exceeds upload limit")
		return
	}

	req := &model.AnalysisRequest{
		Filename: header.Filename,
		Material: r.FormValue("material"),
		Data:     data,
	}

	report, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		s.logger.Warn("analyzing upload", interfaces.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.feed.Broadcast(report)
	s.logger.Info("analysis served",
		interfaces.Field{Key: "id", Value: report.ID},
		interfaces.Field{Key: "extension", Value: report.Extension},
		interfaces.Field{Key: "known", Value: report.Known})
	writeJSON(w, http.StatusOK, report)
}

// handleListFormats godoc
//
//	@Summary	Compare all supported formats
//	@Produce	json
//	@Success	200	{array}	FormatRow
//	@Router		/formats [get]
func (s *Server) handleListFormats(w http.ResponseWriter, r *http.Request) {
	exts := format.CanonicalExtensions()
	rows := make([]FormatRow, 0, len(exts))
	for _, ext := range exts {
		d, ok := format.Resolve(ext)
		if !ok {
			continue
		}
		risk, conf := scoring.Baseline(d.GeometryClass)
		rows = append(rows, FormatRow{
			Extension:          d.CanonicalExtension,
			DisplayName:        d.DisplayName,
			GeometryClass:      string(d.GeometryClass),
			BaselineRisk:       risk,
			RiskLabel:          scoring.ScoreToBand(risk, model.AxisRisk).Label,
			BaselineConfidence: conf,
			ConfidenceLabel:    scoring.ScoreToBand(conf, model.AxisConfidence).Label,
			Automation:         d.AutomationFriendliness,
			Suitability:        format.Suitability(d.GeometryClass, d.QuoteConfidence),
		})
	}
	// Lowest-risk formats first; alphabetical within a risk tier.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].BaselineRisk != rows[j].BaselineRisk {
			return rows[i].BaselineRisk < rows[j].BaselineRisk
		}
		return rows[i].Extension < rows[j].Extension
	})
	s.logger.Info("listed formats", interfaces.Field{Key: "count", Value: len(rows)})
	writeJSON(w, http.StatusOK, rows)
}

// handleGetFormat godoc
//
//	@Summary	Get the knowledge-base entry for one extension
//	@Produce	json
//	@Param		ext	path	string	true	"file extension, with or without dot"
//	@Success	200	{object}	FormatDetail
//	@Failure	404	{object}	ErrorResponse
//	@Router		/formats/{ext} [get]
func (s *Server) handleGetFormat(w http.ResponseWriter, r *http.Request) {
	ext := chi.URLParam(r, "ext")
	d, ok := format.Resolve(ext)
	if !ok {
		s.logger.Warn("format not found", interfaces.Field{Key: "extension", Value: ext})
		writeError(w, http.StatusNotFound, "unknown format")
		return
	}

	detail := FormatDetail{
		Format:         *d,
		WhatThisIs:     format.WhatThisIs(d.CanonicalExtension),
		QuotingReality: format.QuotingReality(d),
	}
	if wf, ok := format.WorkflowFor(d.CanonicalExtension); ok {
		detail.Workflow = wf.Flow
		detail.CommonFailure = wf.CommonFailure
	}
	if bn, ok := format.BulletNotesFor(d.CanonicalExtension); ok {
		detail.BulletNotes = bn
	}

	s.logger.Info("got format", interfaces.Field{Key: "extension", Value: d.CanonicalExtension})
	writeJSON(w, http.StatusOK, detail)
}

// handleListMaterials godoc
//
//	@Summary	List the material knowledge base
//	@Produce	json
//	@Success	200	{array}	material.Material
//	@Router		/materials [get]
func (s *Server) handleListMaterials(w http.ResponseWriter, r *http.Request) {
	mats := material.All()
	s.logger.Info("listed materials", interfaces.Field{Key: "count", Value: len(mats)})
	writeJSON(w, http.StatusOK, mats)
}

// handleGetMaterial godoc
//
//	@Summary	Get one material entry
//	@Produce	json
//	@Param		slug	path	string	true	"material slug or label"
//	@Success	200	{object}	material.Material
//	@Failure	404	{object}	ErrorResponse
//	@Router		/materials/{slug} [get]
func (s *Server) handleGetMaterial(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	m, ok := material.Lookup(slug)
	if !ok {
		s.logger.Warn("material not found", interfaces.Field{Key: "slug", Value: slug})
		writeError(w, http.StatusNotFound, "unknown material")
		return
	}
	s.logger.Info("got material", interfaces.Field{Key: "slug", Value: m.Slug})
	writeJSON(w, http.StatusOK, m)
}

// handleIntakeFeed upgrades the connection and streams every completed
// analysis as JSON until the client disconnects.
func (s *Server) handleIntakeFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", interfaces.Field{Key: "error", Value: err.Error()})
		return
	}

	client := s.feed.Register(conn)
	defer s.feed.Unregister(client)

	// Drain client frames so pings and close frames are processed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !errors.Is(err, io.EOF) {
				s.logger.Debug("intake feed client gone", interfaces.Field{Key: "error", Value: err.Error()})
			}
			return
		}
	}
}
