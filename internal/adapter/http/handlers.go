package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/ocean-defender/internal/adapter/xlsx"
	"github.com/couchcryptid/ocean-defender/internal/dashboard"
	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/couchcryptid/ocean-defender/internal/report"
)

const submittedParam = "terkirim"

var allowedPhotoExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// handlePage renders the view picked by the menu query parameter.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := domain.SelectView(q.Get("menu"))
	data := newPageData(view)

	switch view {
	case domain.ViewHome:
		home := &homeData{}
		if q.Get(submittedParam) == "1" {
			home.Success = msgSubmitted
		}
		s.renderHome(w, http.StatusOK, data, home)
		return
	case domain.ViewAnalytics:
		status := s.fillAnalytics(&data, q.Get("region"))
		s.render(w, status, view, data)
		return
	case domain.ViewMap:
		status := s.fillMap(r, &data)
		s.render(w, status, view, data)
		return
	case domain.ViewArticles:
		data.Articles = articles
	}
	s.render(w, http.StatusOK, view, data)
}

func (s *Server) renderHome(w http.ResponseWriter, status int, data pageData, home *homeData) {
	feed, err := s.reports.Feed()
	if err != nil {
		s.logger.Error("load report feed failed", "error", err)
		home.Error = msgFeedFailed
		status = http.StatusInternalServerError
	}
	home.Feed = feed
	data.Home = home
	s.render(w, status, domain.ViewHome, data)
}

// handleSubmit accepts the report form. Success redirects back to the home
// view; a rejected form is re-rendered with the entered values.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)
	data := newPageData(domain.ViewHome)
	home := &homeData{}

	if err := r.ParseMultipartForm(s.opts.MaxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			home.Error = msgPhotoTooLarge
			s.renderHome(w, http.StatusRequestEntityTooLarge, data, home)
			return
		}
		s.logger.Warn("parse report form failed", "error", err)
		home.Error = msgIncomplete
		s.renderHome(w, http.StatusBadRequest, data, home)
		return
	}
	home.Location = r.FormValue("lokasi")
	home.Description = r.FormValue("deskripsi")

	upload, err := readUpload(r)
	if err != nil {
		s.logger.Warn("rejected photo upload", "error", err)
		home.Error = msgBadPhotoFormat
		s.renderHome(w, http.StatusBadRequest, data, home)
		return
	}

	if _, err := s.reports.Submit(r.Context(), home.Location, home.Description, upload); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			home.Error = msgIncomplete
			s.renderHome(w, http.StatusBadRequest, data, home)
			return
		}
		s.logger.Error("submit report failed", "error", err, "location", home.Location)
		home.Error = msgSubmitFailed
		s.renderHome(w, http.StatusInternalServerError, data, home)
		return
	}

	http.Redirect(w, r, "/?"+submittedParam+"=1", http.StatusSeeOther)
}

// readUpload returns the optional "foto" file. No file yields nil.
func readUpload(r *http.Request) (*report.Upload, error) {
	file, header, err := r.FormFile("foto")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPhotoExt[ext] {
		return nil, fmt.Errorf("photo extension %q not allowed", ext)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &report.Upload{Data: data, Extension: ext}, nil
}

// fillAnalytics loads the analytics page into data and returns the response status.
func (s *Server) fillAnalytics(data *pageData, region string) int {
	page, err := s.dashboard.Analytics(region)
	switch {
	case err == nil:
		data.Analytics = &page
		return http.StatusOK
	case errors.Is(err, domain.ErrDatasetUnavailable):
		data.Warning = "Dataset kualitas air belum tersedia"
		return http.StatusOK
	case errors.Is(err, domain.ErrNoCountryData):
		data.Warning = fmt.Sprintf("Tidak ditemukan data untuk %s pada dataset ini", s.dashboard.Country())
		return http.StatusOK
	case errors.Is(err, domain.ErrUnknownRegion):
		data.Warning = fmt.Sprintf("Wilayah %q tidak ditemukan", region)
		return http.StatusNotFound
	default:
		s.logger.Error("build analytics failed", "error", err, "region", region)
		data.Warning = "Dataset kualitas air tidak dapat dibaca"
		return http.StatusInternalServerError
	}
}

// fillMap loads the map page into data and returns the response status.
func (s *Server) fillMap(r *http.Request, data *pageData) int {
	page, err := s.dashboard.Map(r.Context())
	switch {
	case err == nil:
		data.Map = &page
		return http.StatusOK
	case errors.Is(err, domain.ErrDatasetUnavailable):
		data.Warning = "Dataset belum tersedia"
		return http.StatusOK
	case errors.Is(err, domain.ErrNoCountryData):
		data.Warning = fmt.Sprintf("Tidak ditemukan data wilayah %s", s.dashboard.Country())
		return http.StatusOK
	default:
		s.logger.Error("build map failed", "error", err)
		data.Warning = "Dataset tidak dapat dibaca"
		return http.StatusInternalServerError
	}
}

// handleChart serves one analytics chart as PNG.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	region := r.PathValue("region")
	name, ok := strings.CutSuffix(r.PathValue("chart"), ".png")
	if !ok {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := s.dashboard.Chart(&buf, region, domain.ChartID(name)); err != nil {
		if isNotFound(err) {
			http.NotFound(w, r)
			return
		}
		s.logger.Error("render chart failed", "error", err, "region", region, "chart", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = buf.WriteTo(w)
}

// handleGeoJSON serves the map layer as a GeoJSON FeatureCollection.
func (s *Server) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	data, err := s.dashboard.MapGeoJSON(r.Context())
	if err != nil {
		if isNotFound(err) {
			http.NotFound(w, r)
			return
		}
		s.logger.Error("build geojson failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	_, _ = w.Write(data)
}

// handleExport serves the report log as an Excel workbook, newest first.
func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	reports, err := s.reports.Reports()
	if err != nil {
		s.logger.Error("load reports for export failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := xlsx.WriteReports(&buf, reports); err != nil {
		s.logger.Error("write workbook failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", xlsx.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="laporan_pencemaran.xlsx"`)
	_, _ = buf.WriteTo(w)
}

func isNotFound(err error) bool {
	return errors.Is(err, dashboard.ErrUnknownChart) ||
		errors.Is(err, domain.ErrUnknownRegion) ||
		errors.Is(err, domain.ErrDatasetUnavailable) ||
		errors.Is(err, domain.ErrNoCountryData)
}
