// Package http provides helpers for writing JSON responses
// Successful STAPI documents are written bare; failures use the error envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"stapibridge/internal/platform/logger"
	pnet "stapibridge/internal/platform/net"
)

// Envelope is the error body for all endpoints
type Envelope = pnet.Wire

// Content types written by the API
const (
	ContentTypeJSON    = "application/json; charset=utf-8"
	ContentTypeGeoJSON = "application/geo+json"
	ContentTypeSchema  = "application/schema+json"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	writeJSON(w, status, ContentTypeJSON, v)
}

func writeJSON(w stdhttp.ResponseWriter, status int, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Get().Error().Err(err).Msg("write json response")
	}
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	logError(r, status, err)
	JSON(w, status, body)
}

// writeError writes an envelope with an explicit status (router level failures)
func writeError(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, err error) {
	_, body := pnet.Error(err, pnet.RequestID(r.Context()))
	body.StatusCode = status
	body.Status = stdhttp.StatusText(status)
	JSON(w, status, body)
}

// logError records server side and upstream failures; caller mistakes stay quiet
func logError(r *stdhttp.Request, status int, err error) {
	if status < stdhttp.StatusInternalServerError {
		return
	}
	logger.C(r.Context()).Error().Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status      int
	Body        any
	ContentType string
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}
	ct := resp.ContentType
	if ct == "" {
		ct = ContentTypeJSON
	}
	writeJSON(w, status, ct, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// GeoJSON returns a 200 response typed as application/geo+json
func GeoJSON(data any) Response {
	return Response{Status: stdhttp.StatusOK, Body: data, ContentType: ContentTypeGeoJSON}
}

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }

// WithHeader returns a copy of resp with an extra header
func (resp Response) WithHeader(key, value string) Response {
	h := resp.Header.Clone()
	if h == nil {
		h = stdhttp.Header{}
	}
	h.Add(key, value)
	resp.Header = h
	return resp
}
