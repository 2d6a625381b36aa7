package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/maodou/internal/quotes"
	"github.com/f3rmion/maodou/internal/report"
	"github.com/f3rmion/maodou/internal/sample"
	"github.com/f3rmion/maodou/internal/textstats"
)

func (s *Server) render(w http.ResponseWriter, data pageData) {
	if data.Quote == "" {
		data.Quote = s.quotes.Pick()
	}

	var buf bytes.Buffer
	if err := renderPage(&buf, data); err != nil {
		s.log.Error("rendering page", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// countPage fills data with the results for text, or the empty prompt.
func (s *Server) countPage(data pageData) pageData {
	st, ok := textstats.Compute(data.Text)
	if !ok {
		data.Warning = quotes.EmptyPrompt
		return data
	}
	data.Result = newPageResult(st, s.topHanzi(data.Text))
	return data
}

func (s *Server) topHanzi(text string) []report.HanziCount {
	return report.TopHanzi(text, s.cfg.TopHanzi, s.annotator)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, pageData{})
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	// Browsers submit textarea line breaks as CRLF.
	text := strings.ReplaceAll(r.PostFormValue("text"), "\r\n", "\n")
	s.render(w, s.countPage(pageData{Text: text}))
}

func (s *Server) handleExample(w http.ResponseWriter, r *http.Request) {
	s.render(w, pageData{
		Text:   sample.Text(),
		Notice: quotes.ExampleLoaded,
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.Server.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(limit); err != nil {
		s.log.Warn("upload rejected", "err", err)
		s.render(w, pageData{Error: quotes.Unreadable})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.log.Warn("upload without file", "err", err)
		s.render(w, pageData{Error: quotes.Unreadable})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil || !utf8.Valid(data) {
		s.log.Warn("unreadable upload", "file", header.Filename, "err", err)
		s.render(w, pageData{Error: quotes.Unreadable})
		return
	}

	text := string(data)
	s.log.Debug("upload read", "file", header.Filename, "bytes", len(data))
	s.render(w, s.countPage(pageData{
		Text:   text,
		Notice: quotes.Loaded(utf8.RuneCountInString(text)),
	}))
}

type statsRequest struct {
	Text string `json:"text"`
}

type statsResponse struct {
	Stats    textstats.Stats     `json:"stats"`
	Fields   []fieldJSON         `json:"fields"`
	Density  float64             `json:"density"`
	Mix      string              `json:"mix"`
	Size     string              `json:"size"`
	Comment  string              `json:"comment"`
	TopHanzi []report.HanziCount `json:"top_hanzi,omitempty"`
}

type fieldJSON struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)

	var req statsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "TOO_LARGE", "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body")
		return
	}

	st, err := textstats.Require(req.Text)
	if errors.Is(err, textstats.ErrEmpty) {
		writeError(w, http.StatusUnprocessableEntity, "EMPTY_TEXT", quotes.EmptyPrompt)
		return
	}

	resp := statsResponse{
		Stats:    st,
		Density:  textstats.Density(st),
		Mix:      textstats.Mix(st).String(),
		Size:     textstats.Size(st).String(),
		Comment:  report.Comment(st),
		TopHanzi: s.topHanzi(req.Text),
	}
	for _, f := range st.Fields() {
		resp.Fields = append(resp.Fields, fieldJSON{Key: f.Key, Label: report.Label(f.Key), Value: f.Value})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAPIExample(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsRequest{Text: sample.Text()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
