package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"
)

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	langs, err := s.svc.Languages(r.Context(), s.source)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"languages": langs})
}

func (s *Server) handleLocale(w http.ResponseWriter, r *http.Request) {
	s.renderLocale(w, r, chi.URLParam(r, "lang"))
}

// handleNegotiatedLocale picks the sheet language that best matches Accept-Language.
func (s *Server) handleNegotiatedLocale(w http.ResponseWriter, r *http.Request) {
	langs, err := s.svc.Languages(r.Context(), s.source)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	lang := negotiate(langs, r.Header.Get("Accept-Language"))
	w.Header().Add("Vary", "Accept-Language")
	s.renderLocale(w, r, lang)
}

func (s *Server) renderLocale(w http.ResponseWriter, r *http.Request, lang string) {
	data, enc, err := s.svc.Render(r.Context(), s.source, lang, r.URL.Query().Get("encoding"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", enc.ContentType())
	w.Header().Set("Content-Language", lang)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	report, err := s.export(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// negotiate returns the entry of langs that best matches an Accept-Language header.
// Headers that are not language tags are ignored; the first column is the fallback.
func negotiate(langs []string, acceptLanguage string) string {
	if len(langs) == 0 {
		return ""
	}

	var (
		tags  []language.Tag
		index []int
	)
	for i, l := range langs {
		if tag, err := language.Parse(l); err == nil {
			tags = append(tags, tag)
			index = append(index, i)
		}
	}
	if len(tags) == 0 {
		return langs[0]
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return langs[index[0]]
	}

	_, i, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return langs[index[0]]
	}
	return langs[index[i]]
}
