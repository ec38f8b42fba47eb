package api

import (
	"net/http"

	"campus_connect/internal/domain"
)

type createResponse struct {
	Action domain.Action `json:"action"`
	Data   any           `json:"data"`
}

type listResponse struct {
	Data       any               `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
	Filters    map[string]string `json:"filters"`
}

type dataResponse struct {
	Data any `json:"data"`
}

func (s *Server) createWork(typ domain.OpportunityType) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in domain.WorkOpportunity
		if err := decodeJSON(w, r, s.opts.MaxBodyBytes, &in); err != nil {
			s.writeError(w, r, err)
			return
		}
		in.Type = typ

		row, action, err := s.opportunities.CreateWork(r.Context(), &in)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, createResponse{Action: action, Data: row})
	})
}

func (s *Server) createEvent(typ domain.OpportunityType) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in domain.EventOpportunity
		if err := decodeJSON(w, r, s.opts.MaxBodyBytes, &in); err != nil {
			s.writeError(w, r, err)
			return
		}
		in.Type = typ

		row, action, err := s.opportunities.CreateEvent(r.Context(), &in)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, createResponse{Action: action, Data: row})
	})
}

func (s *Server) listWork(typ domain.OpportunityType) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := listQuery(r)
		rows, page, err := s.opportunities.ListWork(r.Context(), typ, q)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse{Data: rows, Pagination: page, Filters: q.Filters.Applied()})
	})
}

func (s *Server) listEvents(typ domain.OpportunityType) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := listQuery(r)
		rows, page, err := s.opportunities.ListEvents(r.Context(), typ, q)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse{Data: rows, Pagination: page, Filters: q.Filters.Applied()})
	})
}

func (s *Server) featured(typ domain.OpportunityType) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows, err := s.opportunities.Featured(r.Context(), typ, intParam(r, "limit"))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, dataResponse{Data: rows})
	})
}

func (s *Server) byOrganization(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	rows, page, err := s.opportunities.ByOrganization(r.Context(), name, pageRequest(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Data:       rows,
		Pagination: page,
		Filters:    map[string]string{"organization": name},
	})
}

func (s *Server) expiring(w http.ResponseWriter, r *http.Request) {
	rows, page, err := s.opportunities.Expiring(r.Context(), intParam(r, "days"), pageRequest(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Data: rows, Pagination: page, Filters: map[string]string{}})
}

func (s *Server) upcoming(w http.ResponseWriter, r *http.Request) {
	rows, page, err := s.opportunities.Upcoming(r.Context(), intParam(r, "days"), pageRequest(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Data: rows, Pagination: page, Filters: map[string]string{}})
}

func (s *Server) free(w http.ResponseWriter, r *http.Request) {
	typ := domain.OpportunityType(r.URL.Query().Get("type"))
	rows, page, err := s.opportunities.Free(r.Context(), typ, pageRequest(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	filters := map[string]string{"fees": "unpaid"}
	if typ != "" {
		filters["type"] = string(typ)
	}
	writeJSON(w, http.StatusOK, listResponse{Data: rows, Pagination: page, Filters: filters})
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.opportunities.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: stats})
}

func (s *Server) ingestBatch(w http.ResponseWriter, r *http.Request) {
	var req domain.BatchRequest
	if err := decodeJSON(w, r, s.opts.MaxBodyBytes, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.batch.Ingest(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) getOpportunity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	found, err := s.resolver.View(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (s *Server) patchOpportunity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var body map[string]any
	if err := decodeJSON(w, r, s.opts.MaxBodyBytes, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	updated, err := s.resolver.Patch(r.Context(), id, body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteOpportunity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err := s.resolver.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
