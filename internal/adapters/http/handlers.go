package httpadapter

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/gorilla/mux"

	"svw.info/calpuzzle/internal/domain"
	"svw.info/calpuzzle/internal/usecase"
)

const piecePath = "/sessions/{id}/pieces/{piece:[0-9]+}"

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/pieces", h.handlePieces).Methods(http.MethodGet)
	api.HandleFunc("/sessions", h.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", h.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", h.handleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/board", h.handleBoard).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/reset", h.handleReset).Methods(http.MethodPost)

	api.HandleFunc(piecePath, h.handlePiece).Methods(http.MethodGet)
	api.HandleFunc(piecePath+"/transform", h.handleTransform).Methods(http.MethodPost)
	api.HandleFunc(piecePath+"/placement", h.handlePlace).Methods(http.MethodPut)
	api.HandleFunc(piecePath+"/placement", h.handleUnplace).Methods(http.MethodDelete)
	api.HandleFunc(piecePath+"/fits", h.handleFits).Methods(http.MethodGet)
}

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResp{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrPieceNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownTransform), errors.Is(err, domain.ErrInvalidDate), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionSolved):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		return errors.Join(errBadRequest, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return errors.Join(errBadRequest, errors.New("invalid JSON: "+err.Error()))
	}
	return nil
}

func pieceID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["piece"])
	if err != nil {
		return 0, errors.Join(errBadRequest, err)
	}
	return id, nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- Pieces ----

type piecesResp struct {
	Pieces []domain.PieceDefinition `json:"pieces"`
}

func (h *Handler) handlePieces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, piecesResp{Pieces: h.UC.Definitions()})
}

// ---- Sessions ----

type createReq struct {
	Month *int `json:"month,omitempty"`
	Day   *int `json:"day,omitempty"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	var date *domain.Date
	switch {
	case req.Month != nil && req.Day != nil:
		date = &domain.Date{Month: *req.Month, Day: *req.Day}
	case req.Month != nil || req.Day != nil:
		writeError(w, errors.Join(errBadRequest, errors.New("month and day must be given together")))
		return
	}
	v, err := h.UC.Create(r.Context(), date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	v, err := h.UC.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type boardResp struct {
	Board domain.Snapshot `json:"board"`
}

func (h *Handler) handleBoard(w http.ResponseWriter, r *http.Request) {
	b, err := h.UC.Board(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boardResp{Board: b})
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	v, err := h.UC.Reset(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// ---- Pieces within a session ----

func (h *Handler) handlePiece(w http.ResponseWriter, r *http.Request) {
	id, err := pieceID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := h.UC.Piece(r.Context(), mux.Vars(r)["id"], id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type transformReq struct {
	Kind string `json:"kind"`
}

func (h *Handler) handleTransform(w http.ResponseWriter, r *http.Request) {
	id, err := pieceID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req transformReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	kind, err := domain.ParseTransform(req.Kind)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := h.UC.Transform(r.Context(), mux.Vars(r)["id"], id, kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type placeReq struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

func (h *Handler) handlePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pieceID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req placeReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Row == nil || req.Col == nil {
		writeError(w, errors.Join(errBadRequest, errors.New("row and col are required")))
		return
	}
	res, err := h.UC.TryPlace(r.Context(), mux.Vars(r)["id"], id, domain.CellCoord{Row: *req.Row, Col: *req.Col})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleUnplace(w http.ResponseWriter, r *http.Request) {
	id, err := pieceID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := h.UC.Unplace(r.Context(), mux.Vars(r)["id"], id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boardResp{Board: b})
}

type fitsResp struct {
	Anchors []domain.CellCoord `json:"anchors"`
}

func (h *Handler) handleFits(w http.ResponseWriter, r *http.Request) {
	id, err := pieceID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	anchors, err := h.UC.Fits(r.Context(), mux.Vars(r)["id"], id)
	if err != nil {
		writeError(w, err)
		return
	}
	if anchors == nil {
		anchors = []domain.CellCoord{}
	}
	writeJSON(w, http.StatusOK, fitsResp{Anchors: anchors})
}
