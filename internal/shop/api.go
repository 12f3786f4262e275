package shop

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/weblib-dev/weblib/pkg/middleware"
)

// maxBodyBytes bounds API request bodies.
const maxBodyBytes = 4 << 10

// AddRequest is the body of POST /api/cart/add.
type AddRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"` // Defaults to 1 when omitted
}

// AddResponse is the reply of POST /api/cart/add.
type AddResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Count     int    `json:"count"`
	RequestID string `json:"request_id,omitempty"`
}

// AddToCart handles POST /api/cart/add.
func (s *Shop) AddToCart(w http.ResponseWriter, r *http.Request) {
	resp := AddResponse{RequestID: middleware.RequestIDFromContext(r.Context())}

	var req AddRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		resp.Message = "invalid request body"
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	count, err := s.cart.Add(req.ProductID, req.Quantity)
	if err != nil {
		resp.Message = err.Error()
		resp.Count = s.cart.Count()
		writeJSON(w, addStatus(err), resp)
		return
	}

	p, _ := s.catalog.Product(req.ProductID)
	resp.Success = true
	resp.Message = p.Name + " added to the cart"
	resp.Count = count
	writeJSON(w, http.StatusOK, resp)
}

func addStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownProduct):
		return http.StatusNotFound
	case errors.Is(err, ErrOutOfStock):
		return http.StatusConflict
	case isClientError(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
