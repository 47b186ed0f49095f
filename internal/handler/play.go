package handler

import (
	"net/http"

	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/slots"
)

// SpinRequest is the body of POST /machines/{machineID}/spin.
// A missing or zero bet plays the machine's default bet.
type SpinRequest struct {
	Bet int64 `json:"bet,omitempty" validate:"gte=0"`
}

// EvaluateRequest scores a caller-supplied grid, rows top to bottom.
type EvaluateRequest struct {
	Grid domain.Grid `json:"grid" validate:"required,min=1,dive,required,min=1,dive,symbol"`
	Bet  int64       `json:"bet,omitempty" validate:"gte=0"`
}

// SimulateRequest runs an RTP estimate on the server.
type SimulateRequest struct {
	Spins   int   `json:"spins" validate:"required,min=1,max=10000000"`
	Bet     int64 `json:"bet,omitempty" validate:"gte=0"`
	Workers int   `json:"workers,omitempty" validate:"omitempty,min=1,max=64"`
	Seed    int64 `json:"seed,omitempty"`
}

// SpinResponse wraps a result with the caller's net change
type SpinResponse struct {
	*domain.SpinResult
	NetChange int64 `json:"net_change"`
}

func newSpinResponse(res *domain.SpinResult) SpinResponse {
	return SpinResponse{SpinResult: res, NetChange: res.NetChange()}
}

// HandleSpin draws a fresh grid and scores it
// @Summary Spin
// @Description Draws a grid from the machine's reels and evaluates it. A zero bet plays the default bet.
// @Tags play
// @Accept json
// @Produce json
// @Param machineID path string true "Machine ID"
// @Param request body SpinRequest false "Bet"
// @Success 200 {object} SpinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/machines/{machineID}/spin [post]
func (h *MachineHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}

	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	res, err := h.service.Spin(r.Context(), id, req.Bet)
	if err != nil {
		respondServiceError(w, r, ActionSpin, err)
		return
	}
	respondJSON(w, http.StatusOK, newSpinResponse(res))
}

// HandleEvaluate scores a grid supplied in the request
// @Summary Evaluate grid
// @Tags play
// @Accept json
// @Produce json
// @Param machineID path string true "Machine ID"
// @Param request body EvaluateRequest true "Grid and bet"
// @Success 200 {object} SpinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/machines/{machineID}/evaluate [post]
func (h *MachineHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}

	var req EvaluateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Evaluate"); err != nil {
		return
	}

	res, err := h.service.Evaluate(r.Context(), id, req.Grid, req.Bet)
	if err != nil {
		respondServiceError(w, r, ActionEvaluate, err)
		return
	}
	respondJSON(w, http.StatusOK, newSpinResponse(res))
}

// HandleSimulate runs a batch of spins and returns the aggregate report
// @Summary Simulate
// @Description Runs a seeded batch of spins across workers and reports the observed return to player
// @Tags play
// @Accept json
// @Produce json
// @Param machineID path string true "Machine ID"
// @Param request body SimulateRequest true "Simulation parameters"
// @Success 200 {object} slots.SimulationReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/machines/{machineID}/simulate [post]
func (h *MachineHandler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}

	var req SimulateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Simulate"); err != nil {
		return
	}

	report, err := h.service.Simulate(r.Context(), id, slots.SimulationRequest{
		Spins:   req.Spins,
		Bet:     req.Bet,
		Workers: req.Workers,
		Seed:    req.Seed,
	})
	if err != nil {
		respondServiceError(w, r, ActionSimulate, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
