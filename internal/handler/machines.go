package handler

import (
	"io"
	"net/http"

	"github.com/osse101/slotengine/internal/config"
	"github.com/osse101/slotengine/internal/domain"
	"github.com/osse101/slotengine/internal/machine"
)

// MachineHandler serves the machine catalogue and play endpoints
type MachineHandler struct {
	service machine.Service
}

// NewMachineHandler creates a new machine handler
func NewMachineHandler(service machine.Service) *MachineHandler {
	return &MachineHandler{service: service}
}

// MachineRequest is the JSON body of PUT /machines/{machineID}. The id may be
// omitted; when present it must match the path.
type MachineRequest struct {
	ID     string               `json:"id,omitempty" validate:"omitempty,machine_id"`
	Name   string               `json:"name,omitempty" validate:"max=128"`
	Config domain.MachineConfig `json:"config" validate:"-"`
}

// HandleListMachines lists stored machines
// @Summary List machines
// @Description Returns every stored machine with its configuration
// @Tags machines
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/machines [get]
func (h *MachineHandler) HandleListMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := h.service.ListMachines(r.Context())
	if err != nil {
		respondServiceError(w, r, ActionListMachines, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: machines})
}

// HandleGetMachine returns one machine with its configuration
// @Summary Get machine
// @Tags machines
// @Produce json
// @Param machineID path string true "Machine ID"
// @Success 200 {object} domain.Machine
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/machines/{machineID} [get]
func (h *MachineHandler) HandleGetMachine(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}

	m, err := h.service.GetMachine(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ActionGetMachine, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

// HandlePutMachine creates or replaces a machine. The body is either a
// MachineRequest in JSON or a machine file in YAML.
// @Summary Create or replace machine
// @Description Validates the configuration and stores it. Invalid configurations are rejected with 422.
// @Tags machines
// @Accept json
// @Accept application/yaml
// @Produce json
// @Param machineID path string true "Machine ID"
// @Param request body MachineRequest true "Machine configuration"
// @Success 200 {object} domain.Machine
// @Failure 400 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/machines/{machineID} [put]
func (h *MachineHandler) HandlePutMachine(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}

	var m domain.Machine
	switch mediaType(r) {
	case MediaTypeJSON:
		var req MachineRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Put machine"); err != nil {
			return
		}
		m = domain.Machine{ID: req.ID, Name: req.Name, Config: req.Config}
	case MediaTypeYAML:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		parsed, err := config.ParseMachine(data)
		if err != nil {
			respondServiceError(w, r, ActionSaveMachine, err)
			return
		}
		m = parsed
	default:
		respondError(w, http.StatusUnsupportedMediaType, ErrMsgUnsupportedMediaType)
		return
	}

	if m.ID == "" {
		m.ID = id
	}
	if m.ID != id {
		respondError(w, http.StatusBadRequest, ErrMsgMachineIDMismatch)
		return
	}

	saved, err := h.service.SaveMachine(r.Context(), m)
	if err != nil {
		respondServiceError(w, r, ActionSaveMachine, err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// HandleDeleteMachine removes a machine and evicts its cached engine
// @Summary Delete machine
// @Tags machines
// @Param machineID path string true "Machine ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/machines/{machineID} [delete]
func (h *MachineHandler) HandleDeleteMachine(w http.ResponseWriter, r *http.Request) {
	id, ok := machineIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteMachine(r.Context(), id); err != nil {
		respondServiceError(w, r, ActionDeleteMachine, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
