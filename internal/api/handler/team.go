package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oakhall/teambot/internal/api/apierr"
	"github.com/oakhall/teambot/internal/api/response"
	"github.com/oakhall/teambot/internal/dispatch"
	"github.com/oakhall/teambot/internal/model"
	"github.com/oakhall/teambot/internal/perms"
	"github.com/oakhall/teambot/internal/registry"
)

// TeamHandler serves the admin read surface over the registry and gate
type TeamHandler struct {
	registry *registry.Registry
	gate     *perms.Gate
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(reg *registry.Registry, gate *perms.Gate) *TeamHandler {
	return &TeamHandler{
		registry: reg,
		gate:     gate,
	}
}

// TeamList is the response shape for listing teams
type TeamList struct {
	Teams []model.Team `json:"teams"`
}

// List returns all registered teams
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams := h.registry.List()
	response.JSON(w, http.StatusOK, TeamList{Teams: teams})
}

// Get returns the team bound to a channel
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	channel := model.ChannelID(mux.Vars(r)["channel"])

	team, ok := h.registry.Get(channel)
	if !ok {
		apierr.WriteError(w, model.ErrTeamNotFound)
		return
	}
	response.JSON(w, http.StatusOK, team)
}

// HostRoleInfo is the response shape for the host role lookup
type HostRoleInfo struct {
	Guild model.GuildID `json:"guild"`
	Role  model.RoleID  `json:"role"`
}

// HostRole returns the resolved host role for a guild
func (h *TeamHandler) HostRole(w http.ResponseWriter, r *http.Request) {
	guild := model.GuildID(mux.Vars(r)["guild"])

	role, ok := h.gate.HostRole(guild)
	if !ok {
		apierr.WriteError(w, model.ErrHostRoleNotConfigured)
		return
	}
	response.JSON(w, http.StatusOK, HostRoleInfo{Guild: guild, Role: role})
}

// InvokeHandler feeds invocations into the dispatcher. It exists for
// development and operational debugging; production invocations arrive
// through the gateway adapter.
type InvokeHandler struct {
	dispatcher *dispatch.Dispatcher
}

// NewInvokeHandler creates a new InvokeHandler
func NewInvokeHandler(d *dispatch.Dispatcher) *InvokeHandler {
	return &InvokeHandler{dispatcher: d}
}

// InvokeResult carries the dispatch response text
type InvokeResult struct {
	Response string `json:"response"`
}

// Invoke dispatches a JSON-encoded invocation and returns the response text
func (h *InvokeHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	var inv model.Invocation
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid invocation body"))
		return
	}
	if inv.Command == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("command is required"))
		return
	}

	content := h.dispatcher.Handle(r.Context(), &inv)
	response.JSON(w, http.StatusOK, InvokeResult{Response: content})
}
