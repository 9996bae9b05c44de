package handler

import (
	"net/http"

	"github.com/forgo/frontdesk/api/internal/service"
)

// RoomHandler handles room availability endpoints
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// Occupied handles GET /v1/rooms/occupied - the room numbers the create form
// must reject
func (h *RoomHandler) Occupied(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomService.OccupiedRoomsSorted(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, rooms, nil)
}
