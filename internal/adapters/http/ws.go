package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wiamsart/gallery/internal/adapters/http/ui/templates/components"
	"github.com/wiamsart/gallery/internal/application"
	"github.com/wiamsart/gallery/internal/utils"
)

const wsReadLimit = 4096

// Live viewer actions.
const (
	actionSelect = "select"
	actionNext   = "next"
	actionPrev   = "prev"
	actionClose  = "close"
)

var errUnknownAction = errors.New("unknown lightbox action")

// wsUpgrader keeps gorilla's default same-origin check.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// wsCommand is one client action on the live viewer. A select names its
// artwork by ID, or by position in the viewer's catalog.
type wsCommand struct {
	Action string `json:"action"`
	ID     *int   `json:"id,omitempty"`
	Index  *int   `json:"index,omitempty"`
}

type wsError struct {
	Error string `json:"error"`
}

// applyCommand performs cmd on lb.
func applyCommand(lb *application.Lightbox, cmd wsCommand) error {
	switch cmd.Action {
	case actionSelect:
		if cmd.ID != nil {
			index, ok := lb.Catalog().IndexOf(*cmd.ID)
			if !ok {
				return errors.Wrapf(application.ErrArtworkNotFound, "artwork %d", *cmd.ID)
			}
			return lb.Select(index)
		}
		if cmd.Index == nil {
			return errors.Wrap(application.ErrIndexOutOfRange, "select without id or index")
		}
		return lb.Select(*cmd.Index)
	case actionNext:
		lb.Navigate(application.Next)
	case actionPrev:
		lb.Navigate(application.Previous)
	case actionClose:
		lb.Close()
	default:
		return errors.Wrapf(errUnknownAction, "%q", cmd.Action)
	}
	return nil
}

// wsLightbox upgrades to WebSocket and runs one lightbox for the lifetime of the
// connection. Every applied action is answered with the re-rendered overlay.
func (s *Server) wsLightbox(w http.ResponseWriter, r *http.Request) {
	viewerID := uuid.NewString()

	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		utils.Logger.Error("websocket upgrade failed", "viewer", viewerID, "err", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsReadLimit)

	lb := s.galleryService.NewLightbox()
	utils.Logger.Info("viewer connected", "viewer", viewerID, "artworks", lb.Catalog().Len())

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				utils.Logger.Warn("viewer read failed", "viewer", viewerID, "err", err)
			}
			utils.Logger.Info("viewer disconnected", "viewer", viewerID)
			return
		}

		var cmd wsCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			err = errors.Wrap(err, "decode action")
			if !s.wsWriteError(conn, viewerID, err) {
				return
			}
			continue
		}

		if err := applyCommand(lb, cmd); err != nil {
			if !s.wsWriteError(conn, viewerID, err) {
				return
			}
			continue
		}
		utils.Logger.Debug("viewer action", "viewer", viewerID, "action", cmd.Action, "open", lb.IsOpen(), "index", lb.Index())

		if !s.wsWriteLightbox(r.Context(), conn, viewerID, lb) {
			return
		}
	}
}

func (s *Server) wsWriteLightbox(ctx context.Context, conn *websocket.Conn, viewerID string, lb *application.Lightbox) bool {
	var buf bytes.Buffer
	if err := components.Lightbox(lb.View()).Render(ctx, &buf); err != nil {
		utils.Logger.Error("render lightbox failed", "viewer", viewerID, "err", err)
		return s.wsWriteError(conn, viewerID, err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, buf.Bytes()); err != nil {
		utils.Logger.Info("websocket write failed, closing viewer", "viewer", viewerID, "err", err)
		return false
	}
	return true
}

func (s *Server) wsWriteError(conn *websocket.Conn, viewerID string, cause error) bool {
	utils.Logger.Warn("viewer action rejected", "viewer", viewerID, "err", cause)
	if err := conn.WriteJSON(wsError{Error: cause.Error()}); err != nil {
		utils.Logger.Info("websocket write failed, closing viewer", "viewer", viewerID, "err", err)
		return false
	}
	return true
}
