package api

import (
	"strings"

	"dealership-api/internal/clients/genai"
	commonerrors "dealership-api/internal/common/errors"

	"github.com/labstack/echo/v4"
)

const maxChatTurns = 20

type chatRequest struct {
	Messages []genai.Message `json:"messages"`
}

func (s *Server) handleChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		s.respondError(c, commonerrors.NewParseError(err))
		return nil
	}

	if len(req.Messages) == 0 {
		s.respondError(c, commonerrors.NewValidationFailedError("messages", "At least one message is required"))
		return nil
	}
	if len(req.Messages) > maxChatTurns {
		req.Messages = req.Messages[len(req.Messages)-maxChatTurns:]
	}
	last := req.Messages[len(req.Messages)-1]
	if strings.TrimSpace(last.Content) == "" {
		s.respondError(c, commonerrors.NewValidationFailedError("messages", "Message content must not be empty"))
		return nil
	}

	reply, err := s.chat.Complete(c.Request().Context(), req.Messages)
	if err != nil {
		s.respondError(c, err)
		return nil
	}

	return s.respondSuccess(c, map[string]interface{}{
		"success": true,
		"message": "ok",
		"reply":   reply,
	})
}
