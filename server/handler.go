// Package server exposes a running simulation over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"ant-colony/game"
	"ant-colony/game/types"
	"ant-colony/logging"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const runIDHeader = "X-Run-ID"

const corsAllowMethods = "GET,POST,OPTIONS"
const corsAllowHeaders = "Content-Type"

var errMissingType = errors.New("event type is required")

type Handler struct {
	Sim    *game.Simulation
	Logger *slog.Logger
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.GET("/healthz", h.healthz)
	api.GET("/snapshot", h.snapshot)
	api.GET("/stats", h.stats)
	api.GET("/config", h.config)
	api.POST("/events", h.events)
}

type eventRequest struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (h Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.Response.Header.Set(runIDHeader, h.Sim.ID())
	ctx.JSON(consts.StatusOK, map[string]any{
		"status": "ok",
		"run_id": h.Sim.ID(),
		"tick":   h.Sim.Snapshot().Tick,
		"quit":   h.Sim.ShouldQuit(),
	})
}

func (h Handler) snapshot(_ context.Context, ctx *app.RequestContext) {
	ctx.Response.Header.Set(runIDHeader, h.Sim.ID())
	ctx.JSON(consts.StatusOK, h.Sim.Snapshot())
}

func (h Handler) stats(_ context.Context, ctx *app.RequestContext) {
	ctx.Response.Header.Set(runIDHeader, h.Sim.ID())
	ctx.JSON(consts.StatusOK, h.Sim.Stats())
}

func (h Handler) config(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Sim.Config())
}

// events queues one mutation for the next tick and answers 202
func (h Handler) events(_ context.Context, ctx *app.RequestContext) {
	var body eventRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	ev, err := body.toEvent()
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_event", err.Error())
		return
	}

	h.Sim.HandleEvent(ev)
	h.logger().Debug("event queued", "type", ev.Type, "x", ev.Cell.X, "y", ev.Cell.Y)
	ctx.JSON(consts.StatusAccepted, map[string]any{
		"queued": ev.Type.String(),
		"run_id": h.Sim.ID(),
	})
}

func (r eventRequest) toEvent() (game.Event, error) {
	if r.Type == "" {
		return game.Event{}, errMissingType
	}
	typ, err := game.ParseEventType(r.Type)
	if err != nil {
		return game.Event{}, err
	}
	return game.Event{Type: typ, Cell: types.Point{X: r.X, Y: r.Y}}, nil
}

func (h Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return logging.Discard()
	}
	return h.Logger
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return errors.New("empty body")
	}
	return json.Unmarshal(body, out)
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func applyCORSHeaders(ctx *app.RequestContext) {
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Methods", corsAllowMethods)
	ctx.Response.Header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
}

func corsMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		applyCORSHeaders(ctx)
		if string(ctx.Method()) == consts.MethodOptions {
			ctx.AbortWithStatus(consts.StatusNoContent)
			return
		}
		ctx.Next(c)
	}
}
