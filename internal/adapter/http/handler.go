package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"animochi/internal/app/action"
	"animochi/internal/app/lifecycle"
	"animochi/internal/app/monster"
	"animochi/internal/app/ports"
	questapp "animochi/internal/app/quest"
	"animochi/internal/app/wallet"
	"animochi/internal/domain/pet"
	"animochi/internal/domain/quest"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const userIDHeader = "X-User-ID"

var ErrMissingUserHeader = errors.New("missing x-user-id header")

type Handler struct {
	MonsterUC   monster.UseCase
	ActionUC    action.UseCase
	LifecycleUC lifecycle.UseCase
	QuestUC     questapp.UseCase
	WalletUC    wallet.UseCase
	KPI         kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/monsters", h.createMonster)
	api.GET("/monsters/:id", h.getMonster)
	api.POST("/monsters/:id/action", h.performAction)
	api.POST("/monsters/:id/publish", h.publishMonster)
	api.GET("/wallet", h.walletBalance)
	api.GET("/quests", h.listQuests)
	api.POST("/quests/assign", h.assignQuests)
	api.POST("/quests/:id/claim", h.claimQuest)

	s.POST("/internal/tick", h.tick)
	s.GET("/ops/kpi", h.kpi)
}

type createMonsterRequest struct {
	Name string `json:"name"`
}

type performActionRequest struct {
	Action string `json:"action"`
}

func (h Handler) createMonster(c context.Context, ctx *app.RequestContext) {
	userID, err := requireUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body createMonsterRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.MonsterUC.Create(c, monster.CreateRequest{OwnerID: userID, Name: body.Name})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) getMonster(c context.Context, ctx *app.RequestContext) {
	resp, err := h.MonsterUC.Get(c, monster.GetRequest{MonsterID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) performAction(c context.Context, ctx *app.RequestContext) {
	userID, err := requireUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body performActionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.Execute(c, action.Request{
		MonsterID: ctx.Param("id"),
		UserID:    userID,
		Action:    pet.ActionKind(body.Action),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) publishMonster(c context.Context, ctx *app.RequestContext) {
	userID, err := requireUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.MonsterUC.Publish(c, monster.PublishRequest{MonsterID: ctx.Param("id"), UserID: userID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) walletBalance(c context.Context, ctx *app.RequestContext) {
	userID, err := requireUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.WalletUC.Balance(c, userID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listQuests(c context.Context, ctx *app.RequestContext) {
	userID, err := requireUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	quests, err := h.QuestUC.ListActive(c, userID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"quests": quests})
}

func (h Handler) assignQuests(c context.Context, ctx *app.RequestContext) {
	userID, err := requireUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	quests, err := h.QuestUC.AssignDaily(c, userID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, map[string]any{"quests": quests})
}

func (h Handler) claimQuest(c context.Context, ctx *app.RequestContext) {
	userID, err := requireUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.QuestUC.Claim(c, userID, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

// tick is the idempotent batch entry point the external scheduler hits. An
// overlapping invocation is harmless: whatever the first call advanced is no
// longer due for the second.
func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	now := time.Now()
	report, err := h.LifecycleUC.Tick(c, now)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if err := h.QuestUC.ExpireDue(c, now); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, report)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func requireUser(ctx *app.RequestContext) (string, error) {
	userID := strings.TrimSpace(string(ctx.GetHeader(userIDHeader)))
	if userID == "" {
		return "", ErrMissingUserHeader
	}
	return userID, nil
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingUserHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_user_id", err.Error())
	case errors.Is(err, action.ErrNotOwner), errors.Is(err, monster.ErrNotOwner):
		writeErrorBody(ctx, consts.StatusForbidden, "not_owner", err.Error())
	case errors.Is(err, quest.ErrExpired):
		writeErrorBody(ctx, consts.StatusConflict, "quest_expired", err.Error())
	case errors.Is(err, quest.ErrNotClaimed):
		writeErrorBody(ctx, consts.StatusConflict, "quest_not_claimable", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, monster.ErrInvalidRequest),
		errors.Is(err, questapp.ErrInvalidRequest),
		errors.Is(err, wallet.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
