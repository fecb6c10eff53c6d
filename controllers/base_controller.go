package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-missions-backend/fiberlog"
	approvalflowhandler "hr-missions-backend/lib/approval-flow"
	"hr-missions-backend/lib/sequence"
	workflowhandler "hr-missions-backend/lib/workflow"
	apimodels "hr-missions-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := ctx.Params(key)
	if id == "" {
		return "", errors.Errorf("не указан параметр %v", key)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
	if requestID, ok := ctx.Locals(fiberlog.RequestID).(string); ok && requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// SendError переводит типизированные ошибки бизнес-логики в http статусы
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	switch {
	case errors.Is(err, workflowhandler.ErrSubjectNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workflowhandler.ErrWrongApprover):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workflowhandler.ErrNoPendingStep),
		errors.Is(err, workflowhandler.ErrAlreadyFinalized),
		errors.Is(err, workflowhandler.ErrAlreadyStarted):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, workflowhandler.ErrCommentRequired),
		errors.Is(err, approvalflowhandler.ErrBrokenFlow),
		errors.Is(err, sequence.ErrInvalidParam):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}
