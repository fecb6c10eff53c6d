package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	approvalflowhandler "hr-missions-backend/lib/approval-flow"
	"hr-missions-backend/lib/sequence"
	workflowhandler "hr-missions-backend/lib/workflow"
)

func TestSendErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"сущность не найдена", workflowhandler.ErrSubjectNotFound, fiber.StatusNotFound},
		{"чужой этап", workflowhandler.ErrWrongApprover, fiber.StatusForbidden},
		{"нет ожидающего этапа", workflowhandler.ErrNoPendingStep, fiber.StatusConflict},
		{"решение уже принято", workflowhandler.ErrAlreadyFinalized, fiber.StatusConflict},
		{"согласование уже запущено", workflowhandler.ErrAlreadyStarted, fiber.StatusConflict},
		{"нет комментария", workflowhandler.ErrCommentRequired, fiber.StatusBadRequest},
		{"сломанная цепочка", approvalflowhandler.ErrBrokenFlow, fiber.StatusBadRequest},
		{"неверные параметры генератора", sequence.ErrInvalidParam, fiber.StatusBadRequest},
		{"прочие ошибки", errors.New("ошибка БД"), fiber.StatusInternalServerError},
		{"обёрнутая ошибка", errors.Wrap(workflowhandler.ErrWrongApprover, "этап 1"), fiber.StatusForbidden},
	}

	c := BaseAPIController{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/fail", func(ctx *fiber.Ctx) error {
				return c.SendError(ctx, c.GetLogger(ctx), tc.err, "ошибка обработки")
			})
			resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
			require.NoError(t, err)
			require.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}
