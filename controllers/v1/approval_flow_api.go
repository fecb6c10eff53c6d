package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"hr-missions-backend/controllers"
	approvalflowhandler "hr-missions-backend/lib/approval-flow"
	"hr-missions-backend/models"
	apimodels "hr-missions-backend/models/api"
	workflowapimodels "hr-missions-backend/models/api/workflow"
)

type approvalFlowApiController struct {
	controllers.BaseAPIController
}

func InitApprovalFlowApiRouters(app *fiber.App) {
	controller := approvalFlowApiController{}
	app.Route("approval_flow", func(router fiber.Router) {
		router.Route(":subjectType", func(typeRoute fiber.Router) {
			typeRoute.Get("", controller.get)
			typeRoute.Put("", controller.save)
		})
	})
}

func (c *approvalFlowApiController) getSubjectType(ctx *fiber.Ctx) (models.SubjectType, error) {
	value, err := c.GetIDByKey(ctx, "subjectType")
	if err != nil {
		return "", err
	}
	subjectType := models.SubjectType(value)
	if !subjectType.IsValid() {
		return "", errors.Errorf("неизвестный тип сущности: %v", value)
	}
	return subjectType, nil
}

// @Summary Получение цепочки
// @Tags Цепочка согласования
// @Description Настроенная цепочка согласования по типу сущности
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   subjectType  		path    string  				    	true         "subject type"
// @Success 200 {object} apimodels.Response{data=[]workflowapimodels.FlowStepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/approval_flow/{subjectType} [get]
func (c *approvalFlowApiController) get(ctx *fiber.Ctx) error {
	subjectType, err := c.getSubjectType(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := approvalflowhandler.Instance.Get(subjectType)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения цепочки согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Сохранение цепочки
// @Tags Цепочка согласования
// @Description Замена цепочки согласования по типу сущности
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   subjectType  		path    string  				    	true         "subject type"
// @Param	body body	 workflowapimodels.FlowSteps	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/approval_flow/{subjectType} [put]
func (c *approvalFlowApiController) save(ctx *fiber.Ctx) error {
	subjectType, err := c.getSubjectType(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload workflowapimodels.FlowSteps
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := approvalflowhandler.Instance.Save(subjectType, payload.Steps)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения цепочки согласования")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
