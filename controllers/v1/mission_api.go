package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-missions-backend/controllers"
	missionhandler "hr-missions-backend/lib/mission"
	workflowhandler "hr-missions-backend/lib/workflow"
	"hr-missions-backend/middleware"
	"hr-missions-backend/models"
	apimodels "hr-missions-backend/models/api"
	missionapimodels "hr-missions-backend/models/api/mission"
	workflowapimodels "hr-missions-backend/models/api/workflow"
)

type missionApiController struct {
	controllers.BaseAPIController
}

func InitMissionApiRouters(app *fiber.App) {
	controller := missionApiController{}
	app.Route("mission", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("validate", controller.validate)
			idRoute.Put("reject", controller.reject)
			idRoute.Put("start", controller.start) // перевод согласованной командировки в работу
			idRoute.Post("expenses", controller.addExpense)
			idRoute.Put("compensation/paid", middleware.HRAdminRequired(), controller.markPaid)
			idRoute.Get("approvals", controller.approvals)
			idRoute.Get("approval_history", controller.history)
		})
	})
}

// @Summary Создание
// @Tags Командировка
// @Description Создание командировки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.MissionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission [post]
func (c *missionApiController) create(ctx *fiber.Ctx) error {
	var payload missionapimodels.MissionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := missionhandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания командировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение
// @Tags Командировка
// @Description Получение командировки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "mission ID"
// @Success 200 {object} apimodels.Response{data=missionapimodels.MissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission/{id} [get]
func (c *missionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := missionhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения командировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список
// @Tags Командировка
// @Description Список командировок
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.MissionFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]missionapimodels.MissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission/list [post]
func (c *missionApiController) list(ctx *fiber.Ctx) error {
	var payload missionapimodels.MissionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := missionhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка командировок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Согласование
// @Tags Командировка
// @Description Согласование текущего этапа командировки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "mission ID"
// @Param	body body	 workflowapimodels.DecisionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=models.RequestStatus}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission/{id}/validate [put]
func (c *missionApiController) validate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload workflowapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	status, err := missionhandler.Instance.Validate(id, userID, payload.Comment)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка согласования командировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(status))
}

// @Summary Отклонение
// @Tags Командировка
// @Description Отклонение командировки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "mission ID"
// @Param	body body	 workflowapimodels.RejectData	true	"request body"
// @Success 200 {object} apimodels.Response{data=models.RequestStatus}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission/{id}/reject [put]
func (c *missionApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload workflowapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	status, err := missionhandler.Instance.Reject(id, userID, payload.Comment)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения командировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(status))
}

// @Summary В работу
// @Tags Командировка
// @Description Перевод согласованной командировки в работу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "mission ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission/{id}/start [put]
func (c *missionApiController) start(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = missionhandler.Instance.MarkInProgress(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка перевода командировки в работу")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Добавление расхода
// @Tags Командировка
// @Description Добавление расхода с чеком
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "mission ID"
// @Param   kind				formData	string 	true 	"Вид расхода"
// @Param   amount				formData	number 	true 	"Сумма"
// @Param   currency			formData	string 	true 	"Валюта"
// @Param   receipt				formData	file 	true 	"Чек"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission/{id}/expenses [post]
func (c *missionApiController) addExpense(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload missionapimodels.ExpenseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("receipt")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("отсутствует файл с чеком"))
	}
	receipt, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла с чеком")
	}
	defer receipt.Close()
	expenseID, err := missionhandler.Instance.AddExpense(ctx.UserContext(), id, payload, file.Filename, receipt, file.Size)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления расхода")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(expenseID))
}

// @Summary Выплата компенсации
// @Tags Командировка
// @Description Отметка о выплате компенсации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "mission ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission/{id}/compensation/paid [put]
func (c *missionApiController) markPaid(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = missionhandler.Instance.SetCompensationPaid(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки о выплате компенсации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Цепочка согласования
// @Tags Командировка
// @Description Текущее состояние цепочки согласования командировки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "mission ID"
// @Success 200 {object} apimodels.Response{data=[]workflowapimodels.ValidationRecordView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission/{id}/approvals [get]
func (c *missionApiController) approvals(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := workflowhandler.Instance.Chain(models.SubjectMissionAssignation, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения цепочки согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary История согласования
// @Tags Командировка
// @Description История решений по командировке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "mission ID"
// @Success 200 {object} apimodels.Response{data=[]workflowapimodels.ApprovalHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission/{id}/approval_history [get]
func (c *missionApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := workflowhandler.Instance.History(models.SubjectMissionAssignation, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
