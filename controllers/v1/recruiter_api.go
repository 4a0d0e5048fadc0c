package apiv1

import (
	"job-board-backend/controllers"
	recruiterhandler "job-board-backend/lib/recruiter"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	recruiterapimodels "job-board-backend/models/api/recruiter"

	"github.com/gofiber/fiber/v2"
)

type recruiterApiController struct {
	controllers.BaseAPIController
}

func InitRecruiterApiRouters(public fiber.Router, authorized fiber.Router) {
	controller := recruiterApiController{}
	public.Route("recruiter", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Get(":id", controller.get)
	})
	authorized.Route("recruiter", func(router fiber.Router) {
		router.Put("", middleware.RecruiterRequired(), controller.updateProfile)
	})
}

// @Summary Изменение профиля рекрутера
// @Tags Рекрутер
// @Description Изменение профиля авторизованным рекрутером, смена имени или почты обновляет данные рекрутера на его вакансиях
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 recruiterapimodels.ProfileUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=recruiterapimodels.RecruiterView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board/recruiter [put]
func (c *recruiterApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload recruiterapimodels.ProfileUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recruiterID := middleware.GetUserID(ctx)
	resp, err := recruiterhandler.Instance.UpdateProfile(recruiterID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения профиля рекрутера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список рекрутеров
// @Tags Рекрутер
// @Description Список всех рекрутеров
// @Success 200 {object} apimodels.Response{data=[]recruiterapimodels.RecruiterView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruiter/list [get]
func (c *recruiterApiController) list(ctx *fiber.Ctx) error {
	list, err := recruiterhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка рекрутеров")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение рекрутера
// @Tags Рекрутер
// @Description Получение рекрутера по ИД
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=recruiterapimodels.RecruiterView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruiter/{id} [get]
func (c *recruiterApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := recruiterhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения рекрутера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
