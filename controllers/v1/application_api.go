package apiv1

import (
	"job-board-backend/controllers"
	applicationhandler "job-board-backend/lib/application"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	applicationapimodels "job-board-backend/models/api/application"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(public fiber.Router, authorized fiber.Router) {
	controller := applicationApiController{}
	public.Route("application", func(router fiber.Router) {
		router.Get("byseeker/:seeker_id", controller.listBySeeker)
		router.Get("byseeker/:seeker_id/:posting_id", controller.getBySeekerAndPosting)
		router.Get("byposting/:posting_id", controller.listByPosting)
		router.Get("byrecruiter/:recruiter_id", controller.listByRecruiter)
	})
	authorized.Route("application", func(router fiber.Router) {
		router.Post("", middleware.SeekerRequired(), controller.submit)
		router.Put(":id/status", middleware.RecruiterRequired(), controller.setStatus)
		router.Delete(":id", middleware.SeekerRequired(), controller.withdraw)
	})
}

// @Summary Подача отклика
// @Tags Отклик
// @Description Подача отклика соискателем на вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board/application [post]
func (c *applicationApiController) submit(ctx *fiber.Ctx) error {
	var payload applicationapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	seekerID := middleware.GetUserID(ctx)
	resp, err := applicationhandler.Instance.Submit(seekerID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подачи отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Смена статуса отклика
// @Tags Отклик
// @Description Смена статуса отклика рекрутером, владеющим вакансией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicationapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board/application/{id}/status [put]
func (c *applicationApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.StatusChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recruiterID := middleware.GetUserID(ctx)
	resp, err := applicationhandler.Instance.SetStatus(recruiterID, id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отзыв отклика
// @Tags Отклик
// @Description Отзыв соискателем собственного отклика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board/application/{id} [delete]
func (c *applicationApiController) withdraw(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	seekerID := middleware.GetUserID(ctx)
	resp, err := applicationhandler.Instance.Withdraw(seekerID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отзыва отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклики соискателя
// @Tags Отклик
// @Description Все отклики соискателя
// @Param   seeker_id		path    string	true	"seeker ID"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/byseeker/{seeker_id} [get]
func (c *applicationApiController) listBySeeker(ctx *fiber.Ctx) error {
	seekerID, err := c.GetParam(ctx, "seeker_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.ListBySeeker(seekerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения откликов соискателя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отклик соискателя на вакансию
// @Tags Отклик
// @Description Отклик соискателя на конкретную вакансию
// @Param   seeker_id		path    string	true	"seeker ID"
// @Param   posting_id		path    string	true	"posting ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/byseeker/{seeker_id}/{posting_id} [get]
func (c *applicationApiController) getBySeekerAndPosting(ctx *fiber.Ctx) error {
	seekerID, err := c.GetParam(ctx, "seeker_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	postingID, err := c.GetParam(ctx, "posting_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.GetBySeekerAndPosting(seekerID, postingID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклики на вакансию
// @Tags Отклик
// @Description Все отклики на вакансию
// @Param   posting_id		path    string	true	"posting ID"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/byposting/{posting_id} [get]
func (c *applicationApiController) listByPosting(ctx *fiber.Ctx) error {
	postingID, err := c.GetParam(ctx, "posting_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.ListByPosting(postingID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения откликов на вакансию")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отклики по рекрутеру
// @Tags Отклик
// @Description Отклики на все вакансии рекрутера
// @Param   recruiter_id		path    string	true	"recruiter ID"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/byrecruiter/{recruiter_id} [get]
func (c *applicationApiController) listByRecruiter(ctx *fiber.Ctx) error {
	recruiterID, err := c.GetParam(ctx, "recruiter_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.ListByRecruiter(recruiterID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения откликов рекрутера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
