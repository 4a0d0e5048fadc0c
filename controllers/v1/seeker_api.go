package apiv1

import (
	"job-board-backend/controllers"
	seekerhandler "job-board-backend/lib/seeker"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	seekerapimodels "job-board-backend/models/api/seeker"

	"github.com/gofiber/fiber/v2"
)

type seekerApiController struct {
	controllers.BaseAPIController
}

func InitSeekerApiRouters(public fiber.Router, authorized fiber.Router) {
	controller := seekerApiController{}
	public.Route("seeker", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Get("byposting/:posting_id", controller.listByPosting)
		router.Get("accepted/byrecruiter/:recruiter_id", controller.listAcceptedByRecruiter)
		router.Get(":id", controller.get)
	})
	authorized.Route("seeker", func(router fiber.Router) {
		router.Put("", middleware.SeekerRequired(), controller.updateProfile)
	})
}

// @Summary Изменение профиля соискателя
// @Tags Соискатель
// @Description Изменение профиля авторизованным соискателем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 seekerapimodels.ProfileUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=seekerapimodels.SeekerView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board/seeker [put]
func (c *seekerApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload seekerapimodels.ProfileUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	seekerID := middleware.GetUserID(ctx)
	resp, err := seekerhandler.Instance.UpdateProfile(seekerID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения профиля соискателя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список соискателей
// @Tags Соискатель
// @Description Список всех соискателей
// @Success 200 {object} apimodels.Response{data=[]seekerapimodels.SeekerView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/seeker/list [get]
func (c *seekerApiController) list(ctx *fiber.Ctx) error {
	list, err := seekerhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка соискателей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение соискателя
// @Tags Соискатель
// @Description Получение соискателя по ИД
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=seekerapimodels.SeekerView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/seeker/{id} [get]
func (c *seekerApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := seekerhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения соискателя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Соискатели по вакансии
// @Tags Соискатель
// @Description Соискатели, откликнувшиеся на вакансию
// @Param   posting_id		path    string	true	"posting ID"
// @Success 200 {object} apimodels.Response{data=[]seekerapimodels.SeekerView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/seeker/byposting/{posting_id} [get]
func (c *seekerApiController) listByPosting(ctx *fiber.Ctx) error {
	postingID, err := c.GetParam(ctx, "posting_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := seekerhandler.Instance.ListByPosting(postingID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения соискателей по вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Принятые соискатели рекрутера
// @Tags Соискатель
// @Description Соискатели, принятые на вакансии рекрутера
// @Param   recruiter_id		path    string	true	"recruiter ID"
// @Success 200 {object} apimodels.Response{data=[]seekerapimodels.AcceptedSeekerView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/seeker/accepted/byrecruiter/{recruiter_id} [get]
func (c *seekerApiController) listAcceptedByRecruiter(ctx *fiber.Ctx) error {
	recruiterID, err := c.GetParam(ctx, "recruiter_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := seekerhandler.Instance.ListAcceptedByRecruiter(recruiterID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения принятых соискателей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
