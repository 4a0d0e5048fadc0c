package apiv1

import (
	"fmt"
	"job-board-backend/controllers"
	applicationhandler "job-board-backend/lib/application"
	pdfexport "job-board-backend/lib/export/pdf"
	xlsexport "job-board-backend/lib/export/xls"
	postinghandler "job-board-backend/lib/posting"
	"job-board-backend/middleware"
	apimodels "job-board-backend/models/api"
	applicationapimodels "job-board-backend/models/api/application"
	postingapimodels "job-board-backend/models/api/posting"

	"github.com/gofiber/fiber/v2"
)

type postingApiController struct {
	controllers.BaseAPIController
}

func InitPostingApiRouters(public fiber.Router, authorized fiber.Router) {
	controller := postingApiController{}
	public.Route("posting", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get("byrecruiter/:recruiter_id", controller.listByRecruiter)
		router.Get(":id", controller.get)
	})
	authorized.Route("posting", func(router fiber.Router) {
		router.Use(middleware.RecruiterRequired())
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.amend)
			idRoute.Delete("", controller.softDelete)
			idRoute.Get("export/xlsx", controller.exportXlsx)
			idRoute.Get("export/pdf", controller.exportPdf)
		})
	})
}

// @Summary Публикация вакансии
// @Tags Вакансия
// @Description Публикация вакансии рекрутером
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 postingapimodels.PostingData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board/posting [post]
func (c *postingApiController) create(ctx *fiber.Ctx) error {
	var payload postingapimodels.PostingData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recruiterID := middleware.GetUserID(ctx)
	id, err := postinghandler.Instance.Create(recruiterID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка публикации вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список вакансий
// @Tags Вакансия
// @Description Список вакансий с фильтром, удаленные исключены если не запрошены
// @Param	body body	 postingapimodels.PostingFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]postingapimodels.PostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting/list [post]
func (c *postingApiController) list(ctx *fiber.Ctx) error {
	var payload postingapimodels.PostingFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := postinghandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получение вакансии
// @Tags Вакансия
// @Description Получение вакансии по ИД
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=postingapimodels.PostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting/{id} [get]
func (c *postingApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := postinghandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Вакансии рекрутера
// @Tags Вакансия
// @Description Все вакансии рекрутера
// @Param   recruiter_id		path    string	true	"recruiter ID"
// @Success 200 {object} apimodels.Response{data=[]postingapimodels.PostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/posting/byrecruiter/{recruiter_id} [get]
func (c *postingApiController) listByRecruiter(ctx *fiber.Ctx) error {
	recruiterID, err := c.GetParam(ctx, "recruiter_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := postinghandler.Instance.ListByRecruiter(recruiterID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансий рекрутера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Изменение ограничений вакансии
// @Tags Вакансия
// @Description Изменение лимитов и срока подачи, все изменения применяются атомарно
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 postingapimodels.PostingAmend	true	"request body"
// @Success 200 {object} apimodels.Response{data=postingapimodels.PostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board/posting/{id} [put]
func (c *postingApiController) amend(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload postingapimodels.PostingAmend
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recruiterID := middleware.GetUserID(ctx)
	resp, err := postinghandler.Instance.Amend(recruiterID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление вакансии
// @Tags Вакансия
// @Description Мягкое удаление, открытые отклики на вакансию закрываются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board/posting/{id} [delete]
func (c *postingApiController) softDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recruiterID := middleware.GetUserID(ctx)
	err = postinghandler.Instance.SoftDelete(recruiterID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выгрузка откликов в xlsx
// @Tags Вакансия
// @Description Выгрузка откликов на вакансию в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board/posting/{id}/export/xlsx [get]
func (c *postingApiController) exportXlsx(ctx *fiber.Ctx) error {
	posting, applications, err := c.getExportData(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки откликов")
	}
	buf, err := xlsexport.Instance.ExportApplicationList(posting, applications)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования xlsx")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "applications.xlsx"))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Выгрузка сводки в pdf
// @Tags Вакансия
// @Description Сводка по вакансии с откликами в pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/board/posting/{id}/export/pdf [get]
func (c *postingApiController) exportPdf(ctx *fiber.Ctx) error {
	posting, applications, err := c.getExportData(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки сводки")
	}
	body, err := pdfexport.Instance.GeneratePostingReport(posting, applications)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования pdf")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "posting.pdf"))
	return ctx.Status(fiber.StatusOK).Send(body)
}

func (c *postingApiController) getExportData(ctx *fiber.Ctx) (posting postingapimodels.PostingView, applications []applicationapimodels.ApplicationView, err error) {
	id, err := c.GetID(ctx)
	if err != nil {
		return posting, nil, err
	}
	posting, err = postinghandler.Instance.GetByID(id)
	if err != nil {
		return posting, nil, err
	}
	applications, err = applicationhandler.Instance.ListByPosting(id)
	if err != nil {
		return posting, nil, err
	}
	return posting, applications, nil
}
