package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmtrack/pkg/apperr"
	"farmtrack/pkg/farmer/controller"
	"farmtrack/pkg/farmer/service"
)

type FarmerCtrl struct{ svc service.FarmerService }

func New(svc service.FarmerService) controller.FarmerController { return &FarmerCtrl{svc} }

func ok(c echo.Context, status int, msg string, data any) error {
	body := echo.Map{"success": true, "message": msg}
	if data != nil {
		body["data"] = data
	}
	return c.JSON(status, body)
}

func bind(c echo.Context) (service.FarmerFields, error) {
	var req service.FarmerFields
	if err := c.Bind(&req); err != nil {
		return req, apperr.Validation("invalid json: " + err.Error())
	}
	return req, nil
}

func (h *FarmerCtrl) Create(c echo.Context) error {
	req, err := bind(c)
	if err != nil {
		return apperr.Respond(c, err)
	}
	f, err := h.svc.Create(c.Request().Context(), req.Registration())
	if err != nil {
		return apperr.Respond(c, err)
	}
	return ok(c, http.StatusCreated, "Farmer registered successfully", f)
}

func (h *FarmerCtrl) List(c echo.Context) error {
	list, err := h.svc.List(c.Request().Context())
	if err != nil {
		return apperr.Respond(c, err)
	}
	return ok(c, http.StatusOK, "Farmers fetched successfully", list)
}

func (h *FarmerCtrl) Get(c echo.Context) error {
	f, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return ok(c, http.StatusOK, "Farmer fetched successfully", f)
}

func (h *FarmerCtrl) Update(c echo.Context) error {
	req, err := bind(c)
	if err != nil {
		return apperr.Respond(c, err)
	}
	f, err := h.svc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return ok(c, http.StatusOK, "Farmer updated successfully", f)
}

func (h *FarmerCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return apperr.Respond(c, err)
	}
	return ok(c, http.StatusOK, "Farmer deleted successfully", nil)
}
