package controllerImp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmtrack/pkg/apperr"
	"farmtrack/pkg/cultivation/controller"
	"farmtrack/pkg/cultivation/service"
)

type CultivationCtrl struct{ svc service.CultivationService }

func New(svc service.CultivationService) controller.CultivationController {
	return &CultivationCtrl{svc}
}

func (h *CultivationCtrl) AddForFarmer(c echo.Context) error {
	var req service.CultivationFields
	if err := c.Bind(&req); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			return apperr.Respond(c, apperr.Validation("wrong type", te.Field))
		}
		return apperr.Respond(c, apperr.Validation("invalid json: "+err.Error()))
	}
	farmerID := c.Param("farmerId")
	rec, err := h.svc.AddForFarmer(c.Request().Context(), farmerID, req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Cultivation added",
		"farmerId":    farmerID,
		"cultivation": rec,
	})
}

func (h *CultivationCtrl) ListForFarmer(c echo.Context) error {
	list, err := h.svc.ListForFarmer(c.Request().Context(), c.Param("farmerId"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"cultivations": list})
}

func (h *CultivationCtrl) ListAll(c echo.Context) error {
	list, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
