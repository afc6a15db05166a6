package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmtrack/pkg/apperr"
	"farmtrack/pkg/auth/controller"
	"farmtrack/pkg/auth/service"
)

type authCtrl struct{ svc service.AuthService }

func NewAuthController(svc service.AuthService) controller.AuthController { return &authCtrl{svc} }

func (h *authCtrl) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := c.Bind(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid json: "+err.Error()))
	}
	u, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered",
		"user":    echo.Map{"id": u.ID, "name": u.Name, "email": u.Email, "role": u.Role},
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid json: "+err.Error()))
	}
	u, tok, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   tok,
		"user":    echo.Map{"id": u.ID, "name": u.Name, "email": u.Email, "role": u.Role},
	})
}

func (h *authCtrl) List(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// WhoAmI reports the caller resolved by the auth middleware.
func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return apperr.Respond(c, apperr.Unauthorized("no bearer token"))
	}
	u, err := h.svc.Get(c.Request().Context(), uid)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
