package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	Register(c echo.Context) error
	Login(c echo.Context) error
	List(c echo.Context) error
	WhoAmI(c echo.Context) error
}
