package controller

import "github.com/labstack/echo/v4"

type CultivationController interface {
	AddForFarmer(c echo.Context) error
	ListForFarmer(c echo.Context) error
	ListAll(c echo.Context) error
}
