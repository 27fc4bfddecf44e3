package handler

import "github.com/labstack/echo/v4"

// Every response carries a success flag; successes add data (and count on
// list endpoints), failures add a message. The shape is part of the API
// contract consumed by the frontend.

type successResponse struct {
	Success bool `json:"success"`
	Count   *int `json:"count,omitempty"`
	Data    any  `json:"data"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, successResponse{Success: true, Data: data})
}

func respondCount(c echo.Context, status int, count int, data any) error {
	return c.JSON(status, successResponse{Success: true, Count: &count, Data: data})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, failureResponse{Success: false, Message: message})
}
