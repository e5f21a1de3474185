package api

import (
	"PMTerminal/internal/usecase"

	"github.com/labstack/echo/v4"
)

func (h *Handler) UserTabs(c echo.Context) error {
	return serveNoBody(h, c, "user tabs", usecase.UserTabsEndpoint.Auth, h.svc.UserTabs)
}

func (h *Handler) InsertTabWidget(c echo.Context) error {
	return serve(h, c, "insert tab widget", usecase.InsertTabWidgetEndpoint.Auth, h.svc.InsertTabWidget)
}

func (h *Handler) DeleteTabWidget(c echo.Context) error {
	return serve(h, c, "delete tab widget", usecase.DeleteTabWidgetEndpoint.Auth, h.svc.DeleteTabWidget)
}

func (h *Handler) UpdateWidgetPositions(c echo.Context) error {
	return serve(h, c, "update widget positions", usecase.UpdateWidgetPositionsEndpoint.Auth, h.svc.UpdateWidgetPositions)
}

func (h *Handler) Preferences(c echo.Context) error {
	return serveNoBody(h, c, "preferences", usecase.GetPreferencesEndpoint.Auth, h.svc.Preferences)
}

func (h *Handler) SavePreferences(c echo.Context) error {
	return serve(h, c, "save preferences", usecase.SavePreferencesEndpoint.Auth, h.svc.SavePreferences)
}
