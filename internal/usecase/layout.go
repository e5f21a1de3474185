package usecase

import (
	"context"
	"encoding/json"

	"PMTerminal/internal/domain/models"
	"PMTerminal/internal/transform"
)

// Tab layout and preferences are stored upstream; these calls forward the
// request and return the upstream document.

func (s *Service) UserTabs(ctx context.Context, token string) (json.RawMessage, error) {
	return call(ctx, s, token, UserTabsEndpoint, nil, transform.PassThrough, nil)
}

func (s *Service) InsertTabWidget(ctx context.Context, token string, req *models.InsertTabWidgetRequest) (json.RawMessage, error) {
	return call(ctx, s, token, InsertTabWidgetEndpoint, req, transform.PassThrough, nil)
}

func (s *Service) DeleteTabWidget(ctx context.Context, token string, req *models.DeleteTabWidgetRequest) (json.RawMessage, error) {
	return call(ctx, s, token, DeleteTabWidgetEndpoint, req, transform.PassThrough, nil)
}

func (s *Service) UpdateWidgetPositions(ctx context.Context, token string, req *models.WidgetPositionsRequest) (json.RawMessage, error) {
	return call(ctx, s, token, UpdateWidgetPositionsEndpoint, req, transform.PassThrough, nil)
}

func (s *Service) Preferences(ctx context.Context, token string) (json.RawMessage, error) {
	return call(ctx, s, token, GetPreferencesEndpoint, nil, transform.PassThrough, nil)
}

func (s *Service) SavePreferences(ctx context.Context, token string, req *models.SavePreferencesRequest) (json.RawMessage, error) {
	return call(ctx, s, token, SavePreferencesEndpoint, req, transform.PassThrough, nil)
}
