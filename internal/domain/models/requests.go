package models

import "encoding/json"

// Requests accepted by the /api endpoints. The same structs are forwarded
// upstream as the JSON body.

type CotRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	Weeks  int    `query:"weeks" json:"weeks" default:"52" validate:"gte=1,lte=520"`
}

type DistributionRequest struct {
	Symbol    string `query:"symbol" json:"symbol" validate:"required"`
	Timeframe string `query:"timeframe" json:"timeframe" default:"daily" validate:"oneof=daily weekly monthly"`
	Years     int    `query:"years" json:"years" default:"5" validate:"gte=1,lte=30"`
}

type AverageRangeRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	Mode   string `query:"mode" json:"mode" default:"daily" validate:"oneof=daily weekly monthly"`
	Years  int    `query:"years" json:"years" default:"5" validate:"gte=1,lte=30"`
}

type RiskReversalRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	Tenor  string `query:"tenor" json:"tenor" default:"1M" validate:"oneof=1W 1M 3M 6M 1Y"`
}

type SeasonalityRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	Years  int    `query:"years" json:"years" default:"10" validate:"gte=1,lte=50"`
}

type PriceChartRequest struct {
	Symbol   string `query:"symbol" json:"symbol" validate:"required"`
	Interval string `query:"interval" json:"interval" default:"1d" validate:"oneof=1m 5m 15m 30m 1h 4h 1d 1w"`
	Limit    int    `query:"limit" json:"limit" default:"500" validate:"gte=1,lte=5000"`
}

type PositionBookRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
}

type NotificationsRequest struct {
	Limit int `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=200"`
}

type InsertTabWidgetRequest struct {
	TabID      string          `json:"tabId" validate:"required"`
	WidgetType string          `json:"widgetType" validate:"required"`
	Settings   json.RawMessage `json:"settings,omitempty"`
}

type DeleteTabWidgetRequest struct {
	TabID    string `query:"tabId" json:"tabId" validate:"required"`
	WidgetID string `query:"widgetId" json:"widgetId" validate:"required"`
}

type WidgetPosition struct {
	WidgetID string `json:"widgetId" validate:"required"`
	X        int    `json:"x" validate:"gte=0"`
	Y        int    `json:"y" validate:"gte=0"`
	W        int    `json:"w" validate:"gte=1"`
	H        int    `json:"h" validate:"gte=1"`
}

type WidgetPositionsRequest struct {
	TabID     string           `json:"tabId" validate:"required"`
	Positions []WidgetPosition `json:"positions" validate:"required,min=1,dive"`
}

type SavePreferencesRequest struct {
	Preferences map[string]interface{} `json:"preferences" validate:"required"`
}
