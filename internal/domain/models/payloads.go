package models

// Normalized payloads returned to widgets.

type StatRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type DistributionStats struct {
	Rows []StatRow `json:"rows"`
}

type HistogramRow struct {
	StartValue            float64 `json:"startValue"`
	EndValue              float64 `json:"endValue"`
	Count                 int     `json:"count"`
	Probability           float64 `json:"probability"`
	CumulativeProbability float64 `json:"cumulativeProbability"`
}

type RangeProbability struct {
	Rows      []HistogramRow `json:"rows"`
	MeanRange float64        `json:"meanRange"`
	Total     int            `json:"total"`
	BinWidth  float64        `json:"binWidth"`
}

type AverageRangeRow struct {
	Label     string  `json:"label"`
	HighToLow float64 `json:"highToLow"`
	ATR       float64 `json:"atr"`
	Samples   int     `json:"samples"`
}

type AverageRangeHistogram struct {
	Mode string            `json:"mode"`
	Rows []AverageRangeRow `json:"rows"`
}

type RiskReversalPoint struct {
	Date string  `json:"date"`
	Put  float64 `json:"put"`
	Call float64 `json:"call"`
}

type Trend string

const (
	TrendBullish Trend = "bullish"
	TrendBearish Trend = "bearish"
	TrendNeutral Trend = "neutral"
)

type ForecastRow struct {
	Label     string  `json:"label"`
	Prognosis float64 `json:"prognosis"`
	WinRate   float64 `json:"winRate"`
	AvgReturn float64 `json:"avgReturn"`
	Trend     Trend   `json:"trend"`
}

type PerformancePoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type SeasonalityPerformance struct {
	Points []PerformancePoint `json:"points"`
	IsMock bool               `json:"isMock,omitempty"`
}

type CotPoint struct {
	Date  string  `json:"date"`
	Long  float64 `json:"long"`
	Short float64 `json:"short"`
	Net   float64 `json:"net"`
}

type CotChart struct {
	Points []CotPoint `json:"points"`
	IsMock bool       `json:"isMock,omitempty"`
}

type CotPositioningRow struct {
	Participant  string  `json:"participant"`
	Long         float64 `json:"long"`
	Short        float64 `json:"short"`
	LongPercent  string  `json:"longPercent"`
	ShortPercent string  `json:"shortPercent"`
	NetPercent   string  `json:"netPercent"`
}

type ChartPoint struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

type Notification struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	CreatedAt   string                 `json:"createdAt"`
	Icon        string                 `json:"icon"`
	IsNew       bool                   `json:"isNew"`
	Metadata    map[string]interface{} `json:"metadata"`
}
