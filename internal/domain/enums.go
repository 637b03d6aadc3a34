package domain

// Trend classifies the recent direction of a price series.
type Trend int

const (
	TrendVeryBearish Trend = iota
	TrendBearish
	TrendNeutral
	TrendBullish
	TrendVeryBullish
)

var trendNames = map[Trend]string{
	TrendVeryBearish: "VERY_BEARISH",
	TrendBearish:     "BEARISH",
	TrendNeutral:     "NEUTRAL",
	TrendBullish:     "BULLISH",
	TrendVeryBullish: "VERY_BULLISH",
}

func (t Trend) String() string {
	if name, ok := trendNames[t]; ok {
		return name
	}
	return "NEUTRAL"
}

// MarshalJSON renders the trend as its wire tag.
func (t Trend) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Action is the recommended course of action for a candidate. A closed set so
// tier logic compares tags, never display strings.
type Action int

const (
	ActionAvoid Action = iota
	ActionMonitor
	ActionWatch
	ActionModerateBuy
	ActionStrongBuy
	ActionImmediateBuy
	// ActionOverboughtCaution replaces a buy action when RSI signals
	// overbought conditions.
	ActionOverboughtCaution
)

var actionNames = map[Action]string{
	ActionAvoid:             "❌ EVITAR",
	ActionMonitor:           "👀 MONITOREAR",
	ActionWatch:             "⚡ OBSERVAR DE CERCA",
	ActionModerateBuy:       "📈 COMPRA MODERADA",
	ActionStrongBuy:         "🔥 COMPRA FUERTE",
	ActionImmediateBuy:      "🚀 COMPRA INMEDIATA",
	ActionOverboughtCaution: "⚠️ COMPRAR CON CAUTELA (SOBRECOMPRA)",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return actionNames[ActionAvoid]
}

// IsBuy reports whether the action is one of the buy tiers.
func (a Action) IsBuy() bool {
	return a == ActionModerateBuy || a == ActionStrongBuy || a == ActionImmediateBuy
}

// MarshalJSON renders the action as its display string.
func (a Action) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// Confidence expresses how strong a recommendation is, ordered ascending.
type Confidence int

const (
	ConfidenceMuyBaja Confidence = iota
	ConfidenceBaja
	ConfidenceMedia
	ConfidenceAlta
	ConfidenceMuyAlta
	ConfidenceExtrema
)

var confidenceNames = map[Confidence]string{
	ConfidenceMuyBaja: "MUY BAJA",
	ConfidenceBaja:    "BAJA",
	ConfidenceMedia:   "MEDIA",
	ConfidenceAlta:    "ALTA",
	ConfidenceMuyAlta: "MUY ALTA",
	ConfidenceExtrema: "EXTREMA",
}

func (c Confidence) String() string {
	if name, ok := confidenceNames[c]; ok {
		return name
	}
	return confidenceNames[ConfidenceMuyBaja]
}

// MarshalJSON renders the confidence as its display string.
func (c Confidence) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}
