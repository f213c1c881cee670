package contracts

// EngineeredRecord is a preprocessed record plus the derived model features.
// The engineering stage initializes every field explicitly; the zero values
// (Month 0, DayOfWeek 0) only appear when the Date column cannot be parsed.
type EngineeredRecord struct {
	Record Record `json:"record"`

	Month     int     `json:"month"`       // 1-12, 0 when Date is unparseable
	DayOfWeek int     `json:"day_of_week"` // 0-6, Sunday = 0
	PMRatio   float64 `json:"pm_ratio"`    // PM25 / PM10, PM10 zero treated as 1
	PM25Lag1  float64 `json:"pm25_lag1"`   // previous record's PM25, first record lags to itself
	NO2Lag1   float64 `json:"no2_lag1"`    // previous record's NO2, first record lags to itself
}

// Feature returns the named model input. Engineered features take priority;
// anything else is read from the underlying record's numeric columns.
func (e EngineeredRecord) Feature(name string) (float64, bool) {
	switch name {
	case "Month":
		return float64(e.Month), true
	case "DayOfWeek":
		return float64(e.DayOfWeek), true
	case "PM_Ratio":
		return e.PMRatio, true
	case "PM25_lag1":
		return e.PM25Lag1, true
	case "NO2_lag1":
		return e.NO2Lag1, true
	}
	return e.Record.Float(name)
}

// Actual returns the target value the predictors are scored against.
func (e EngineeredRecord) Actual() float64 {
	v, _ := e.Record.Float(TargetColumn)
	return v
}

// SplitResult is a lossless partition of engineered records into a train set
// and a held-out test set.
type SplitResult struct {
	Train []EngineeredRecord `json:"train"`
	Test  []EngineeredRecord `json:"test"`
}
