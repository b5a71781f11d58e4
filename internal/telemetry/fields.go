package telemetry

import "github.com/meridian-labs/vita-cli/internal/core/domain"

// fieldSpec declares how one target field is resolved from an upstream
// item. Aliases are evaluated in declared order: the first alias holding
// a scalar wins; failing that, the first alias holding a compound value
// that reduces to a scalar wins; failing that, the default applies when
// one is declared, otherwise the field is omitted.
type fieldSpec struct {
	name    string
	aliases []string
	def     *float64
}

func defaultOf(v float64) *float64 { return &v }

// endpointOf maps each kind to its collection path.
var endpointOf = map[domain.Kind]string{
	domain.KindSleep:     "/v2/usercollection/sleep",
	domain.KindReadiness: "/v2/usercollection/daily_readiness",
	domain.KindActivity:  "/v2/usercollection/daily_activity",
	domain.KindSpO2:      "/v2/usercollection/daily_spo2",
	domain.KindHeartRate: "/v2/usercollection/heart_rate",
}

// dailySleepEndpoint supplies per-day sleep scores, joined into sleep
// session records by day.
const dailySleepEndpoint = "/v2/usercollection/daily_sleep"

// fieldsOf declares the normalisation table per kind. Alias order
// reflects observed API revisions: current name first, legacy names after.
var fieldsOf = map[domain.Kind][]fieldSpec{
	domain.KindSleep: {
		{name: "total_sleep_duration", aliases: []string{"total_sleep_duration"}, def: defaultOf(0)},
		{name: "efficiency", aliases: []string{"efficiency", "sleep_efficiency"}},
		{name: "latency", aliases: []string{"latency", "sleep_latency"}},
		{name: "deep_sleep_duration", aliases: []string{"deep_sleep_duration", "deep_sleep"}},
		{name: "rem_sleep_duration", aliases: []string{"rem_sleep_duration", "rem_sleep"}},
		{name: "light_sleep_duration", aliases: []string{"light_sleep_duration", "light_sleep"}},
		{name: "average_breath", aliases: []string{"average_breath", "breath_rate"}},
		{name: "average_heart_rate", aliases: []string{"average_heart_rate", "heart_rate"}},
		{name: "average_hrv", aliases: []string{"hrv_average", "average_hrv", "hrv"}},
		{name: "resting_heart_rate", aliases: []string{"resting_heart_rate", "rest_heart_rate"}},
	},
	domain.KindReadiness: {
		{name: "score", aliases: []string{"score", "readiness_score"}},
		{name: "average_hrv", aliases: []string{"hrv_average", "average_hrv", "hrv", "hrv_balance"}},
		{name: "resting_heart_rate", aliases: []string{"resting_heart_rate", "rest_heart_rate", "heart_rate"}},
		{name: "temperature_deviation", aliases: []string{"temperature_deviation", "temperature"}},
	},
	domain.KindActivity: {
		{name: "steps", aliases: []string{"steps"}},
		{name: "inactive_time", aliases: []string{"inactive_time"}},
		{name: "active_calories", aliases: []string{"active_calories"}},
		{name: "total_calories", aliases: []string{"total_calories", "calories"}},
		{name: "average_met", aliases: []string{"average_met"}},
		{name: "activity_score", aliases: []string{"activity_score"}},
	},
	domain.KindSpO2: {
		{name: "average_spo2", aliases: []string{"average_spo2", "spo2_average"}},
		{name: "lowest_spo2", aliases: []string{"lowest_spo2", "spo2_min"}},
		{name: "spo2_drops", aliases: []string{"spo2_drops", "drops_count"}},
	},
	domain.KindHeartRate: {
		{name: "average_heart_rate", aliases: []string{"average_heart_rate", "heart_rate_average"}},
		{name: "resting_heart_rate", aliases: []string{"resting_heart_rate", "rest_heart_rate"}},
		{name: "max_heart_rate", aliases: []string{"max_heart_rate", "heart_rate_max"}},
		{name: "min_heart_rate", aliases: []string{"min_heart_rate", "heart_rate_min"}},
	},
}
