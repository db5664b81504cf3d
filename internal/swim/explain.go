package swim

import (
	"fmt"

	"swimcast/internal/types"
)

// Summary banners. Exactly one is prepended to every explanation list,
// selected solely by the total score.
const (
	BannerGood = "Great conditions for swimming today."
	BannerFair = "Swimmable, but review the cautions below before heading out."
	BannerPoor = "Swimming is not advisable under current conditions."
)

// Banner selection thresholds on the total score.
const (
	bannerGoodMin = 80
	bannerFairMin = 50
)

// Hazard and context messages, appended in the fixed check order below.
const (
	MsgThunderstorm   = "Thunderstorm activity in the area. Stay out of the water."
	MsgStrongWind     = "Strong winds are producing dangerous surface conditions."
	MsgColdWater      = "Cold water: risk of cold shock, a wetsuit is strongly recommended."
	MsgHeavyPrecip    = "Heavy precipitation may affect water quality near outflows."
	MsgLowVisibility  = "Very low visibility on the water."
	MsgPoorAirQuality = "Poor air quality; consider limiting exertion."
	MsgExtremeHeat    = "Extreme heat: hydrate and limit direct sun exposure."
	MsgChillyAir      = "Chilly air will make entries and exits uncomfortable."
	MsgExtremeUV      = "Extreme UV levels; shade and sunscreen are essential."
	MsgHighUV         = "Very high UV; reapply sunscreen frequently."
	MsgWindChill      = "Wind chill will be noticeable when leaving the water."
	MsgClearSkyUV     = "Clear skies amplify UV exposure."
)

// banner returns the summary banner for a total score.
func banner(total int) string {
	switch {
	case total >= bannerGoodMin:
		return BannerGood
	case total >= bannerFairMin:
		return BannerFair
	default:
		return BannerPoor
	}
}

// Explain derives the ordered explanation list: sub-score commentary first,
// then raw-input hazard and context messages evaluated independently (all
// applicable ones appear, each once, in fixed order), and finally the summary
// banner prepended at position 0. No randomization, no deduplication.
func Explain(b types.ScoreBreakdown, in types.SwimInputs, total int) []string {
	var msgs []string

	// Sub-score commentary.
	switch {
	case b.Safety < 20:
		msgs = append(msgs, fmt.Sprintf("Safety score is critically low (%d/100).", b.Safety))
	case b.Safety < 40:
		msgs = append(msgs, fmt.Sprintf("There are safety concerns today (safety %d/100).", b.Safety))
	}
	if b.Comfort < 20 {
		msgs = append(msgs, fmt.Sprintf("Comfort will be poor (%d/100).", b.Comfort))
	} else if b.Comfort > 80 {
		msgs = append(msgs, fmt.Sprintf("Excellent comfort conditions (%d/100).", b.Comfort))
	}
	if b.Performance < 20 {
		msgs = append(msgs, fmt.Sprintf("Conditions will be challenging for sustained swimming (%d/100).", b.Performance))
	}

	// Hazard and context messages, independent checks in fixed order.
	if isStormCode(in.WeatherCode) {
		msgs = append(msgs, MsgThunderstorm)
	}
	if in.WindSpeed >= 40 {
		msgs = append(msgs, MsgStrongWind)
	}
	if in.SeaTemp < 15 {
		msgs = append(msgs, MsgColdWater)
	}
	if in.PrecipAmount >= 10 || in.PrecipLast24h >= 30 {
		msgs = append(msgs, MsgHeavyPrecip)
	}
	if in.Visibility < 1000 {
		msgs = append(msgs, MsgLowVisibility)
	}
	if in.AirQuality >= 150 {
		msgs = append(msgs, MsgPoorAirQuality)
	}
	if in.ApparentTemp > 38 {
		msgs = append(msgs, MsgExtremeHeat)
	} else if in.ApparentTemp < 18 {
		msgs = append(msgs, MsgChillyAir)
	}
	if in.UVIndex >= 11 {
		msgs = append(msgs, MsgExtremeUV)
	} else if in.UVIndex >= 9 {
		msgs = append(msgs, MsgHighUV)
	}
	if in.WindSpeed > 20 && in.ApparentTemp < 26 {
		msgs = append(msgs, MsgWindChill)
	}
	if in.CloudCover < 20 && in.UVIndex >= 6 {
		msgs = append(msgs, MsgClearSkyUV)
	}

	return append([]string{banner(total)}, msgs...)
}
