package forecast

import (
	"fmt"
	"sort"
)

// DailyKeepRange is the grouped-date index window kept by ReduceDaily:
// the first grouped date (today) is dropped and at most the three
// following dates are returned.
const (
	dailyKeepFrom = 1
	dailyKeepTo   = 3
)

// ReduceHourly folds flat hourly-forecast records into at most
// windowSize chronological slots starting at windowStart o'clock,
// wrapping past midnight. Keys the provider has not published yet are
// dropped while the relative order of the remaining keys is preserved.
func ReduceHourly(records []CategoryRecord, windowStart, windowSize int) []HourlySlot {
	grouped := make(map[string]*HourlySlot, windowSize)
	for _, rec := range records {
		slot := func() *HourlySlot {
			if s, ok := grouped[rec.Time]; ok {
				return s
			}
			s := &HourlySlot{Time: rec.Time}
			grouped[rec.Time] = s
			return s
		}

		switch rec.Category {
		case CategoryTemperature, CategoryDailyTemp:
			slot().Temperature = rec.Value
		case CategorySky:
			slot().Sky = SkyFromCode(rec.Value)
		}
		// Unrecognized categories are ignored for forward compatibility.
	}

	slots := make([]HourlySlot, 0, windowSize)
	for i := 0; i < windowSize; i++ {
		key := fmt.Sprintf("%02d00", (windowStart+i)%24)
		if slot, ok := grouped[key]; ok {
			slots = append(slots, *slot)
		}
	}
	return slots
}

// ReduceDaily folds flat multi-day-forecast records into per-date
// slots. The provider returns today first; the displayed window drops
// it and keeps the following three dates in ascending date order.
func ReduceDaily(records []CategoryRecord) []DailySlot {
	grouped := make(map[string]*DailySlot)
	for _, rec := range records {
		slot := func() *DailySlot {
			if s, ok := grouped[rec.Date]; ok {
				return s
			}
			s := &DailySlot{Date: rec.Date}
			grouped[rec.Date] = s
			return s
		}

		switch rec.Category {
		case CategoryMaxTemp:
			slot().MaxTemp = rec.Value
		case CategoryMinTemp:
			slot().MinTemp = rec.Value
		case CategoryPrecipProb:
			slot().PrecipProb = rec.Value
		case CategorySky:
			slot().Sky = SkyFromCode(rec.Value)
		}
	}

	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if len(dates) <= dailyKeepFrom {
		return nil
	}
	dates = dates[dailyKeepFrom:]
	if len(dates) > dailyKeepTo {
		dates = dates[:dailyKeepTo]
	}

	slots := make([]DailySlot, 0, len(dates))
	for _, date := range dates {
		slots = append(slots, *grouped[date])
	}
	return slots
}

// BuildObservation assembles the current observation from ground
// observation records. The observation is rebuilt whole every fetch.
func BuildObservation(records []CategoryRecord) CurrentObservation {
	obs := CurrentObservation{Precipitation: PrecipUnknown}
	for _, rec := range records {
		switch rec.Category {
		case CategoryTemperature:
			obs.Temperature = rec.Value
		case CategoryHumidity:
			obs.Humidity = rec.Value
		case CategoryPrecipType:
			obs.Precipitation = PrecipFromCode(rec.Value)
		}
	}
	return obs
}
