package services

import "time"

// RateFunc computes the hourly rate for one shift under a client's pricing
// policy. All policies are pure table lookups over (category, weekday,
// start time, holiday); the holiday flag always wins over the weekend tier,
// which wins over the weekday day/night tier.
type RateFunc func(shift NormalizedShift, holiday bool) float64

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// RateAjourCare prices Ajour Care / AkutVikar shifts. Day is a start before
// 15:00. Categories outside the table are billed at 0.
func RateAjourCare(shift NormalizedShift, holiday bool) float64 {
	day := StartHour(shift.TimeRange) < 15
	weekend := isWeekend(shift.Date)

	switch shift.Category {
	case CategoryUnskilled:
		if holiday {
			return pick(day, 215, 220)
		}
		switch {
		case weekend && day:
			return 215
		case weekend:
			return 220
		case day:
			return 175
		default:
			return 210
		}
	case CategoryHelper:
		if holiday {
			return pick(day, 215, 220)
		}
		switch {
		case weekend && day:
			return 215
		case weekend:
			return 220
		case day:
			return 200
		default:
			return 210
		}
	case CategoryAssistant:
		if holiday {
			return pick(day, 230, 240)
		}
		switch {
		case weekend && day:
			return 230
		case weekend:
			return 240
		case day:
			return 220
		default:
			return 225
		}
	}
	return 0
}

// RateDanskOmsorgspleje prices Dansk Omsorgspleje shifts. The policy is flat
// across staff categories: holiday 350, weekend 300, weekday evening (start
// 15:00 or later) 280, weekday day 255.
func RateDanskOmsorgspleje(shift NormalizedShift, holiday bool) float64 {
	if holiday {
		return 350
	}
	if isWeekend(shift.Date) {
		return 300
	}
	if StartHour(shift.TimeRange) >= 15 {
		return 280
	}
	return 255
}

// tierRates is one category row of the Dit Vikarbureau price sheet (excl. moms).
type tierRates struct {
	WeekdayDay   float64
	WeekdayNight float64
	WeekendDay   float64
	WeekendNight float64
	HolidayDay   float64
	HolidayNight float64
}

var ditVikarRates = map[StaffCategory]tierRates{
	CategoryHelper: {
		WeekdayDay:   333.00,
		WeekdayNight: 406.26,
		WeekendDay:   499.50,
		WeekendNight: 572.76,
		HolidayDay:   666.00,
		HolidayNight: 739.26,
	},
	CategoryAssistant: {
		WeekdayDay:   353.00,
		WeekdayNight: 430.66,
		WeekendDay:   529.50,
		WeekendNight: 607.16,
		HolidayDay:   706.00,
		HolidayNight: 783.66,
	},
	CategoryNurse: {
		WeekdayDay:   386.00,
		WeekdayNight: 482.50,
		WeekendDay:   579.00,
		WeekendNight: 675.50,
		HolidayDay:   772.00,
		HolidayNight: 868.50,
	},
}

// inDitDayWindow reports whether a start in minutes falls in the Dit
// Vikarbureau day window, 06:00-15:00. Everything else is the evening/night
// tier.
func inDitDayWindow(startMinutes int) bool {
	return startMinutes >= 6*60 && startMinutes < 15*60
}

// RateDitVikarbureau prices Dit Vikarbureau shifts from the published price
// sheet. Categories without a row (currently ufaglært) are billed at 0 until
// prices are agreed.
func RateDitVikarbureau(shift NormalizedShift, holiday bool) float64 {
	rates, ok := ditVikarRates[shift.Category]
	if !ok {
		return 0
	}

	day := inDitDayWindow(ParseStartMinutes(shift.TimeRange))
	if holiday {
		return pick(day, rates.HolidayDay, rates.HolidayNight)
	}
	if isWeekend(shift.Date) {
		return pick(day, rates.WeekendDay, rates.WeekendNight)
	}
	return pick(day, rates.WeekdayDay, rates.WeekdayNight)
}

func pick(day bool, dayRate, nightRate float64) float64 {
	if day {
		return dayRate
	}
	return nightRate
}
