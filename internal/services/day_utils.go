package services

import "time"

const dayKeyLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(dayKeyLayout)
}

// WeekStart returns midnight of the Monday of value's week.
func WeekStart(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func MonthStart(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	return time.Date(localized.Year(), localized.Month(), 1, 0, 0, 0, 0, location)
}

func SameDay(first time.Time, second time.Time, location *time.Location) bool {
	return DateAtLocation(first, location).Equal(DateAtLocation(second, location))
}
