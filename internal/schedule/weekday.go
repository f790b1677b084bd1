package schedule

import "time"

// Azerbaijani weekday names, Sunday first to line up with time.Weekday.
var dayNames = [7]string{
	"Bazar",
	"Bazar ertəsi",
	"Çərşənbə axşamı",
	"Çərşənbə",
	"Cümə axşamı",
	"Cümə",
	"Şənbə",
}

const isoDate = "2006-01-02"

// DayName returns the Azerbaijani weekday name for an ISO date. Empty
// or malformed dates derive an empty title.
func DayName(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return ""
	}
	return dayNames[t.Weekday()]
}

// FormatDate renders an ISO date the way the panel displays it
// (dd.MM.yyyy), with a placeholder for dates it cannot read.
func FormatDate(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return "--"
	}
	return t.Format("02.01.2006")
}
