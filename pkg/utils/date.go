package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// YesterdayIn retorna a data de ontem no fuso horário do relatório,
// truncada para meia-noite.
func YesterdayIn(loc *time.Location) time.Time {
	now := time.Now().In(loc)
	y := now.AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, loc)
}
