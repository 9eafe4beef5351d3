package utils

import "time"

// DateLayout é o formato de data usado no dataset e nas respostas da API
const DateLayout = "2006-01-02"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatDate serializa a data no formato yyyy-mm-dd
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
