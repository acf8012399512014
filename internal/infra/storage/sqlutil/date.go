package sqlutil

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateValue календарная дата для колонок DATE (postgres) и TEXT (sqlite)
func DateValue(t time.Time) string {
	return t.Format(dateLayout)
}

// Date сканирует календарную дату в полночь UTC независимо от драйвера
type Date struct {
	Time time.Time
}

// Scan принимает time.Time (lib/pq) или строку (sqlite)
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("sqlutil: cannot scan %T into Date", src)
	}
}

func (d *Date) parse(s string) error {
	if len(s) < len(dateLayout) {
		return fmt.Errorf("sqlutil: invalid date %q", s)
	}
	t, err := time.Parse(dateLayout, s[:len(dateLayout)])
	if err != nil {
		return fmt.Errorf("sqlutil: invalid date %q: %v", s, err)
	}
	d.Time = t
	return nil
}

// Value записывает дату строкой YYYY-MM-DD
func (d Date) Value() (driver.Value, error) {
	return DateValue(d.Time), nil
}
