// Package frame строит табличное представление событий - формат входа модели.
// Колонки именованы, строки идут в порядке входных записей.
package frame

import (
	"fmt"

	"github.com/shenikar/disaster_response_predictor/internal/models"
)

// Kind - тип значений колонки
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Column - одна именованная колонка. Заполнено только поле, соответствующее Kind
type Column struct {
	Name    string
	Kind    Kind
	Numbers []float64
	Strings []string
}

// Frame - таблица с фиксированным набором колонок
type Frame struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// Колонки в порядке полей DisasterEvent
const (
	ColCountry                 = "country"
	ColDisasterType            = "disaster_type"
	ColSeverityIndex           = "severity_index"
	ColCasualties              = "casualties"
	ColEconomicLossUSD         = "economic_loss_usd"
	ColAidAmountUSD            = "aid_amount_usd"
	ColResponseEfficiencyScore = "response_efficiency_score"
	ColRecoveryDays            = "recovery_days"
	ColLatitude                = "latitude"
	ColLongitude               = "longitude"
	ColMonth                   = "month"
	ColYear                    = "year"
)

// FromEvents строит фрейм из событий, сохраняя их порядок
func FromEvents(events []models.DisasterEvent) *Frame {
	n := len(events)
	country := make([]string, n)
	disasterType := make([]string, n)
	severity := make([]float64, n)
	casualties := make([]float64, n)
	loss := make([]float64, n)
	aid := make([]float64, n)
	efficiency := make([]float64, n)
	recovery := make([]float64, n)
	lat := make([]float64, n)
	lon := make([]float64, n)
	month := make([]float64, n)
	year := make([]float64, n)

	for i, e := range events {
		country[i] = e.Country
		disasterType[i] = e.DisasterType
		severity[i] = e.SeverityIndex
		casualties[i] = float64(e.Casualties)
		loss[i] = e.EconomicLossUSD
		aid[i] = e.AidAmountUSD
		efficiency[i] = e.ResponseEfficiencyScore
		recovery[i] = float64(e.RecoveryDays)
		lat[i] = e.Latitude
		lon[i] = e.Longitude
		month[i] = float64(e.Month)
		year[i] = float64(e.Year)
	}

	f := &Frame{index: make(map[string]int), rows: n}
	f.add(&Column{Name: ColCountry, Kind: Categorical, Strings: country})
	f.add(&Column{Name: ColDisasterType, Kind: Categorical, Strings: disasterType})
	f.add(&Column{Name: ColSeverityIndex, Kind: Numeric, Numbers: severity})
	f.add(&Column{Name: ColCasualties, Kind: Numeric, Numbers: casualties})
	f.add(&Column{Name: ColEconomicLossUSD, Kind: Numeric, Numbers: loss})
	f.add(&Column{Name: ColAidAmountUSD, Kind: Numeric, Numbers: aid})
	f.add(&Column{Name: ColResponseEfficiencyScore, Kind: Numeric, Numbers: efficiency})
	f.add(&Column{Name: ColRecoveryDays, Kind: Numeric, Numbers: recovery})
	f.add(&Column{Name: ColLatitude, Kind: Numeric, Numbers: lat})
	f.add(&Column{Name: ColLongitude, Kind: Numeric, Numbers: lon})
	f.add(&Column{Name: ColMonth, Kind: Numeric, Numbers: month})
	f.add(&Column{Name: ColYear, Kind: Numeric, Numbers: year})
	return f
}

// New собирает фрейм из произвольных колонок. Все колонки должны быть одной длины
func New(columns ...*Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int)}
	for i, c := range columns {
		n := c.len()
		if i == 0 {
			f.rows = n
		} else if n != f.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", c.Name, n, f.rows)
		}
		if _, dup := f.index[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		f.add(c)
	}
	return f, nil
}

func (f *Frame) add(c *Column) {
	f.index[c.Name] = len(f.columns)
	f.columns = append(f.columns, c)
}

// Len возвращает количество строк
func (f *Frame) Len() int {
	return f.rows
}

// Columns возвращает имена колонок в порядке добавления
func (f *Frame) Columns() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Column возвращает колонку по имени
func (f *Frame) Column(name string) (*Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.columns[i], true
}

func (c *Column) len() int {
	if c.Kind == Categorical {
		return len(c.Strings)
	}
	return len(c.Numbers)
}
