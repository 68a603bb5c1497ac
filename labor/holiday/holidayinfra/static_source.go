package holidayinfra

import (
	"context"
	"time"

	"github.com/rickar/cal/v2"

	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// Chilean public holidays whose date does not move to a Monday.
// Holidays that follow yearly decrees are left to the remote source.
var (
	AnoNuevo = &cal.Holiday{
		Name:  "Año Nuevo",
		Type:  cal.ObservancePublic,
		Month: time.January,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	ViernesSanto = &cal.Holiday{
		Name:   "Viernes Santo",
		Type:   cal.ObservancePublic,
		Offset: -2,
		Func:   cal.CalcEasterOffset,
	}
	SabadoSanto = &cal.Holiday{
		Name:   "Sábado Santo",
		Type:   cal.ObservancePublic,
		Offset: -1,
		Func:   cal.CalcEasterOffset,
	}
	DiaDelTrabajador = &cal.Holiday{
		Name:  "Día del Trabajador",
		Type:  cal.ObservancePublic,
		Month: time.May,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	GloriasNavales = &cal.Holiday{
		Name:  "Día de las Glorias Navales",
		Type:  cal.ObservancePublic,
		Month: time.May,
		Day:   21,
		Func:  cal.CalcDayOfMonth,
	}
	AsuncionDeLaVirgen = &cal.Holiday{
		Name:  "Asunción de la Virgen",
		Type:  cal.ObservancePublic,
		Month: time.August,
		Day:   15,
		Func:  cal.CalcDayOfMonth,
	}
	FiestasPatrias = &cal.Holiday{
		Name:  "Fiestas Patrias",
		Type:  cal.ObservancePublic,
		Month: time.September,
		Day:   18,
		Func:  cal.CalcDayOfMonth,
	}
	GloriasDelEjercito = &cal.Holiday{
		Name:  "Día de las Glorias del Ejército",
		Type:  cal.ObservancePublic,
		Month: time.September,
		Day:   19,
		Func:  cal.CalcDayOfMonth,
	}
	TodosLosSantos = &cal.Holiday{
		Name:  "Día de Todos los Santos",
		Type:  cal.ObservancePublic,
		Month: time.November,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	InmaculadaConcepcion = &cal.Holiday{
		Name:  "Inmaculada Concepción",
		Type:  cal.ObservancePublic,
		Month: time.December,
		Day:   8,
		Func:  cal.CalcDayOfMonth,
	}
	Navidad = &cal.Holiday{
		Name:  "Navidad",
		Type:  cal.ObservancePublic,
		Month: time.December,
		Day:   25,
		Func:  cal.CalcDayOfMonth,
	}

	chileanHolidays = []*cal.Holiday{
		AnoNuevo,
		ViernesSanto,
		SabadoSanto,
		DiaDelTrabajador,
		GloriasNavales,
		AsuncionDeLaVirgen,
		FiestasPatrias,
		GloriasDelEjercito,
		TodosLosSantos,
		InmaculadaConcepcion,
		Navidad,
	}
)

// StaticSource computes the fixed Chilean holidays of any year. It never fails.
type StaticSource struct {
	holidays []*cal.Holiday
}

func NewStaticSource() *StaticSource {
	return &StaticSource{holidays: chileanHolidays}
}

func (s *StaticSource) Fetch(_ context.Context, year int) ([]holiday.Holiday, error) {
	return s.List(year), nil
}

// List returns the holidays of year sorted by date
func (s *StaticSource) List(year int) []holiday.Holiday {
	out := make([]holiday.Holiday, 0, len(s.holidays))
	for _, h := range s.holidays {
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		out = append(out, holiday.Holiday{
			Date:  kernel.DateOf(actual),
			Title: h.Name,
		})
	}
	holiday.SortByDate(out)
	return out
}
