package suggestion

import "time"

// MonthRange delimita un mes calendario, del primer al último día inclusive.
type MonthRange struct {
	From time.Time
	To   time.Time
}

// monthSpan construye el rango completo del mes indicado. time.Date normaliza
// meses fuera de [1,12], por lo que el desborde de año se resuelve solo, y el
// día cero del mes siguiente es el último día del mes (incluye febrero bisiesto).
func monthSpan(year, month int) MonthRange {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return MonthRange{From: from, To: to}
}

// PlanRanges devuelve las ventanas de comparación para el mes objetivo:
//   - last3: los tres meses completos anteriores, del más cercano al más lejano.
//   - sameMonthLastYear: el mismo mes del año anterior y sus tres meses
//     previos, del mes ancla hacia atrás.
func PlanRanges(month, year int) (last3, sameMonthLastYear []MonthRange) {
	last3 = make([]MonthRange, 0, 3)
	for i := 1; i <= 3; i++ {
		last3 = append(last3, monthSpan(year, month-i))
	}

	sameMonthLastYear = make([]MonthRange, 0, 4)
	for i := 0; i <= 3; i++ {
		sameMonthLastYear = append(sameMonthLastYear, monthSpan(year-1, month-i))
	}
	return last3, sameMonthLastYear
}

// CurrentMonthRange devuelve el rango parcial del mes en curso: desde el día 1
// hasta la fecha de referencia inclusive. Es un mes incompleto a propósito.
func CurrentMonthRange(now time.Time) MonthRange {
	return MonthRange{
		From: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
}
