// Package period resolves the named date-range shorthands used by the order
// history and the dashboard into concrete start/end timestamps.
package period

import (
	"fmt"
	"time"
)

type Periodo string

const (
	Hoje          Periodo = "hoje"
	Ontem         Periodo = "ontem"
	Ultimos7Dias  Periodo = "ultimos7dias"
	EsteMes       Periodo = "estemes"
	MesAnterior   Periodo = "mesanterior"
	Ultimos3Meses Periodo = "ultimos3meses"
	AnoAtual      Periodo = "anoatual"
	Personalizado Periodo = "personalizado"
)

// Intervalo is a closed [Inicio, Fim] range: Inicio at the first instant of
// its day, Fim at the last.
type Intervalo struct {
	Inicio time.Time
	Fim    time.Time
}

// Resolver maps a named period onto a concrete range relative to agora.
// Personalizado carries its own dates; use Custom for it.
func Resolver(p Periodo, agora time.Time) (Intervalo, error) {
	switch p {
	case Hoje:
		return Intervalo{inicioDoDia(agora), fimDoDia(agora)}, nil
	case Ontem:
		ontem := agora.AddDate(0, 0, -1)
		return Intervalo{inicioDoDia(ontem), fimDoDia(ontem)}, nil
	case Ultimos7Dias:
		return Intervalo{inicioDoDia(agora.AddDate(0, 0, -7)), fimDoDia(agora)}, nil
	case EsteMes:
		primeiro := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
		return Intervalo{primeiro, fimDoDia(agora)}, nil
	case MesAnterior:
		primeiroDesteMes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
		primeiro := primeiroDesteMes.AddDate(0, -1, 0)
		ultimo := primeiroDesteMes.AddDate(0, 0, -1)
		return Intervalo{primeiro, fimDoDia(ultimo)}, nil
	case Ultimos3Meses:
		return Intervalo{inicioDoDia(agora.AddDate(0, -3, 0)), fimDoDia(agora)}, nil
	case AnoAtual:
		primeiro := time.Date(agora.Year(), time.January, 1, 0, 0, 0, 0, agora.Location())
		return Intervalo{primeiro, fimDoDia(agora)}, nil
	case Personalizado:
		return Intervalo{}, fmt.Errorf("período personalizado requer datas explícitas")
	default:
		return Intervalo{}, fmt.Errorf("período desconhecido: %q", p)
	}
}

// Custom builds the range for a user-picked pair of dates, widened to whole
// days.
func Custom(inicio, fim time.Time) Intervalo {
	return Intervalo{inicioDoDia(inicio), fimDoDia(fim)}
}

// DataInicio formats the range start for the dataInicio query parameter.
func (i Intervalo) DataInicio() string {
	return i.Inicio.Format(time.RFC3339)
}

// DataFim formats the range end for the dataFim query parameter.
func (i Intervalo) DataFim() string {
	return i.Fim.Format(time.RFC3339)
}

func inicioDoDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func fimDoDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
