package entities

import "time"

// Rashi é a tabela de referência de um signo, mantida pelo admin.
// Agendamentos a referenciam pelo nome, não pelo ID.
type Rashi struct {
	ID            string
	Name          ZodiacSign
	Description   string
	Element       Element
	RulingPlanet  string
	Traits        []string
	LuckyNumbers  []int
	LuckyColors   []string
	Compatibility []string
	Dates         string
	Symbol        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Summary retorna a projeção usada em agendamentos
func (r *Rashi) Summary() *RashiSummary {
	return &RashiSummary{
		Name:    r.Name,
		Symbol:  r.Symbol,
		Element: r.Element,
	}
}
