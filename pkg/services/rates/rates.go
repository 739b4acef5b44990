package rates

import "sort"

// Lookup resolves the day-rate (TJM) for a client. A missing rate is an
// expected state and resolves to 0, never an error. Implementations are
// read-only: the engine receives a Lookup per call and never mutates it.
type Lookup interface {
	Rate(client string) float64
	Clients() []string
}

type static struct {
	rates map[string]float64
}

// NewStatic wraps an in-memory rate table. The map is copied so later
// mutations by the caller do not leak into the lookup.
func NewStatic(rates map[string]float64) Lookup {
	cp := make(map[string]float64, len(rates))
	for client, rate := range rates {
		cp[client] = rate
	}
	return &static{rates: cp}
}

func (s *static) Rate(client string) float64 {
	return s.rates[client]
}

func (s *static) Clients() []string {
	clients := make([]string, 0, len(s.rates))
	for client := range s.rates {
		clients = append(clients, client)
	}
	sort.Strings(clients)
	return clients
}
