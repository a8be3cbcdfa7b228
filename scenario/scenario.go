// Package scenario decodes a JSON snapshot of stops, orders, cabs and a
// travel-time matrix into a pool.Inputs, the way model.LoadRouteFromReader
// decodes a route file into a model.Route: a private raw struct mirrors the
// wire shape, then gets translated into the package's real domain types.
package scenario

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/boguszjelinski/kern/pool"
)

type rawStop struct {
	ID      int     `json:"id"`
	Bearing int     `json:"bearing"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type rawOrder struct {
	ID        int `json:"id"`
	FromStand int `json:"from_stand"`
	ToStand   int `json:"to_stand"`
	MaxWait   int `json:"max_wait"`
	MaxLoss   int `json:"max_loss"`
	Distance  int `json:"distance"`
}

type rawCab struct {
	ID       int `json:"id"`
	Location int `json:"location"`
	Seats    int `json:"seats"`
	Dist     int `json:"dist"`
}

type rawDoc struct {
	Stops    []rawStop  `json:"stops"`
	Orders   []rawOrder `json:"orders"`
	Cabs     []rawCab   `json:"cabs"`
	Distance []int16    `json:"distance"` // row-major, len(stops)^2
}

// Load parses a scenario document and builds a pool.Inputs from it.
func Load(r io.Reader) (pool.Inputs, error) {
	dec := json.NewDecoder(r)
	var raw rawDoc
	if err := dec.Decode(&raw); err != nil {
		return pool.Inputs{}, fmt.Errorf("scenario: decoding document: %w", err)
	}

	n := len(raw.Stops)
	if len(raw.Distance) != n*n {
		return pool.Inputs{}, fmt.Errorf("scenario: distance matrix has %d entries, want %d (stops=%d)",
			len(raw.Distance), n*n, n)
	}

	stops := make([]pool.Stop, n)
	for i, s := range raw.Stops {
		stops[i] = pool.Stop{ID: s.ID, Bearing: s.Bearing, Lat: s.Lat, Lon: s.Lon}
	}

	orders := make([]pool.Order, len(raw.Orders))
	for i, o := range raw.Orders {
		orders[i] = pool.Order{
			ID: o.ID, FromStand: o.FromStand, ToStand: o.ToStand,
			MaxWait: o.MaxWait, MaxLoss: o.MaxLoss, Distance: o.Distance,
		}
	}

	cabs := make([]pool.Cab, len(raw.Cabs))
	for i, c := range raw.Cabs {
		cabs[i] = pool.Cab{ID: c.ID, Location: c.Location, Seats: c.Seats, Dist: c.Dist}
	}

	return pool.Inputs{
		Dist:   pool.NewDistanceMatrix(raw.Distance, n),
		Stops:  stops,
		Orders: orders,
		Cabs:   cabs,
	}, nil
}
