// Package pool implements the branch-enumeration core of the ride-pooling
// dispatcher: given open orders, available cabs, a travel-time matrix and
// stop bearings, it searches for feasible pickup/drop-off sequences and
// greedily assigns the cheapest non-overlapping ones to the nearest capable
// cab.
package pool

// Action marks whether a stop visit in a Branch is a pickup or a drop-off.
type Action byte

const (
	// In marks a pickup of a passenger.
	In Action = 'i'
	// Out marks a drop-off of a passenger.
	Out Action = 'o'
)

// Stop is a fixed point on the map, identified by its index into the
// distance matrix. Bearing is the compass direction (0..359) associated
// with the stop, used to suppress sharp direction reversals on short legs.
type Stop struct {
	ID       int
	Bearing  int
	Lat, Lon float64
}

// Order is one passenger's ride request. ID is set to -1 once the order has
// been allocated to a pool, by this pass or an earlier (larger pool-size)
// one; allocated orders are invisible to subsequent searches.
type Order struct {
	ID        int
	FromStand int
	ToStand   int
	MaxWait   int // minutes
	MaxLoss   int // percent detour allowed relative to direct ride time
	Distance  int // minutes, direct travel time fromStand->toStand
}

// allocated reports whether this order has already been consumed by a prior
// or current pass.
func (o Order) allocated() bool { return o.ID == -1 }

// Cab is an available vehicle. ID is set to -1 once assigned to a pool.
type Cab struct {
	ID       int
	Location int // stop index
	Seats    int
	Dist     int // minutes left on the cab's current leg, if any
}

func (c Cab) allocated() bool { return c.ID == -1 }

// DistanceMatrix is a dense, caller-owned table of travel times in minutes
// between stops, addressed row-major. The solver never assumes symmetry.
type DistanceMatrix struct {
	values []int16
	n      int
}

// NewDistanceMatrix wraps a pre-computed, row-major N*N slice of minute
// travel times. It panics if the slice length does not match n*n, since a
// malformed matrix is a caller bug, not a recoverable runtime condition.
func NewDistanceMatrix(values []int16, n int) DistanceMatrix {
	if len(values) != n*n {
		panic("pool: distance matrix length does not match n*n")
	}
	return DistanceMatrix{values: values, n: n}
}

// At returns the travel time in minutes from stop row to stop col.
func (d DistanceMatrix) At(row, col int) int {
	return int(d.values[row*d.n+col])
}

// N reports the matrix dimension.
func (d DistanceMatrix) N() int { return d.n }

// Branch is one candidate pool, in progress or complete: an ordered
// sequence of pickup/drop-off actions plus the accumulated cost of
// traversing it.
type Branch struct {
	Cost    int // cumulative minutes along the sequence, excluding the cab's leg to the first stop; -1 is a tombstone
	Outs    int // number of Out actions already present
	OrdIDs  []int
	OrdActs []Action
	Cab     int // index into the Cabs input slice; meaningful only after assignment
}

// length returns how many stops this branch currently visits.
func (b Branch) length() int { return len(b.OrdIDs) }

// clone returns a deep copy of the branch, so mutations (e.g. tombstoning)
// on the returned copy never alias the original's backing slices.
func (b Branch) clone() Branch {
	ids := make([]int, len(b.OrdIDs))
	copy(ids, b.OrdIDs)
	acts := make([]Action, len(b.OrdActs))
	copy(acts, b.OrdActs)
	return Branch{Cost: b.Cost, Outs: b.Outs, OrdIDs: ids, OrdActs: acts, Cab: b.Cab}
}

// tombstoned reports whether this branch has been marked dead by the
// dedup & assign pass.
func (b Branch) tombstoned() bool { return b.Cost == -1 }

// GoalFunc selects the sort key used ahead of dedup & assign. The original
// C entry point left this a one-byte "for future use" parameter; this
// implementation resolves it into a real, selectable strategy.
type GoalFunc int

const (
	// GoalCost sorts candidate pools by cumulative travel cost, ascending.
	// This is the default and matches the behavior described for the core.
	GoalCost GoalFunc = iota
	// GoalCostDetour sorts by cost plus the sum of each passenger's
	// individual detour (see sumDetour).
	GoalCostDetour
	// GoalDistanceWithoutPassengers prefers pools that minimize the empty
	// (no-passenger) legs inside the sequence (see countDistanceWithoutPassengers).
	GoalDistanceWithoutPassengers
)
