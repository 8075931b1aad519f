package models

import "fmt"

// BidStrategy controls how the platform spends the ad set budget.
type BidStrategy string

const (
	BidLowestCostNoCap   BidStrategy = "LOWEST_COST_WITHOUT_CAP"
	BidLowestCostWithCap BidStrategy = "LOWEST_COST_WITH_BID_CAP"
	BidCostCap           BidStrategy = "COST_CAP"
	BidLowestCostMinROAS BidStrategy = "LOWEST_COST_WITH_MIN_ROAS"
)

var AllBidStrategies = []BidStrategy{
	BidLowestCostNoCap, BidLowestCostWithCap, BidCostCap, BidLowestCostMinROAS,
}

// costCapIncompatibleGoals lists optimization goals the platform refuses
// to pair with COST_CAP bidding.
var costCapIncompatibleGoals = map[OptimizationGoal]bool{
	GoalConversations:  true,
	GoalPostEngagement: true,
	GoalPageLikes:      true,
	GoalEventResponses: true,
	GoalThruPlay:       true,
}

// BidConstraints carries the strategy plus its conditionally required
// companion value (bid amount in minor currency units, or ROAS floor).
type BidConstraints struct {
	Strategy  BidStrategy `json:"bid_strategy"`
	BidAmount *int64      `json:"bid_amount,omitempty"`
	ROASFloor *float64    `json:"roas_average_floor,omitempty"`
}

// Validate checks the strategy against the chosen optimization goal and
// its own required fields.
func (b BidConstraints) Validate(goal OptimizationGoal) error {
	switch b.Strategy {
	case "", BidLowestCostNoCap:
		return nil
	case BidLowestCostWithCap, BidCostCap:
		if b.Strategy == BidCostCap && costCapIncompatibleGoals[goal] {
			return fmt.Errorf("bid strategy %s is not compatible with optimization goal %s", b.Strategy, goal)
		}
		if b.BidAmount == nil || *b.BidAmount <= 0 {
			return fmt.Errorf("bid strategy %s requires a positive bid_amount", b.Strategy)
		}
		return nil
	case BidLowestCostMinROAS:
		if b.ROASFloor == nil || *b.ROASFloor <= 0 {
			return fmt.Errorf("bid strategy %s requires a positive roas_average_floor", b.Strategy)
		}
		return nil
	}
	return fmt.Errorf("unknown bid strategy %q", b.Strategy)
}
