package api

import "time"

// PortfolioSummary aggregates the monitored wind farms.
type PortfolioSummary struct {
	TotalWindfarms   int     `json:"total_windfarms"`
	TotalCapacityMW  float64 `json:"total_capacity_mw"`
	TotalTurbines    int     `json:"total_turbines"`
	OperationalCount int     `json:"operational_count"`
	CountryCount     int     `json:"country_count"`
	OwnerCount       int     `json:"owner_count"`
}

// Windfarm is a single site in the portfolio.
type Windfarm struct {
	ID             int64      `json:"id"`
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	Country        string     `json:"country,omitempty"`
	CapacityMW     float64    `json:"nameplate_capacity_mw"`
	Status         string     `json:"status"`
	Offshore       bool       `json:"offshore"`
	CommissionedAt *time.Time `json:"commercial_operational_date,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Owner is a company holding a stake in a wind farm.
type Owner struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Ownership is one owner's stake.
type Ownership struct {
	Owner            Owner   `json:"owner"`
	OwnershipPercent float64 `json:"ownership_percentage"`
}

// WindfarmWithOwners is a wind farm and its ownership breakdown.
type WindfarmWithOwners struct {
	Windfarm
	Owners []Ownership `json:"owners"`
}

// User is the authenticated account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
