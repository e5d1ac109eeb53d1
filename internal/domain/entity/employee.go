package entity

// Employee is a reference record used to personalize recommendations.
type Employee struct {
	ID               int
	Name             string
	PriceCapPerNight int
}
