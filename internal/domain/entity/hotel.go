package entity

// Hotel is a reference record. Price is the nightly rate in whole
// currency units, resolved from whichever price column the source
// table carries.
type Hotel struct {
	ID    int
	Name  string
	City  string
	Price int
	Stars int
}
