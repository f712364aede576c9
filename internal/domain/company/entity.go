package company

// Company - employer entity (e.g. "Bolt Praha")
type Company struct {
	ID           int
	Name         string
	City         *string
	ContactEmail *string
	Phone        *string
}
