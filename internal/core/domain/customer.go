package domain

type Customer struct {
	ID CustomerID
}
