package model

// User is the authenticated owner of a transaction list.
type User struct {
	ID   string
	Name string
}
