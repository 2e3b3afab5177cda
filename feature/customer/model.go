package customer

// Customer is one customer record. PhoneNumber is the primary key of the
// customer store; ID and Email are unique secondary fields.
type Customer struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber string
}

// Column positions in the delimited customer layout.
const (
	colID = iota
	colName
	colEmail
	colPhoneNumber

	columnCount
)

// Header returns the header row for customer output files.
func Header() []string {
	return []string{"id", "name", "email", "phoneNumber"}
}

// Row renders one customer in the delimited column layout.
func Row(c Customer) []string {
	return []string{c.ID, c.Name, c.Email, c.PhoneNumber}
}
