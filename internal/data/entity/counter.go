package entity

// CounterBooking is the sequence name backing ticket numbers
const CounterBooking = "booking"

// Counter is a named monotonic sequence. Only ever mutated via the atomic
// increment-and-read in the counter repository.
type Counter struct {
	Name string `db:"name"`
	Seq  int64  `db:"seq"`
}
