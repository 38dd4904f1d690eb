package interfaces

// Account is the money and lives boundary of the simulation. The core only
// calls these methods and never owns persistence.
type Account interface {
	Deduct(amount int)
	Credit(amount int)
	Money() int
	DeductLives(amount int)
	Lives() int
}
