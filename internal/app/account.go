package app

import "go-shadow-defend/internal/interfaces"

var _ interfaces.Account = (*Account)(nil)

// Account хранит деньги и жизни игрока на одну сессию.
type Account struct {
	money int
	lives int
}

func NewAccount(money, lives int) *Account {
	return &Account{money: money, lives: lives}
}

func (a *Account) Deduct(amount int)      { a.money -= amount }
func (a *Account) Credit(amount int)      { a.money += amount }
func (a *Account) Money() int             { return a.money }
func (a *Account) DeductLives(amount int) { a.lives -= amount }
func (a *Account) Lives() int             { return a.lives }

// Reset возвращает стартовый баланс при каждой загрузке карты.
func (a *Account) Reset(money, lives int) {
	a.money = money
	a.lives = lives
}
