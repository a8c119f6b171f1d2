package hasher

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHash возвращается, если не удалось посчитать хеш
var ErrHash = errors.New("hasher: failed to hash password")

// Bcrypt хеширует пароли через bcrypt
type Bcrypt struct {
	cost int
}

// NewBcrypt создает хешер; cost <= 0 означает bcrypt.DefaultCost
func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHash, err)
	}
	return string(hash), nil
}

// Verify сравнивает пароль с хешем; битый хеш считается несовпадением
func (b *Bcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
