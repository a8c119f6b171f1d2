package receipt

import "errors"

var (
	// ErrInvalidReceipt возвращается, если в чеке нет обязательных данных
	ErrInvalidReceipt = errors.New("receipt: invalid receipt data")

	// ErrWrite возвращается, если PDF не удалось записать
	ErrWrite = errors.New("receipt: failed to write pdf")
)
