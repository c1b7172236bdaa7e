package domain

import "errors"

// Базовые (sentinel) ошибки доменного слоя. Причина оборачивается через %w,
// транспорт различает их errors.Is и сам выбирает HTTP-статус.
var (
	// ErrNotFound — сущность по указанному идентификатору не существует.
	ErrNotFound = errors.New("not found")

	// ErrConflict — сущность с таким идентификатором уже существует.
	ErrConflict = errors.New("already exists")

	// ErrUnknownProduct — покупка ссылается на несуществующий товар.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrTimeout — операция с хранилищем не уложилась в отведённое время.
	ErrTimeout = errors.New("operation timed out")
)
