package models

import "github.com/pkg/errors"

// Типы ошибок доменной логики.
// Конкретный контекст добавляется через errors.Wrap, проверка типа - через errors.Is.
var (
	ErrValidation  = errors.New("некорректные данные запроса")
	ErrNotFound    = errors.New("запись не найдена")
	ErrDuplicate   = errors.New("отклик на вакансию уже существует")
	ErrExclusivity = errors.New("соискатель уже принят на другую вакансию")
	ErrCapacity    = errors.New("превышен лимит")
	ErrDeadline    = errors.New("срок подачи откликов истек")
	ErrClosed      = errors.New("отклик уже закрыт")
	ErrConstraint  = errors.New("изменение нарушает текущие ограничения вакансии")
	ErrAuth        = errors.New("операция недоступна")
	ErrStore       = errors.New("ошибка хранилища")
)
