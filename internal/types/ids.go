package types

// EntityID: идентификатор сущности в ECS. ID только растут и внутри уровня
// не переиспользуются: ссылка на удалённую сущность просто никуда не ведёт.
type EntityID uint64

// NoEntity: нулевой ID, живой сущности с ним нет.
const NoEntity EntityID = 0
