// Package models содержит доменную модель участника спортзала:
// учётные данные, тип абонемента и платёжную информацию.
// Структуры используются в бизнес‑логике, хранилище и консольных обработчиках.
package models

// BillingInfo хранит платёжные данные участника. Значения не проверяются.
type BillingInfo struct {
	ModeOfPayment string // Способ оплаты, ожидается CASH или CARD
	Email         string // Электронная почта
	ContactNumber string // Контактный телефон
}

// User представляет зарегистрированного участника.
// Пара Name+Username по соглашению уникальна, но это нигде не проверяется.
type User struct {
	Name             string      // Отображаемое имя
	Username         string      // Имя пользователя для входа
	SubscriptionType Tier        // Тип абонемента
	Billing          BillingInfo // Платёжная информация, принадлежит участнику
}
