// Package docs Depot Route Service API.
//
// Сервис планирования объездов точек сети. Принимает книги Excel с точками
// (网点), строит сквозные автомобильные маршруты через Baidu Directions API
// и оптимизирует порядок обхода эвристикой ближайшего соседа.
//
// Основные возможности:
// - Загрузка точек сети из книг Excel с группировкой по 网组
// - Сборка сквозного маршрута по точкам в заданном порядке
// - Оптимизация порядка обхода (эвристика ближайшего соседа)
// - Поиск самой удалённой пары точек по прямой (Haversine)
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
