// Package toon выбирает лицо и пару глаз среди кандидатов детектора,
// строит по ним систему координат и рисует мультяшный оверлей.
//
// Пакет не выполняет ввод-вывод и не логирует: все эффекты сводятся
// к рисованию на переданном холсте и чтению из переданного источника
// случайных чисел.
package toon
