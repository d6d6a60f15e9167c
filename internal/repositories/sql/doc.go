// Package sql предоставляет реализацию репозитория закладок поверх gorm (PostgreSQL, SQLite).
//
// Ошибки хранилища не подавляются: исходная ошибка сохраняется в цепочке и дополнительно
// помечается ошибкой уровня репозитория с помощью convertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - другие ошибки -> repositories.ErrUnknown
//
// Отсутствие записи при поиске по идентификатору ошибкой не считается.
package sql
