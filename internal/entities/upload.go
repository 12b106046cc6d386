package entities

// UploadResult итог импорта таблицы: новые строки и пропущенные дубликаты.
// Rejected строки без обязательных полей, в Skipped они не входят.
type UploadResult struct {
	Uploaded int
	Skipped  int
	Rejected []ImportRowError
}

// ImportRowError строка таблицы, не прошедшая проверку обязательных полей.
type ImportRowError struct {
	Row     int
	Missing []string
}
