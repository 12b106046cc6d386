package respond

import (
	"errors"
	"mime/multipart"
	"net/http"
)

// MaxUploadSize предел для таблиц импорта и вложений тикетов.
const MaxUploadSize = 32 << 20

var ErrNoFile = errors.New(`multipart field "file" is required`)

// FormFile достаёт файл из multipart-поля "file".
func FormFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		return nil, nil, ErrNoFile
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, ErrNoFile
	}
	return file, header, nil
}
