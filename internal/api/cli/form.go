package cli

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"timeline-service/internal/converter"
	svc "timeline-service/internal/service"
)

// promptParams проводит пользователя через форму записи. current == nil
// означает форму добавления; иначе поля предзаполнены текущими значениями
// записи: пустой ввод оставляет значение, "-" очищает опциональное поле.
// Итоговые параметры всегда полные - сохранение заменяет запись целиком.
func (s *Session) promptParams(current *converter.Row) (svc.EventParams, bool) {
	var params svc.EventParams

	defaults := formDefaults(current)

	title, ok := s.promptField("Title", defaults.Title, false)
	if !ok {
		return params, false
	}

	category, ok := s.promptField(fmt.Sprintf("Category (%s)", categoryList()), defaults.Category, false)
	if !ok {
		return params, false
	}

	description, ok := s.promptField("Description", defaults.Description, true)
	if !ok {
		return params, false
	}

	startDate, ok := s.promptField("Start date (YYYY-MM-DD)", defaults.StartDate, false)
	if !ok {
		return params, false
	}

	endDate, ok := s.promptField("End date (YYYY-MM-DD, empty = present)", defaults.EndDate, true)
	if !ok {
		return params, false
	}

	imagePath, ok := s.promptField("Image file", "", true)
	if !ok {
		return params, false
	}

	params = svc.EventParams{
		Title:       title,
		Description: description,
		Category:    category,
		StartDate:   startDate,
		EndDate:     endDate,
		Image:       defaults.Image,
	}

	// Новый путь к файлу заменяет прежнее изображение; "-" убирает его.
	// Ошибка чтения не блокирует сохранение: запись остается без
	// данных изображения, как при отправке формы до завершения загрузки.
	if imagePath == "-" {
		params.Image = ""
	} else if imagePath != "" {
		data, err := s.attachImage(imagePath)
		if err != nil {
			fmt.Fprintf(s.out, "Could not read image %q, the event will be saved without it.\n", imagePath)
		} else {
			params.Image = data
		}
	}

	return params, true
}

// promptField печатает приглашение и читает значение одного поля.
// defaultValue показывается в скобках и возвращается при пустом вводе;
// "-" очищает опциональное поле.
func (s *Session) promptField(label, defaultValue string, optional bool) (string, bool) {
	if defaultValue != "" {
		fmt.Fprintf(s.out, "  %s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(s.out, "  %s: ", label)
	}

	line, ok := s.readLine()
	if !ok {
		return "", false
	}

	value := strings.TrimSpace(line)
	if value == "" {
		return defaultValue, true
	}
	if value == "-" && optional {
		return "", true
	}
	return value, true
}

// attachImage читает файл изображения и кодирует его в data-URL
func (s *Session) attachImage(path string) (string, error) {
	data, err := s.readFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}

func defaultReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// formDefaults собирает предзаполненные значения формы редактирования
func formDefaults(current *converter.Row) svc.EventParams {
	if current == nil {
		return svc.EventParams{}
	}

	endDate := ""
	if current.EndDate != nil {
		endDate = current.EndDate.String()
	}

	return svc.EventParams{
		Title:       current.Title,
		Description: current.Description,
		Category:    string(current.Category),
		StartDate:   current.StartDate.String(),
		EndDate:     endDate,
		Image:       current.Image,
	}
}
