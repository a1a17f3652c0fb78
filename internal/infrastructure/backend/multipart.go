package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/lovelyplace-web/internal/domain"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// writeFile добавляет файл в поле photos с его Content-Type
func writeFile(w *multipart.Writer, field string, f domain.Upload) error {
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(f.Filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(f.Data); err != nil {
		return fmt.Errorf("failed to write file part: %w", err)
	}
	return nil
}

// jsonField пишет поле, сериализованное в JSON; nil-список становится []
func jsonField(w *multipart.Writer, field string, v interface{}) error {
	if list, ok := v.([]string); ok && list == nil {
		v = []string{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", field, err)
	}
	return w.WriteField(field, string(data))
}

// submissionForm собирает multipart тело POST /location
func submissionForm(s *domain.Submission) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := []struct {
		name  string
		value string
	}{
		{"locationName", s.Name},
		{"locationAddress", s.Address},
		{"locationDescription", s.Description},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}

	if err := jsonField(w, "tips", s.Tips); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("socialmedia", s.SocialMedia); err != nil {
		return nil, "", fmt.Errorf("failed to write socialmedia: %w", err)
	}
	if err := jsonField(w, "mediaLink", s.MediaLinks); err != nil {
		return nil, "", err
	}
	if err := jsonField(w, "hours", s.Hours); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("priceRange", s.PriceRange); err != nil {
		return nil, "", fmt.Errorf("failed to write priceRange: %w", err)
	}
	if err := jsonField(w, "keywords", s.Keywords); err != nil {
		return nil, "", err
	}
	if err := jsonField(w, "filters", s.Filters); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("postalCode", s.PostalCode); err != nil {
		return nil, "", fmt.Errorf("failed to write postalCode: %w", err)
	}
	if err := w.WriteField("placeCategory", string(s.PlaceCategory)); err != nil {
		return nil, "", fmt.Errorf("failed to write placeCategory: %w", err)
	}

	for _, photo := range s.Photos {
		if len(photo.Data) == 0 {
			continue
		}
		if err := writeFile(w, "photos", photo); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

// photoForm - тело PUT /items/{id} с одним файлом
func photoForm(photo domain.Upload) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if err := writeFile(w, "photos", photo); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
