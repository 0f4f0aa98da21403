package model

import "time"

// Code представляет короткий код ссылки
type Code string

func (c Code) String() string {
	return string(c)
}

// Link представляет запись короткой ссылки
type Link struct {
	ID          int64      `json:"id"`
	ShortCode   string     `json:"short_code"`
	OriginalURL string     `json:"original_url"`
	Clicks      int64      `json:"clicks"`
	CreatedAt   time.Time  `json:"created_at"`
	LastClicked *time.Time `json:"last_clicked"`
}

// CreateLinkResponse представляет ответ на создание короткой ссылки
type CreateLinkResponse struct {
	ShortURL string `json:"shortUrl"`
	Data     Link   `json:"data"`
}
