package domain

import "time"

// Book is a catalog entry. Server-owned; the client only ever holds a
// read-through copy of the last successful fetch.
type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Genre           string    `json:"genre"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	CoverImage      string    `json:"coverImage"`
	PublicationYear int       `json:"publicationYear"`
	Publisher       string    `json:"publisher"`
	Description     string    `json:"description,omitempty"`
	Pages           int       `json:"pages"`
	Language        string    `json:"language"`
	Stock           int       `json:"stock"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
