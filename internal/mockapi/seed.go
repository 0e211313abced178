package mockapi

import (
	"context"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// Seed fills the store with a small catalog and two accounts:
// admin/admin123 and alice/secret.
func Seed(store *Store) {
	ctx := context.Background()

	_, _ = store.CreateUser(ctx, "admin", "admin123", domain.RoleAdmin)
	_, _ = store.CreateUser(ctx, "alice", "secret", domain.RoleCustomer)

	books := []domain.Book{
		{
			Title: "The Name of the Wind", Author: "Patrick Rothfuss",
			Genre: "Fantasy", Price: 14.99, Currency: "USD",
			CoverImage: "/covers/name-of-the-wind.jpg", PublicationYear: 2007,
			Publisher: "DAW Books", Pages: 662, Language: "English", Stock: 12,
			Description: "A young man grows to be the most notorious wizard his world has ever seen.",
		},
		{
			Title: "Project Hail Mary", Author: "Andy Weir",
			Genre: "Science Fiction", Price: 16.5, Currency: "USD",
			CoverImage: "/covers/project-hail-mary.jpg", PublicationYear: 2021,
			Publisher: "Ballantine Books", Pages: 476, Language: "English", Stock: 8,
		},
		{
			Title: "The Housemaid", Author: "Freida McFadden",
			Genre: "Thriller", Price: 10.99, Currency: "USD",
			CoverImage: "/covers/the-housemaid.jpg", PublicationYear: 2022,
			Publisher: "Bookouture", Pages: 336, Language: "English", Stock: 20,
		},
		{
			Title: "Educated", Author: "Tara Westover",
			Genre: "Memoir", Price: 13.25, Currency: "USD",
			CoverImage: "/covers/educated.jpg", PublicationYear: 2018,
			Publisher: "Random House", Pages: 334, Language: "English", Stock: 5,
		},
		{
			Title: "A Gentleman in Moscow", Author: "Amor Towles",
			Genre: "Historical Fiction", Price: 12.0, Currency: "USD",
			CoverImage: "/covers/gentleman-in-moscow.jpg", PublicationYear: 2016,
			Publisher: "Viking", Pages: 462, Language: "English", Stock: 3,
		},
		{
			Title: "The Pragmatic Programmer", Author: "David Thomas, Andrew Hunt",
			Genre: "Technology", Price: 39.99, Currency: "USD",
			CoverImage: "/covers/pragmatic-programmer.jpg", PublicationYear: 2019,
			Publisher: "Addison-Wesley", Pages: 352, Language: "English", Stock: 7,
		},
	}

	for i := range books {
		_, _ = store.SaveBook(ctx, &books[i])
	}
}
