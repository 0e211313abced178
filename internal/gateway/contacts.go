package gateway

import (
	"context"

	"github.com/LakhiniVoshadee/litshelf-storefront/internal/domain"
)

// SaveContact submits a contact-form message.
func (c *Client) SaveContact(ctx context.Context, msg *domain.ContactMessage) error {
	return c.post(ctx, "/contacts/save", msg, nil)
}
