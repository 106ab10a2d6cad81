package validation

import "github.com/samvad-hq/samvad-item-client/internal/domain"

// ItemRequest is the JSON payload for POST /client/createItem and PUT /client/updateItem/:id.
// Price carries no sign constraint; the item service owns that rule.
type ItemRequest struct {
	ID          string  `json:"id" validate:"omitempty,max=64"`
	Description string  `json:"description" validate:"max=1024"`
	Price       float64 `json:"price"`
}

// Item converts the payload into the domain record.
func (r ItemRequest) Item() domain.Item {
	return domain.Item{ID: r.ID, Description: r.Description, Price: r.Price}
}

// ItemQuery is the query string of GET /client/post.
type ItemQuery struct {
	Description string  `form:"description" validate:"max=1024"`
	Price       float64 `form:"price"`
}

// Item converts the query into a creation payload with no id.
func (q ItemQuery) Item() domain.Item {
	return domain.NewItem(q.Description, q.Price)
}
