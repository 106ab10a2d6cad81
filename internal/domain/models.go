package domain

import "encoding/json"

// Item is the record exchanged with the remote item service. It is passed by
// value; a changed item is a new Item.
type Item struct {
	ID          string
	Description string
	Price       float64
}

// NewItem builds a creation payload. The ID is left for the item service to assign.
func NewItem(description string, price float64) Item {
	return Item{Description: description, Price: price}
}

type itemJSON struct {
	ID          *string `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// MarshalJSON writes an empty ID as null.
func (i Item) MarshalJSON() ([]byte, error) {
	w := itemJSON{Description: i.Description, Price: i.Price}
	if i.ID != "" {
		id := i.ID
		w.ID = &id
	}
	return json.Marshal(w)
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var w itemJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*i = Item{Description: w.Description, Price: w.Price}
	if w.ID != nil {
		i.ID = *w.ID
	}
	return nil
}
