package itemclient

import (
	"context"
	"iter"
	"net/http"
	"net/url"

	"github.com/samvad-hq/samvad-item-client/internal/domain"
)

func (c *Client) itemPath(id string) string {
	return c.items + "/" + url.PathEscape(id)
}

// ExchangeItems lists items, inspecting the raw response before decoding.
// Every range over the result issues a fresh request.
func (c *Client) ExchangeItems(ctx context.Context) iter.Seq2[domain.Item, error] {
	return c.exchangeAll(ctx, "itemclient.exchange_items", c.items)
}

// RetrieveItems lists items in decode-or-raise style.
func (c *Client) RetrieveItems(ctx context.Context) iter.Seq2[domain.Item, error] {
	return c.retrieveAll(ctx, "itemclient.retrieve_items", c.items)
}

// ExchangeErrorItems lists from the item service's failure endpoint.
func (c *Client) ExchangeErrorItems(ctx context.Context) iter.Seq2[domain.Item, error] {
	return c.exchangeAll(ctx, "itemclient.exchange_error", c.errPath)
}

// RetrieveErrorItems is ExchangeErrorItems in decode-or-raise style.
func (c *Client) RetrieveErrorItems(ctx context.Context) iter.Seq2[domain.Item, error] {
	return c.retrieveAll(ctx, "itemclient.retrieve_error", c.errPath)
}

// ExchangeItem fetches one item, inspecting the raw response before decoding.
func (c *Client) ExchangeItem(ctx context.Context, id string) (domain.Item, error) {
	const op = "itemclient.exchange_item"

	resp, err := c.exchange(ctx, op, http.MethodGet, c.itemPath(id), nil)
	if err != nil {
		return domain.Item{}, err
	}
	defer resp.Close()

	if err := resp.Err(); err != nil {
		return domain.Item{}, err
	}
	var item domain.Item
	if err := resp.Decode(&item); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

// RetrieveItem fetches one item in decode-or-raise style.
func (c *Client) RetrieveItem(ctx context.Context, id string) (domain.Item, error) {
	var item domain.Item
	if err := c.retrieve(ctx, "itemclient.retrieve_item", http.MethodGet, c.itemPath(id), nil, &item); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

// CreateItem posts a new item and returns the item service's copy, ID included.
func (c *Client) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	var created domain.Item
	if err := c.retrieve(ctx, "itemclient.create_item", http.MethodPost, c.items, item, &created); err != nil {
		return domain.Item{}, err
	}
	return created, nil
}

// UpdateItem replaces the item stored under id.
func (c *Client) UpdateItem(ctx context.Context, id string, item domain.Item) (domain.Item, error) {
	var updated domain.Item
	if err := c.retrieve(ctx, "itemclient.update_item", http.MethodPut, c.itemPath(id), item, &updated); err != nil {
		return domain.Item{}, err
	}
	return updated, nil
}

// DeleteItem removes the item stored under id.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.retrieve(ctx, "itemclient.delete_item", http.MethodDelete, c.itemPath(id), nil, nil)
}

func (c *Client) exchangeAll(ctx context.Context, op, path string) iter.Seq2[domain.Item, error] {
	return func(yield func(domain.Item, error) bool) {
		resp, err := c.exchange(ctx, op, http.MethodGet, path, nil)
		if err != nil {
			yield(domain.Item{}, err)
			return
		}
		defer resp.Close()

		switch status := resp.StatusCode(); {
		case status >= 200 && status < 300:
			decodeItems(op, resp.Body(), yield)
		default:
			yield(domain.Item{}, resp.Err())
		}
	}
}

func (c *Client) retrieveAll(ctx context.Context, op, path string) iter.Seq2[domain.Item, error] {
	return func(yield func(domain.Item, error) bool) {
		resp, err := c.exchange(ctx, op, http.MethodGet, path, nil)
		if err != nil {
			yield(domain.Item{}, err)
			return
		}
		defer resp.Close()

		if err := resp.Err(); err != nil {
			yield(domain.Item{}, err)
			return
		}
		decodeItems(op, resp.Body(), yield)
	}
}
