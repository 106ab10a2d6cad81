package itemclient

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/samvad-hq/samvad-item-client/internal/domain"
)

// decodeItems yields items as they are read from body. A top-level JSON array
// yields its elements; anything else is read as concatenated JSON values, which
// covers a single object and newline-delimited streams. An empty body yields
// nothing. A decode failure is yielded once and ends the sequence.
func decodeItems(op string, body io.Reader, yield func(domain.Item, error) bool) {
	br := bufio.NewReader(body)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return
	}
	if err != nil {
		yield(domain.Item{}, transportError(op, fmt.Errorf("read response body: %w", err)))
		return
	}

	dec := json.NewDecoder(br)
	fail := func(err error) {
		yield(domain.Item{}, transportError(op, fmt.Errorf("decode response body: %w", err)))
	}

	if first == '[' {
		if _, err := dec.Token(); err != nil {
			fail(err)
			return
		}
		for dec.More() {
			item, err := nextItem(dec)
			if err != nil {
				fail(err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
		if _, err := dec.Token(); err != nil {
			fail(err)
		}
		return
	}

	for {
		item, err := nextItem(dec)
		if err == io.EOF {
			return
		}
		if err != nil {
			fail(err)
			return
		}
		if !yield(item, nil) {
			return
		}
	}
}

var errNullItem = errors.New("null item")

// nextItem decodes one value and rejects a JSON null in place of an item.
func nextItem(dec *json.Decoder) (domain.Item, error) {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return domain.Item{}, err
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return domain.Item{}, errNullItem
	}
	var item domain.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}
