package fias

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// SearchAddressItems searches address items by free text. The response
// envelope is {"addresses": [...]}.
func (c *Client) SearchAddressItems(ctx context.Context, searchString string, addressType ...AddressType) (json.RawMessage, error) {
	if err := requireNonBlank(searchString, "search_string"); err != nil {
		return nil, err
	}
	return c.get(ctx, endpointSearchItems, map[string]string{
		"search_string": searchString,
		"address_type":  c.addressTypeParam(addressType),
	})
}

// GetAddressHint returns search suggestions. A non-blank SearchString
// issues a GET with query parameters; otherwise the remaining request
// fields go out as a POST body. The response envelope is {"hints": [...]}.
func (c *Client) GetAddressHint(ctx context.Context, req HintRequest) (json.RawMessage, error) {
	addressType := c.resolveAddressType([]AddressType{req.AddressType})

	if strings.TrimSpace(req.SearchString) != "" {
		return c.get(ctx, endpointAddressHint, map[string]string{
			"search_string": req.SearchString,
			"address_type":  c.addressTypeParam([]AddressType{addressType}),
		})
	}

	return c.post(ctx, endpointAddressHint, hintBody{
		SearchNonActive: req.SearchNonActive,
		AddressType:     int(addressType),
		UpToLevel:       req.UpToLevel,
		LocationsBoost:  req.LocationsBoost,
	})
}

// SearchAddressItem resolves free text to a single address item, returned
// as a bare object.
func (c *Client) SearchAddressItem(ctx context.Context, searchString string, addressType ...AddressType) (json.RawMessage, error) {
	if err := requireNonBlank(searchString, "search_string"); err != nil {
		return nil, err
	}
	return c.get(ctx, endpointSearchSingleItem, map[string]string{
		"search_string": searchString,
		"address_type":  c.addressTypeParam(addressType),
	})
}

// Search is a convenience over GetAddressHint: it runs the GET form and
// unwraps the hints array.
func (c *Client) Search(ctx context.Context, searchString string) ([]json.RawMessage, error) {
	if err := requireNonBlank(searchString, "search_string"); err != nil {
		return nil, err
	}

	body, err := c.GetAddressHint(ctx, HintRequest{SearchString: searchString})
	if err != nil {
		return nil, err
	}

	hints := gjson.GetBytes(body, "hints")
	if !hints.IsArray() {
		return nil, nil
	}
	items := hints.Array()
	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		out = append(out, json.RawMessage(item.Raw))
	}
	return out, nil
}
