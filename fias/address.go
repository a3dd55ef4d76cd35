package fias

import (
	"context"
	"encoding/json"
	"strconv"
)

// GetRegions lists the top-level regions. The response envelope is
// {"addresses": [...]}.
func (c *Client) GetRegions(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, endpointRegions, nil)
}

// GetAddressItems lists address items matching the request filters. The
// client's default address type fills in when the request leaves it unset.
func (c *Client) GetAddressItems(ctx context.Context, req AddressItemsRequest) (json.RawMessage, error) {
	if req.AddressType == 0 {
		req.AddressType = c.addressType
	}
	return c.post(ctx, endpointAddressItems, req)
}

// GetDetails returns extended details (postal code, OKATO, OKTMO and the
// like) for an address object.
func (c *Client) GetDetails(ctx context.Context, objectID int64) (json.RawMessage, error) {
	return c.get(ctx, endpointDetails, map[string]string{
		"object_id": strconv.FormatInt(objectID, 10),
	})
}

// IsDescendant reports whether descendant sits under ancestor in the
// address hierarchy. The response envelope is {"check": bool}.
func (c *Client) IsDescendant(ctx context.Context, ancestor, descendant int64, addressType ...AddressType) (json.RawMessage, error) {
	return c.get(ctx, endpointIsDescendant, map[string]string{
		"ancestor":     strconv.FormatInt(ancestor, 10),
		"descendant":   strconv.FormatInt(descendant, 10),
		"address_type": c.addressTypeParam(addressType),
	})
}

// HasDescendants reports whether the parent object has descendants down to
// the given address level. The response envelope is {"check": bool}.
func (c *Client) HasDescendants(ctx context.Context, parent int64, upToLevel int, addressType ...AddressType) (json.RawMessage, error) {
	return c.get(ctx, endpointHasDescendants, map[string]string{
		"parent":       strconv.FormatInt(parent, 10),
		"up_to_level":  strconv.Itoa(upToLevel),
		"address_type": c.addressTypeParam(addressType),
	})
}

// DetailsByID returns an address object by its FIAS object ID.
func (c *Client) DetailsByID(ctx context.Context, objectID int64, addressType ...AddressType) (json.RawMessage, error) {
	return c.get(ctx, endpointItemByID, map[string]string{
		"object_id":    strconv.FormatInt(objectID, 10),
		"address_type": c.addressTypeParam(addressType),
	})
}

// Details returns an address object by its FIAS object ID.
//
// Deprecated: use DetailsByID. Details emits a deprecation warning through
// the client's logger and delegates.
func (c *Client) Details(ctx context.Context, objectID int64, addressType ...AddressType) (json.RawMessage, error) {
	c.log.Warn().
		Str("operation", "Details").
		Str("replacement", "DetailsByID").
		Msg("deprecated operation called")
	return c.DetailsByID(ctx, objectID, addressType...)
}

// DetailsByGUID returns an address object by its FIAS GUID.
func (c *Client) DetailsByGUID(ctx context.Context, objectGUID string, addressType ...AddressType) (json.RawMessage, error) {
	if err := requireNonBlank(objectGUID, "object_guid"); err != nil {
		return nil, err
	}
	return c.get(ctx, endpointItemByGUID, map[string]string{
		"object_guid":  objectGUID,
		"address_type": c.addressTypeParam(addressType),
	})
}

// DetailsByCadastralNumber returns an address object by its cadastral number.
func (c *Client) DetailsByCadastralNumber(ctx context.Context, cadastralNumber string, addressType ...AddressType) (json.RawMessage, error) {
	if err := requireNonBlank(cadastralNumber, "cadastral_number"); err != nil {
		return nil, err
	}
	return c.get(ctx, endpointItemByCadastral, map[string]string{
		"cadastral_number": cadastralNumber,
		"address_type":     c.addressTypeParam(addressType),
	})
}

// GetFiasObjectTypes lists the address-object type catalog. The response
// envelope is {"types": [...]}.
func (c *Client) GetFiasObjectTypes(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, endpointObjectTypes, nil)
}

func (c *Client) addressTypeParam(override []AddressType) string {
	return strconv.Itoa(int(c.resolveAddressType(override)))
}
